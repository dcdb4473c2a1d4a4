package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avokic/redditkit"
)

func newSubmitCmd(app *app) *cobra.Command {
	opts := &redditkit.SubmitOptions{}

	cmd := &cobra.Command{
		Use:   "submit <subreddit> <title>",
		Short: "Submit a new post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.SubmitPost(cmd.Context(), args[0], args[1], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&opts.Content, "text", "t", "", "body for a text post")
	cmd.Flags().StringVarP(&opts.URL, "url", "u", "", "target for a link post")
	cmd.Flags().StringVar(&opts.FlairID, "flair", "", "flair template ID to apply")

	return cmd
}

func newReplyCmd(app *app) *cobra.Command {
	toComment := false

	cmd := &cobra.Command{
		Use:   "reply <id> <text>",
		Short: "Reply to a post, or to a comment with --comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *redditkit.ReplyResult
			var err error
			if toComment {
				result, err = app.client.ReplyToComment(cmd.Context(), args[0], args[1])
			} else {
				result, err = app.client.ReplyToPost(cmd.Context(), args[0], args[1])
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&toComment, "comment", "c", false, "treat the ID as a comment ID")

	return cmd
}

func newEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <comment-id> <text>",
		Short: "Edit one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.EditComment(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.DeleteComment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}
