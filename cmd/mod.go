package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avokic/redditkit"
)

func newModCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Moderation actions",
	}

	cmd.AddCommand(
		newModRemoveCmd(app),
		newModApproveCmd(app),
		newModBanCmd(app),
	)

	return cmd
}

func newModRemoveCmd(app *app) *cobra.Command {
	spam := false

	cmd := &cobra.Command{
		Use:   "remove <post-id>",
		Short: "Remove a post from a subreddit you moderate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.RemovePost(cmd.Context(), args[0], spam)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&spam, "spam", false, "also mark the post as spam")

	return cmd
}

func newModApproveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <post-id>",
		Short: "Approve a reported or removed post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.ApprovePost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}

func newModBanCmd(app *app) *cobra.Command {
	opts := &redditkit.BanOptions{}

	cmd := &cobra.Command{
		Use:   "ban <subreddit> <username>",
		Short: "Ban a user from a subreddit you moderate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.BanUser(cmd.Context(), args[0], args[1], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().IntVarP(&opts.DurationDays, "days", "d", 0, "ban duration in days (1-999, 0 for permanent)")
	cmd.Flags().StringVar(&opts.Reason, "reason", "", "reason shown to the banned user")
	cmd.Flags().StringVar(&opts.Note, "note", "", "private note for other moderators")

	return cmd
}
