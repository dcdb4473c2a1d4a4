package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avokic/redditkit/pkg/types"
)

func newUserCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <username>",
		Short: "Fetch a user's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetUserProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}

func newVoteCmd(app *app) *cobra.Command {
	direction := string(types.VoteUp)

	cmd := &cobra.Command{
		Use:   "vote <item-id>",
		Short: "Vote on a post or comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.Vote(cmd.Context(), args[0], types.VoteDirection(direction))
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", string(types.VoteUp), "vote direction (up, down, clear)")

	return cmd
}

func newSaveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <post-id>",
		Short: "Save a post to your saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.SavePost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}
