package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "redditkit",
		Short:         "Reddit from the terminal: search, read, post, vote, moderate",
		Long:          "redditkit wraps the Reddit API for terminal use. Configure credentials via the REDDIT_CREDENTIALS environment variable (a JSON object with client_id, client_secret, refresh_token, user_agent) or the individual REDDIT_* variables.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSearchCmd(app),
		newFeedCmd(app),
		newPostCmd(app),
		newCommentsCmd(app),
		newSubmitCmd(app),
		newReplyCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newUserCmd(app),
		newVoteCmd(app),
		newSaveCmd(app),
		newModCmd(app),
	)

	return rootCmd
}
