package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avokic/redditkit"
)

func newSearchCmd(app *app) *cobra.Command {
	opts := &redditkit.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.SearchPosts(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&opts.Subreddit, "subreddit", "r", "", "restrict the search to a subreddit")
	cmd.Flags().StringVarP(&opts.TimeFilter, "time", "t", "", "time filter (hour, day, week, month, year, all)")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "sort order (relevance, hot, top, new, comments)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of posts (1-100)")

	return cmd
}

func newFeedCmd(app *app) *cobra.Command {
	opts := &redditkit.FeedOptions{}
	feedType := "hot"

	cmd := &cobra.Command{
		Use:   "feed <subreddit>",
		Short: "List posts from a subreddit feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *redditkit.FeedResult
			var err error
			switch feedType {
			case "new":
				result, err = app.client.SubredditNew(cmd.Context(), args[0], opts)
			default:
				result, err = app.client.SubredditHot(cmd.Context(), args[0], opts)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&feedType, "type", "t", "hot", "feed type (hot, new)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of posts (1-100)")
	cmd.Flags().StringVar(&opts.After, "after", "", "pagination token from a previous page")
	cmd.Flags().StringVar(&opts.Before, "before", "", "pagination token from a previous page")

	return cmd
}

func newPostCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post <post-id>",
		Short: "Fetch a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}

func newCommentsCmd(app *app) *cobra.Command {
	opts := &redditkit.CommentOptions{}

	cmd := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Fetch the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.client.GetComments(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "sort order (best, top, new, controversial, old, qa)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of comments (1-500)")

	return cmd
}
