package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/blacktop/uploadpost"
)

type apiCall func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error)

// call runs one API operation and prints its response as JSON.
func (a *app) call(cmd *cobra.Command, fn apiCall) error {
	c, err := a.client(cmd)
	if err != nil {
		return err
	}
	resp, err := fn(cmd.Context(), c)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status REQUEST_ID",
		Short: "Show the progress of an async upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.Status(ctx, args[0])
			})
		},
	}
}

func newHistoryCommand(a *app) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.History(ctx, page, limit)
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "Items per page (20, 50 or 100)")
	return cmd
}

func newAnalyticsCommand(a *app) *cobra.Command {
	var (
		platforms []string
		q         uploadpost.AnalyticsQuery
	)
	cmd := &cobra.Command{
		Use:   "analytics PROFILE",
		Short: "Show per-platform analytics for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := uploadpost.ParsePlatforms(platforms)
			if err != nil {
				return err
			}
			q.Platforms = parsed
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.Analytics(ctx, args[0], &q)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Platforms to include")
	cmd.Flags().StringVar(&q.PageID, "page-id", "", "Facebook page ID")
	cmd.Flags().StringVar(&q.PageURN, "page-urn", "", "LinkedIn page URN")
	return cmd
}

func newImpressionsCommand(a *app) *cobra.Command {
	var (
		platforms []string
		q         uploadpost.ImpressionsQuery
	)
	cmd := &cobra.Command{
		Use:   "impressions PROFILE",
		Short: "Aggregate impressions for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := uploadpost.ParsePlatforms(platforms)
			if err != nil {
				return err
			}
			q.Platforms = parsed
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.TotalImpressions(ctx, args[0], &q)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&q.Period, "period", "", "last_day, last_week, last_month, last_3months or last_year")
	flags.StringVar(&q.StartDate, "start", "", "Range start (YYYY-MM-DD)")
	flags.StringVar(&q.EndDate, "end", "", "Range end (YYYY-MM-DD)")
	flags.StringVar(&q.Date, "date", "", "Single day (YYYY-MM-DD)")
	flags.StringSliceVarP(&platforms, "platform", "p", nil, "Platforms to include")
	flags.BoolVar(&q.Breakdown, "breakdown", false, "Include per-platform and per-day totals")
	flags.StringSliceVar(&q.Metrics, "metrics", nil, "Metrics to aggregate, e.g. likes,comments")
	return cmd
}

func newPostAnalyticsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post-analytics REQUEST_ID",
		Short: "Show metrics for one upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.PostAnalytics(ctx, args[0])
			})
		},
	}
}

func newMetricsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the metrics each platform reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c *uploadpost.Client) (uploadpost.Response, error) {
				return c.PlatformMetrics(ctx)
			})
		},
	}
}
