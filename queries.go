package uploadpost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultHistoryPage  = 1
	defaultHistoryLimit = 20
)

// AnalyticsQuery narrows Analytics.
type AnalyticsQuery struct {
	Platforms []Platform
	// PageID is the Facebook page, required for Facebook analytics.
	PageID string
	// PageURN is the LinkedIn page; the API defaults to the personal profile.
	PageURN string
}

// ImpressionsQuery narrows TotalImpressions. Dates use YYYY-MM-DD.
type ImpressionsQuery struct {
	// Period is one of last_day, last_week, last_month, last_3months, last_year.
	Period    string
	StartDate string
	EndDate   string
	Date      string
	Platforms []Platform
	// Breakdown adds per-platform and per-day totals.
	Breakdown bool
	// Metrics limits aggregation, e.g. likes, comments, shares.
	Metrics []string
}

// Status reports the progress of an async upload.
func (c *Client) Status(ctx context.Context, requestID string) (Response, error) {
	query := url.Values{"request_id": {requestID}}
	return c.do(ctx, request{method: http.MethodGet, path: "/uploadposts/status", query: query})
}

// History lists past uploads. Zero page and limit fall back to 1 and 20; the
// API accepts limits of 20, 50 or 100.
func (c *Client) History(ctx context.Context, page, limit int) (Response, error) {
	if page <= 0 {
		page = defaultHistoryPage
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	return c.do(ctx, request{method: http.MethodGet, path: "/uploadposts/history", query: query})
}

// Analytics returns per-platform analytics for a profile.
func (c *Client) Analytics(ctx context.Context, profile string, q *AnalyticsQuery) (Response, error) {
	path, err := joinPath("/analytics", profile)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if q != nil {
		if len(q.Platforms) > 0 {
			query.Set("platforms", joinPlatforms(q.Platforms))
		}
		setIf(query, "page_id", q.PageID)
		setIf(query, "page_urn", q.PageURN)
	}

	return c.do(ctx, request{method: http.MethodGet, path: path, query: query})
}

// TotalImpressions aggregates daily impression snapshots for a profile.
func (c *Client) TotalImpressions(ctx context.Context, profile string, q *ImpressionsQuery) (Response, error) {
	path, err := joinPath("/uploadposts/total-impressions", profile)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if q != nil {
		setIf(query, "period", q.Period)
		setIf(query, "start_date", q.StartDate)
		setIf(query, "end_date", q.EndDate)
		setIf(query, "date", q.Date)
		if len(q.Platforms) > 0 {
			query.Set("platform", joinPlatforms(q.Platforms))
		}
		if q.Breakdown {
			query.Set("breakdown", "true")
		}
		if len(q.Metrics) > 0 {
			query.Set("metrics", strings.Join(q.Metrics, ","))
		}
	}

	return c.do(ctx, request{method: http.MethodGet, path: path, query: query})
}

// PostAnalytics returns metrics for one upload across every platform it
// reached.
func (c *Client) PostAnalytics(ctx context.Context, requestID string) (Response, error) {
	path, err := joinPath("/uploadposts/post-analytics", requestID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{method: http.MethodGet, path: path})
}

// PlatformMetrics returns the metric catalog of every platform.
func (c *Client) PlatformMetrics(ctx context.Context) (Response, error) {
	return c.do(ctx, request{method: http.MethodGet, path: "/uploadposts/platform-metrics"})
}

// joinPath appends one escaped path segment, which must not be empty.
func joinPath(prefix, segment string) (string, error) {
	if strings.TrimSpace(segment) == "" {
		return "", &Error{Kind: KindInvalid, Message: fmt.Sprintf("%s: path parameter is empty", prefix)}
	}
	return prefix + "/" + url.PathEscape(segment), nil
}

func joinPlatforms(platforms []Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
