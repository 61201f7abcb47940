package uploadpost

import (
	"context"
	"net/http"
	"net/url"
)

// JWTRequest configures GenerateJWT.
type JWTRequest struct {
	Username           string     `json:"username"`
	RedirectURL        string     `json:"redirect_url,omitempty"`
	LogoImage          string     `json:"logo_image,omitempty"`
	RedirectButtonText string     `json:"redirect_button_text,omitempty"`
	Platforms          []Platform `json:"platforms,omitempty"`
	ShowCalendar       *bool      `json:"show_calendar,omitempty"`
	// ReadonlyCalendar shows the calendar without editing or account linking.
	ReadonlyCalendar   *bool  `json:"readonly_calendar,omitempty"`
	ConnectTitle       string `json:"connect_title,omitempty"`
	ConnectDescription string `json:"connect_description,omitempty"`
}

type scheduleEdit struct {
	ScheduledDate string `json:"scheduled_date,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

type usernameBody struct {
	Username string `json:"username"`
}

type jwtBody struct {
	JWT string `json:"jwt"`
}

// ListScheduled lists pending scheduled posts.
func (c *Client) ListScheduled(ctx context.Context) (Response, error) {
	return c.do(ctx, request{method: http.MethodGet, path: "/uploadposts/schedule"})
}

// CancelScheduled cancels a scheduled post.
func (c *Client) CancelScheduled(ctx context.Context, jobID string) (Response, error) {
	path, err := joinPath("/uploadposts/schedule", jobID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{method: http.MethodDelete, path: path})
}

// EditScheduled moves a scheduled post. Empty arguments are left unchanged.
func (c *Client) EditScheduled(ctx context.Context, jobID, scheduledDate, timezone string) (Response, error) {
	path, err := joinPath("/uploadposts/schedule", jobID)
	if err != nil {
		return nil, err
	}
	body := scheduleEdit{ScheduledDate: scheduledDate, Timezone: timezone}
	return c.do(ctx, request{method: http.MethodPost, path: path, json: body})
}

// ListUsers lists the profiles of the account.
func (c *Client) ListUsers(ctx context.Context) (Response, error) {
	return c.do(ctx, request{method: http.MethodGet, path: "/uploadposts/users"})
}

// CreateUser creates a profile.
func (c *Client) CreateUser(ctx context.Context, username string) (Response, error) {
	return c.do(ctx, request{method: http.MethodPost, path: "/uploadposts/users", json: usernameBody{Username: username}})
}

// DeleteUser deletes a profile.
func (c *Client) DeleteUser(ctx context.Context, username string) (Response, error) {
	return c.do(ctx, request{method: http.MethodDelete, path: "/uploadposts/users", json: usernameBody{Username: username}})
}

// GenerateJWT returns a token and URL for the hosted account-linking page.
func (c *Client) GenerateJWT(ctx context.Context, r *JWTRequest) (Response, error) {
	if r == nil {
		return nil, &Error{Kind: KindInvalid, Message: "jwt request is nil"}
	}
	return c.do(ctx, request{method: http.MethodPost, path: "/uploadposts/users/generate-jwt", json: r})
}

// ValidateJWT asks the API whether token is still valid.
func (c *Client) ValidateJWT(ctx context.Context, token string) (Response, error) {
	return c.do(ctx, request{method: http.MethodPost, path: "/uploadposts/users/validate-jwt", json: jwtBody{JWT: token}})
}

// FacebookPages lists the Facebook pages connected to profile, or to every
// profile when profile is empty.
func (c *Client) FacebookPages(ctx context.Context, profile string) (Response, error) {
	return c.helper(ctx, "/uploadposts/facebook/pages", profile)
}

// LinkedInPages lists the LinkedIn pages connected to profile.
func (c *Client) LinkedInPages(ctx context.Context, profile string) (Response, error) {
	return c.helper(ctx, "/uploadposts/linkedin/pages", profile)
}

// PinterestBoards lists the Pinterest boards connected to profile.
func (c *Client) PinterestBoards(ctx context.Context, profile string) (Response, error) {
	return c.helper(ctx, "/uploadposts/pinterest/boards", profile)
}

func (c *Client) helper(ctx context.Context, path, profile string) (Response, error) {
	var query url.Values
	if profile != "" {
		query = url.Values{"profile": {profile}}
	}
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query})
}
