package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacktop/uploadpost"
	"github.com/blacktop/uploadpost/internal/logutil"
)

// isolate keeps the developer's environment and config file out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("UPLOADPOST_API_KEY", "")
	t.Setenv("UPLOADPOST_BASE_URL", "")
	t.Setenv("UPLOADPOST_REQUESTS_PER_MINUTE", "")
}

// captureLogs redirects the shared logger for the duration of a test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logutil.Logger().SetOutput(&buf)
	t.Cleanup(func() { logutil.Logger().SetOutput(os.Stderr) })
	return &buf
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

type seen struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func newAPI(t *testing.T, reply string) (*httptest.Server, *[]seen) {
	t.Helper()
	var calls []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls = append(calls, seen{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(data),
		})
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVideoDryRun(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "video", "https://x/a.mp4", "--user", "u", "--title", "T", "--platform", "tiktok,instagram", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"[dry-run] POST /upload",
		"video=https://x/a.mp4",
		"user=u",
		"title=T",
		"platform[]=tiktok",
		"platform[]=instagram",
		"",
	}, "\n"), out)
}

func TestPhotosDryRunWithOptionsFile(t *testing.T) {
	isolate(t)
	options := writeFile(t, "x.json", `{
		"platforms": ["x"],
		"title": "from file",
		"async_upload": true,
		"x": {"reply_settings": "following", "tagged_user_ids": "1, 2"}
	}`)

	out, err := runCLI(t, "photos", "./a.jpg", "https://cdn/b.jpg",
		"--user", "u", "--title", "from flag", "--options", options, "--comment-media", "c.png", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"[dry-run] POST /upload_photos",
		"photos[]=https://cdn/b.jpg",
		"user=u",
		"title=from flag",
		"platform[]=x",
		"async_upload=true",
		"reply_settings=following",
		"tagged_user_ids[]=1",
		"tagged_user_ids[]=2",
		"photos[]=@./a.jpg",
		"first_comment_media[]=@c.png",
		"",
	}, "\n"), out)
}

func TestTextDryRunLinkFallback(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "text", "--user", "u", "--title", "hi", "--platform", "linkedin", "--link", "https://example.com", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"[dry-run] POST /upload_text",
		"user=u",
		"title=hi",
		"platform[]=linkedin",
		"link_url=https://example.com",
		"linkedin_link_url=https://example.com",
		"",
	}, "\n"), out)
}

func TestDocumentDryRun(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "document", "deck.pdf", "--user", "u", "--title", "Deck", "--visibility", "PUBLIC", "--queue", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"[dry-run] POST /upload_document",
		"user=u",
		"title=Deck",
		"platform[]=linkedin",
		"visibility=PUBLIC",
		"add_to_queue=true",
		"document=@deck.pdf",
		"",
	}, "\n"), out)
}

func TestUploadValidation(t *testing.T) {
	isolate(t)
	badOptions := writeFile(t, "bad.json", `{"x": {"reply_setting": "following"}}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing user", args: []string{"video", "a.mp4", "--platform", "x", "--dry-run"}, want: "--user is required"},
		{name: "missing platform", args: []string{"video", "a.mp4", "--user", "u", "--dry-run"}, want: "at least one --platform is required"},
		{name: "unknown platform", args: []string{"text", "--user", "u", "--platform", "myspace", "--dry-run"}, want: "myspace"},
		{name: "unknown option key", args: []string{"video", "a.mp4", "--user", "u", "--platform", "x", "--options", badOptions, "--dry-run"}, want: "reply_setting"},
		{name: "document title", args: []string{"document", "deck.pdf", "--user", "u", "--dry-run"}, want: "--title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStatusCallsAPI(t *testing.T) {
	isolate(t)
	srv, calls := newAPI(t, `{"status": "completed"}`)

	out, err := runCLI(t, "--api-key", "flag-key", "--base-url", srv.URL, "status", "req-1")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/uploadposts/status", got.path)
	assert.Equal(t, "request_id=req-1", got.query)
	assert.Equal(t, "Apikey flag-key", got.auth)
	assert.Equal(t, "{\n  \"status\": \"completed\"\n}\n", out)
}

func TestConfigResolution(t *testing.T) {
	isolate(t)
	srv, calls := newAPI(t, `{}`)
	config := writeFile(t, "config.yaml", "api_key: file-key\nbase_url: "+srv.URL+"\n")

	_, err := runCLI(t, "--config", config, "users", "list")
	require.NoError(t, err)

	t.Setenv("UPLOADPOST_API_KEY", "env-key")
	_, err = runCLI(t, "--config", config, "users", "list")
	require.NoError(t, err)

	_, err = runCLI(t, "--config", config, "--api-key", "flag-key", "users", "list")
	require.NoError(t, err)

	require.Len(t, *calls, 3)
	assert.Equal(t, "Apikey file-key", (*calls)[0].auth)
	assert.Equal(t, "Apikey env-key", (*calls)[1].auth)
	assert.Equal(t, "Apikey flag-key", (*calls)[2].auth)
}

func TestDefaultConfigFile(t *testing.T) {
	isolate(t)
	srv, calls := newAPI(t, `{}`)

	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".config", "uploadpost")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_key: home-key\nbase_url: "+srv.URL+"\n"), 0o600))

	_, err := runCLI(t, "metrics")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "Apikey home-key", (*calls)[0].auth)
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "metrics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestMissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "metrics")
	var missing uploadpost.MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"UPLOADPOST_API_KEY"}, missing.Variables)
}

func TestManagementCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
		path   string
		query  string
		body   map[string]any
	}{
		{name: "history", args: []string{"history", "--limit", "50"}, method: http.MethodGet, path: "/uploadposts/history", query: "limit=50&page=1"},
		{name: "analytics", args: []string{"analytics", "alice", "-p", "x,threads"}, method: http.MethodGet, path: "/analytics/alice", query: "platforms=x%2Cthreads"},
		{name: "impressions", args: []string{"impressions", "alice", "--period", "last_week", "--breakdown"}, method: http.MethodGet, path: "/uploadposts/total-impressions/alice", query: "breakdown=true&period=last_week"},
		{name: "post analytics", args: []string{"post-analytics", "req-7"}, method: http.MethodGet, path: "/uploadposts/post-analytics/req-7"},
		{name: "schedule list", args: []string{"schedule", "list"}, method: http.MethodGet, path: "/uploadposts/schedule"},
		{name: "schedule cancel", args: []string{"schedule", "cancel", "job-1"}, method: http.MethodDelete, path: "/uploadposts/schedule/job-1"},
		{name: "schedule edit", args: []string{"schedule", "edit", "job-1", "--timezone", "Europe/Madrid"}, method: http.MethodPost, path: "/uploadposts/schedule/job-1", body: map[string]any{"timezone": "Europe/Madrid"}},
		{name: "users create", args: []string{"users", "create", "bob"}, method: http.MethodPost, path: "/uploadposts/users", body: map[string]any{"username": "bob"}},
		{name: "users delete", args: []string{"users", "delete", "bob"}, method: http.MethodDelete, path: "/uploadposts/users", body: map[string]any{"username": "bob"}},
		{name: "jwt generate", args: []string{"jwt", "generate", "bob", "-p", "tiktok", "--show-calendar=false"}, method: http.MethodPost, path: "/uploadposts/users/generate-jwt", body: map[string]any{"username": "bob", "platforms": []any{"tiktok"}, "show_calendar": false}},
		{name: "jwt validate", args: []string{"jwt", "validate", "tok"}, method: http.MethodPost, path: "/uploadposts/users/validate-jwt", body: map[string]any{"jwt": "tok"}},
		{name: "facebook pages", args: []string{"pages", "facebook", "--profile", "alice"}, method: http.MethodGet, path: "/uploadposts/facebook/pages", query: "profile=alice"},
		{name: "pinterest boards", args: []string{"pages", "pinterest"}, method: http.MethodGet, path: "/uploadposts/pinterest/boards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			srv, calls := newAPI(t, `{"success": true}`)

			_, err := runCLI(t, append([]string{"--api-key", "k", "--base-url", srv.URL}, tt.args...)...)
			require.NoError(t, err)

			require.Len(t, *calls, 1)
			got := (*calls)[0]
			assert.Equal(t, tt.method, got.method)
			assert.Equal(t, tt.path, got.path)
			assert.Equal(t, tt.query, got.query)
			if tt.body == nil {
				assert.Empty(t, got.body)
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal([]byte(got.body), &body))
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestScheduleEditNeedsAChange(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--api-key", "k", "schedule", "edit", "job-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")
}

func TestStatusErrorIsReturned(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message": "invalid platform"}`)
	}))
	t.Cleanup(srv.Close)

	_, err := runCLI(t, "--api-key", "k", "--base-url", srv.URL, "metrics")
	require.Error(t, err)
	assert.Equal(t, "invalid platform", err.Error())
	assert.True(t, uploadpost.IsStatus(err))
}

func TestJWTInspect(t *testing.T) {
	isolate(t)
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bob", "exp": exp.Unix()}).SignedString([]byte("s"))
	require.NoError(t, err)

	out, err := runCLI(t, "jwt", "inspect", token)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2030-01-02T03:04:05Z", got["expires_at"])
	assert.Equal(t, false, got["expired"])
	assert.Equal(t, "bob", got["claims"].(map[string]any)["sub"])
}

func TestCompletion(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "uploadpost")

	_, err = runCLI(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestOptionsForUnrequestedPlatformWarn(t *testing.T) {
	isolate(t)
	logs := captureLogs(t)
	options := writeFile(t, "opts.json", `{"tiktok": {"privacy_level": "SELF_ONLY"}, "x": {"reply_settings": "following"}}`)

	out, err := runCLI(t, "video", "https://x/a.mp4", "--user", "u", "--platform", "x", "--options", options, "--dry-run")
	require.NoError(t, err)
	assert.NotContains(t, out, "privacy_level")
	assert.Contains(t, out, "reply_settings=following")
	assert.Contains(t, logs.String(), "ignoring tiktok options: platform not requested")
	assert.NotContains(t, logs.String(), "ignoring x options")
}

func TestAsyncUploadLogsRequestID(t *testing.T) {
	isolate(t)
	logs := captureLogs(t)
	srv, calls := newAPI(t, `{"success": true, "request_id": "abc123"}`)

	out, err := runCLI(t, "--api-key", "k", "--base-url", srv.URL,
		"video", "https://x/a.mp4", "--user", "u", "--platform", "tiktok", "--async")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/upload", (*calls)[0].path)
	assert.Contains(t, out, `"request_id": "abc123"`)
	assert.Contains(t, logs.String(), "upload queued: request_id=abc123")
}
