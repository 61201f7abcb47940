package uploadpost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/blacktop/uploadpost/internal/form"
	"github.com/blacktop/uploadpost/internal/logutil"
)

const (
	// DefaultBaseURL is the Upload-Post API root.
	DefaultBaseURL = "https://api.upload-post.com/api"
	// Version is the client version reported in the User-Agent header.
	Version = "1.0.0"

	envAPIKey  = "UPLOADPOST_API_KEY"
	envBaseURL = "UPLOADPOST_BASE_URL"

	sourceHeader = "X-Upload-Post-Source"
	sourceName   = "go"

	secondsPerMinute = 60.0
)

// DefaultUserAgent identifies this client to the API.
var DefaultUserAgent = "upload-post-go-client/" + Version

// httpTimeout bounds the default HTTP client; large video uploads are slow.
var httpTimeout = 5 * time.Minute

// Config configures a Client. Only APIKey is required.
type Config struct {
	APIKey string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient defaults to a client with a five minute timeout. It is
	// reused for every request.
	HTTPClient *http.Client
	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
	// Logger receives debug output. Defaults to the package logger.
	Logger *log.Logger

	// RequestsPerMinute paces outgoing requests when greater than zero.
	// Burst defaults to 1.
	RequestsPerMinute float64
	Burst             int
}

// Client talks to the Upload-Post API. It keeps no per-call state and may be
// shared between goroutines when its HTTPClient can be.
type Client struct {
	apiKey    string
	baseURL   string
	userAgent string
	http      *http.Client
	log       *log.Logger
	limiter   *rate.Limiter
	open      opener
}

// New constructs a Client.
func New(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, &Error{Kind: KindConfig, Message: "api key is required"}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, &Error{Kind: KindConfig, Message: fmt.Sprintf("parse base url: %v", err), Err: err}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logutil.Logger()
	}

	c := &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      httpClient,
		log:       logger,
		open:      openFile,
	}

	if cfg.RequestsPerMinute > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/secondsPerMinute), burst)
	}

	return c, nil
}

// NewFromEnv constructs a Client from UPLOADPOST_API_KEY and
// UPLOADPOST_BASE_URL. Environment values win over the ones in base.
func NewFromEnv(base Config) (*Client, error) {
	cfg, err := loadConfig(base)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func loadConfig(base Config) (Config, error) {
	cfg := base
	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		cfg.APIKey = key
	}
	if baseURL := strings.TrimSpace(os.Getenv(envBaseURL)); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return Config{}, MissingEnvError{Variables: []string{envAPIKey}}
	}

	return cfg, nil
}

// request describes one API call. At most one of json and form is set.
type request struct {
	method string
	path   string
	query  url.Values
	json   any
	form   *form.Form
}

func (c *Client) attachments() *attachments {
	return &attachments{open: c.open, log: c.log}
}

func (c *Client) do(ctx context.Context, r request) (Response, error) {
	switch r.method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return nil, &Error{Kind: KindMethod, Message: fmt.Sprintf("unsupported HTTP method: %s", r.method)}
	}
	if r.json != nil && r.form != nil {
		return nil, &Error{Kind: KindInvalid, Message: "request cannot carry both a JSON and a form body"}
	}

	var (
		body        io.Reader
		contentType string
		fields      int
		files       int
	)
	switch {
	case r.form != nil:
		buf, ct, err := r.form.Encode()
		if err != nil {
			return nil, &Error{Kind: KindFile, Message: fmt.Sprintf("encode form: %v", err), Err: err}
		}
		body, contentType = buf, ct
		fields, files = len(r.form.Fields()), len(r.form.Files())
	case r.json != nil:
		data, err := json.Marshal(r.json)
		if err != nil {
			return nil, &Error{Kind: KindInvalid, Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	req.Header.Set("Authorization", "Apikey "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(sourceHeader, sourceName)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
		}
	}

	c.log.Debugf("request: method=%s path=%s fields=%d files=%d", r.method, r.path, fields, files)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err), Err: err}
	}
	c.log.Debugf("response: status=%d bytes=%d", resp.StatusCode, len(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindStatus, StatusCode: resp.StatusCode, Message: errorMessage(resp.Status, data)}
	}

	if resp.StatusCode == http.StatusNoContent {
		return Response{}, nil
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &Error{Kind: KindDecode, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	if out == nil {
		return nil, &Error{Kind: KindDecode, StatusCode: resp.StatusCode, Message: "decode response: body is not a JSON object"}
	}

	return out, nil
}

// errorMessage picks the most specific text from an error body: its
// "message", then its "detail", then the body itself, then the status line.
func errorMessage(status string, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return status
	}
	for _, key := range []string{"message", "detail"} {
		if msg := stringify(payload[key]); msg != "" {
			return msg
		}
	}
	compact := &bytes.Buffer{}
	if err := json.Compact(compact, body); err != nil {
		return status
	}
	return compact.String()
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
