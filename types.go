package uploadpost

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/blacktop/uploadpost/internal/form"
)

// Platform names a publishing destination.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformPinterest Platform = "pinterest"
	PlatformX         Platform = "x"
	PlatformThreads   Platform = "threads"
	PlatformReddit    Platform = "reddit"
	PlatformBluesky   Platform = "bluesky"
)

// Platforms lists every destination the API accepts.
var Platforms = []Platform{
	PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformLinkedIn, PlatformFacebook,
	PlatformPinterest, PlatformX, PlatformThreads, PlatformReddit, PlatformBluesky,
}

// ParsePlatforms converts names to Platforms, rejecting unknown ones.
func ParsePlatforms(names []string) ([]Platform, error) {
	out := make([]Platform, 0, len(names))
	for _, raw := range names {
		p := Platform(strings.ToLower(strings.TrimSpace(raw)))
		if p == "" {
			continue
		}
		if !slices.Contains(Platforms, p) {
			return nil, &Error{Kind: KindInvalid, Message: fmt.Sprintf("unsupported platform %q", raw)}
		}
		out = append(out, p)
	}
	return out, nil
}

func hasPlatform(platforms []Platform, p Platform) bool {
	return slices.Contains(platforms, p)
}

// Field is one name/value entry of an upload form.
type Field = form.Field

// List is a multi-valued option sent as repeated "name[]" fields.
//
// In JSON it may be written either as an array or as a comma-separated string.
type List []string

// ParseList splits s on commas and trims each element. Empty elements are
// dropped, so a blank s yields a nil List.
func ParseList(s string) List {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(List, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// UnmarshalJSON accepts ["a","b"] or "a, b".
func (l *List) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*l = nil
			return nil
		}
		*l = ParseList(s)
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("list must be a string or an array of strings: %w", err)
	}
	*l = values
	return nil
}

// UnmarshalText accepts a comma-separated string.
func (l *List) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*l = nil
		return nil
	}
	*l = ParseList(string(text))
	return nil
}

// Response is the decoded JSON object returned by the API. List endpoints
// wrap their items in an object; a success body that is not an object, such
// as a bare JSON array, is reported as a KindDecode error.
type Response map[string]any

// RequestID returns the top-level request_id of an async upload response.
func (r Response) RequestID() string {
	id, _ := r["request_id"].(string)
	return id
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
