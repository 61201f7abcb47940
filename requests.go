package uploadpost

// VideoUpload publishes one video.
type VideoUpload struct {
	// Video is a local file path or an http(s) URL.
	Video     string     `json:"-"`
	User      string     `json:"user,omitempty"`
	Title     string     `json:"title,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
	Common

	TikTok    *TikTokVideo     `json:"tiktok,omitempty"`
	Instagram *InstagramVideo  `json:"instagram,omitempty"`
	YouTube   *YouTubeVideo    `json:"youtube,omitempty"`
	LinkedIn  *LinkedInOptions `json:"linkedin,omitempty"`
	Facebook  *FacebookVideo   `json:"facebook,omitempty"`
	Pinterest *PinterestVideo  `json:"pinterest,omitempty"`
	X         *XMedia          `json:"x,omitempty"`
	Threads   *ThreadsOptions  `json:"threads,omitempty"`
}

// PhotoUpload publishes one post made of one or more photos.
type PhotoUpload struct {
	// Photos are local file paths or http(s) URLs, in display order.
	Photos    []string   `json:"-"`
	User      string     `json:"user,omitempty"`
	Title     string     `json:"title,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
	Common

	TikTok    *TikTokPhoto      `json:"tiktok,omitempty"`
	Instagram *InstagramOptions `json:"instagram,omitempty"`
	LinkedIn  *LinkedInOptions  `json:"linkedin,omitempty"`
	Facebook  *FacebookOptions  `json:"facebook,omitempty"`
	Pinterest *PinterestOptions `json:"pinterest,omitempty"`
	X         *XMedia           `json:"x,omitempty"`
	Threads   *ThreadsOptions   `json:"threads,omitempty"`
	Reddit    *RedditOptions    `json:"reddit,omitempty"`

	// FirstCommentMedia are local images attached to the first comment
	// (Reddit and X).
	FirstCommentMedia []string `json:"first_comment_media,omitempty"`
}

// TextUpload publishes a text-only post. Title carries the post text.
type TextUpload struct {
	User      string     `json:"user,omitempty"`
	Title     string     `json:"title,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
	Common

	// LinkURL is a link preview shared by LinkedIn, Reddit, Bluesky and
	// Facebook. Platform-specific links take priority.
	LinkURL string `json:"link_url,omitempty"`

	LinkedIn *LinkedInText   `json:"linkedin,omitempty"`
	Facebook *FacebookText   `json:"facebook,omitempty"`
	X        *XText          `json:"x,omitempty"`
	Threads  *ThreadsOptions `json:"threads,omitempty"`
	Reddit   *RedditText     `json:"reddit,omitempty"`
	Bluesky  *BlueskyText    `json:"bluesky,omitempty"`

	FirstCommentMedia []string `json:"first_comment_media,omitempty"`
}

// DocumentUpload publishes a PDF, PPT, PPTX, DOC or DOCX to LinkedIn.
type DocumentUpload struct {
	// Document is a local file path or an http(s) URL.
	Document             string `json:"-"`
	User                 string `json:"user,omitempty"`
	Title                string `json:"title,omitempty"`
	Description          string `json:"description,omitempty"`
	Visibility           string `json:"visibility,omitempty"`
	TargetLinkedInPageID string `json:"target_linkedin_page_id,omitempty"`
	ScheduledDate        string `json:"scheduled_date,omitempty"`
	Timezone             string `json:"timezone,omitempty"`
	AddToQueue           *bool  `json:"add_to_queue,omitempty"`
	AsyncUpload          *bool  `json:"async_upload,omitempty"`
}
