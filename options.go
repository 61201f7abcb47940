package uploadpost

// Common holds the fields shared by video, photo and text uploads.
type Common struct {
	Description     string `json:"description,omitempty"`
	FirstComment    string `json:"first_comment,omitempty"`
	AltText         string `json:"alt_text,omitempty"`
	ScheduledDate   string `json:"scheduled_date,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	AddToQueue      *bool  `json:"add_to_queue,omitempty"`
	MaxPostsPerSlot *int   `json:"max_posts_per_slot,omitempty"`
	AsyncUpload     *bool  `json:"async_upload,omitempty"`

	// Per-platform overrides, sent as "<platform>_title" and so on. Only
	// platforms the API supports an override for are sent.
	Titles        map[Platform]string `json:"titles,omitempty"`
	Descriptions  map[Platform]string `json:"descriptions,omitempty"`
	FirstComments map[Platform]string `json:"first_comments,omitempty"`
}

// TikTokOptions apply to both TikTok videos and photo posts.
type TikTokOptions struct {
	DisableComment     *bool `json:"disable_comment,omitempty"`
	BrandContentToggle *bool `json:"brand_content_toggle,omitempty"`
	BrandOrganicToggle *bool `json:"brand_organic_toggle,omitempty"`
}

// TikTokVideo configures a TikTok video post.
type TikTokVideo struct {
	TikTokOptions
	// PrivacyLevel is one of PUBLIC_TO_EVERYONE, MUTUAL_FOLLOW_FRIENDS,
	// FOLLOWER_OF_CREATOR or SELF_ONLY.
	PrivacyLevel   string `json:"privacy_level,omitempty"`
	DisableDuet    *bool  `json:"disable_duet,omitempty"`
	DisableStitch  *bool  `json:"disable_stitch,omitempty"`
	CoverTimestamp *int   `json:"cover_timestamp,omitempty"` // milliseconds
	IsAIGC         *bool  `json:"is_aigc,omitempty"`
	PostMode       string `json:"post_mode,omitempty"` // DIRECT_POST or MEDIA_UPLOAD
}

// TikTokPhoto configures a TikTok photo post.
type TikTokPhoto struct {
	TikTokOptions
	AutoAddMusic    *bool `json:"auto_add_music,omitempty"`
	PhotoCoverIndex *int  `json:"photo_cover_index,omitempty"` // 0-based
}

// InstagramOptions configure Instagram photo posts and are shared by videos.
type InstagramOptions struct {
	MediaType     string `json:"media_type,omitempty"`    // REELS, STORIES or IMAGE
	Collaborators string `json:"collaborators,omitempty"` // comma-separated usernames
	UserTags      string `json:"user_tags,omitempty"`     // comma-separated usernames
	LocationID    string `json:"location_id,omitempty"`
}

// InstagramVideo configures an Instagram reel or story.
type InstagramVideo struct {
	InstagramOptions
	ShareToFeed *bool  `json:"share_to_feed,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	AudioName   string `json:"audio_name,omitempty"`
	ThumbOffset string `json:"thumb_offset,omitempty"`
}

// YouTubeVideo configures a YouTube upload.
type YouTubeVideo struct {
	Tags                    List   `json:"tags,omitempty"`
	CategoryID              string `json:"categoryId,omitempty"`
	PrivacyStatus           string `json:"privacyStatus,omitempty"` // public, unlisted, private
	Embeddable              *bool  `json:"embeddable,omitempty"`
	License                 string `json:"license,omitempty"` // youtube or creativeCommon
	PublicStatsViewable     *bool  `json:"publicStatsViewable,omitempty"`
	ThumbnailURL            string `json:"thumbnail_url,omitempty"`
	SelfDeclaredMadeForKids *bool  `json:"selfDeclaredMadeForKids,omitempty"`
	ContainsSyntheticMedia  *bool  `json:"containsSyntheticMedia,omitempty"`
	DefaultLanguage         string `json:"defaultLanguage,omitempty"`
	DefaultAudioLanguage    string `json:"defaultAudioLanguage,omitempty"`
	AllowedCountries        string `json:"allowedCountries,omitempty"` // comma-separated country codes
	BlockedCountries        string `json:"blockedCountries,omitempty"`
	HasPaidProductPlacement *bool  `json:"hasPaidProductPlacement,omitempty"`
	RecordingDate           string `json:"recordingDate,omitempty"`
}

// LinkedInOptions configure LinkedIn video and photo posts.
type LinkedInOptions struct {
	Visibility   string `json:"visibility,omitempty"` // PUBLIC, CONNECTIONS, LOGGED_IN, CONTAINER
	TargetPageID string `json:"target_linkedin_page_id,omitempty"`
}

// LinkedInText configures a LinkedIn text post.
type LinkedInText struct {
	LinkedInOptions
	// LinkURL takes priority over TextUpload.LinkURL.
	LinkURL string `json:"linkedin_link_url,omitempty"`
}

// FacebookOptions configure Facebook photo posts and are shared by the other kinds.
type FacebookOptions struct {
	PageID string `json:"facebook_page_id,omitempty"`
}

// FacebookVideo configures a Facebook video.
type FacebookVideo struct {
	FacebookOptions
	VideoState   string `json:"video_state,omitempty"`         // PUBLISHED or DRAFT
	MediaType    string `json:"facebook_media_type,omitempty"` // REELS, STORIES or VIDEO
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// FacebookText configures a Facebook text post.
type FacebookText struct {
	FacebookOptions
	LinkURL string `json:"facebook_link_url,omitempty"`
}

// PinterestOptions configure Pinterest photo pins and are shared by video pins.
type PinterestOptions struct {
	BoardID string `json:"pinterest_board_id,omitempty"`
	AltText string `json:"pinterest_alt_text,omitempty"`
	Link    string `json:"pinterest_link,omitempty"`
}

// PinterestVideo configures a Pinterest video pin.
type PinterestVideo struct {
	PinterestOptions
	CoverImageURL          string `json:"pinterest_cover_image_url,omitempty"`
	CoverImageContentType  string `json:"pinterest_cover_image_content_type,omitempty"`
	CoverImageData         string `json:"pinterest_cover_image_data,omitempty"`
	CoverImageKeyFrameTime *int   `json:"pinterest_cover_image_key_frame_time,omitempty"` // milliseconds
}

// XOptions apply to every kind of X post.
type XOptions struct {
	// ReplySettings is one of everyone, following, mentionedUsers,
	// subscribers or verified. everyone is the API default and is not sent.
	ReplySettings         string `json:"reply_settings,omitempty"`
	Nullcast              *bool  `json:"nullcast,omitempty"`
	QuoteTweetID          string `json:"quote_tweet_id,omitempty"`
	GeoPlaceID            string `json:"geo_place_id,omitempty"`
	ForSuperFollowersOnly *bool  `json:"for_super_followers_only,omitempty"`
	CommunityID           string `json:"community_id,omitempty"`
	ShareWithFollowers    *bool  `json:"share_with_followers,omitempty"`
	DirectMessageDeepLink string `json:"direct_message_deep_link,omitempty"`
	LongTextAsPost        *bool  `json:"x_long_text_as_post,omitempty"`
}

// XMedia configures an X post carrying a video or photos.
type XMedia struct {
	XOptions
	TaggedUserIDs List   `json:"tagged_user_ids,omitempty"`
	PlaceID       string `json:"place_id,omitempty"`
	// ThreadImageLayout splits images across a thread, e.g. "4,4" or "2,3,1".
	ThreadImageLayout string `json:"x_thread_image_layout,omitempty"`
}

// XText configures an X text post.
type XText struct {
	XOptions
	PostURL     string `json:"post_url,omitempty"`
	CardURI     string `json:"card_uri,omitempty"`
	PollOptions List   `json:"poll_options,omitempty"`
	// PollDuration (minutes) and PollReplySettings are only sent with PollOptions.
	PollDuration      int    `json:"poll_duration,omitempty"`
	PollReplySettings string `json:"poll_reply_settings,omitempty"`
}

// ThreadsOptions configure Threads posts of any kind.
type ThreadsOptions struct {
	LongTextAsPost *bool `json:"threads_long_text_as_post,omitempty"`
	// ThreadMediaLayout splits media across a thread, e.g. "5,5" or "3,4,3".
	ThreadMediaLayout string `json:"threads_thread_media_layout,omitempty"`
}

// RedditOptions configure Reddit photo posts.
type RedditOptions struct {
	Subreddit string `json:"subreddit,omitempty"` // without the r/ prefix
	FlairID   string `json:"flair_id,omitempty"`
}

// RedditText configures a Reddit text or link post.
type RedditText struct {
	RedditOptions
	// LinkURL turns the post into a link post and takes priority over
	// TextUpload.LinkURL.
	LinkURL string `json:"reddit_link_url,omitempty"`
}

// BlueskyText configures a Bluesky text post.
type BlueskyText struct {
	LinkURL string `json:"bluesky_link_url,omitempty"`
}
