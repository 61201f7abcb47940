package uploadpost

import (
	"github.com/blacktop/uploadpost/internal/form"
)

// Override fields are emitted in this order, as "<platform><suffix>".
var (
	titleOverrides = []Platform{
		PlatformBluesky, PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformLinkedIn,
		PlatformX, PlatformYouTube, PlatformPinterest, PlatformThreads,
	}
	descriptionOverrides = []Platform{
		PlatformLinkedIn, PlatformYouTube, PlatformFacebook, PlatformTikTok, PlatformPinterest,
	}
	firstCommentOverrides = []Platform{
		PlatformInstagram, PlatformFacebook, PlatformX, PlatformThreads, PlatformYouTube,
		PlatformReddit, PlatformBluesky,
	}
)

func appendCommon(f *form.Form, user, title string, platforms []Platform, c *Common) {
	f.Add("user", user)
	f.AddString("title", title)
	for _, p := range platforms {
		f.Add("platform[]", string(p))
	}

	f.AddString("first_comment", c.FirstComment)
	f.AddString("alt_text", c.AltText)
	f.AddString("scheduled_date", c.ScheduledDate)
	f.AddString("timezone", c.Timezone)
	f.AddBool("add_to_queue", c.AddToQueue)
	f.AddInt("max_posts_per_slot", c.MaxPostsPerSlot)
	f.AddBool("async_upload", c.AsyncUpload)

	appendOverrides(f, "_title", titleOverrides, c.Titles)
	f.AddString("description", c.Description)
	appendOverrides(f, "_description", descriptionOverrides, c.Descriptions)
	appendOverrides(f, "_first_comment", firstCommentOverrides, c.FirstComments)
}

func appendOverrides(f *form.Form, suffix string, order []Platform, values map[Platform]string) {
	if len(values) == 0 {
		return
	}
	for _, p := range order {
		f.AddString(string(p)+suffix, values[p])
	}
}

func (o *TikTokOptions) appendTo(f *form.Form) {
	f.AddBool("disable_comment", o.DisableComment)
	f.AddBool("brand_content_toggle", o.BrandContentToggle)
	f.AddBool("brand_organic_toggle", o.BrandOrganicToggle)
}

func (o *TikTokVideo) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.TikTokOptions.appendTo(f)
	f.AddString("privacy_level", o.PrivacyLevel)
	f.AddBool("disable_duet", o.DisableDuet)
	f.AddBool("disable_stitch", o.DisableStitch)
	f.AddInt("cover_timestamp", o.CoverTimestamp)
	f.AddBool("is_aigc", o.IsAIGC)
	f.AddString("post_mode", o.PostMode)
}

func (o *TikTokPhoto) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.TikTokOptions.appendTo(f)
	f.AddBool("auto_add_music", o.AutoAddMusic)
	f.AddInt("photo_cover_index", o.PhotoCoverIndex)
}

func (o *InstagramOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("media_type", o.MediaType)
	f.AddString("collaborators", o.Collaborators)
	f.AddString("user_tags", o.UserTags)
	f.AddString("location_id", o.LocationID)
}

func (o *InstagramVideo) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.InstagramOptions.appendTo(f)
	f.AddBool("share_to_feed", o.ShareToFeed)
	f.AddString("cover_url", o.CoverURL)
	f.AddString("audio_name", o.AudioName)
	f.AddString("thumb_offset", o.ThumbOffset)
}

func (o *YouTubeVideo) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddList("tags[]", o.Tags)
	f.AddString("categoryId", o.CategoryID)
	f.AddString("privacyStatus", o.PrivacyStatus)
	f.AddBool("embeddable", o.Embeddable)
	f.AddString("license", o.License)
	f.AddBool("publicStatsViewable", o.PublicStatsViewable)
	f.AddString("thumbnail_url", o.ThumbnailURL)
	f.AddBool("selfDeclaredMadeForKids", o.SelfDeclaredMadeForKids)
	f.AddBool("containsSyntheticMedia", o.ContainsSyntheticMedia)
	f.AddString("defaultLanguage", o.DefaultLanguage)
	f.AddString("defaultAudioLanguage", o.DefaultAudioLanguage)
	f.AddString("allowedCountries", o.AllowedCountries)
	f.AddString("blockedCountries", o.BlockedCountries)
	f.AddBool("hasPaidProductPlacement", o.HasPaidProductPlacement)
	f.AddString("recordingDate", o.RecordingDate)
}

func (o *LinkedInOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("visibility", o.Visibility)
	f.AddString("target_linkedin_page_id", o.TargetPageID)
}

// appendTo runs even without options so the shared link still reaches LinkedIn.
func (o *LinkedInText) appendTo(f *form.Form, sharedLink string) {
	link := sharedLink
	if o != nil {
		o.LinkedInOptions.appendTo(f)
		if o.LinkURL != "" {
			link = o.LinkURL
		}
	}
	f.AddString("linkedin_link_url", link)
}

func (o *FacebookOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("facebook_page_id", o.PageID)
}

func (o *FacebookVideo) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.FacebookOptions.appendTo(f)
	f.AddString("video_state", o.VideoState)
	f.AddString("facebook_media_type", o.MediaType)
	f.AddString("thumbnail_url", o.ThumbnailURL)
}

func (o *FacebookText) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.FacebookOptions.appendTo(f)
	f.AddString("facebook_link_url", o.LinkURL)
}

func (o *PinterestOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("pinterest_board_id", o.BoardID)
	f.AddString("pinterest_alt_text", o.AltText)
	f.AddString("pinterest_link", o.Link)
}

func (o *PinterestVideo) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.PinterestOptions.appendTo(f)
	f.AddString("pinterest_cover_image_url", o.CoverImageURL)
	f.AddString("pinterest_cover_image_content_type", o.CoverImageContentType)
	f.AddString("pinterest_cover_image_data", o.CoverImageData)
	f.AddInt("pinterest_cover_image_key_frame_time", o.CoverImageKeyFrameTime)
}

func (o *XOptions) appendTo(f *form.Form) {
	if o.ReplySettings != "everyone" {
		f.AddString("reply_settings", o.ReplySettings)
	}
	f.AddBool("nullcast", o.Nullcast)
	f.AddString("quote_tweet_id", o.QuoteTweetID)
	f.AddString("geo_place_id", o.GeoPlaceID)
	f.AddBool("for_super_followers_only", o.ForSuperFollowersOnly)
	f.AddString("community_id", o.CommunityID)
	f.AddBool("share_with_followers", o.ShareWithFollowers)
	f.AddString("direct_message_deep_link", o.DirectMessageDeepLink)
	f.AddBool("x_long_text_as_post", o.LongTextAsPost)
}

func (o *XMedia) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.XOptions.appendTo(f)
	f.AddList("tagged_user_ids[]", o.TaggedUserIDs)
	f.AddString("place_id", o.PlaceID)
	f.AddString("x_thread_image_layout", o.ThreadImageLayout)
}

func (o *XText) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	o.XOptions.appendTo(f)
	f.AddString("post_url", o.PostURL)
	f.AddString("card_uri", o.CardURI)
	if len(o.PollOptions) > 0 {
		f.AddList("poll_options[]", o.PollOptions)
		if o.PollDuration != 0 {
			f.AddInt("poll_duration", &o.PollDuration)
		}
		f.AddString("poll_reply_settings", o.PollReplySettings)
	}
}

func (o *ThreadsOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddBool("threads_long_text_as_post", o.LongTextAsPost)
	f.AddString("threads_thread_media_layout", o.ThreadMediaLayout)
}

func (o *RedditOptions) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("subreddit", o.Subreddit)
	f.AddString("flair_id", o.FlairID)
}

// appendTo runs even without options so the shared link still reaches Reddit.
func (o *RedditText) appendTo(f *form.Form, sharedLink string) {
	link := sharedLink
	if o != nil {
		o.RedditOptions.appendTo(f)
		if o.LinkURL != "" {
			link = o.LinkURL
		}
	}
	f.AddString("reddit_link_url", link)
}

func (o *BlueskyText) appendTo(f *form.Form) {
	if o == nil {
		return
	}
	f.AddString("bluesky_link_url", o.LinkURL)
}

func (r *VideoUpload) appendParams(f *form.Form) {
	appendCommon(f, r.User, r.Title, r.Platforms, &r.Common)

	on := func(p Platform) bool { return hasPlatform(r.Platforms, p) }
	if on(PlatformTikTok) {
		r.TikTok.appendTo(f)
	}
	if on(PlatformInstagram) {
		r.Instagram.appendTo(f)
	}
	if on(PlatformYouTube) {
		r.YouTube.appendTo(f)
	}
	if on(PlatformLinkedIn) {
		r.LinkedIn.appendTo(f)
	}
	if on(PlatformFacebook) {
		r.Facebook.appendTo(f)
	}
	if on(PlatformPinterest) {
		r.Pinterest.appendTo(f)
	}
	if on(PlatformX) {
		r.X.appendTo(f)
	}
	if on(PlatformThreads) {
		r.Threads.appendTo(f)
	}
}

func (r *PhotoUpload) appendParams(f *form.Form) {
	appendCommon(f, r.User, r.Title, r.Platforms, &r.Common)

	on := func(p Platform) bool { return hasPlatform(r.Platforms, p) }
	if on(PlatformTikTok) {
		r.TikTok.appendTo(f)
	}
	if on(PlatformInstagram) {
		r.Instagram.appendTo(f)
	}
	if on(PlatformLinkedIn) {
		r.LinkedIn.appendTo(f)
	}
	if on(PlatformFacebook) {
		r.Facebook.appendTo(f)
	}
	if on(PlatformPinterest) {
		r.Pinterest.appendTo(f)
	}
	if on(PlatformX) {
		r.X.appendTo(f)
	}
	if on(PlatformThreads) {
		r.Threads.appendTo(f)
	}
	if on(PlatformReddit) {
		r.Reddit.appendTo(f)
	}
}

func (r *TextUpload) appendParams(f *form.Form) {
	appendCommon(f, r.User, r.Title, r.Platforms, &r.Common)
	f.AddString("link_url", r.LinkURL)

	on := func(p Platform) bool { return hasPlatform(r.Platforms, p) }
	if on(PlatformLinkedIn) {
		r.LinkedIn.appendTo(f, r.LinkURL)
	}
	if on(PlatformFacebook) {
		r.Facebook.appendTo(f)
	}
	if on(PlatformX) {
		r.X.appendTo(f)
	}
	if on(PlatformThreads) {
		r.Threads.appendTo(f)
	}
	if on(PlatformReddit) {
		r.Reddit.appendTo(f, r.LinkURL)
	}
	if on(PlatformBluesky) {
		r.Bluesky.appendTo(f)
	}
}

func (r *DocumentUpload) appendParams(f *form.Form) {
	f.Add("user", r.User)
	f.Add("title", r.Title)
	f.Add("platform[]", string(PlatformLinkedIn))
	f.AddString("description", r.Description)
	f.AddString("visibility", r.Visibility)
	f.AddString("target_linkedin_page_id", r.TargetLinkedInPageID)
	f.AddString("scheduled_date", r.ScheduledDate)
	f.AddString("timezone", r.Timezone)
	f.AddBool("add_to_queue", r.AddToQueue)
	f.AddBool("async_upload", r.AsyncUpload)
}

// Fields returns the text fields UploadVideo would send, in order. A local
// video file is sent as a file part and does not appear here.
func (r *VideoUpload) Fields() []Field {
	var f form.Form
	if IsRemote(r.Video) {
		f.Add("video", r.Video)
	}
	r.appendParams(&f)
	return f.Fields()
}

// Fields returns the text fields UploadPhotos would send, in order. Local
// photos are sent as file parts and do not appear here.
func (r *PhotoUpload) Fields() []Field {
	var f form.Form
	for _, photo := range r.Photos {
		if IsRemote(photo) {
			f.Add("photos[]", photo)
		}
	}
	r.appendParams(&f)
	return f.Fields()
}

// Fields returns the text fields UploadText would send, in order.
func (r *TextUpload) Fields() []Field {
	var f form.Form
	r.appendParams(&f)
	return f.Fields()
}

// Fields returns the text fields UploadDocument would send, in order.
func (r *DocumentUpload) Fields() []Field {
	var f form.Form
	if IsRemote(r.Document) {
		f.Add("document", r.Document)
	}
	r.appendParams(&f)
	return f.Fields()
}
