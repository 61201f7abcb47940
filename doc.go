// Package uploadpost is a client for the Upload-Post publishing API.
//
// A single Client uploads videos, photos, text posts and LinkedIn documents to
// TikTok, Instagram, YouTube, LinkedIn, Facebook, Pinterest, X, Threads,
// Reddit and Bluesky, and exposes the account, scheduling and analytics
// endpoints of the same service.
//
// Basic usage:
//
//	client, err := uploadpost.New(uploadpost.Config{APIKey: "your-api-key"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.UploadVideo(ctx, &uploadpost.VideoUpload{
//		Video:     "video.mp4",
//		Title:     "My awesome video",
//		User:      "my-profile",
//		Platforms: []uploadpost.Platform{uploadpost.PlatformTikTok, uploadpost.PlatformInstagram},
//		TikTok:    &uploadpost.TikTokVideo{PrivacyLevel: "PUBLIC_TO_EVERYONE"},
//	})
//
// Platform options are plain structs. A field that is left at its zero value
// (empty string, nil pointer, empty list) is not sent, and an options struct
// only contributes fields when its platform is listed in Platforms.
//
// Every failure is returned as an *Error; inspect its Kind to tell a missing
// local file from an API rejection.
package uploadpost
