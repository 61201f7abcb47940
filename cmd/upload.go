package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blacktop/uploadpost"
	"github.com/blacktop/uploadpost/internal/logutil"
)

// postFlags are the flags shared by the video, photos and text commands.
// Flags override the same values read from --options.
type postFlags struct {
	options      string
	dryRun       bool
	user         string
	title        string
	platforms    []string
	description  string
	firstComment string
	altText      string
	schedule     string
	timezone     string
	addToQueue   bool
	async        bool
	maxPerSlot   int
}

func (f *postFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.user, "user", "u", "", "Upload-Post profile to post as")
	flags.StringVarP(&f.title, "title", "t", "", "Post title or text")
	flags.StringSliceVarP(&f.platforms, "platform", "p", nil, "Platforms to publish to (comma separated or repeated)")
	flags.StringVar(&f.description, "description", "", "Post description")
	flags.StringVar(&f.firstComment, "first-comment", "", "Comment to add after publishing")
	flags.StringVar(&f.altText, "alt-text", "", "Alternative text for the media")
	flags.StringVar(&f.schedule, "schedule", "", "Publish at this ISO-8601 time instead of now")
	flags.StringVar(&f.timezone, "timezone", "", "IANA timezone for --schedule")
	flags.BoolVar(&f.addToQueue, "queue", false, "Add to the next free queue slot")
	flags.IntVar(&f.maxPerSlot, "max-posts-per-slot", 0, "Queue slot capacity override")
	flags.BoolVar(&f.async, "async", false, "Return a request_id immediately instead of waiting")
	flags.StringVar(&f.options, "options", "", "JSON file with platform options")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Print the fields that would be sent without posting")
	flags.SortFlags = false
}

// apply copies the flags the user set onto a request already populated from
// --options and validates the result.
func (f *postFlags) apply(cmd *cobra.Command, user, title *string, platforms *[]uploadpost.Platform, common *uploadpost.Common) error {
	flags := cmd.Flags()
	set := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	set("user", user, f.user)
	set("title", title, f.title)
	set("description", &common.Description, f.description)
	set("first-comment", &common.FirstComment, f.firstComment)
	set("alt-text", &common.AltText, f.altText)
	set("schedule", &common.ScheduledDate, f.schedule)
	set("timezone", &common.Timezone, f.timezone)
	if flags.Changed("queue") {
		common.AddToQueue = uploadpost.Bool(f.addToQueue)
	}
	if flags.Changed("async") {
		common.AsyncUpload = uploadpost.Bool(f.async)
	}
	if flags.Changed("max-posts-per-slot") {
		common.MaxPostsPerSlot = uploadpost.Int(f.maxPerSlot)
	}

	names := f.platforms
	if !flags.Changed("platform") {
		names = platformNames(*platforms)
	}
	parsed, err := uploadpost.ParsePlatforms(names)
	if err != nil {
		return err
	}
	*platforms = parsed

	if strings.TrimSpace(*user) == "" {
		return errors.New("--user is required")
	}
	if len(*platforms) == 0 {
		return errors.New("at least one --platform is required")
	}
	return nil
}

func platformNames(platforms []uploadpost.Platform) []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}

// readOptions decodes a JSON options file into dst. Unknown keys are
// rejected so that typos do not silently drop settings.
func readOptions(path string, dst any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read options: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("parse options %s: %w", path, err)
	}
	return nil
}

// printDryRun writes the request line, then one name=value line per text
// field, then name=@path for each local file.
func printDryRun(out io.Writer, path string, fields []uploadpost.Field, files [][2]string) {
	fmt.Fprintf(out, "[dry-run] POST %s\n", path)
	for _, f := range fields {
		fmt.Fprintf(out, "%s=%s\n", f.Name, f.Value)
	}
	for _, file := range files {
		fmt.Fprintf(out, "%s=@%s\n", file[0], file[1])
	}
}

// warnIgnored reports option sections whose platform is not requested and
// which therefore send nothing.
func warnIgnored(platforms []uploadpost.Platform, sections map[uploadpost.Platform]bool) {
	for _, p := range uploadpost.Platforms {
		if sections[p] && !slices.Contains(platforms, p) {
			logutil.Warnf("ignoring %s options: platform not requested", p)
		}
	}
}

func reportQueued(resp uploadpost.Response) {
	if id := resp.RequestID(); id != "" {
		logutil.Infof("upload queued: request_id=%s", id)
	}
}

func localFiles(field string, refs ...string) [][2]string {
	var out [][2]string
	for _, ref := range refs {
		if !uploadpost.IsRemote(ref) {
			out = append(out, [2]string{field, ref})
		}
	}
	return out
}

func newVideoCommand(a *app) *cobra.Command {
	var f postFlags
	cmd := &cobra.Command{
		Use:   "video PATH|URL",
		Short: "Upload a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &uploadpost.VideoUpload{}
			if err := readOptions(f.options, req); err != nil {
				return err
			}
			req.Video = args[0]
			if err := f.apply(cmd, &req.User, &req.Title, &req.Platforms, &req.Common); err != nil {
				return err
			}
			warnIgnored(req.Platforms, map[uploadpost.Platform]bool{
				uploadpost.PlatformTikTok:    req.TikTok != nil,
				uploadpost.PlatformInstagram: req.Instagram != nil,
				uploadpost.PlatformYouTube:   req.YouTube != nil,
				uploadpost.PlatformLinkedIn:  req.LinkedIn != nil,
				uploadpost.PlatformFacebook:  req.Facebook != nil,
				uploadpost.PlatformPinterest: req.Pinterest != nil,
				uploadpost.PlatformX:         req.X != nil,
				uploadpost.PlatformThreads:   req.Threads != nil,
			})

			if f.dryRun {
				printDryRun(cmd.OutOrStdout(), "/upload", req.Fields(), localFiles("video", req.Video))
				return nil
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			resp, err := c.UploadVideo(cmd.Context(), req)
			if err != nil {
				return err
			}
			reportQueued(resp)
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	f.register(cmd)
	return cmd
}

func newPhotosCommand(a *app) *cobra.Command {
	var (
		f                 postFlags
		firstCommentMedia []string
	)
	cmd := &cobra.Command{
		Use:   "photos PATH|URL...",
		Short: "Upload one post made of one or more photos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &uploadpost.PhotoUpload{}
			if err := readOptions(f.options, req); err != nil {
				return err
			}
			req.Photos = args
			if cmd.Flags().Changed("comment-media") {
				req.FirstCommentMedia = firstCommentMedia
			}
			if err := f.apply(cmd, &req.User, &req.Title, &req.Platforms, &req.Common); err != nil {
				return err
			}
			warnIgnored(req.Platforms, map[uploadpost.Platform]bool{
				uploadpost.PlatformTikTok:    req.TikTok != nil,
				uploadpost.PlatformInstagram: req.Instagram != nil,
				uploadpost.PlatformLinkedIn:  req.LinkedIn != nil,
				uploadpost.PlatformFacebook:  req.Facebook != nil,
				uploadpost.PlatformPinterest: req.Pinterest != nil,
				uploadpost.PlatformX:         req.X != nil,
				uploadpost.PlatformThreads:   req.Threads != nil,
				uploadpost.PlatformReddit:    req.Reddit != nil,
			})

			if f.dryRun {
				files := append(localFiles("photos[]", req.Photos...), localFiles("first_comment_media[]", req.FirstCommentMedia...)...)
				printDryRun(cmd.OutOrStdout(), "/upload_photos", req.Fields(), files)
				return nil
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			resp, err := c.UploadPhotos(cmd.Context(), req)
			if err != nil {
				return err
			}
			reportQueued(resp)
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	f.register(cmd)
	cmd.Flags().StringSliceVar(&firstCommentMedia, "comment-media", nil, "Local images to attach to the first comment (Reddit, X)")
	return cmd
}

func newTextCommand(a *app) *cobra.Command {
	var (
		f                 postFlags
		link              string
		firstCommentMedia []string
	)
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Publish a text post; --title carries the text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &uploadpost.TextUpload{}
			if err := readOptions(f.options, req); err != nil {
				return err
			}
			if cmd.Flags().Changed("link") {
				req.LinkURL = link
			}
			if cmd.Flags().Changed("comment-media") {
				req.FirstCommentMedia = firstCommentMedia
			}
			if err := f.apply(cmd, &req.User, &req.Title, &req.Platforms, &req.Common); err != nil {
				return err
			}
			warnIgnored(req.Platforms, map[uploadpost.Platform]bool{
				uploadpost.PlatformLinkedIn: req.LinkedIn != nil,
				uploadpost.PlatformFacebook: req.Facebook != nil,
				uploadpost.PlatformX:        req.X != nil,
				uploadpost.PlatformThreads:  req.Threads != nil,
				uploadpost.PlatformReddit:   req.Reddit != nil,
				uploadpost.PlatformBluesky:  req.Bluesky != nil,
			})

			if f.dryRun {
				printDryRun(cmd.OutOrStdout(), "/upload_text", req.Fields(), localFiles("first_comment_media[]", req.FirstCommentMedia...))
				return nil
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			resp, err := c.UploadText(cmd.Context(), req)
			if err != nil {
				return err
			}
			reportQueued(resp)
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&link, "link", "", "Link preview URL for LinkedIn, Reddit, Bluesky and Facebook")
	cmd.Flags().StringSliceVar(&firstCommentMedia, "comment-media", nil, "Local images to attach to the first comment (Reddit, X)")
	return cmd
}

func newDocumentCommand(a *app) *cobra.Command {
	var (
		options string
		dryRun  bool
		addQ    bool
		async   bool
		doc     uploadpost.DocumentUpload
	)
	cmd := &cobra.Command{
		Use:   "document PATH|URL",
		Short: "Publish a PDF, PPT, PPTX, DOC or DOCX to LinkedIn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &uploadpost.DocumentUpload{}
			if err := readOptions(options, req); err != nil {
				return err
			}
			req.Document = args[0]

			flags := cmd.Flags()
			set := func(name string, dst *string, value string) {
				if flags.Changed(name) {
					*dst = value
				}
			}
			set("user", &req.User, doc.User)
			set("title", &req.Title, doc.Title)
			set("description", &req.Description, doc.Description)
			set("visibility", &req.Visibility, doc.Visibility)
			set("page-id", &req.TargetLinkedInPageID, doc.TargetLinkedInPageID)
			set("schedule", &req.ScheduledDate, doc.ScheduledDate)
			set("timezone", &req.Timezone, doc.Timezone)
			if flags.Changed("queue") {
				req.AddToQueue = uploadpost.Bool(addQ)
			}
			if flags.Changed("async") {
				req.AsyncUpload = uploadpost.Bool(async)
			}
			if strings.TrimSpace(req.User) == "" {
				return errors.New("--user is required")
			}
			if strings.TrimSpace(req.Title) == "" {
				return errors.New("--title is required")
			}

			if dryRun {
				printDryRun(cmd.OutOrStdout(), "/upload_document", req.Fields(), localFiles("document", req.Document))
				return nil
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			resp, err := c.UploadDocument(cmd.Context(), req)
			if err != nil {
				return err
			}
			reportQueued(resp)
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&doc.User, "user", "u", "", "Upload-Post profile to post as")
	flags.StringVarP(&doc.Title, "title", "t", "", "Document title")
	flags.StringVar(&doc.Description, "description", "", "Post commentary")
	flags.StringVar(&doc.Visibility, "visibility", "", "PUBLIC, CONNECTIONS, LOGGED_IN or CONTAINER")
	flags.StringVar(&doc.TargetLinkedInPageID, "page-id", "", "LinkedIn page to post as")
	flags.StringVar(&doc.ScheduledDate, "schedule", "", "Publish at this ISO-8601 time instead of now")
	flags.StringVar(&doc.Timezone, "timezone", "", "IANA timezone for --schedule")
	flags.BoolVar(&addQ, "queue", false, "Add to the next free queue slot")
	flags.BoolVar(&async, "async", false, "Return a request_id immediately instead of waiting")
	flags.StringVar(&options, "options", "", "JSON file with document options")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the fields that would be sent without posting")
	flags.SortFlags = false
	return cmd
}
