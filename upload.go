package uploadpost

import (
	"context"
	"net/http"

	"github.com/blacktop/uploadpost/internal/form"
)

// UploadVideo publishes a video. Async uploads answer with a request_id that
// Status accepts.
func (c *Client) UploadVideo(ctx context.Context, r *VideoUpload) (Response, error) {
	if r == nil {
		return nil, &Error{Kind: KindInvalid, Message: "video upload is nil"}
	}

	files := c.attachments()
	defer files.release()

	f := &form.Form{}
	if err := files.media(f, "video", r.Video, "video"); err != nil {
		return nil, err
	}
	r.appendParams(f)

	return c.do(ctx, request{method: http.MethodPost, path: "/upload", form: f})
}

// UploadPhotos publishes one post made of the given photos.
func (c *Client) UploadPhotos(ctx context.Context, r *PhotoUpload) (Response, error) {
	if r == nil {
		return nil, &Error{Kind: KindInvalid, Message: "photo upload is nil"}
	}

	files := c.attachments()
	defer files.release()

	f := &form.Form{}
	for _, photo := range r.Photos {
		if err := files.media(f, "photos[]", photo, "photo"); err != nil {
			return nil, err
		}
	}
	r.appendParams(f)
	for _, path := range r.FirstCommentMedia {
		if err := files.file(f, "first_comment_media[]", path, "first comment media"); err != nil {
			return nil, err
		}
	}

	return c.do(ctx, request{method: http.MethodPost, path: "/upload_photos", form: f})
}

// UploadText publishes a text post.
func (c *Client) UploadText(ctx context.Context, r *TextUpload) (Response, error) {
	if r == nil {
		return nil, &Error{Kind: KindInvalid, Message: "text upload is nil"}
	}

	files := c.attachments()
	defer files.release()

	f := &form.Form{}
	r.appendParams(f)
	for _, path := range r.FirstCommentMedia {
		if err := files.file(f, "first_comment_media[]", path, "first comment media"); err != nil {
			return nil, err
		}
	}

	return c.do(ctx, request{method: http.MethodPost, path: "/upload_text", form: f})
}

// UploadDocument publishes a document to LinkedIn.
func (c *Client) UploadDocument(ctx context.Context, r *DocumentUpload) (Response, error) {
	if r == nil {
		return nil, &Error{Kind: KindInvalid, Message: "document upload is nil"}
	}

	files := c.attachments()
	defer files.release()

	f := &form.Form{}
	if err := files.media(f, "document", r.Document, "document"); err != nil {
		return nil, err
	}
	r.appendParams(f)

	return c.do(ctx, request{method: http.MethodPost, path: "/upload_document", form: f})
}
