package uploadpost

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blacktop/uploadpost/internal/form"
)

// opener opens a local media file for reading.
type opener func(name string) (io.ReadCloser, error)

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// IsRemote reports whether ref is an http(s) URL the API fetches itself
// rather than a local path.
func IsRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// attachments tracks the files opened for one upload. release must be
// deferred as soon as the value exists.
type attachments struct {
	open   opener
	log    *log.Logger
	opened []io.ReadCloser
}

// media adds ref to f as a URL field or, for a local path, as a file part.
func (a *attachments) media(f *form.Form, field, ref, label string) error {
	if IsRemote(ref) {
		f.Add(field, ref)
		return nil
	}
	return a.file(f, field, ref, label)
}

// file always treats path as a local file.
func (a *attachments) file(f *form.Form, field, path, label string) error {
	rc, err := a.open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s file not found: %s", label, path), Err: err}
		}
		return &Error{Kind: KindFile, Message: fmt.Sprintf("open %s file: %v", label, err), Err: err}
	}
	a.opened = append(a.opened, rc)
	f.Attach(field, filepath.Base(path), rc)
	return nil
}

func (a *attachments) release() {
	var errs []error
	for i := len(a.opened) - 1; i >= 0; i-- {
		if err := a.opened[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.opened = nil
	if err := errors.Join(errs...); err != nil {
		a.log.Warnf("close media files: %v", err)
	}
}
