// Package form builds ordered, multi-valued form bodies.
//
// Field order is preserved exactly as added so that the encoded body is
// deterministic. Names may repeat; array-style fields are written as repeated
// "name[]" entries.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
)

// sniffLen is the number of leading bytes filetype needs to match every
// signature it knows about.
const sniffLen = 261

const defaultContentType = "application/octet-stream"

// Field is a single name/value pair.
type Field struct {
	Name  string
	Value string
}

// File is a binary part attached under Field with the upload name Name.
type File struct {
	Field  string
	Name   string
	Reader io.Reader
}

// Form is an ordered list of fields followed by file parts.
type Form struct {
	fields []Field
	files  []File
}

// Add appends name=value unconditionally.
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// AddString appends name=value when value is not empty.
func (f *Form) AddString(name, value string) {
	if value == "" {
		return
	}
	f.Add(name, value)
}

// AddBool appends "true" or "false" when v is set.
func (f *Form) AddBool(name string, v *bool) {
	if v == nil {
		return
	}
	f.Add(name, strconv.FormatBool(*v))
}

// AddInt appends the decimal form of v when v is set.
func (f *Form) AddInt(name string, v *int) {
	if v == nil {
		return
	}
	f.Add(name, strconv.Itoa(*v))
}

// AddList appends one name=value entry per element.
func (f *Form) AddList(name string, values []string) {
	for _, v := range values {
		f.Add(name, v)
	}
}

// Attach adds a file part. The reader is consumed by Encode; closing it is
// the caller's job.
func (f *Form) Attach(field, name string, r io.Reader) {
	f.files = append(f.files, File{Field: field, Name: name, Reader: r})
}

// Fields returns a copy of the fields in insertion order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// Files returns the attached file parts in insertion order.
func (f *Form) Files() []File {
	return append([]File(nil), f.files...)
}

// Encode writes the form as multipart/form-data and returns the body along
// with its Content-Type header value.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := mw.WriteField(field.Name, field.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.Name, err)
		}
	}

	for _, file := range f.files {
		if err := writeFile(mw, file); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return body, mw.FormDataContentType(), nil
}

func writeFile(mw *multipart.Writer, file File) error {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read %s: %w", file.Name, err)
	}
	head = head[:n]

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(file.Field), escapeQuotes(file.Name)))
	h.Set("Content-Type", DetectContentType(file.Name, head))

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", file.Name, err)
	}
	if _, err := part.Write(head); err != nil {
		return fmt.Errorf("write %s: %w", file.Name, err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return fmt.Errorf("write %s: %w", file.Name, err)
	}
	return nil
}

// DetectContentType sniffs head for a known signature, falling back to the
// file extension and finally to application/octet-stream.
func DetectContentType(name string, head []byte) string {
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return byExt
	}
	return defaultContentType
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
