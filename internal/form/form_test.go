package form

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestFormSkipsAbsentValues(t *testing.T) {
	var f Form
	f.AddString("title", "")
	f.AddBool("nullcast", nil)
	f.AddInt("poll_duration", nil)
	f.AddList("tags[]", nil)

	assert.Empty(t, f.Fields())
}

func TestFormSerializesScalars(t *testing.T) {
	var f Form
	f.Add("user", "u")
	f.AddBool("add_to_queue", boolPtr(true))
	f.AddBool("disable_duet", boolPtr(false))
	f.AddInt("cover_timestamp", intPtr(0))
	f.AddInt("max_posts_per_slot", intPtr(12))

	want := []Field{
		{Name: "user", Value: "u"},
		{Name: "add_to_queue", Value: "true"},
		{Name: "disable_duet", Value: "false"},
		{Name: "cover_timestamp", Value: "0"},
		{Name: "max_posts_per_slot", Value: "12"},
	}
	assert.Equal(t, want, f.Fields())
}

func TestFormRepeatsListEntries(t *testing.T) {
	var f Form
	f.AddList("platform[]", []string{"tiktok", "x", "tiktok"})

	want := []Field{
		{Name: "platform[]", Value: "tiktok"},
		{Name: "platform[]", Value: "x"},
		{Name: "platform[]", Value: "tiktok"},
	}
	assert.Equal(t, want, f.Fields())
}

func TestFieldsReturnsCopy(t *testing.T) {
	var f Form
	f.Add("user", "u")

	fields := f.Fields()
	fields[0].Value = "changed"

	assert.Equal(t, "u", f.Fields()[0].Value)
}

func TestEncodeMultipart(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 400)...)

	var f Form
	f.Add("user", "u")
	f.Add("platform[]", "tiktok")
	f.Add("platform[]", "x")
	f.Attach("photos[]", `sh"ot.png`, bytes.NewReader(png))
	f.Attach("document", "notes.txt", strings.NewReader("hi"))

	body, contentType, err := f.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(body, params["boundary"])

	type part struct {
		name, filename, contentType, data string
	}
	var parts []part
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, part{
			name:        p.FormName(),
			filename:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			data:        string(data),
		})
	}

	require.Len(t, parts, 5)
	assert.Equal(t, part{name: "user", data: "u"}, part{name: parts[0].name, data: parts[0].data})
	assert.Equal(t, "platform[]", parts[1].name)
	assert.Equal(t, "tiktok", parts[1].data)
	assert.Equal(t, "x", parts[2].data)

	assert.Equal(t, "photos[]", parts[3].name)
	assert.Equal(t, `sh"ot.png`, parts[3].filename)
	assert.Equal(t, "image/png", parts[3].contentType)
	assert.Equal(t, string(png), parts[3].data)

	assert.Equal(t, "document", parts[4].name)
	assert.Equal(t, "hi", parts[4].data)
	assert.True(t, strings.HasPrefix(parts[4].contentType, "text/plain"))
}

func TestDetectContentTypeFallback(t *testing.T) {
	assert.Equal(t, "application/octet-stream", DetectContentType("blob", []byte("????")))
	assert.Equal(t, "application/pdf", DetectContentType("deck.pdf", nil))
}
