// Package form reads recipe multipart forms: repeated text fields and
// uploaded images.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/matt-dz/receitas/internal/file"
	"github.com/matt-dz/receitas/internal/json"
)

const (
	magicNumberSeek = 512

	// MaximumUploadSize caps a whole recipe request, photos included.
	MaximumUploadSize = 20 << 20
	// maxMemory is the part of the form kept in memory while parsing.
	maxMemory = 8 << 20

	listSuffix = "[]"
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImageUploaded     = errors.New("image not uploaded")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrMalformedForm       = errors.New("malformed multipart form")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// ReadFile reads an uploaded image and sniffs its type from the content.
// SVG is sniffed as XML or text, so it is recognised by its extension and
// root element instead.
func ReadFile(f io.ReadCloser, filename string) (*File, error) {
	data, err := io.ReadAll(f)
	defer func() { _ = f.Close() }()
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file %q: %w", filename, ErrNoImageUploaded)
	}

	contentType := detectContentType(data, filename)
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

func detectContentType(data []byte, filename string) string {
	head := data[:min(len(data), magicNumberSeek)]
	contentType := http.DetectContentType(head)
	if strings.HasPrefix(contentType, "text/") {
		if file.HasExt(filename, ".svg") && bytes.Contains(head, []byte("<svg")) {
			return "image/svg+xml"
		}
	}
	return contentType
}

// Parse parses a multipart request body limited to MaximumUploadSize.
func Parse(w http.ResponseWriter, r *http.Request) (*multipart.Form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaximumUploadSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			return nil, fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}
	return r.MultipartForm, nil
}

// Values returns every value sent under name, with or without the "[]"
// suffix, in the order they were sent.
func Values(f *multipart.Form, name string) []string {
	if f == nil {
		return nil
	}
	name = strings.TrimSuffix(name, listSuffix)
	values := make([]string, 0, len(f.Value[name])+len(f.Value[name+listSuffix]))
	values = append(values, f.Value[name]...)
	values = append(values, f.Value[name+listSuffix]...)
	return values
}

// Value returns the first value sent under name, and whether there was one.
func Value(f *multipart.Form, name string) (string, bool) {
	values := Values(f, name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// DecodeList turns the values of a list field into a list. A single value
// may carry the whole list as a JSON array of strings; when it does not
// decode, it is the only element.
func DecodeList(values []string) []string {
	if len(values) != 1 {
		return values
	}
	if list, err := json.DecodeStringList(values[0]); err == nil {
		return list
	}
	return values
}

// Files reads every image sent under name, with or without the "[]" suffix.
// Unselected file inputs are skipped.
func Files(f *multipart.Form, name string) ([]*File, error) {
	if f == nil {
		return []*File{}, nil
	}
	name = strings.TrimSuffix(name, listSuffix)
	headers := make([]*multipart.FileHeader, 0, len(f.File[name])+len(f.File[name+listSuffix]))
	headers = append(headers, f.File[name]...)
	headers = append(headers, f.File[name+listSuffix]...)

	files := make([]*File, 0, len(headers))
	for _, header := range headers {
		// an empty file input is sent as a part with no name and no content
		if header.Filename == "" && header.Size == 0 {
			continue
		}
		opened, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", header.Filename, err)
		}
		read, err := ReadFile(opened, header.Filename)
		if err != nil {
			return nil, err
		}
		files = append(files, read)
	}
	return files, nil
}
