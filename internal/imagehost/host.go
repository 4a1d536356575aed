// Package imagehost stores recipe photos at a media host and hands back the
// public URL and identifier of every stored asset.
package imagehost

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mock_host.go -package=imagehost

var (
	ErrUploadFailed      = errors.New("remote upload error")
	ErrMalformedResponse = errors.New("malformed response from image host")
)

// Asset is a stored image as reported by the host.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// File is an image waiting to be uploaded. Suffix carries the extension
// matching ContentType, e.g. ".png".
type File struct {
	Data        []byte
	ContentType string
	Suffix      string
}

type UploadRequest struct {
	Folder string
	ID     string
	File   File
}

// Host is a single media backend.
type Host interface {
	Upload(ctx context.Context, req UploadRequest) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}
