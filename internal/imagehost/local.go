package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644

	DefaultURLPrefix = "/files"
)

var ErrInvalidPath = errors.New("invalid path")

// Local keeps images on the local disk and serves them itself. Meant for
// development and single-host deployments.
type Local struct {
	baseDir   string
	urlPrefix string
	baseURL   string
}

var _ Host = (*Local)(nil)

func NewLocal(baseDir, urlPrefix, baseURL string) *Local {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &Local{
		baseDir:   baseDir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// cleanPath resolves path under baseDir and rejects anything that would
// escape it.
func cleanPath(baseDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	}

	cleaned := filepath.Clean(path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes base directory", ErrInvalidPath, path)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	fullpath := filepath.Join(absBase, cleaned)

	rel, err := filepath.Rel(absBase, fullpath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes base directory", ErrInvalidPath, path)
	}
	return fullpath, nil
}

func (l *Local) URL(key string) string {
	return l.baseURL + l.urlPrefix + "/" + strings.TrimLeft(key, "/")
}

func (l *Local) Upload(_ context.Context, upload UploadRequest) (Asset, error) {
	key := objectKey(upload.Folder, upload.ID, upload.File.Suffix)
	fullpath, err := cleanPath(l.baseDir, key)
	if err != nil {
		return Asset{}, err
	}

	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return Asset{}, fmt.Errorf("creating parent directories: %w", err)
	}
	if err := os.WriteFile(fullpath, upload.File.Data, filePerms); err != nil {
		return Asset{}, fmt.Errorf("writing file: %w", err)
	}

	return Asset{
		URL:      l.URL(key),
		PublicID: key,
	}, nil
}

// Delete removes the file. A file that is already gone counts as deleted.
func (l *Local) Delete(_ context.Context, publicID string) error {
	fullpath, err := cleanPath(l.baseDir, publicID)
	if err != nil {
		return err
	}
	if err := os.Remove(fullpath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

// Handler serves the stored files under the URL prefix. Directories are
// never listed.
func (l *Local) Handler() http.Handler {
	files := http.StripPrefix(l.urlPrefix, http.FileServer(http.Dir(l.baseDir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (l *Local) URLPrefix() string {
	return l.urlPrefix
}
