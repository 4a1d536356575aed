package setup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-dz/receitas/internal/config"
	mHttp "github.com/matt-dz/receitas/internal/http"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/log"
)

func TestImageHost(t *testing.T) {
	client := mHttp.New(mHttp.DefaultConfig())

	tests := []struct {
		name        string
		conf        func(dir string) config.Config
		wantMissing string
		wantLocal   bool
		wantType    imagehost.Host
	}{
		{
			name: "cloudinary",
			conf: func(string) config.Config {
				var c config.Config
				c.Images.Host = config.ImageHostCloudinary
				c.Images.Cloudinary = config.Cloudinary{CloudName: "demo", APIKey: "key", APISecret: "secret"}
				return c
			},
			wantType: &imagehost.Cloudinary{},
		},
		{
			name: "cloudinary without credentials",
			conf: func(string) config.Config {
				var c config.Config
				c.Images.Host = config.ImageHostCloudinary
				return c
			},
			wantMissing: "CLOUDINARY_CLOUD_NAME",
		},
		{
			name: "s3 without bucket",
			conf: func(string) config.Config {
				var c config.Config
				c.Images.Host = config.ImageHostS3
				return c
			},
			wantMissing: "S3_BUCKET",
		},
		{
			name: "local",
			conf: func(dir string) config.Config {
				var c config.Config
				c.APIBaseURL = "http://localhost:3001"
				c.Images.Host = config.ImageHostLocal
				c.Images.Fileserver = config.Fileserver{Volume: dir, URLPrefix: "/files"}
				return c
			},
			wantLocal: true,
			wantType:  &imagehost.Local{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, local, err := ImageHost(context.Background(), tt.conf(t.TempDir()), client, log.NullLogger())

			if tt.wantMissing != "" {
				var missing *MissingSettingError
				if !errors.As(err, &missing) {
					t.Fatalf("ImageHost() error = %v, want MissingSettingError", err)
				}
				if host != nil {
					t.Errorf("host = %#v, want nil on error", host)
				}
				if missing.Variable != tt.wantMissing {
					t.Errorf("missing variable = %q, want %q", missing.Variable, tt.wantMissing)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImageHost() error = %v", err)
			}
			switch tt.wantType.(type) {
			case *imagehost.Cloudinary:
				if _, ok := host.(*imagehost.Cloudinary); !ok {
					t.Errorf("host = %T, want *imagehost.Cloudinary", host)
				}
			case *imagehost.Local:
				if _, ok := host.(*imagehost.Local); !ok {
					t.Errorf("host = %T, want *imagehost.Local", host)
				}
			}
			if (local != nil) != tt.wantLocal {
				t.Errorf("local = %v, wantLocal %v", local, tt.wantLocal)
			}
		})
	}
}

func TestImageHost_LocalServesUploads(t *testing.T) {
	dir := t.TempDir()
	var conf config.Config
	conf.APIBaseURL = "http://localhost:3001"
	conf.Images.Host = config.ImageHostLocal
	conf.Images.Fileserver = config.Fileserver{Volume: dir, URLPrefix: "/files"}

	host, local, err := ImageHost(context.Background(), conf, nil, log.NullLogger())
	if err != nil {
		t.Fatalf("ImageHost() error = %v", err)
	}

	asset, err := host.Upload(context.Background(), imagehost.UploadRequest{
		Folder: "receitas",
		ID:     "bolo",
		File:   imagehost.File{Data: []byte("png"), ContentType: "image/png", Suffix: ".png"},
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "receitas", "bolo.png")); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	rec := httptest.NewRecorder()
	local.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/receitas/bolo.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Errorf("GET %s = %d %q", asset.URL, rec.Code, rec.Body.String())
	}
}

func TestMissingSettingError(t *testing.T) {
	err := missingSetting("CLOUDINARY_API_KEY", "images.cloudinary.api_key")
	want := "images.cloudinary.api_key not set (environment variable CLOUDINARY_API_KEY or config key images.cloudinary.api_key)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
