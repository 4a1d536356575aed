package imagehost

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/matt-dz/receitas/internal/log"
)

func TestUploadMany(t *testing.T) {
	files := []File{
		{Data: []byte("first"), ContentType: "image/png", Suffix: ".png"},
		{Data: []byte("second"), ContentType: "image/jpeg", Suffix: ".jpg"},
		{Data: []byte("third"), ContentType: "image/webp", Suffix: ".webp"},
	}

	tests := []struct {
		name      string
		files     []File
		setup     func(*MockHost)
		wantURLs  []string
		wantError error
	}{
		{
			name:     "no files",
			files:    nil,
			setup:    func(*MockHost) {},
			wantURLs: []string{},
		},
		{
			name:  "order is preserved",
			files: files,
			setup: func(host *MockHost) {
				host.EXPECT().
					Upload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req UploadRequest) (Asset, error) {
						// finish in reverse order
						time.Sleep(time.Duration(10-len(req.File.Data)) * time.Millisecond)
						name := string(req.File.Data)
						return Asset{URL: "https://img/" + name, PublicID: req.Folder + "/" + name}, nil
					}).
					Times(3)
			},
			wantURLs: []string{"https://img/first", "https://img/second", "https://img/third"},
		},
		{
			name:  "one failure fails the call and discards the rest",
			files: files,
			setup: func(host *MockHost) {
				host.EXPECT().
					Upload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req UploadRequest) (Asset, error) {
						name := string(req.File.Data)
						if name == "second" {
							return Asset{}, errors.New("503 from host")
						}
						return Asset{URL: "https://img/" + name, PublicID: name}, nil
					}).
					Times(3)
				host.EXPECT().Delete(gomock.Any(), "first").Return(nil)
				host.EXPECT().Delete(gomock.Any(), "third").Return(nil)
			},
			wantError: ErrUploadFailed,
		},
		{
			name:  "reply without url is malformed",
			files: files[:1],
			setup: func(host *MockHost) {
				host.EXPECT().
					Upload(gomock.Any(), gomock.Any()).
					Return(Asset{PublicID: "receitas/orphan"}, nil)
				host.EXPECT().Delete(gomock.Any(), "receitas/orphan").Return(nil)
			},
			wantError: ErrMalformedResponse,
		},
		{
			name:  "reply without public id is malformed",
			files: files[:1],
			setup: func(host *MockHost) {
				host.EXPECT().
					Upload(gomock.Any(), gomock.Any()).
					Return(Asset{URL: "https://img/x"}, nil)
			},
			wantError: ErrMalformedResponse,
		},
		{
			name:  "malformed error from host is not reported as upload failure",
			files: files[:1],
			setup: func(host *MockHost) {
				host.EXPECT().
					Upload(gomock.Any(), gomock.Any()).
					Return(Asset{}, ErrMalformedResponse)
			},
			wantError: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			host := NewMockHost(ctrl)
			tt.setup(host)

			gateway := NewGateway(host, "", log.NullLogger())
			assets, err := gateway.UploadMany(context.Background(), tt.files)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("UploadMany() error = %v, want %v", err, tt.wantError)
				}
				if tt.wantError == ErrMalformedResponse && errors.Is(err, ErrUploadFailed) {
					t.Errorf("UploadMany() error = %v should not be an upload failure", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UploadMany() unexpected error: %v", err)
			}
			if len(assets) != len(tt.wantURLs) {
				t.Fatalf("UploadMany() returned %d assets, want %d", len(assets), len(tt.wantURLs))
			}
			for i, want := range tt.wantURLs {
				if assets[i].URL != want {
					t.Errorf("assets[%d].URL = %q, want %q", i, assets[i].URL, want)
				}
			}
		})
	}
}

func TestUploadMany_UsesFolderAndUniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := NewMockHost(ctrl)

	var (
		mu  sync.Mutex
		ids = map[string]bool{}
	)
	host.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req UploadRequest) (Asset, error) {
			if req.Folder != "bolos" {
				t.Errorf("folder = %q, want %q", req.Folder, "bolos")
			}
			mu.Lock()
			ids[req.ID] = true
			mu.Unlock()
			return Asset{URL: "https://img/" + req.ID, PublicID: req.Folder + "/" + req.ID}, nil
		}).
		Times(5)

	gateway := NewGateway(host, "bolos", log.NullLogger())
	files := make([]File, 5)
	if _, err := gateway.UploadMany(context.Background(), files); err != nil {
		t.Fatalf("UploadMany() unexpected error: %v", err)
	}
	if len(ids) != 5 {
		t.Errorf("got %d distinct ids, want 5", len(ids))
	}
}

func TestNewGateway_DefaultFolder(t *testing.T) {
	gateway := NewGateway(nil, "", nil)
	if gateway.Folder() != DefaultFolder {
		t.Errorf("Folder() = %q, want %q", gateway.Folder(), DefaultFolder)
	}
}

func TestDeleteMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := NewMockHost(ctrl)

	host.EXPECT().Delete(gomock.Any(), "receitas/a").Return(nil)
	host.EXPECT().Delete(gomock.Any(), "receitas/b").Return(errors.New("timeout"))
	host.EXPECT().Delete(gomock.Any(), "receitas/c").Return(nil)

	gateway := NewGateway(host, "", log.NullLogger())
	err := gateway.DeleteMany(context.Background(), []string{"receitas/a", "receitas/b", "receitas/c"})
	if err == nil {
		t.Fatal("DeleteMany() expected error")
	}
	if !strings.Contains(err.Error(), "receitas/b") {
		t.Errorf("error %q should name the failed public id", err)
	}
	if strings.Contains(err.Error(), "receitas/a") {
		t.Errorf("error %q should not name successful deletions", err)
	}
}

func TestDeleteMany_Empty(t *testing.T) {
	gateway := NewGateway(nil, "", log.NullLogger())
	if err := gateway.DeleteMany(context.Background(), nil); err != nil {
		t.Errorf("DeleteMany(nil) error = %v", err)
	}
}
