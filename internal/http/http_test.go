package http

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/matt-dz/receitas/internal/log"
)

func TestExpectStatus2xx(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "created", status: http.StatusCreated},
		{name: "no content", status: http.StatusNoContent},
		{name: "redirect", status: http.StatusFound, wantErr: true},
		{name: "bad request", status: http.StatusBadRequest, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"nope"}}`)),
			}
			err := ExpectStatus2xx(resp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpectStatus2xx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "nope") {
				t.Errorf("error %q should carry the response body", err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	client := New(Config{
		Logger:   log.NullLogger(),
		RetryMax: 1,
		Timeout:  5 * time.Second,
	})

	if client.RetryMax != 1 {
		t.Errorf("RetryMax = %d, want 1", client.RetryMax)
	}
	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
	if client.Logger == nil {
		t.Error("expected logger to be set")
	}
}
