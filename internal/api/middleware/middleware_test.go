package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/matt-dz/receitas/internal/api/requestid"
	"github.com/matt-dz/receitas/internal/env"
	"github.com/matt-dz/receitas/internal/log"
)

func TestAddRequestID(t *testing.T) {
	var got string
	handler := AddRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestid.ExtractRequestID(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes", nil))

	if _, err := ulid.Parse(got); err != nil {
		t.Errorf("request id %q is not a ulid: %v", got, err)
	}
}

func TestInjectEnv(t *testing.T) {
	e := &env.Env{Logger: log.NullLogger()}
	var got *env.Env
	handler := InjectEnv(e)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = env.EnvFromCtx(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got != e {
		t.Error("handler did not receive the injected env")
	}
}

func TestAddCors(t *testing.T) {
	origins := []string{"http://localhost:3004", "https://receitas-rose.vercel.app"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AddCors(origins)(next)

	tests := []struct {
		name            string
		method          string
		origin          string
		requestMethod   string
		wantAllowOrigin string
		wantCredentials bool
	}{
		{
			name:            "allowed origin",
			method:          http.MethodGet,
			origin:          "http://localhost:3004",
			wantAllowOrigin: "http://localhost:3004",
			wantCredentials: true,
		},
		{
			name:   "unknown origin",
			method: http.MethodGet,
			origin: "http://evil.example.com",
		},
		{
			name:            "preflight from allowed origin",
			method:          http.MethodOptions,
			origin:          "https://receitas-rose.vercel.app",
			requestMethod:   http.MethodPut,
			wantAllowOrigin: "https://receitas-rose.vercel.app",
			wantCredentials: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/recipes", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowOrigin)
			}
			gotCredentials := rec.Header().Get("Access-Control-Allow-Credentials") == "true"
			if gotCredentials != tt.wantCredentials {
				t.Errorf("Access-Control-Allow-Credentials = %v, want %v", gotCredentials, tt.wantCredentials)
			}
		})
	}
}
