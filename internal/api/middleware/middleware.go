// Package middleware contains middleware functions for the API
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/oklog/ulid/v2"
	"github.com/rs/cors"

	"github.com/matt-dz/receitas/internal/api/requestid"
	"github.com/matt-dz/receitas/internal/env"
	"github.com/matt-dz/receitas/internal/log"
)

const corsMaxAge = 86400

var (
	allowedMethods = []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodPost,
		http.MethodDelete,
	}
	allowedHeaders = []string{"Content-Type", "Authorization"}
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		RecoverPanics: true,
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Make().String()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors answers preflight requests and sets the CORS headers for the
// given origins. Credentials are allowed, so origins are never wildcarded.
func AddCors(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
	return c.Handler
}
