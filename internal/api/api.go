// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/receitas/docs"
	apiError "github.com/matt-dz/receitas/internal/api/error"
	"github.com/matt-dz/receitas/internal/api/middleware"
	"github.com/matt-dz/receitas/internal/api/requestid"
	"github.com/matt-dz/receitas/internal/api/routes/ping"
	"github.com/matt-dz/receitas/internal/api/routes/recipes"
	"github.com/matt-dz/receitas/internal/env"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addDocs(r chi.Router, baseURL string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("%s/api/swagger/doc.json", strings.TrimRight(baseURL, "/"))),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		swagger.ServeHTTP(w, req)
	}))
}

func recipeRoutes(r chi.Router) {
	r.Get("/ping", ping.HandlePing)

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipes.ListRecipes)
		r.Post("/", recipes.CreateRecipe)
		r.Get("/{id}", recipes.GetRecipe)
		r.Put("/{id}", recipes.UpdateRecipe)
		r.Delete("/{id}", recipes.DeleteRecipe)
	})
}

func addRoutes(router chi.Router, e *env.Env) {
	recipeRoutes(router)
	router.Route("/api", recipeRoutes)

	if e.Files != nil {
		router.Handle(e.Files.URLPrefix()+"/*", e.Files.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.NotFound, "route not found", requestid.ExtractRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed", requestid.ExtractRequestID(r.Context()))
	})
}

// NewRouter builds the API handler with its middleware stack.
func NewRouter(e *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(e.Logger))
	router.Use(middleware.InjectEnv(e))
	router.Use(middleware.AddCors(e.Config.CORS.AllowedOrigins))

	addRoutes(router, e)
	addDocs(router, e.Config.APIBaseURL)
	return router
}

// Start godoc
//
//	@title			Receitas API
//	@version		1.0
//	@description	API Server for the Receitas recipe manager.
//
//	@BasePath		/
func Start(ctx context.Context, e *env.Env) error {
	server := &http.Server{
		Addr:              e.Config.Addr(),
		Handler:           NewRouter(e),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		e.Logger.Info(fmt.Sprintf("Listening at %s", server.Addr))
		e.Logger.Info(fmt.Sprintf("Swagger UI available at %s/api/swagger/index.html", e.Config.APIBaseURL))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving api: %w", err)
	case <-ctx.Done():
	}

	e.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
