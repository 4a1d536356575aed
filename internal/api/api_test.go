package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/receitas/internal/api/error"
	"github.com/matt-dz/receitas/internal/config"
	"github.com/matt-dz/receitas/internal/database"
	"github.com/matt-dz/receitas/internal/env"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/log"
	"github.com/matt-dz/receitas/internal/recipe"
)

type txStore struct {
	*database.MockQuerier
}

func (s txStore) InTx(_ context.Context, fn func(q database.Querier) error) error {
	return fn(s.MockQuerier)
}

func newTestEnv(t *testing.T) (*env.Env, *database.MockQuerier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	gateway := imagehost.NewGateway(imagehost.NewMockHost(ctrl), "", log.NullLogger())
	return &env.Env{
		Logger:  log.NullLogger(),
		Images:  gateway,
		Recipes: recipe.NewService(txStore{mockDB}, gateway, log.NullLogger()),
		Config: config.Config{
			APIBaseURL: "http://localhost:3001",
			CORS:       config.CORS{AllowedOrigins: []string{"http://localhost:3004"}},
		},
	}, mockDB
}

func TestRouter_RecipesMountedTwice(t *testing.T) {
	e, mockDB := newTestEnv(t)
	mockDB.EXPECT().ListRecipes(gomock.Any()).Return([]database.Recipe{}, nil).Times(2)
	mockDB.EXPECT().ListRecipeImages(gomock.Any(), gomock.Any()).Return([]database.RecipeImage{}, nil).Times(2)
	router := NewRouter(e)

	for _, path := range []string{"/recipes", "/api/recipes"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
		if body := rec.Body.String(); body != "[]" {
			t.Errorf("GET %s body = %q, want []", path, body)
		}
	}
}

func TestRouter_Ping(t *testing.T) {
	e, _ := newTestEnv(t)
	router := NewRouter(e)

	for _, path := range []string{"/ping", "/api/ping"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestRouter_NotFound(t *testing.T) {
	e, _ := newTestEnv(t)
	router := NewRouter(e)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ingredients", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body apiError.Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != apiError.NotFound || body.ErrorID == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	e, _ := newTestEnv(t)
	router := NewRouter(e)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/recipes", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRouter_ServesLocalFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "receitas"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "receitas", "bolo.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEnv(t)
	e.Files = imagehost.NewLocal(dir, "files/", "http://localhost:3001")
	router := NewRouter(e)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/receitas/bolo.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Errorf("GET file = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/receitas/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET directory = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
