// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/receitas/internal/config"
	"github.com/matt-dz/receitas/internal/database"
	mHttp "github.com/matt-dz/receitas/internal/http"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/log"
	"github.com/matt-dz/receitas/internal/recipe"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Database *database.Database
	HTTP     *mHttp.HTTP
	Images   *imagehost.Gateway
	Recipes  *recipe.Service
	// Files is the local image host when it serves its own files; nil otherwise.
	Files  *imagehost.Local
	Config config.Config
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// WithCtx stores env in ctx.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the env stored in ctx, or a null env when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
