package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/matt-dz/receitas/internal/api"
	"github.com/matt-dz/receitas/internal/config"
	"github.com/matt-dz/receitas/internal/env"
	"github.com/matt-dz/receitas/internal/http"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/log"
	"github.com/matt-dz/receitas/internal/recipe"
	"github.com/matt-dz/receitas/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	level, err := log.ParseLevel(string(conf.LogLevel))
	if err != nil {
		logger.Error("failed to parse log level", slog.Any("error", err))
		os.Exit(1)
	}
	logger = log.New(&slog.HandlerOptions{Level: level})

	httpConfig := http.DefaultConfig()
	httpConfig.Logger = logger
	http := http.New(httpConfig)

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	host, files, err := setup.ImageHost(setupCtx, conf, http, logger)
	if err != nil {
		logger.Error("failed to setup image host", slog.Any("error", err))
		db.Close()
		os.Exit(1) //nolint:gocritic
	}
	images := imagehost.NewGateway(host, conf.Images.Folder, logger)

	env := &env.Env{
		Logger:   logger,
		Database: db,
		HTTP:     http,
		Images:   images,
		Recipes:  recipe.NewService(db, images, logger),
		Files:    files,
		Config:   conf,
	}

	logger.DebugContext(ctx, "using image host", slog.String("host", string(conf.Images.Host)),
		slog.String("folder", images.Folder()))
	if err := api.Start(ctx, env); err != nil {
		env.Logger.Error("API Failed", slog.Any("error", err))
		db.Close()
		os.Exit(1) //nolint:gocritic
	}
}
