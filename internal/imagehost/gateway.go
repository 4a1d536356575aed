package imagehost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFolder = "receitas"

	maxParallelUploads = 4
	maxParallelDeletes = 4
)

type Gateway struct {
	host   Host
	folder string
	logger *slog.Logger
	newID  func() string
}

func NewGateway(host Host, folder string, logger *slog.Logger) *Gateway {
	if folder == "" {
		folder = DefaultFolder
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		host:   host,
		folder: folder,
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (g *Gateway) Folder() string {
	return g.folder
}

// UploadMany uploads every file concurrently and returns one asset per file,
// in the order the files were given. A single failure fails the whole call;
// assets already stored by the other uploads are deleted before returning.
func (g *Gateway) UploadMany(ctx context.Context, files []File) ([]Asset, error) {
	if len(files) == 0 {
		return []Asset{}, nil
	}

	assets := make([]Asset, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelUploads)
	for i, file := range files {
		eg.Go(func() error {
			asset, err := g.host.Upload(egCtx, UploadRequest{
				Folder: g.folder,
				ID:     g.newID(),
				File:   file,
			})
			if errors.Is(err, ErrMalformedResponse) {
				return err
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUploadFailed, err)
			}
			assets[i] = asset
			if asset.URL == "" || asset.PublicID == "" {
				return fmt.Errorf("%w: asset %d is missing url or public id", ErrMalformedResponse, i)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.discard(context.WithoutCancel(ctx), assets)
		return nil, err
	}
	return assets, nil
}

func (g *Gateway) discard(ctx context.Context, assets []Asset) {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		if a.PublicID != "" {
			ids = append(ids, a.PublicID)
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := g.DeleteMany(ctx, ids); err != nil {
		g.logger.WarnContext(ctx, "failed to discard uploaded images",
			slog.Any("public_ids", ids), slog.Any("error", err))
	}
}

// DeleteImage removes a single asset from the host.
func (g *Gateway) DeleteImage(ctx context.Context, publicID string) error {
	if err := g.host.Delete(ctx, publicID); err != nil {
		return fmt.Errorf("deleting image %q: %w", publicID, err)
	}
	return nil
}

// DeleteMany attempts every deletion, concurrently, and joins the failures.
func (g *Gateway) DeleteMany(ctx context.Context, publicIDs []string) error {
	var (
		mu   sync.Mutex
		errs []error
		eg   errgroup.Group
	)
	eg.SetLimit(maxParallelDeletes)
	for _, id := range publicIDs {
		eg.Go(func() error {
			if err := g.DeleteImage(ctx, id); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	return errors.Join(errs...)
}
