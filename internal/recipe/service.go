package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/matt-dz/receitas/internal/database"
	"github.com/matt-dz/receitas/internal/log"
)

// Store is the recipe persistence the service needs: queries plus a way to
// run several of them atomically.
type Store interface {
	database.Querier
	InTx(ctx context.Context, fn func(q database.Querier) error) error
}

var _ Store = (*database.Database)(nil)

// ImageDeleter removes stored images from the media host.
type ImageDeleter interface {
	DeleteMany(ctx context.Context, publicIDs []string) error
}

type Service struct {
	store  Store
	images ImageDeleter
	logger *slog.Logger
}

func NewService(store Store, images ImageDeleter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:  store,
		images: images,
		logger: logger,
	}
}

// parseID rejects ids that cannot name a recipe, so they read as missing
// instead of reaching the store.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrRecipeNotFound
	}
	return parsed.String(), nil
}

func notFound(err error) error {
	if errors.Is(err, database.ErrNoRows) {
		return ErrRecipeNotFound
	}
	return err
}

// FindAll returns every recipe with its images, newest first.
func (s *Service) FindAll(ctx context.Context) ([]Recipe, error) {
	rows, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	images, err := s.store.ListRecipeImages(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipe images: %w", err)
	}
	byRecipe := make(map[string][]database.RecipeImage, len(rows))
	for _, img := range images {
		byRecipe[img.RecipeID] = append(byRecipe[img.RecipeID], img)
	}

	recipes := make([]Recipe, len(rows))
	for i, row := range rows {
		recipes[i] = fromRow(row, byRecipe[row.ID])
	}
	return recipes, nil
}

func (s *Service) FindOne(ctx context.Context, id string) (Recipe, error) {
	id, err := parseID(id)
	if err != nil {
		return Recipe{}, err
	}

	row, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return Recipe{}, fmt.Errorf("getting recipe: %w", notFound(err))
	}
	images, err := s.store.GetRecipeImages(ctx, id)
	if err != nil {
		return Recipe{}, fmt.Errorf("getting recipe images: %w", err)
	}
	return fromRow(row, images), nil
}

func imageRefs(images []ImageInput) []database.ImageRef {
	refs := make([]database.ImageRef, len(images))
	for i, img := range images {
		refs[i] = database.ImageRef{Url: img.URL, PublicID: img.PublicID}
	}
	return refs
}

// Create stores a recipe and its images in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (Recipe, error) {
	if err := validateInput(input); err != nil {
		return Recipe{}, err
	}

	id := uuid.NewString()
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))
	s.logger.DebugContext(ctx, "creating recipe", slog.Int("images", len(input.Images)))

	var created Recipe
	err := s.store.InTx(ctx, func(q database.Querier) error {
		row, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
			ID:          id,
			Title:       input.Title,
			Servings:    int32(input.Servings),    //nolint:gosec // validated lte MaxInt32
			TimeMinutes: int32(input.TimeMinutes), //nolint:gosec // validated lte MaxInt32
			Ingredients: input.Ingredients,
			Steps:       input.Steps,
		})
		if err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}
		if err := q.CreateRecipeImages(ctx, database.CreateRecipeImagesParams{
			RecipeID: id,
			Images:   imageRefs(input.Images),
		}); err != nil {
			return fmt.Errorf("creating recipe images: %w", err)
		}
		images, err := q.GetRecipeImages(ctx, id)
		if err != nil {
			return fmt.Errorf("getting recipe images: %w", err)
		}
		created = fromRow(row, images)
		return nil
	})
	if err != nil {
		return Recipe{}, err
	}
	return created, nil
}

// Update overwrites the scalar fields of a recipe and reconciles its images:
// existing images whose url is not in input.ImageURLs are removed and
// input.NewImages are added. Input is fully validated before anything is
// written, and removed images are deleted from the media host only after the
// transaction commits. Failing to delete them there leaves orphans at the
// host but does not fail the update.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Recipe, error) {
	if err := validateInput(input); err != nil {
		return Recipe{}, err
	}
	id, err := parseID(id)
	if err != nil {
		return Recipe{}, err
	}
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))

	if _, err := s.store.GetRecipe(ctx, id); err != nil {
		return Recipe{}, fmt.Errorf("getting recipe: %w", notFound(err))
	}
	existing, err := s.store.GetRecipeImages(ctx, id)
	if err != nil {
		return Recipe{}, fmt.Errorf("getting recipe images: %w", err)
	}
	removed := removedImages(existing, input.ImageURLs)
	s.logger.DebugContext(ctx, "updating recipe",
		slog.Int("removed_images", len(removed)), slog.Int("new_images", len(input.NewImages)))

	var updated Recipe
	err = s.store.InTx(ctx, func(q database.Querier) error {
		if _, err := q.DeleteRecipeImagesByPublicID(ctx, database.DeleteRecipeImagesByPublicIDParams{
			RecipeID:  id,
			PublicIDs: removed,
		}); err != nil {
			return fmt.Errorf("deleting removed images: %w", err)
		}
		if err := q.CreateRecipeImages(ctx, database.CreateRecipeImagesParams{
			RecipeID: id,
			Images:   imageRefs(input.NewImages),
		}); err != nil {
			return fmt.Errorf("creating recipe images: %w", err)
		}
		row, err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
			ID:          id,
			Title:       input.Title,
			Servings:    int32(input.Servings),    //nolint:gosec // validated lte MaxInt32
			TimeMinutes: int32(input.TimeMinutes), //nolint:gosec // validated lte MaxInt32
			Ingredients: input.Ingredients,
			Steps:       input.Steps,
		})
		if err != nil {
			return fmt.Errorf("updating recipe: %w", notFound(err))
		}
		images, err := q.GetRecipeImages(ctx, id)
		if err != nil {
			return fmt.Errorf("getting recipe images: %w", err)
		}
		updated = fromRow(row, images)
		return nil
	})
	if err != nil {
		return Recipe{}, err
	}

	s.purge(ctx, removed)
	return updated, nil
}

// removedImages returns the public ids of the existing images whose url is
// not retained.
func removedImages(existing []database.RecipeImage, retainedURLs []string) []string {
	retained := make(map[string]struct{}, len(retainedURLs))
	for _, url := range retainedURLs {
		retained[url] = struct{}{}
	}
	removed := make([]string, 0, len(existing))
	for _, img := range existing {
		if _, ok := retained[img.Url]; !ok {
			removed = append(removed, img.PublicID)
		}
	}
	return removed
}

// Delete removes a recipe and its image rows, then its images at the media
// host.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))
	s.logger.DebugContext(ctx, "deleting recipe")

	var publicIDs []string
	err = s.store.InTx(ctx, func(q database.Querier) error {
		images, err := q.GetRecipeImages(ctx, id)
		if err != nil {
			return fmt.Errorf("getting recipe images: %w", err)
		}
		deleted, err := q.DeleteRecipe(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting recipe: %w", err)
		}
		if deleted == 0 {
			return ErrRecipeNotFound
		}
		publicIDs = make([]string, len(images))
		for i, img := range images {
			publicIDs[i] = img.PublicID
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.purge(ctx, publicIDs)
	return nil
}

// purge deletes images at the media host once nothing references them.
// Failures are logged and left behind as orphans.
func (s *Service) purge(ctx context.Context, publicIDs []string) {
	if len(publicIDs) == 0 || s.images == nil {
		return
	}
	if err := s.images.DeleteMany(context.WithoutCancel(ctx), publicIDs); err != nil {
		s.logger.WarnContext(ctx, "failed to delete images from media host",
			slog.Any("public_ids", publicIDs), slog.Any("error", err))
	}
}
