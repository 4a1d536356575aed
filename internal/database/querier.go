package database

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=mock_querier.go -package=database

type Querier interface {
	ApplySchema(ctx context.Context) error
	CheckRecipesTableExists(ctx context.Context) (bool, error)
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	CreateRecipeImages(ctx context.Context, arg CreateRecipeImagesParams) error
	DeleteRecipe(ctx context.Context, id string) (int64, error)
	DeleteRecipeImagesByPublicID(ctx context.Context, arg DeleteRecipeImagesByPublicIDParams) (int64, error)
	GetRecipe(ctx context.Context, id string) (Recipe, error)
	GetRecipeImages(ctx context.Context, recipeID string) ([]RecipeImage, error)
	ListRecipeImages(ctx context.Context, recipeIDs []string) ([]RecipeImage, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error)
}

var _ Querier = (*Queries)(nil)
