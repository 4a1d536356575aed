// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/receitas/internal/api/error"
	"github.com/matt-dz/receitas/internal/api/requestid"
	"github.com/matt-dz/receitas/internal/env"
	"github.com/matt-dz/receitas/internal/form"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/log"
	"github.com/matt-dz/receitas/internal/recipe"
)

const (
	recipeIDParam = "id"
	searchParam   = "q"
)

// encodeError maps an error from reading a form, the media host or the
// recipe service to its API error.
func encodeError(ctx context.Context, w http.ResponseWriter, env *env.Env, err error, requestID string) {
	var validationErr *recipe.ValidationError
	switch {
	case errors.As(err, &validationErr):
		env.Logger.DebugContext(ctx, "invalid recipe", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, validationErr.Err.Error(), requestID)
	case errors.Is(err, recipe.ErrRecipeNotFound):
		env.Logger.DebugContext(ctx, "recipe not found", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
	case errors.Is(err, form.ErrPayloadTooLarge):
		env.Logger.ErrorContext(ctx, "request too large", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PayloadTooLarge, "request too large", requestID)
	case errors.Is(err, form.ErrMalformedForm):
		env.Logger.ErrorContext(ctx, "failed to parse form", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected a multipart form", requestID)
	case errors.Is(err, form.ErrUnsupportedMimeType):
		env.Logger.ErrorContext(ctx, "unsupported file type", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UnsupportedMediaType, "unsupported file type", requestID)
	case errors.Is(err, form.ErrNoImageUploaded):
		env.Logger.ErrorContext(ctx, "empty image uploaded", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "empty image uploaded", requestID)
	case errors.Is(err, imagehost.ErrUploadFailed), errors.Is(err, imagehost.ErrMalformedResponse):
		env.Logger.ErrorContext(ctx, "failed to upload images", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ImageHostError, "failed to upload images", requestID)
	default:
		env.Logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

// discardUploads deletes images uploaded for a request that then failed.
func discardUploads(ctx context.Context, env *env.Env, assets []imagehost.Asset) {
	ids := publicIDs(assets)
	if len(ids) == 0 {
		return
	}
	env.Logger.DebugContext(ctx, "discarding uploaded images", slog.Any("public_ids", ids))
	if err := env.Images.DeleteMany(context.WithoutCancel(ctx), ids); err != nil {
		env.Logger.WarnContext(ctx, "failed to discard uploaded images",
			slog.Any("public_ids", ids), slog.Any("error", err))
	}
}

func uploadImages(ctx context.Context, env *env.Env, files []imagehost.File) ([]imagehost.Asset, error) {
	if len(files) == 0 {
		return []imagehost.Asset{}, nil
	}
	env.Logger.DebugContext(ctx, "uploading images", slog.Int("count", len(files)))
	return env.Images.UploadMany(ctx, files)
}

// ListRecipes godoc
//
//	@Summary		List recipes.
//	@Description	Lists every recipe, newest first. q filters by a case-insensitive
//	@Description	match on the title, ingredients and steps.
//	@Tags			Recipes
//	@Produce		json
//
//	@Param			q	query		string	false	"Search text"
//
//	@Success		200	{array}		RecipeResponse
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Router			/recipes [get]
func ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	recipes, err := env.Recipes.FindAll(ctx)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	if query := r.URL.Query().Get(searchParam); query != "" {
		recipes = recipe.Filter(recipes, query)
	}

	if err := writeJSON(w, http.StatusOK, newRecipeListResponse(recipes)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//	@Produce	json
//
//	@Param		id	path		string	true	"Recipe ID"
//
//	@Success	200	{object}	RecipeResponse
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Router		/recipes/{id} [get]
func GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	id := chi.URLParam(r, recipeIDParam)
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))

	found, err := env.Recipes.FindOne(ctx, id)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}

	if err := writeJSON(w, http.StatusOK, newRecipeResponse(found)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// CreateRecipe godoc
//
//	@Summary		Create a recipe.
//	@Description	Expects multipart/form-data. List fields may be repeated, with or
//	@Description	without the "[]" suffix. Files are uploaded to the media host
//	@Description	before the recipe is stored.
//	@Tags			Recipes
//	@Accept			multipart/form-data
//	@Produce		json
//
//	@Param			title		formData	string	true	"Recipe title"
//	@Param			servings	formData	integer	true	"Servings"
//	@Param			timeMinutes	formData	integer	true	"Preparation time in minutes"
//	@Param			ingredients	formData	[]string	true	"Ingredients"	collectionFormat(multi)
//	@Param			steps		formData	[]string	true	"Steps"			collectionFormat(multi)
//	@Param			files		formData	file	false	"Images (JPEG/PNG/WEBP/GIF/SVG)"
//
//	@Success		201			{object}	RecipeResponse
//	@Failure		400			{object}	apiError.Error	"Validation error"
//	@Failure		413			{object}	apiError.Error	"Request too large"
//	@Failure		415			{object}	apiError.Error	"Unsupported file type"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Failure		502			{object}	apiError.Error	"Media host error"
//	@Router			/recipes [post]
func CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	// Read request
	env.Logger.DebugContext(ctx, "reading request")
	f, err := form.Parse(w, r)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	fields, err := readRecipeFields(f, false)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	input := fields.createInput()
	if err := input.Validate(); err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	files, err := readImages(f)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}

	// Upload images
	assets, err := uploadImages(ctx, env, files)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	input.Images = imageInputs(assets)

	// Create recipe
	created, err := env.Recipes.Create(ctx, input)
	if err != nil {
		discardUploads(ctx, env, assets)
		encodeError(ctx, w, env, err, requestID)
		return
	}

	if err := writeJSON(w, http.StatusCreated, newRecipeResponse(created)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// UpdateRecipe godoc
//
//	@Summary		Update a recipe.
//	@Description	Overwrites every field of the recipe. Existing images whose url is
//	@Description	not listed in imageUrls are deleted; uploaded files are added.
//	@Description	ingredients and steps may also be sent as one JSON array value.
//	@Tags			Recipes
//	@Accept			multipart/form-data
//	@Produce		json
//
//	@Param			id			path		string		true	"Recipe ID"
//	@Param			title		formData	string		true	"Recipe title"
//	@Param			servings	formData	integer		true	"Servings"
//	@Param			timeMinutes	formData	integer		true	"Preparation time in minutes"
//	@Param			ingredients	formData	[]string	true	"Ingredients"			collectionFormat(multi)
//	@Param			steps		formData	[]string	true	"Steps"					collectionFormat(multi)
//	@Param			imageUrls	formData	[]string	false	"Images to keep"		collectionFormat(multi)
//	@Param			files		formData	file		false	"New images (JPEG/PNG/WEBP/GIF/SVG)"
//
//	@Success		200			{object}	RecipeResponse
//	@Failure		400			{object}	apiError.Error	"Validation error"
//	@Failure		404			{object}	apiError.Error	"Recipe not found"
//	@Failure		413			{object}	apiError.Error	"Request too large"
//	@Failure		415			{object}	apiError.Error	"Unsupported file type"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Failure		502			{object}	apiError.Error	"Media host error"
//	@Router			/recipes/{id} [put]
func UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	id := chi.URLParam(r, recipeIDParam)
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))

	// Read request
	env.Logger.DebugContext(ctx, "reading request")
	f, err := form.Parse(w, r)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	fields, err := readRecipeFields(f, true)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	input := fields.updateInput(form.Values(f, fieldImageURLs))
	if err := input.Validate(); err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	files, err := readImages(f)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}

	// Upload images
	assets, err := uploadImages(ctx, env, files)
	if err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	input.NewImages = imageInputs(assets)

	// Update recipe
	updated, err := env.Recipes.Update(ctx, id, input)
	if err != nil {
		discardUploads(ctx, env, assets)
		encodeError(ctx, w, env, err, requestID)
		return
	}

	if err := writeJSON(w, http.StatusOK, newRecipeResponse(updated)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// DeleteRecipe godoc
//
//	@Summary		Delete a recipe.
//	@Description	Deletes the recipe, its images and their copies at the media host.
//	@Tags			Recipes
//
//	@Param			id	path	string	true	"Recipe ID"
//
//	@Success		204	"Recipe deleted"
//	@Failure		404	{object}	apiError.Error	"Recipe not found"
//	@Failure		500	{object}	apiError.Error	"Internal server error"
//	@Router			/recipes/{id} [delete]
func DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	id := chi.URLParam(r, recipeIDParam)
	ctx = log.AppendCtx(ctx, slog.String("recipe_id", id))

	if err := env.Recipes.Delete(ctx, id); err != nil {
		encodeError(ctx, w, env, err, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
