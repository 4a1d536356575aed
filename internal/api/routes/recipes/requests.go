package recipes

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/matt-dz/receitas/internal/form"
	"github.com/matt-dz/receitas/internal/imagehost"
	"github.com/matt-dz/receitas/internal/recipe"
)

const (
	fieldTitle       = "title"
	fieldServings    = "servings"
	fieldTimeMinutes = "timeMinutes"
	fieldIngredients = "ingredients"
	fieldSteps       = "steps"
	fieldImageURLs   = "imageUrls"
	fieldFiles       = "files"
)

// recipeFields are the scalar and list fields shared by create and update.
type recipeFields struct {
	Title       string
	Servings    int
	TimeMinutes int
	Ingredients []string
	Steps       []string
}

func invalidField(name string) error {
	return &recipe.ValidationError{Err: fmt.Errorf("%s must be an integer", name)}
}

// parseCount reads a numeric field. A missing field reads as zero and is
// rejected later by validation.
func parseCount(f *multipart.Form, name string) (int, error) {
	raw, ok := form.Value(f, name)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidField(name)
	}
	return v, nil
}

// readRecipeFields reads the recipe fields from a form. With decodeLists,
// a list sent as a single JSON encoded value is decoded.
func readRecipeFields(f *multipart.Form, decodeLists bool) (recipeFields, error) {
	var (
		fields recipeFields
		err    error
	)
	title, _ := form.Value(f, fieldTitle)
	fields.Title = strings.TrimSpace(title)

	if fields.Servings, err = parseCount(f, fieldServings); err != nil {
		return fields, err
	}
	if fields.TimeMinutes, err = parseCount(f, fieldTimeMinutes); err != nil {
		return fields, err
	}

	fields.Ingredients = form.Values(f, fieldIngredients)
	fields.Steps = form.Values(f, fieldSteps)
	if decodeLists {
		fields.Ingredients = form.DecodeList(fields.Ingredients)
		fields.Steps = form.DecodeList(fields.Steps)
	}
	return fields, nil
}

func (r recipeFields) createInput() recipe.CreateInput {
	return recipe.CreateInput{
		Title:       r.Title,
		Servings:    r.Servings,
		TimeMinutes: r.TimeMinutes,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
	}
}

func (r recipeFields) updateInput(imageURLs []string) recipe.UpdateInput {
	return recipe.UpdateInput{
		Title:       r.Title,
		Servings:    r.Servings,
		TimeMinutes: r.TimeMinutes,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageURLs:   imageURLs,
	}
}

// readImages reads the uploaded files of a recipe form.
func readImages(f *multipart.Form) ([]imagehost.File, error) {
	files, err := form.Files(f, fieldFiles)
	if err != nil {
		return nil, err
	}
	images := make([]imagehost.File, len(files))
	for i, file := range files {
		images[i] = imagehost.File{
			Data:        file.Data,
			ContentType: file.MimeType,
			Suffix:      file.Suffix,
		}
	}
	return images, nil
}

func imageInputs(assets []imagehost.Asset) []recipe.ImageInput {
	inputs := make([]recipe.ImageInput, len(assets))
	for i, asset := range assets {
		inputs[i] = recipe.ImageInput{URL: asset.URL, PublicID: asset.PublicID}
	}
	return inputs
}

func publicIDs(assets []imagehost.Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.PublicID != "" {
			ids = append(ids, asset.PublicID)
		}
	}
	return ids
}
