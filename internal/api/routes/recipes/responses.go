package recipes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matt-dz/receitas/internal/recipe"
)

type ImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type RecipeResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Servings    int             `json:"servings"`
	TimeMinutes int             `json:"timeMinutes"`
	Ingredients []string        `json:"ingredients"`
	Steps       []string        `json:"steps"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Images      []ImageResponse `json:"images"`
	ImageURLs   []string        `json:"imageUrls"`
}

func newRecipeResponse(r recipe.Recipe) RecipeResponse {
	images := make([]ImageResponse, len(r.Images))
	for i, img := range r.Images {
		images[i] = ImageResponse{URL: img.URL, PublicID: img.PublicID}
	}
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Servings:    r.Servings,
		TimeMinutes: r.TimeMinutes,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Images:      images,
		ImageURLs:   r.ImageURLs(),
	}
}

func newRecipeListResponse(recipes []recipe.Recipe) []RecipeResponse {
	resp := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = newRecipeResponse(r)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	resp, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(resp); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
