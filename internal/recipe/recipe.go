// Package recipe implements the recipe workflows: listing, reading, creating,
// updating with image reconciliation, and deleting.
package recipe

import (
	"time"

	"github.com/matt-dz/receitas/internal/database"
)

type Image struct {
	URL      string
	PublicID string
}

type Recipe struct {
	ID          string
	Title       string
	Servings    int
	TimeMinutes int
	Ingredients []string
	Steps       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Images      []Image
}

// ImageURLs lists the urls of the recipe images in display order.
func (r Recipe) ImageURLs() []string {
	urls := make([]string, len(r.Images))
	for i, img := range r.Images {
		urls[i] = img.URL
	}
	return urls
}

func fromRow(row database.Recipe, images []database.RecipeImage) Recipe {
	r := Recipe{
		ID:          row.ID,
		Title:       row.Title,
		Servings:    int(row.Servings),
		TimeMinutes: int(row.TimeMinutes),
		Ingredients: nonNil(row.Ingredients),
		Steps:       nonNil(row.Steps),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Images:      make([]Image, len(images)),
	}
	for i, img := range images {
		r.Images[i] = Image{URL: img.Url, PublicID: img.PublicID}
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
