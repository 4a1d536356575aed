package database

import "time"

type Recipe struct {
	ID          string
	Title       string
	Servings    int32
	TimeMinutes int32
	Ingredients []string
	Steps       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RecipeImage struct {
	ID        int64
	RecipeID  string
	Url       string
	PublicID  string
	CreatedAt time.Time
}

// ImageRef is the pair the image host hands back for a stored asset.
type ImageRef struct {
	Url      string
	PublicID string
}
