package recipe

import "strings"

// Matches reports whether query occurs, ignoring case, in the title, an
// ingredient or a step of r. An empty query matches every recipe.
func Matches(r Recipe, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ingredient := range r.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), q) {
			return true
		}
	}
	for _, step := range r.Steps {
		if strings.Contains(strings.ToLower(step), q) {
			return true
		}
	}
	return false
}

// Filter keeps the recipes matching query, in order.
func Filter(recipes []Recipe, query string) []Recipe {
	if query == "" {
		return recipes
	}
	filtered := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
