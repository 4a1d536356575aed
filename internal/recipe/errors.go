package recipe

import (
	"errors"
	"fmt"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// ValidationError reports input rejected before anything was written.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid recipe: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
