package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ImageInput struct {
	URL      string `validate:"required"`
	PublicID string `validate:"required"`
}

type CreateInput struct {
	Title       string       `validate:"required"`
	Servings    int          `validate:"gt=0,lte=2147483647"`
	TimeMinutes int          `validate:"gt=0,lte=2147483647"`
	Ingredients []string     `validate:"min=1,dive,required"`
	Steps       []string     `validate:"min=1,dive,required"`
	Images      []ImageInput `validate:"dive"`
}

// UpdateInput replaces every scalar field of a recipe. ImageURLs lists the
// existing images to keep; NewImages are appended.
type UpdateInput struct {
	Title       string       `validate:"required"`
	Servings    int          `validate:"gt=0,lte=2147483647"`
	TimeMinutes int          `validate:"gt=0,lte=2147483647"`
	Ingredients []string     `validate:"min=1,dive,required"`
	Steps       []string     `validate:"min=1,dive,required"`
	ImageURLs   []string
	NewImages   []ImageInput `validate:"dive"`
}

// Validate checks the input without touching the store, so callers can
// reject a request before uploading its images.
func (in CreateInput) Validate() error {
	return validateInput(in)
}

func (in UpdateInput) Validate() error {
	return validateInput(in)
}

func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Err: formatValidationError(err)}
	}
	return nil
}

// formatValidationError turns validator errors into one readable sentence
// per rejected field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		// drop the struct name: "CreateInput.Images[0].URL" -> "Images[0].URL"
		field := e.Namespace()
		if idx := strings.Index(field, "."); idx != -1 {
			field = field[idx+1:]
		}

		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s item(s)", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
