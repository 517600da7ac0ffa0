package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate(maxNameLength int) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCategoryInput holds the parameters for deleting a category.
type DeleteCategoryInput struct {
	CategoryID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteCategoryInput) Validate() error {
	if i.CategoryID <= 0 {
		return domain.NewValidationError("category_id", "must be a positive id")
	}
	return nil
}
