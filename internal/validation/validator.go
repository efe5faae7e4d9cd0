package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/typed-helpers/pkg/geometry"
	"github.com/typed-helpers/pkg/models"
)

// ErrInvalidValue is returned when a value is outside its closed enumeration
var ErrInvalidValue = errors.New("invalid value")

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// UserInput is an unvalidated request to create a user
type UserInput struct {
	ID       *int    `json:"id" validate:"required,gte=0"`
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToUser builds the user, applying the default active flag when unset
func (in *UserInput) ToUser() models.User {
	var opts []models.UserOption
	if in.Email != nil {
		opts = append(opts, models.WithEmail(*in.Email))
	}
	if in.IsActive != nil {
		opts = append(opts, models.WithActive(*in.IsActive))
	}
	var id int
	if in.ID != nil {
		id = *in.ID
	}
	return models.NewUser(id, in.Name, opts...)
}

// bookRules mirrors models.Book, which carries no validation tags itself
type bookRules struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   *int   `validate:"omitempty,gte=0"`
	Genre  string `validate:"required"`
}

// Validator checks values arriving from outside the process
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateUser validates a user creation request
func (v *Validator) ValidateUser(in *UserInput) []ValidationError {
	if in == nil {
		return []ValidationError{{Field: "user", Message: "user is required"}}
	}
	return v.check(in, map[string]string{
		"ID":    "id",
		"Name":  "name",
		"Email": "email",
	})
}

// ValidateBook validates a book record
func (v *Validator) ValidateBook(book *models.Book) []ValidationError {
	if book == nil {
		return []ValidationError{{Field: "book", Message: "book is required"}}
	}
	rules := bookRules{
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
		Genre:  string(book.Genre),
	}
	errs := v.check(&rules, map[string]string{
		"Title":  "title",
		"Author": "author",
		"Year":   "year",
		"Genre":  "genre",
	})
	if book.Genre != "" {
		if _, err := ParseGenre(string(book.Genre)); err != nil {
			errs = append(errs, ValidationError{
				Field:   "genre",
				Message: "invalid genre, must be one of: fiction, non-fiction",
				Value:   string(book.Genre),
			})
		}
	}
	return errs
}

func (v *Validator) check(s interface{}, fieldNames map[string]string) []ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Message: err.Error()}}
	}

	var errs []ValidationError
	for _, fe := range fieldErrs {
		field := fieldNames[fe.StructField()]
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: describe(field, fe),
			Value:   valueOf(fe),
		})
	}
	return errs
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email format"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func valueOf(fe validator.FieldError) interface{} {
	if fe.Tag() == "required" {
		return nil
	}
	switch v := fe.Value().(type) {
	case *int:
		if v != nil {
			return *v
		}
		return nil
	case *string:
		if v != nil {
			return *v
		}
		return nil
	default:
		return v
	}
}

// ParseStatus converts s to a Status, rejecting anything outside the known set
func ParseStatus(s string) (models.Status, error) {
	if !models.ValidStatuses[s] {
		return "", fmt.Errorf("status %q must be one of: active, inactive, new: %w", s, ErrInvalidValue)
	}
	return models.Status(s), nil
}

// ParseGenre converts s to a Genre, rejecting anything outside the known set
func ParseGenre(s string) (models.Genre, error) {
	if !models.ValidGenres[s] {
		return "", fmt.Errorf("genre %q must be one of: fiction, non-fiction: %w", s, ErrInvalidValue)
	}
	return models.Genre(s), nil
}

// ParseShapeKind converts s to a ShapeKind, rejecting anything outside the known set
func ParseShapeKind(s string) (geometry.ShapeKind, error) {
	if !geometry.ValidShapeKinds[s] {
		return "", fmt.Errorf("shape %q must be one of: circle, square: %w", s, ErrInvalidValue)
	}
	return geometry.ShapeKind(s), nil
}
