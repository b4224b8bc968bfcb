package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultPerPage is used when per_page is missing or out of range
	DefaultPerPage = 20
	// MaxPerPage caps per_page
	MaxPerPage = 100
)

// PageRequest is the page/per_page pair accepted by every listing
type PageRequest struct {
	Page    int `json:"page" form:"page"`
	PerPage int `json:"per_page" form:"per_page"`
}

// Normalize clamps the page to 1.. and per_page to 1..MaxPerPage
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Offset returns the row offset of the normalized page
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit returns the normalized page size
func (p PageRequest) Limit() int {
	return p.Normalize().PerPage
}

// Pagination describes the position of a page within a listing
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	PerPage     int   `json:"per_page"`
}

// NewPagination builds the pagination block; total_pages = ceil(total/per_page)
func NewPagination(req PageRequest, total int64) Pagination {
	n := req.Normalize()
	pages := int((total + int64(n.PerPage) - 1) / int64(n.PerPage))
	return Pagination{
		CurrentPage: n.Page,
		TotalPages:  pages,
		TotalItems:  total,
		PerPage:     n.PerPage,
	}
}

// Page is one page of a listing
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func newPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Pagination: NewPagination(req, total)}
}

// NewValidator returns a validator that reports fields by their json names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// Names must carry something other than whitespace
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// validate runs struct validation and converts the first failure to a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// notFound maps gorm.ErrRecordNotFound to the entity sentinel and wraps anything else
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// uniqueOr maps a unique violation to the given AlreadyExists sentinel
func uniqueOr(err error, sentinel error, action string) error {
	if _, ok := repository.UniqueViolation(err); ok {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// dedupe drops uuid.Nil and repeated ids, keeping first-seen order
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
