package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// ValidationError reports a structural invariant violation on input data.
// It maps to a 400 at the API boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Product is a catalog entry. Price is an integer amount in minor
// currency units and is strictly positive for every stored record.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the catalog invariants: all descriptive fields present
// and a positive price. Called before any insertion.
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if p.ImageURL == "" {
		return &ValidationError{Field: "image_url", Reason: "must not be empty"}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "must be a positive number"}
	}
	return nil
}

// ProductPatch is a partial update to a catalog entry. Nil fields are
// left unchanged; a present Price must still be positive.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
}

// Empty reports whether the patch carries no fields at all.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.ImageURL == nil
}

// Apply merges the present fields of the patch into prod, field by field.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.ImageURL != nil {
		prod.ImageURL = *p.ImageURL
	}
}
