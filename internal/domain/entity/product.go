package entity

import "time"

// Product is a single menu item. Every product belongs to exactly one
// category in the same tenant schema.
type Product struct {
	ID           int64
	CategoryID   int64
	Name         string
	Description  *string
	Price        float64 // Positive, two decimal places.
	PhotoURL     *string
	Active       bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductPatch carries the fields of a partial product update.
// Nil means "leave unchanged".
type ProductPatch struct {
	CategoryID   *int64
	Name         *string
	Description  *string
	Price        *float64
	PhotoURL     *string
	Active       *bool
	DisplayOrder *int
}

// Empty reports whether the patch changes nothing.
func (p ProductPatch) Empty() bool {
	return p.CategoryID == nil && p.Name == nil && p.Description == nil &&
		p.Price == nil && p.PhotoURL == nil && p.Active == nil && p.DisplayOrder == nil
}
