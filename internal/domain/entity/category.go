package entity

import "time"

// Category groups products inside one tenant's menu. Names are unique
// within a tenant's schema.
type Category struct {
	ID           int64
	Name         string
	Description  *string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryPatch carries the fields of a partial category update.
// Nil means "leave unchanged".
type CategoryPatch struct {
	Name         *string
	Description  *string
	DisplayOrder *int
	Active       *bool
}

// Empty reports whether the patch changes nothing.
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.DisplayOrder == nil && p.Active == nil
}
