package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultRating is assigned to products created without a rating.
const DefaultRating = 4.5

// Product represents a cake (or any other item) in the catalog.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string         `json:"name" gorm:"type:varchar(100);index" validate:"required,min=3,max=100"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	Category    string         `json:"category" gorm:"type:varchar(100);index" validate:"required,max=100"`
	Description string         `json:"description" gorm:"type:text" validate:"required,max=1000"`
	Image       string         `json:"image" gorm:"type:varchar(500)" validate:"required,max=500"`
	Rating      float64        `json:"rating" validate:"gte=0,lte=5"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductFilter narrows a catalog listing. Zero values match everything.
type ProductFilter struct {
	Search   string // substring of name or category, case-insensitive
	Category string // exact category, case-insensitive
}

// IsZero reports whether the filter matches the whole catalog.
func (f ProductFilter) IsZero() bool {
	return f.Search == "" && f.Category == ""
}
