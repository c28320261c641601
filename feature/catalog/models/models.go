package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog product as persisted in the store. The ID comes from
// the ERP feed and never changes; every other field is overwritten on each
// reconciliation. The cache holds a denormalized JSON copy of the same struct.
type Product struct {
	ID          string          `gorm:"column:id;primaryKey;size:64" json:"id"`
	Title       string          `gorm:"column:title;size:255" json:"title"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Category    string          `gorm:"column:category;size:128" json:"category"`
	Image       string          `gorm:"column:image;size:512" json:"image"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// Category is a catalog category. Same ownership pattern as Product.
type Category struct {
	ID   string `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name string `gorm:"column:name;size:128" json:"name"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "categories"
}

// ProductPage is the paged result shape returned by product list queries.
// TotalCount is the number of products matching the filter, which may exceed
// len(Items).
type ProductPage struct {
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Items      []Product `json:"items"`
}

// CategoryPage is the paged result shape returned by category list queries.
type CategoryPage struct {
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Items      []Category `json:"items"`
}
