package catalog

import (
	"errors"
	"fmt"
	"strings"

	"catalog-sync/feature/catalog/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvalidQuery marks query parameters rejected before any store or cache
// access. Handlers map it to a 400 response.
var ErrInvalidQuery = errors.New("invalid query")

// Filter narrows a product listing. The zero value matches everything.
type Filter struct {
	// Search is matched as a case-sensitive substring of the product title.
	Search string
	// MinPrice is an inclusive lower price bound.
	MinPrice *decimal.Decimal
	// MaxPrice is an inclusive upper price bound.
	MaxPrice *decimal.Decimal
}

// Validate rejects negative price bounds and inverted ranges.
func (f Filter) Validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return fmt.Errorf("%w: min_price must not be negative", ErrInvalidQuery)
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return fmt.Errorf("%w: max_price must not be negative", ErrInvalidQuery)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return fmt.Errorf("%w: min_price must not exceed max_price", ErrInvalidQuery)
	}
	return nil
}

// Match reports whether p passes the filter. This is the in-memory twin of
// Scope; the two must stay outcome-equivalent so a query answers identically
// no matter which data source serves it.
func (f Filter) Match(p models.Product) bool {
	if f.Search != "" && !strings.Contains(p.Title, f.Search) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Scope applies the filter to a store query. LIKE BINARY keeps the substring
// match case-sensitive regardless of column collation, mirroring
// strings.Contains on the snapshot path.
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	if f.Search != "" {
		db = db.Where("title LIKE BINARY ?", "%"+escapeLike(f.Search)+"%")
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	return db
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
