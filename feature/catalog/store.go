package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// Snapshot keys under which the sync cycle caches full collections.
const (
	SnapshotKeyProducts   = "product_list"
	SnapshotKeyCategories = "categories_list"
)

// Store is the persistent catalog store, the sole source of truth. Lookups
// return (nil, nil) when the entity is absent; absence is not an error.
// Upserts apply a whole batch atomically.
type Store interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	CategoryByID(ctx context.Context, id string) (*models.Category, error)

	CountProducts(ctx context.Context, f Filter) (int64, error)
	ListProducts(ctx context.Context, f Filter, offset, limit int) ([]models.Product, error)
	AllProducts(ctx context.Context) ([]models.Product, error)

	CountCategories(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context, offset, limit int) ([]models.Category, error)
	AllCategories(ctx context.Context) ([]models.Category, error)

	UpsertProducts(ctx context.Context, products []models.Product) (int, error)
	UpsertCategories(ctx context.Context, categories []models.Category) (int, error)
}

// gormStore implements Store on top of a GORM connection.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database connection.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

func (s *gormStore) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	return &c, nil
}

func (s *gormStore) CountProducts(ctx context.Context, f Filter) (int64, error) {
	var count int64
	q := f.Scope(s.db.WithContext(ctx).Model(&models.Product{}))
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (s *gormStore) ListProducts(ctx context.Context, f Filter, offset, limit int) ([]models.Product, error) {
	var items []models.Product
	q := f.Scope(s.db.WithContext(ctx).Model(&models.Product{}))
	// Ordered by primary key so the store path pages in the same order as the
	// snapshot path.
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (s *gormStore) AllProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return items, nil
}

func (s *gormStore) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func (s *gormStore) ListCategories(ctx context.Context, offset, limit int) ([]models.Category, error) {
	var items []models.Category
	err := s.db.WithContext(ctx).Model(&models.Category{}).
		Order("id").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

func (s *gormStore) AllCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return items, nil
}

// UpsertProducts reconciles a feed batch into the store. Each incoming product
// is inserted if its id is unknown, otherwise all mutable fields are
// overwritten in place. The whole batch runs in one transaction: on any
// failure the store is left exactly as before the call. Products already in
// the store but absent from the batch are left untouched.
func (s *gormStore) UpsertProducts(ctx context.Context, products []models.Product) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, incoming := range products {
			var existing models.Product
			err := tx.First(&existing, "id = ?", incoming.ID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&incoming).Error; err != nil {
					return fmt.Errorf("insert product %s: %w", incoming.ID, err)
				}
			case err != nil:
				return fmt.Errorf("lookup product %s: %w", incoming.ID, err)
			default:
				// Overwrite every mutable field; the identifier is never rewritten.
				updates := map[string]any{
					"title":       incoming.Title,
					"price":       incoming.Price,
					"description": incoming.Description,
					"category":    incoming.Category,
					"image":       incoming.Image,
				}
				if err := tx.Model(&models.Product{}).Where("id = ?", incoming.ID).Updates(updates).Error; err != nil {
					return fmt.Errorf("update product %s: %w", incoming.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// UpsertCategories reconciles a category batch. Same semantics as
// UpsertProducts; the only mutable field is the name.
func (s *gormStore) UpsertCategories(ctx context.Context, categories []models.Category) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, incoming := range categories {
			var existing models.Category
			err := tx.First(&existing, "id = ?", incoming.ID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&incoming).Error; err != nil {
					return fmt.Errorf("insert category %s: %w", incoming.ID, err)
				}
			case err != nil:
				return fmt.Errorf("lookup category %s: %w", incoming.ID, err)
			default:
				if err := tx.Model(&models.Category{}).Where("id = ?", incoming.ID).
					Update("name", incoming.Name).Error; err != nil {
					return fmt.Errorf("update category %s: %w", incoming.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(categories), nil
}
