package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-sync/core/storage"
)

// Source retrieves a raw feed document by path. Implementations cover the two
// ways an ERP publishes its catalog: an HTTP endpoint or an object-storage
// bucket. Either the full document is returned or an error; never partial data.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Source identifiers accepted by Config.Source.
const (
	SourceHTTP   = "http"
	SourceBucket = "bucket"
)

// Config holds configuration for the feed fetcher.
type Config struct {
	// Source selects where feed documents come from (http, bucket).
	Source string `mapstructure:"source" default:"http"`
	// BaseURL is the base URL of the ERP feed endpoint (http source).
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9800"`
	// ProductsPath is the path suffix of the products feed document.
	ProductsPath string `mapstructure:"products_path" default:"/products-sample-v1.json"`
	// CategoriesPath is the path suffix of the categories feed document.
	CategoriesPath string `mapstructure:"categories_path" default:"/categories-sample-v1.json"`
	// TimeoutSeconds bounds a single feed fetch so a dead endpoint cannot
	// block a scheduled sync cycle indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// NewSource creates a feed source based on the configuration. The bucket
// source requires an object storage client; pass nil for the http source.
func NewSource(cfg Config, store storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceHTTP, "":
		return NewHTTPSource(cfg), nil
	case SourceBucket:
		if store == nil {
			return nil, fmt.Errorf("bucket feed source requires an object storage client")
		}
		return NewBucketSource(store, bucket), nil
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}

// Records fetches the document at path from src and decodes it as a JSON array
// of T. The collection is returned whole or not at all.
func Records[T any](ctx context.Context, src Source, path string) ([]T, error) {
	data, err := src.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode feed %s: %w", path, err)
	}
	return records, nil
}
