package ports

import (
	"context"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// SearchQuery is one bounded catalog lookup.
type SearchQuery struct {
	// Term is the free-text search term.
	Term string
	// Category restricts results to a material category when non-empty,
	// suppressing cross-trade noise.
	Category string
	// Limit caps the number of results. Implementations must honor it.
	Limit int
}

// CatalogSearcher is the product catalog boundary. The engine issues a small
// bounded set of queries per products-phase entry; a failed or empty search
// for one term must not abort the others.
type CatalogSearcher interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.Product, error)
}
