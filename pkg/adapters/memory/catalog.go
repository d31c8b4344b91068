package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Catalog implements ports.CatalogSearcher with case-insensitive substring
// matching over an in-memory product list. Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalog creates a catalog over the given products.
func NewCatalog(products ...domain.Product) *Catalog {
	return &Catalog{products: products}
}

// NewSeededCatalog creates a catalog preloaded with the demo products.
func NewSeededCatalog() *Catalog {
	return NewCatalog(SeedProducts()...)
}

// Add appends products to the catalog.
func (c *Catalog) Add(products ...domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, products...)
}

// Search returns up to q.Limit products whose name contains every word of
// the search term, restricted to q.Category when set.
func (c *Catalog) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := strings.Fields(strings.ToLower(q.Term))
	if len(words) == 0 {
		return nil, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Product
	for _, p := range c.products {
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		name := strings.ToLower(p.Name)
		match := true
		for _, w := range words {
			if !strings.Contains(name, w) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		out = append(out, p)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}
