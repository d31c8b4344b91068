// Package redis provides a product catalog searcher backed by Redis. Products
// are stored as hashes and indexed by lowercase name tokens, so a search is a
// set intersection followed by a bounded hash fetch.
package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	backend "github.com/redis/go-redis/v9"

	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Catalog implements ports.CatalogSearcher using Redis.
type Catalog struct {
	client *backend.Client
	prefix string
}

// Option configures the Catalog.
type Option func(*Catalog)

// WithPrefix sets the key prefix for catalog data.
func WithPrefix(prefix string) Option {
	return func(c *Catalog) {
		c.prefix = prefix
	}
}

// New creates a new Redis catalog with options.
func New(address, password string, db int, opts ...Option) *Catalog {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis catalog from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Catalog {
	c := &Catalog{
		client: client,
		prefix: "fieldquote:catalog:",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) productKey(id string) string {
	return c.prefix + "product:" + id
}

func (c *Catalog) tokenKey(token string) string {
	return c.prefix + "token:" + token
}

func (c *Catalog) categoryKey(category string) string {
	return c.prefix + "category:" + strings.ToLower(category)
}

// Seed indexes the given products. Existing entries with the same ID are
// overwritten.
func (c *Catalog) Seed(ctx context.Context, products ...domain.Product) error {
	pipe := c.client.Pipeline()
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		pipe.HSet(ctx, c.productKey(p.ID), map[string]any{
			"name":       p.Name,
			"category":   p.Category,
			"unit_price": p.UnitPrice,
		})
		for _, token := range tokenize(p.Name) {
			pipe.SAdd(ctx, c.tokenKey(token), p.ID)
		}
		if p.Category != "" {
			pipe.SAdd(ctx, c.categoryKey(p.Category), p.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// Search intersects the token sets of the term's words (plus the category
// set when given) and returns up to q.Limit products.
func (c *Catalog) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Product, error) {
	tokens := tokenize(q.Term)
	if len(tokens) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, c.tokenKey(t))
	}
	if q.Category != "" {
		keys = append(keys, c.categoryKey(q.Category))
	}

	ids, err := c.client.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	sort.Strings(ids) // Deterministic order

	limit := q.Limit
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}

	out := make([]domain.Product, 0, limit)
	for _, id := range ids[:limit] {
		fields, err := c.client.HGetAll(ctx, c.productKey(id)).Result()
		if err != nil {
			if err == backend.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to load product %s: %w", id, err)
		}
		if len(fields) == 0 {
			// Dangling index entry; skip rather than fail the search.
			continue
		}
		price, _ := strconv.ParseFloat(fields["unit_price"], 64)
		out = append(out, domain.Product{
			ID:        id,
			Name:      fields["name"],
			Category:  fields["category"],
			UnitPrice: price,
		})
	}
	return out, nil
}

// Close closes the redis client.
func (c *Catalog) Close() error {
	return c.client.Close()
}

func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()[]\"'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
