package engine

import (
	"context"
	"time"

	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Fan-out caps for the products-phase catalog search. The totals stay small
// so a single turn never issues an unbounded number of queries.
const (
	maxTermsPerItem   = 2
	maxResultsPerTerm = 3
)

// enrichProducts runs the bounded catalog search for each confirmed
// checklist item and attaches deduplicated candidates to the context. A
// failed or empty search for one term does not abort the others; partial
// results are acceptable.
func (e *Engine) enrichProducts(ctx context.Context, c *domain.Context) {
	confirmed := make(map[string]bool, len(c.ConfirmedCategories))
	for _, cat := range c.ConfirmedCategories {
		confirmed[cat] = true
	}

	trade := ""
	if c.Tradecraft != nil {
		trade = c.Tradecraft.Trade
	}

	seen := make(map[string]bool)
	var found []domain.Product
	queries := 0

	for _, item := range c.PendingChecklist {
		if !confirmed[item.Category] {
			continue
		}
		terms := item.SearchTerms
		if len(terms) == 0 {
			terms = []string{item.Category}
		}
		if len(terms) > maxTermsPerItem {
			terms = terms[:maxTermsPerItem]
		}
		for _, term := range terms {
			queries++
			products, err := e.catalog.Search(ctx, ports.SearchQuery{
				Term:     term,
				Category: item.Category,
				Limit:    maxResultsPerTerm,
			})
			if err != nil {
				e.logger.Warn("catalog search failed", "err", err, "term", term, "category", item.Category)
				continue
			}
			for _, p := range products {
				if p.ID == "" || seen[p.ID] {
					continue
				}
				seen[p.ID] = true
				found = append(found, p)
			}
		}
	}

	// Merge, never overwrite: candidates from an earlier turn that were not
	// yet confirmed stay in place.
	for _, p := range found {
		dup := false
		for _, existing := range c.PendingProducts {
			if existing.ID == p.ID {
				dup = true
				break
			}
		}
		if !dup {
			c.PendingProducts = append(c.PendingProducts, p)
		}
	}

	if e.hooks.OnEnrichment != nil {
		e.hooks.OnEnrichment(ctx, &domain.EnrichmentEvent{
			Timestamp: time.Now(),
			Trade:     trade,
			Queries:   queries,
			Results:   len(found),
		})
	}

	// Consume the checklist so re-entering products cannot re-run the search.
	c.PendingChecklist = nil
	c.ConfirmedCategories = nil
}
