// Package memory provides in-memory implementations of the FieldQuote ports,
// used by tests and as the out-of-the-box backing for the demo commands.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// TradecraftStore implements ports.TradecraftStore over an in-memory map.
// Safe for concurrent use.
type TradecraftStore struct {
	mu   sync.RWMutex
	docs map[string]*domain.Tradecraft
}

// NewTradecraftStore creates an empty store.
func NewTradecraftStore() *TradecraftStore {
	return &TradecraftStore{docs: make(map[string]*domain.Tradecraft)}
}

// NewSeededTradecraftStore creates a store preloaded with the built-in demo
// trades, so chat and serve work without any configuration.
func NewSeededTradecraftStore() *TradecraftStore {
	s := NewTradecraftStore()
	for _, doc := range SeedTrades() {
		s.Add(doc)
	}
	return s
}

// Add registers a document under its job type.
func (s *TradecraftStore) Add(doc *domain.Tradecraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.JobType] = doc
}

// Get retrieves the document for an exact job type.
func (s *TradecraftStore) Get(ctx context.Context, jobType string) (*domain.Tradecraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[jobType]
	if !ok {
		return nil, domain.ErrTradecraftNotFound
	}
	return doc, nil
}

// Match resolves free text to a document by case-insensitive keyword
// containment. The longest matching keyword wins, so "panel upgrade" beats a
// bare "panel" when both are registered.
func (s *TradecraftStore) Match(ctx context.Context, input string) (*domain.Tradecraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil, domain.ErrTradecraftNotFound
	}

	var best *domain.Tradecraft
	bestLen := 0
	for _, doc := range s.docs {
		for _, kw := range doc.Keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(needle, kw) && len(kw) > bestLen {
				best = doc
				bestLen = len(kw)
			}
		}
	}
	if best == nil {
		return nil, domain.ErrTradecraftNotFound
	}
	return best, nil
}

// List returns all known job types in deterministic order.
func (s *TradecraftStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Titles returns the display titles of all documents, sorted by job type.
// Used to seed job-selection quick replies.
func (s *TradecraftStore) Titles(ctx context.Context) ([]string, error) {
	jobs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	titles := make([]string, 0, len(jobs))
	for _, job := range jobs {
		titles = append(titles, s.docs[job].Title)
	}
	return titles, nil
}
