// Package file provides a tradecraft store backed by a directory of YAML
// documents, one file per job type.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	"github.com/fieldquote/fieldquote/pkg/domain"
)

// TradecraftStore implements ports.TradecraftStore over a directory of YAML
// files. Documents are loaded once at construction; the store delegates
// matching to an in-memory index afterwards.
type TradecraftStore struct {
	dir   string
	index *memory.TradecraftStore
}

// New loads every *.yaml / *.yml document under dir.
func New(dir string) (*TradecraftStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tradecraft directory: %w", err)
	}

	index := memory.NewTradecraftStore()
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		doc, err := loadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		index.Add(doc)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no tradecraft documents found in %s", dir)
	}

	return &TradecraftStore{dir: dir, index: index}, nil
}

func loadDocument(path string) (*domain.Tradecraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tradecraft file %s: %w", path, err)
	}

	var doc domain.Tradecraft
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tradecraft file %s: %w", path, err)
	}
	if doc.JobType == "" {
		return nil, fmt.Errorf("tradecraft file %s is missing job_type", path)
	}
	if doc.Title == "" {
		doc.Title = doc.JobType
	}
	return &doc, nil
}

// Get retrieves the document for an exact job type.
func (s *TradecraftStore) Get(ctx context.Context, jobType string) (*domain.Tradecraft, error) {
	return s.index.Get(ctx, jobType)
}

// Match resolves free text to a document by keyword containment.
func (s *TradecraftStore) Match(ctx context.Context, input string) (*domain.Tradecraft, error) {
	return s.index.Match(ctx, input)
}

// List returns all known job types.
func (s *TradecraftStore) List(ctx context.Context) ([]string, error) {
	return s.index.List(ctx)
}

// Titles returns the display titles of all documents.
func (s *TradecraftStore) Titles(ctx context.Context) ([]string, error) {
	return s.index.Titles(ctx)
}
