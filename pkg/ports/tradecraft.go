package ports

import (
	"context"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// TradecraftStore defines how the engine retrieves tradecraft documents.
// This allows the backing source (YAML directory, memory, remote catalog) to
// be decoupled from the conversation core.
type TradecraftStore interface {
	// Get retrieves the document for an exact job type.
	// Returns domain.ErrTradecraftNotFound if the job type is unknown.
	Get(ctx context.Context, jobType string) (*domain.Tradecraft, error)

	// Match resolves free-text user input to a document by keyword. The
	// match is case-insensitive substring containment against each
	// document's keyword list. Returns domain.ErrTradecraftNotFound when
	// nothing matches.
	Match(ctx context.Context, input string) (*domain.Tradecraft, error)

	// List returns all known job types, for introspection tooling.
	List(ctx context.Context) ([]string, error)
}
