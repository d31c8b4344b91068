// Package engine implements the conversation state machine that drives the
// guided quote-building dialogue: a declarative transition table, a total
// event parser, the per-request dispatcher, and the response generator.
package engine

import (
	"log/slog"

	"github.com/fieldquote/fieldquote/internal/logging"
	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// ClarifyEscalationThreshold is the number of consecutive unrecognized turns
// after which the clarify prompt switches to offering "Start over" / "Go back"
// instead of repeating the same re-prompt.
const ClarifyEscalationThreshold = 3

// Engine is the core conversation runner. It is stateless: every piece of
// mutable data is derived from the caller-supplied context, so one Engine
// value can serve all conversations concurrently.
type Engine struct {
	trades  ports.TradecraftStore
	catalog ports.CatalogSearcher
	table   []domain.Transition
	parser  *Parser
	hooks   domain.ConversationHooks
	logger  *slog.Logger

	clarifyThreshold int
	jobSuggestions   []string
}

// Option configures the Engine.
type Option func(*Engine)

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.ConversationHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClarifyThreshold overrides the escalation threshold.
func WithClarifyThreshold(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.clarifyThreshold = n
		}
	}
}

// New creates an Engine over the given tradecraft store and catalog searcher.
func New(trades ports.TradecraftStore, catalog ports.CatalogSearcher, opts ...Option) *Engine {
	e := &Engine{
		trades:           trades,
		catalog:          catalog,
		table:            Table(),
		logger:           logging.NewNop(),
		clarifyThreshold: ClarifyEscalationThreshold,
		jobSuggestions:   defaultJobSuggestions,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.parser = NewParser(trades, e.logger)
	return e
}
