package fieldquote

import (
	"context"
	"log/slog"

	"github.com/fieldquote/fieldquote/internal/engine"
	"github.com/fieldquote/fieldquote/internal/logging"
	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Version is the library version, overridable at build time.
var Version = "0.3.0"

// StartPhase is where every new conversation begins.
const StartPhase = domain.PhaseGreeting

// Result re-exports the per-turn outcome so consumers never import internal
// packages.
type Result = engine.Result

// Engine is the high-level entry point for the FieldQuote library. It wraps
// the internal conversation engine and provides a simplified API.
type Engine struct {
	core    *engine.Engine
	trades  ports.TradecraftStore
	catalog ports.CatalogSearcher
	hooks   domain.ConversationHooks
	logger  *slog.Logger

	clarifyThreshold int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithTrades injects a custom tradecraft store, bypassing the built-in
// seeded one.
func WithTrades(store ports.TradecraftStore) Option {
	return func(e *Engine) {
		e.trades = store
	}
}

// WithCatalog injects a custom product catalog searcher.
func WithCatalog(catalog ports.CatalogSearcher) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.ConversationHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the logger used by the engine internals.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClarifyThreshold overrides how many consecutive unrecognized turns it
// takes before the clarify prompt escalates.
func WithClarifyThreshold(n int) Option {
	return func(e *Engine) {
		e.clarifyThreshold = n
	}
}

// titledStore is implemented by stores that can surface display titles for
// job-selection quick replies.
type titledStore interface {
	Titles(ctx context.Context) ([]string, error)
}

// New creates an Engine. Without options it runs on the built-in demo
// trades and catalog, so it works out of the box.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.trades == nil {
		e.trades = memory.NewSeededTradecraftStore()
	}
	if e.catalog == nil {
		e.catalog = memory.NewSeededCatalog()
	}

	coreOpts := []engine.Option{
		engine.WithLogger(e.logger),
		engine.WithHooks(e.hooks),
	}
	if e.clarifyThreshold > 0 {
		coreOpts = append(coreOpts, engine.WithClarifyThreshold(e.clarifyThreshold))
	}
	if ts, ok := e.trades.(titledStore); ok {
		if titles, err := ts.Titles(context.Background()); err == nil && len(titles) > 0 {
			coreOpts = append(coreOpts, engine.WithJobSuggestions(titles))
		}
	}

	e.core = engine.New(e.trades, e.catalog, coreOpts...)
	return e
}

// NewContext creates the context for a fresh conversation.
func (e *Engine) NewContext() *domain.Context {
	return domain.NewContext()
}

// Dispatch executes one conversation turn. The caller must pass the returned
// phase and context back verbatim on the next turn.
func (e *Engine) Dispatch(ctx context.Context, phase domain.Phase, c *domain.Context, input string, settings domain.Settings) *Result {
	return e.core.Dispatch(ctx, phase, c, input, settings)
}

// Trades exposes the tradecraft store, for introspection tooling.
func (e *Engine) Trades() ports.TradecraftStore {
	return e.trades
}
