package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// Parser converts raw free-text input plus the current phase into exactly
// one typed event. It is total: unrecognized input becomes domain.Unclear,
// never an error, and input is never silently dropped.
type Parser struct {
	trades ports.TradecraftStore
	logger *slog.Logger
}

// NewParser creates a parser over the given tradecraft store.
func NewParser(trades ports.TradecraftStore, logger *slog.Logger) *Parser {
	return &Parser{trades: trades, logger: logger}
}

var restartPhrases = []string{
	"start over", "start a new quote", "start new", "new quote", "restart", "reset",
}

var beginPhrases = []string{
	"yes", "yeah", "yep", "sure", "ok", "okay", "start", "begin", "go",
	"hi", "hello", "hey", "get started", "start a quote", "quote",
}

var affirmPhrases = []string{
	"yes", "yeah", "yep", "sure", "ok", "okay", "confirm", "sounds good",
	"add them", "add all", "all", "all of them", "add to quote", "looks good",
}

var declinePhrases = []string{
	"no", "nope", "skip", "no thanks", "none", "not now", "pass",
}

var finalizePhrases = []string{
	"finalize", "finalise", "done", "finish", "yes", "confirm", "approve",
	"looks good", "create quote", "create the quote", "send it",
}

// Parse maps one user turn to an event for the given phase.
//
// Global restart phrases are recognized before any state-specific pattern,
// in any phase. When the conversation is in clarify, parsing re-dispatches
// against the remembered previous phase; the loop is bounded by an explicit
// cycle guard so it terminates in one step even on corrupt state.
func (p *Parser) Parse(ctx context.Context, phase domain.Phase, input string, c *domain.Context) domain.Event {
	norm := normalize(input)

	if matchesAny(norm, restartPhrases) {
		return domain.StartNew{}
	}

	// Bounded clarify redirection (never recurses).
	if phase == domain.PhaseClarify {
		if norm == "go back" || norm == "back" {
			return domain.GoBack{}
		}
		prev := c.PreviousPhase
		if prev == "" || prev == domain.PhaseClarify {
			// Cycle guard: a clarify that remembers clarify (or nothing)
			// cannot be re-dispatched.
			return domain.Unclear{Text: input}
		}
		phase = prev
	}

	switch phase {
	case domain.PhaseGreeting:
		// A job type named up front skips the job menu.
		if ev, ok := p.parseJobSelection(ctx, input, norm); ok {
			return ev
		}
		if matchesAny(norm, beginPhrases) {
			return domain.Begin{}
		}
	case domain.PhaseJobSelection:
		if ev, ok := p.parseJobSelection(ctx, input, norm); ok {
			return ev
		}
	case domain.PhaseScoping:
		if ev, ok := parseScopingAnswer(norm, c); ok {
			return ev
		}
	case domain.PhaseChecklist:
		if ev, ok := parseChecklist(norm, c); ok {
			return ev
		}
	case domain.PhaseProducts:
		if matchesAny(norm, affirmPhrases) {
			return domain.ConfirmProducts{}
		}
		if matchesAny(norm, declinePhrases) {
			return domain.SkipProducts{}
		}
	case domain.PhaseLabor:
		if hours, ok := parseHours(norm); ok {
			return domain.SetLabor{Hours: hours}
		}
	case domain.PhaseMarkup:
		if pct, ok := parsePercent(norm); ok {
			return domain.SetMarkup{Percent: pct}
		}
	case domain.PhaseReview:
		if matchesAny(norm, finalizePhrases) {
			return domain.Finalize{}
		}
	case domain.PhaseDone:
		// Only a restart leaves done; anything else is unclear.
	}

	return domain.Unclear{Text: input}
}

// parseJobSelection resolves free text to a tradecraft document. A keyword
// recognized without a loadable document degrades to no-match rather than
// erroring, per the lookup-failure policy.
func (p *Parser) parseJobSelection(ctx context.Context, input, norm string) (domain.Event, bool) {
	if norm == "" {
		return nil, false
	}
	doc, err := p.trades.Match(ctx, norm)
	if err != nil {
		if err != domain.ErrTradecraftNotFound {
			p.logger.Warn("tradecraft lookup failed", "err", err, "input", input)
		}
		return nil, false
	}
	return domain.SelectJob{JobType: doc.JobType, Doc: doc}, true
}

// parseScopingAnswer matches input against the current question's fixed
// quick-reply set: exact match first, then bidirectional substring
// containment. Never full NLP.
func parseScopingAnswer(norm string, c *domain.Context) (domain.Event, bool) {
	q := c.CurrentQuestion()
	if q == nil || norm == "" {
		return nil, false
	}
	for _, opt := range q.Options {
		if strings.EqualFold(norm, normalize(opt)) {
			return domain.AnswerScoping{QuestionID: q.ID, Answer: opt}, true
		}
	}
	for _, opt := range q.Options {
		optNorm := normalize(opt)
		if strings.Contains(norm, optNorm) || strings.Contains(optNorm, norm) {
			return domain.AnswerScoping{QuestionID: q.ID, Answer: opt}, true
		}
	}
	return nil, false
}

// parseChecklist recognizes a blanket yes/no, or a comma-separated subset of
// the pending categories.
func parseChecklist(norm string, c *domain.Context) (domain.Event, bool) {
	if !c.HasChecklist() {
		return nil, false
	}
	if matchesAny(norm, affirmPhrases) {
		all := make([]string, 0, len(c.PendingChecklist))
		for _, item := range c.PendingChecklist {
			all = append(all, item.Category)
		}
		return domain.ConfirmChecklist{Categories: all}, true
	}
	if matchesAny(norm, declinePhrases) {
		return domain.SkipChecklist{}, true
	}

	var subset []string
	for _, part := range splitList(norm) {
		for _, item := range c.PendingChecklist {
			cat := normalize(item.Category)
			if strings.Contains(part, cat) || strings.Contains(cat, part) {
				subset = append(subset, item.Category)
				break
			}
		}
	}
	if len(subset) > 0 {
		return domain.ConfirmChecklist{Categories: subset}, true
	}
	return nil, false
}

// -- text helpers --

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchesAny reports whether the normalized input equals, or starts a known
// phrase followed by punctuation-free text (prefix match), or contains it as
// a standalone phrase.
func matchesAny(norm string, vocab []string) bool {
	if norm == "" {
		return false
	}
	for _, phrase := range vocab {
		if norm == phrase || strings.HasPrefix(norm, phrase+" ") {
			return true
		}
		// Short words like "no" or "all" only match exactly or as a prefix;
		// substring containment would fire inside unrelated words.
		if len(phrase) >= 4 && strings.Contains(norm, phrase) {
			return true
		}
	}
	return false
}

func splitList(norm string) []string {
	norm = strings.ReplaceAll(norm, " and ", ",")
	parts := strings.Split(norm, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
