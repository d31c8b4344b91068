package engine

import (
	"context"
	"strings"
	"time"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Result is the outcome of one dispatched turn. The caller must pass Phase
// and Context back verbatim on the next turn; the server keeps nothing.
type Result struct {
	Phase        domain.Phase
	Context      *domain.Context
	Message      string
	QuickReplies []string
	Display      *Display
	IsComplete   bool
}

// fallbackMessage is the fixed response produced when anything below the
// dispatch boundary panics. The conversational surface never shows a raw
// error.
const fallbackMessage = "Sorry, something went wrong on my end. Let's try that again — what type of job are you quoting?"

// Dispatch executes exactly one conversation turn: parse the input, scan the
// transition table, apply the matching rule (or fall back to clarify),
// perform the products-entry enrichment side effect, and generate the
// outward response.
//
// It is deterministic and side-effect-free for identical inputs, except for
// the single external catalog search on products entry.
func (e *Engine) Dispatch(ctx context.Context, phase domain.Phase, c *domain.Context, input string, settings domain.Settings) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("dispatch panicked, resetting conversation", "panic", r, "phase", phase)
			fresh := domain.NewContext()
			appendTurn(fresh, input, fallbackMessage)
			res = &Result{
				Phase:        domain.PhaseGreeting,
				Context:      fresh,
				Message:      fallbackMessage,
				QuickReplies: []string{"Start a quote"},
			}
		}
	}()

	if c == nil {
		c = domain.NewContext()
	}
	if !phase.Valid() {
		phase = domain.PhaseGreeting
	}

	// An empty turn is a render request (the opening of a conversation, or
	// a client re-fetching the current prompt), not an unclear event.
	if strings.TrimSpace(input) == "" {
		nc := c.Clone()
		next, resp := e.respond(phase, nc, nil, settings)
		appendTurn(nc, "", resp.Message)
		return &Result{
			Phase:        next,
			Context:      nc,
			Message:      resp.Message,
			QuickReplies: resp.QuickReplies,
			Display:      resp.Display,
			IsComplete:   next.Terminal(),
		}
	}

	ev := e.parser.Parse(ctx, phase, input, c)

	next, nc := e.transition(ctx, phase, c, ev, input)

	// Entry side effect: the catalog search runs once, on entry to products
	// with a confirmed, unconsumed checklist.
	if next == domain.PhaseProducts && len(nc.ConfirmedCategories) > 0 && nc.HasChecklist() {
		e.enrichProducts(ctx, nc)
	}

	// Pin the labor rate into the context the moment labor is collected, so
	// the returned state is fully self-describing for the next turn.
	if next == domain.PhaseMarkup && nc.LaborRate <= 0 {
		nc.LaborRate = settings.LaborRate()
	}

	next, resp := e.respond(next, nc, ev, settings)

	appendTurn(nc, input, resp.Message)

	return &Result{
		Phase:        next,
		Context:      nc,
		Message:      resp.Message,
		QuickReplies: resp.QuickReplies,
		Display:      resp.Display,
		IsComplete:   next.Terminal(),
	}
}

// transition resolves the next phase and context for a parsed event. When in
// clarify, the table is consulted against the remembered previous phase, so
// a successful answer leaves recovery and lands where the user would have
// gone originally.
func (e *Engine) transition(ctx context.Context, phase domain.Phase, c *domain.Context, ev domain.Event, input string) (domain.Phase, *domain.Context) {
	// "Go back" leaves clarify toward the remembered phase with a fresh
	// re-prompt. The target is dynamic, so a static table row cannot
	// express it; this and the clarify fallback below are the only paths
	// outside the table.
	if phase == domain.PhaseClarify && ev.Kind() == domain.EventGoBack {
		target := c.PreviousPhase
		if target == "" || target == domain.PhaseClarify {
			target = domain.PhaseGreeting
		}
		nc := c.Clone()
		nc.PreviousPhase = ""
		nc.ClarifyAttempts = 0
		e.emitTransition(ctx, phase, target, ev)
		return target, nc
	}

	lookupPhase := phase
	if phase == domain.PhaseClarify && c.PreviousPhase != "" {
		lookupPhase = c.PreviousPhase
	}

	rule, found := findRule(e.table, lookupPhase, c, ev)
	if !found {
		// The single, explicit fallback path. There is no other default.
		nc := c.Clone()
		if phase != domain.PhaseClarify {
			nc.PreviousPhase = phase
		}
		nc.ClarifyAttempts++
		if e.hooks.OnClarify != nil {
			raw := ""
			if u, ok := ev.(domain.Unclear); ok {
				raw = u.Text
			}
			e.hooks.OnClarify(ctx, &domain.ClarifyEvent{
				Timestamp: time.Now(),
				From:      lookupPhase,
				Attempts:  nc.ClarifyAttempts,
				Input:     raw,
			})
		}
		e.logger.Debug("no transition matched", "phase", phase, "event", ev.Kind(), "attempts", nc.ClarifyAttempts)
		return domain.PhaseClarify, nc
	}

	nc := c
	if rule.Action != nil {
		nc = rule.Action(c, ev)
	} else {
		nc = c.Clone()
	}

	// A successful transition out of clarify back into productive flow is
	// the only thing (besides StartNew) that resets the attempt counter.
	if rule.To != domain.PhaseClarify {
		nc.PreviousPhase = ""
		nc.ClarifyAttempts = 0
	}

	e.emitTransition(ctx, phase, rule.To, ev)
	return rule.To, nc
}

func (e *Engine) emitTransition(ctx context.Context, from, to domain.Phase, ev domain.Event) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		Timestamp: time.Now(),
		From:      from,
		To:        to,
		Event:     ev.Kind(),
	})
}

func appendTurn(c *domain.Context, userInput, reply string) {
	now := time.Now()
	if userInput != "" {
		c.Transcript = append(c.Transcript, domain.Message{Role: "user", Content: userInput, Timestamp: now})
	}
	c.Transcript = append(c.Transcript, domain.Message{Role: "assistant", Content: reply, Timestamp: now})
}
