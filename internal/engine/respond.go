package engine

import (
	"fmt"
	"strings"

	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Response is the outward-facing part of a turn.
type Response struct {
	Message      string
	QuickReplies []string
	Display      *Display
}

// Display is an optional structured payload for chat UIs that can render
// rich cards alongside the message text.
type Display struct {
	Kind      string                 `json:"kind"` // "checklist", "products" or "summary"
	Checklist []domain.ChecklistItem `json:"checklist,omitempty"`
	Products  []domain.Product       `json:"products,omitempty"`
	Summary   *Summary               `json:"summary,omitempty"`
}

// defaultJobSuggestions seeds the job-selection quick replies when the
// facade does not supply the store's own job list.
var defaultJobSuggestions = []string{"Panel upgrade", "Water heater replacement", "Interior painting"}

// WithJobSuggestions sets the quick replies offered during job selection,
// typically the tradecraft store's job titles.
func WithJobSuggestions(jobs []string) Option {
	return func(e *Engine) {
		if len(jobs) > 0 {
			e.jobSuggestions = jobs
		}
	}
}

// respond maps (phase, context, triggering event, settings) to a response.
// It is pure and never calls back into Dispatch. Phases that turn out to
// have nothing to do (no questions left, empty checklist, zero products)
// override the returned phase to the next logical one and emit a
// transitional message instead of re-dispatching.
func (e *Engine) respond(phase domain.Phase, c *domain.Context, ev domain.Event, settings domain.Settings) (domain.Phase, Response) {
	switch phase {
	case domain.PhaseGreeting:
		return phase, e.respondGreeting(ev)
	case domain.PhaseJobSelection:
		return phase, e.respondJobSelection()
	case domain.PhaseScoping:
		return e.respondScoping(c)
	case domain.PhaseChecklist:
		return e.respondChecklist(c, "")
	case domain.PhaseProducts:
		return e.respondProducts(c, "")
	case domain.PhaseLabor:
		return phase, respondLabor("")
	case domain.PhaseMarkup:
		return phase, respondMarkup()
	case domain.PhaseReview:
		return phase, respondReview(c, settings)
	case domain.PhaseDone:
		return phase, respondDone(c, settings)
	case domain.PhaseClarify:
		return phase, e.respondClarify(c)
	}
	// Unreachable for valid phases; treat like a fresh greeting.
	return domain.PhaseGreeting, e.respondGreeting(ev)
}

func (e *Engine) respondGreeting(ev domain.Event) Response {
	msg := "Hi! I'm your quoting assistant. I'll walk you through building a quote step by step. What type of job is this?"
	if ev != nil && ev.Kind() == domain.EventStartNew {
		msg = "Fresh start! What type of job are you quoting?"
	}
	return Response{Message: msg, QuickReplies: e.jobSuggestions}
}

func (e *Engine) respondJobSelection() Response {
	return Response{
		Message:      "What type of job are you quoting? You can name it in your own words.",
		QuickReplies: e.jobSuggestions,
	}
}

func (e *Engine) respondScoping(c *domain.Context) (domain.Phase, Response) {
	q := c.CurrentQuestion()
	if q == nil {
		// No questions remain (or the document has none). Move straight on.
		if c.HasChecklist() {
			phase, resp := e.respondChecklist(c, "That covers the scoping. ")
			return phase, resp
		}
		return domain.PhaseLabor, respondLabor("That covers the scoping. ")
	}
	total := len(c.Tradecraft.Questions)
	msg := fmt.Sprintf("Question %d of %d: %s", c.CurrentQuestionIndex+1, total, q.Text)
	return domain.PhaseScoping, Response{Message: msg, QuickReplies: q.Options}
}

func (e *Engine) respondChecklist(c *domain.Context, prefix string) (domain.Phase, Response) {
	if !c.HasChecklist() {
		return domain.PhaseLabor, respondLabor(prefix + "There are no material suggestions for this job. ")
	}
	cats := make([]string, 0, len(c.PendingChecklist))
	for _, item := range c.PendingChecklist {
		cats = append(cats, item.Category)
	}
	msg := fmt.Sprintf("%sBased on your answers, I'd suggest materials in these categories: %s. Should I look up matching products?",
		prefix, strings.Join(cats, ", "))
	return domain.PhaseChecklist, Response{
		Message:      msg,
		QuickReplies: []string{"Add all", "Skip"},
		Display: &Display{
			Kind:      "checklist",
			Checklist: c.PendingChecklist,
		},
	}
}

func (e *Engine) respondProducts(c *domain.Context, prefix string) (domain.Phase, Response) {
	if len(c.PendingProducts) == 0 {
		return domain.PhaseLabor, respondLabor(prefix + "I couldn't find matching products in the catalog right now — you can add materials by hand later. ")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%sI found %d matching products:\n", prefix, len(c.PendingProducts))
	for _, p := range c.PendingProducts {
		fmt.Fprintf(&b, "- %s ($%.2f)\n", p.Name, p.UnitPrice)
	}
	b.WriteString("Add them to the quote?")
	return domain.PhaseProducts, Response{
		Message:      b.String(),
		QuickReplies: []string{"Add to quote", "Skip"},
		Display: &Display{
			Kind:     "products",
			Products: c.PendingProducts,
		},
	}
}

func respondLabor(prefix string) Response {
	return Response{
		Message:      prefix + "How many hours of labor should I include?",
		QuickReplies: []string{"4 hours", "8 hours", "Half day", "Full day"},
	}
}

func respondMarkup() Response {
	return Response{
		Message:      "Got it. What markup should I apply to materials? Labor is never marked up.",
		QuickReplies: []string{"10%", "15%", "20%", "No markup"},
	}
}

func respondReview(c *domain.Context, settings domain.Settings) Response {
	sum := Totals(c, settings)
	var b strings.Builder
	b.WriteString("Here's your quote so far:\n")
	fmt.Fprintf(&b, "- Materials: $%.2f", sum.MaterialsSubtotal)
	if sum.MarkupPercent > 0 {
		fmt.Fprintf(&b, " (+%.0f%% markup = $%.2f)", sum.MarkupPercent, sum.MaterialsTotal)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Labor: %.1f h × $%.2f/h = $%.2f\n", sum.LaborHours, sum.LaborRate, sum.LaborTotal)
	fmt.Fprintf(&b, "Total: $%.2f\n", sum.GrandTotal)
	b.WriteString("Shall I finalize it?")
	return Response{
		Message:      b.String(),
		QuickReplies: []string{"Finalize", "Start over"},
		Display: &Display{
			Kind:    "summary",
			Summary: &sum,
		},
	}
}

func respondDone(c *domain.Context, settings domain.Settings) Response {
	sum := Totals(c, settings)
	return Response{
		Message:      fmt.Sprintf("Done! Your quote comes to $%.2f. Say \"new quote\" whenever you want to start another.", sum.GrandTotal),
		QuickReplies: []string{"Start new quote"},
		Display: &Display{
			Kind:    "summary",
			Summary: &sum,
		},
	}
}

// clarifyReprompts are the state-specific re-prompts keyed by the phase
// clarify interrupted.
var clarifyReprompts = map[domain.Phase]string{
	domain.PhaseGreeting:     "Sorry, I didn't catch that. Say \"start\" when you're ready to build a quote.",
	domain.PhaseJobSelection: "Sorry, I don't recognize that job type yet. Try naming the work, like \"panel upgrade\" or \"water heater replacement\".",
	domain.PhaseScoping:      "Sorry, I didn't catch that — could you pick one of the suggested answers?",
	domain.PhaseChecklist:    "Sorry, I didn't catch that. Should I look up products for the suggested materials? Yes or no works.",
	domain.PhaseProducts:     "Sorry, I didn't catch that. Should I add the found products to the quote? Yes or no works.",
	domain.PhaseLabor:        "Sorry, I need the labor as a number of hours, like \"8 hours\" or \"half day\".",
	domain.PhaseMarkup:       "Sorry, I need the markup as a percentage, like \"15%\" — or say \"no markup\".",
	domain.PhaseReview:       "Sorry, I didn't catch that. Say \"finalize\" to lock the quote in, or \"start over\" to begin again.",
	domain.PhaseDone:         "This quote is already finalized. Say \"new quote\" to start another.",
}

func (e *Engine) respondClarify(c *domain.Context) Response {
	if c.ClarifyAttempts >= e.clarifyThreshold {
		return Response{
			Message:      "I'm having trouble understanding. Would you like to start over, or go back and try that step again?",
			QuickReplies: []string{"Start over", "Go back"},
		}
	}

	msg, ok := clarifyReprompts[c.PreviousPhase]
	if !ok {
		msg = "Sorry, I didn't catch that — could you rephrase?"
	}

	var quick []string
	switch c.PreviousPhase {
	case domain.PhaseScoping:
		if q := c.CurrentQuestion(); q != nil {
			quick = q.Options
		}
	case domain.PhaseChecklist:
		quick = []string{"Add all", "Skip"}
	case domain.PhaseProducts:
		quick = []string{"Add to quote", "Skip"}
	case domain.PhaseLabor:
		quick = []string{"4 hours", "8 hours", "Half day", "Full day"}
	case domain.PhaseMarkup:
		quick = []string{"10%", "15%", "20%", "No markup"}
	case domain.PhaseReview:
		quick = []string{"Finalize", "Start over"}
	case domain.PhaseJobSelection, domain.PhaseGreeting:
		quick = e.jobSuggestions
	}

	return Response{Message: msg, QuickReplies: quick}
}
