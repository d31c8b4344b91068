package domain

// Phase identifies where the conversation currently is.
type Phase string

const (
	PhaseGreeting     Phase = "greeting"
	PhaseJobSelection Phase = "job_selection"
	PhaseScoping      Phase = "scoping"
	PhaseChecklist    Phase = "checklist"
	PhaseProducts     Phase = "products"
	PhaseLabor        Phase = "labor"
	PhaseMarkup       Phase = "markup"
	PhaseReview       Phase = "review"
	PhaseDone         Phase = "done"

	// PhaseClarify is the recovery phase entered whenever input cannot be
	// mapped to a legal transition. It always remembers which phase it
	// interrupted (Context.PreviousPhase).
	PhaseClarify Phase = "clarify"

	// PhaseAny is the wildcard "from" used by global transition rules.
	// It is never a valid current phase.
	PhaseAny Phase = "*"
)

// Phases lists every valid conversation phase, wildcard excluded.
var Phases = []Phase{
	PhaseGreeting,
	PhaseJobSelection,
	PhaseScoping,
	PhaseChecklist,
	PhaseProducts,
	PhaseLabor,
	PhaseMarkup,
	PhaseReview,
	PhaseDone,
	PhaseClarify,
}

// Valid reports whether p is a known conversation phase.
func (p Phase) Valid() bool {
	for _, known := range Phases {
		if p == known {
			return true
		}
	}
	return false
}

// Terminal reports whether the conversation is complete. The only way out of
// a terminal phase is the StartNew event.
func (p Phase) Terminal() bool {
	return p == PhaseDone
}
