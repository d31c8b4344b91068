package domain

// Guard is a pure predicate deciding whether a transition rule applies when
// several rules share the same (from, event) pair.
type Guard func(ctx *Context, ev Event) bool

// Action is a pure function producing the next context for a transition.
// Implementations must Clone before mutating.
type Action func(ctx *Context, ev Event) *Context

// Transition is one declarative rule of the state machine: when the
// conversation is in From (or From is the wildcard PhaseAny) and the turn
// parsed to an event of kind On, and Guard (if any) passes, the conversation
// moves to To with the context produced by Action (or unchanged if nil).
//
// The table is scanned in declaration order and the first matching,
// guard-satisfying rule wins. Rules that differ only by guard rely on that
// ordering; it is part of the contract, not an accident.
type Transition struct {
	From   Phase
	On     EventKind
	To     Phase
	Guard  Guard
	Action Action
}

// Matches reports whether this rule applies to the given phase, event and
// context. Wildcard From matches any phase.
func (t Transition) Matches(phase Phase, ctx *Context, ev Event) bool {
	if t.From != PhaseAny && t.From != phase {
		return false
	}
	if t.On != ev.Kind() {
		return false
	}
	if t.Guard != nil && !t.Guard(ctx, ev) {
		return false
	}
	return true
}
