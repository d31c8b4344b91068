package domain

import (
	"context"
	"time"
)

// TransitionEvent describes one applied transition rule.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      Phase     `json:"from"`
	To        Phase     `json:"to"`
	Event     EventKind `json:"event"`
}

// ClarifyEvent describes one fall into the clarify recovery phase.
type ClarifyEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      Phase     `json:"from"`
	Attempts  int       `json:"attempts"`
	// Input is the raw text that failed to match, kept for telemetry.
	Input string `json:"input,omitempty"`
}

// EnrichmentEvent describes one catalog search fan-out on entry to the
// products phase.
type EnrichmentEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Trade     string    `json:"trade"`
	Queries   int       `json:"queries"`
	Results   int       `json:"results"`
}

// ConversationHooks defines callbacks for engine observability. All fields
// are optional; the engine never blocks on them.
type ConversationHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnClarify    func(context.Context, *ClarifyEvent)
	OnEnrichment func(context.Context, *EnrichmentEvent)
}
