/*
Package domain contains the core domain models for the FieldQuote engine.

It defines the fundamental entities of the conversation state machine: the
conversation Phase, the closed Event union, the per-turn Context, and the
declarative Transition rules. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Phase: One of the fixed conversation phases (greeting ... done, clarify).
  - Event: A typed interpretation of one user turn (SelectJob, SetLabor, ...).
  - Context: Everything that must survive across turns, carried by the caller.
  - Transition: A rule mapping (phase, event kind) to the next phase, with an
    optional guard predicate and a pure context-producing action.
*/
package domain
