/*
Package fieldquote is a stateless, turn-based conversational engine for
building trade quotes: pick a job type, answer scoping questions, confirm a
materials checklist and matching catalog products, add labor and markup,
review and finalize.

The engine keeps no server-side session. Every Dispatch call receives the
phase and context the caller got back on the previous turn and returns the
next pair; the caller owns continuity.

	eng := fieldquote.New()
	res := eng.Dispatch(ctx, fieldquote.StartPhase, eng.NewContext(), "panel upgrade", domain.Settings{})
	fmt.Println(res.Message)

Backing data (tradecraft documents, the product catalog) is pluggable via
the ports in pkg/ports; in-memory, YAML-directory and Redis adapters ship
under pkg/adapters.
*/
package fieldquote
