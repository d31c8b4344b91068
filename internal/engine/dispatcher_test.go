package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return New(memory.NewSeededTradecraftStore(), memory.NewSeededCatalog(), opts...)
}

// step runs one turn and hands back the result, so conversation tests read
// top to bottom.
func step(t *testing.T, e *Engine, phase domain.Phase, c *domain.Context, input string) *Result {
	t.Helper()
	res := e.Dispatch(context.Background(), phase, c, input, domain.Settings{})
	require.NotNil(t, res)
	require.NotNil(t, res.Context)
	return res
}

func TestDispatch_FullConversation(t *testing.T) {
	e := newTestEngine(t)

	// Opening turn: no state, no input. The engine renders the greeting.
	res := step(t, e, domain.PhaseGreeting, nil, "")
	assert.Equal(t, domain.PhaseGreeting, res.Phase)
	assert.NotEmpty(t, res.Message)
	assert.False(t, res.IsComplete)

	res = step(t, e, res.Phase, res.Context, "hi")
	assert.Equal(t, domain.PhaseJobSelection, res.Phase)
	assert.Contains(t, res.QuickReplies, "Panel upgrade")

	res = step(t, e, res.Phase, res.Context, "panel upgrade")
	assert.Equal(t, domain.PhaseScoping, res.Phase)
	assert.Contains(t, res.Message, "Question 1 of 3")
	assert.Contains(t, res.QuickReplies, "200 amp")
	assert.Equal(t, "Panel upgrade", res.Context.QuoteName)

	res = step(t, e, res.Phase, res.Context, "200 amp")
	assert.Equal(t, domain.PhaseScoping, res.Phase)
	assert.Contains(t, res.Message, "Question 2 of 3")

	res = step(t, e, res.Phase, res.Context, "Garage")
	assert.Equal(t, domain.PhaseScoping, res.Phase)
	assert.Contains(t, res.Message, "Question 3 of 3")

	// Final answer; the job has a checklist, so the conversation moves there.
	res = step(t, e, res.Phase, res.Context, "yes")
	assert.Equal(t, domain.PhaseChecklist, res.Phase)
	require.NotNil(t, res.Display)
	assert.Equal(t, "checklist", res.Display.Kind)
	assert.Len(t, res.Display.Checklist, 3)

	res = step(t, e, res.Phase, res.Context, "add all")
	assert.Equal(t, domain.PhaseProducts, res.Phase)
	require.NotNil(t, res.Display)
	assert.Equal(t, "products", res.Display.Kind)
	assert.NotEmpty(t, res.Context.PendingProducts)
	// The checklist is consumed by the search; re-entering products cannot
	// re-run it.
	assert.Empty(t, res.Context.PendingChecklist)
	assert.Empty(t, res.Context.ConfirmedCategories)

	found := len(res.Context.PendingProducts)
	res = step(t, e, res.Phase, res.Context, "add to quote")
	assert.Equal(t, domain.PhaseLabor, res.Phase)
	assert.Len(t, res.Context.QuoteItems, found)
	assert.Empty(t, res.Context.PendingProducts)
	for _, item := range res.Context.QuoteItems {
		assert.Equal(t, 1.0, item.Quantity)
	}

	res = step(t, e, res.Phase, res.Context, "8 hours")
	assert.Equal(t, domain.PhaseMarkup, res.Phase)
	assert.Equal(t, 8.0, res.Context.LaborHours)
	// The rate is pinned from settings so the returned state stands alone.
	assert.Equal(t, domain.DefaultLaborRate, res.Context.LaborRate)

	res = step(t, e, res.Phase, res.Context, "20%")
	assert.Equal(t, domain.PhaseReview, res.Phase)
	require.NotNil(t, res.Display)
	require.NotNil(t, res.Display.Summary)
	sum := res.Display.Summary
	assert.Equal(t, 20.0, sum.MarkupPercent)
	assert.InDelta(t, 8*domain.DefaultLaborRate, sum.LaborTotal, 0.001)
	assert.InDelta(t, sum.MaterialsTotal+sum.LaborTotal, sum.GrandTotal, 0.01)

	res = step(t, e, res.Phase, res.Context, "finalize")
	assert.Equal(t, domain.PhaseDone, res.Phase)
	assert.True(t, res.IsComplete)

	// done is terminal except for a restart.
	res = step(t, e, res.Phase, res.Context, "what now")
	assert.Equal(t, domain.PhaseClarify, res.Phase)

	res = step(t, e, res.Phase, res.Context, "new quote")
	assert.Equal(t, domain.PhaseGreeting, res.Phase)
	assert.Empty(t, res.Context.QuoteItems)
	assert.Zero(t, res.Context.LaborHours)
}

func TestDispatch_GreetingJobShortcut(t *testing.T) {
	e := newTestEngine(t)

	// Naming the job up front skips the job menu entirely.
	res := step(t, e, domain.PhaseGreeting, nil, "water heater replacement")
	assert.Equal(t, domain.PhaseScoping, res.Phase)
	assert.Contains(t, res.Message, "Question 1 of 2")
}

func TestDispatch_SkipChecklistGoesToLabor(t *testing.T) {
	e := newTestEngine(t)

	res := step(t, e, domain.PhaseGreeting, nil, "interior painting")
	res = step(t, e, res.Phase, res.Context, "3-4 rooms")
	res = step(t, e, res.Phase, res.Context, "no")
	require.Equal(t, domain.PhaseChecklist, res.Phase)

	res = step(t, e, res.Phase, res.Context, "skip")
	assert.Equal(t, domain.PhaseLabor, res.Phase)
	assert.Empty(t, res.Context.PendingChecklist)
	assert.Empty(t, res.Context.QuoteItems)
}

func TestDispatch_ClarifyRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()

	res := step(t, e, domain.PhaseLabor, c, "banana")
	assert.Equal(t, domain.PhaseClarify, res.Phase)
	assert.Equal(t, domain.PhaseLabor, res.Context.PreviousPhase)
	assert.Equal(t, 1, res.Context.ClarifyAttempts)
	assert.Contains(t, res.Message, "hours")

	// A clarify answer is re-parsed against the interrupted phase, so a
	// valid labor answer leaves recovery and lands where it would have gone.
	res = step(t, e, res.Phase, res.Context, "8 hours")
	assert.Equal(t, domain.PhaseMarkup, res.Phase)
	assert.Equal(t, 8.0, res.Context.LaborHours)
	assert.Zero(t, res.Context.ClarifyAttempts)
	assert.Empty(t, res.Context.PreviousPhase)
}

func TestDispatch_ClarifyAttemptsAccumulate(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()

	res := step(t, e, domain.PhaseLabor, c, "banana")
	res = step(t, e, res.Phase, res.Context, "pineapple")
	assert.Equal(t, 2, res.Context.ClarifyAttempts)
	assert.Equal(t, domain.PhaseLabor, res.Context.PreviousPhase)

	res = step(t, e, res.Phase, res.Context, "mango")
	assert.Equal(t, 3, res.Context.ClarifyAttempts)
	// At the threshold the prompt escalates instead of repeating itself.
	assert.Contains(t, res.Message, "start over")
	assert.Equal(t, []string{"Start over", "Go back"}, res.QuickReplies)
}

func TestDispatch_GoBackLeavesClarify(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()

	res := step(t, e, domain.PhaseMarkup, c, "banana")
	require.Equal(t, domain.PhaseClarify, res.Phase)

	res = step(t, e, res.Phase, res.Context, "go back")
	assert.Equal(t, domain.PhaseMarkup, res.Phase)
	assert.Zero(t, res.Context.ClarifyAttempts)
	assert.Empty(t, res.Context.PreviousPhase)
	assert.Contains(t, res.Message, "markup")
}

func TestDispatch_StartOverFromClarify(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()
	c.LaborHours = 8

	res := step(t, e, domain.PhaseMarkup, c, "banana")
	res = step(t, e, res.Phase, res.Context, "start over")
	assert.Equal(t, domain.PhaseGreeting, res.Phase)
	assert.Zero(t, res.Context.LaborHours)
	assert.Zero(t, res.Context.ClarifyAttempts)
}

func TestDispatch_EmptyInputRendersWithoutClarify(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()

	// An empty turn re-renders the current prompt; it is not unclear input.
	res := step(t, e, domain.PhaseLabor, c, "   ")
	assert.Equal(t, domain.PhaseLabor, res.Phase)
	assert.Zero(t, res.Context.ClarifyAttempts)
	assert.Contains(t, res.Message, "hours")
}

func TestDispatch_InvalidPhaseDefaultsToGreeting(t *testing.T) {
	e := newTestEngine(t)

	res := step(t, e, domain.Phase("warp"), nil, "")
	assert.Equal(t, domain.PhaseGreeting, res.Phase)
}

func TestDispatch_RestartWinsInAnyPhase(t *testing.T) {
	e := newTestEngine(t)

	for _, phase := range []domain.Phase{
		domain.PhaseGreeting, domain.PhaseJobSelection, domain.PhaseScoping,
		domain.PhaseChecklist, domain.PhaseProducts, domain.PhaseLabor,
		domain.PhaseMarkup, domain.PhaseReview, domain.PhaseDone,
	} {
		c := domain.NewContext()
		c.LaborHours = 4
		res := step(t, e, phase, c, "start over")
		assert.Equal(t, domain.PhaseGreeting, res.Phase, "phase %s", phase)
		assert.Zero(t, res.Context.LaborHours, "phase %s", phase)
	}
}

func TestDispatch_DoesNotMutateInputContext(t *testing.T) {
	e := newTestEngine(t)
	c := domain.NewContext()
	c.LaborHours = 4

	before := *c
	_ = step(t, e, domain.PhaseLabor, c, "8 hours")
	assert.Equal(t, before.LaborHours, c.LaborHours)
	assert.Empty(t, c.Transcript)
}

func TestDispatch_TranscriptGrows(t *testing.T) {
	e := newTestEngine(t)

	res := step(t, e, domain.PhaseGreeting, nil, "hi")
	require.Len(t, res.Context.Transcript, 2)
	assert.Equal(t, "user", res.Context.Transcript[0].Role)
	assert.Equal(t, "hi", res.Context.Transcript[0].Content)
	assert.Equal(t, "assistant", res.Context.Transcript[1].Role)

	res = step(t, e, res.Phase, res.Context, "panel upgrade")
	assert.Len(t, res.Context.Transcript, 4)
}

// panickyStore simulates a backing store blowing up mid-dispatch.
type panickyStore struct{}

func (panickyStore) Get(context.Context, string) (*domain.Tradecraft, error) {
	panic("store exploded")
}
func (panickyStore) Match(context.Context, string) (*domain.Tradecraft, error) {
	panic("store exploded")
}
func (panickyStore) List(context.Context) ([]string, error) { return nil, nil }

var _ ports.TradecraftStore = panickyStore{}

func TestDispatch_PanicRecoversToGreeting(t *testing.T) {
	e := New(panickyStore{}, memory.NewSeededCatalog())

	res := e.Dispatch(context.Background(), domain.PhaseJobSelection, domain.NewContext(), "panel upgrade", domain.Settings{})
	require.NotNil(t, res)
	assert.Equal(t, domain.PhaseGreeting, res.Phase)
	assert.True(t, strings.Contains(res.Message, "something went wrong"))
	assert.False(t, res.IsComplete)
}

func TestDispatch_HooksFire(t *testing.T) {
	var transitions, clarifies int
	hooks := domain.ConversationHooks{
		OnTransition: func(_ context.Context, ev *domain.TransitionEvent) { transitions++ },
		OnClarify:    func(_ context.Context, ev *domain.ClarifyEvent) { clarifies++ },
	}
	e := newTestEngine(t, WithHooks(hooks))

	res := step(t, e, domain.PhaseGreeting, nil, "hi")
	assert.Equal(t, 1, transitions)

	_ = step(t, e, res.Phase, res.Context, "banana")
	assert.Equal(t, 1, clarifies)
}
