package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldquote/fieldquote/internal/logging"
	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	"github.com/fieldquote/fieldquote/pkg/domain"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(memory.NewSeededTradecraftStore(), logging.NewNop())
}

func TestParse_RestartBeatsEverything(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	for _, phase := range []domain.Phase{
		domain.PhaseGreeting, domain.PhaseScoping, domain.PhaseLabor,
		domain.PhaseReview, domain.PhaseDone, domain.PhaseClarify,
	} {
		ev := p.Parse(context.Background(), phase, "start over", c)
		assert.Equal(t, domain.EventStartNew, ev.Kind(), "phase %s", phase)
	}
}

func TestParse_Greeting(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	cases := []struct {
		input string
		kind  domain.EventKind
	}{
		{"hi", domain.EventBegin},
		{"yes please", domain.EventBegin},
		{"Get Started", domain.EventBegin},
		{"panel upgrade", domain.EventSelectJob}, // job named up front
		{"mumble", domain.EventUnclear},
	}
	for _, tc := range cases {
		ev := p.Parse(context.Background(), domain.PhaseGreeting, tc.input, c)
		assert.Equal(t, tc.kind, ev.Kind(), "input %q", tc.input)
	}
}

func TestParse_JobSelection(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	ev := p.Parse(context.Background(), domain.PhaseJobSelection, "I need a Water Heater replaced", c)
	sel, ok := ev.(domain.SelectJob)
	require.True(t, ok, "got %T", ev)
	assert.Equal(t, "water_heater_replacement", sel.JobType)
	require.NotNil(t, sel.Doc)

	ev = p.Parse(context.Background(), domain.PhaseJobSelection, "build a rocket", c)
	assert.Equal(t, domain.EventUnclear, ev.Kind())
}

func TestParse_JobSelection_LongestKeywordWins(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	// "panel upgrade" contains both the "panel" and "panel upgrade" keywords;
	// the longer one decides, and here both point at the same document anyway.
	ev := p.Parse(context.Background(), domain.PhaseJobSelection, "panel upgrade in the garage", c)
	sel, ok := ev.(domain.SelectJob)
	require.True(t, ok)
	assert.Equal(t, "panel_upgrade", sel.JobType)
}

func TestParse_ScopingAnswer(t *testing.T) {
	p := newTestParser(t)
	c := scopingContext(t, 0)
	c.Tradecraft.Questions[0].Options = []string{"100 amp", "200 amp"}

	ev := p.Parse(context.Background(), domain.PhaseScoping, "200 AMP", c)
	ans, ok := ev.(domain.AnswerScoping)
	require.True(t, ok)
	assert.Equal(t, "q1", ans.QuestionID)
	assert.Equal(t, "200 amp", ans.Answer)

	// Substring containment both ways.
	ev = p.Parse(context.Background(), domain.PhaseScoping, "let's do 200 amp service", c)
	_, ok = ev.(domain.AnswerScoping)
	assert.True(t, ok)

	ev = p.Parse(context.Background(), domain.PhaseScoping, "whatever you think", c)
	assert.Equal(t, domain.EventUnclear, ev.Kind())
}

func TestParse_Checklist(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()
	c.PendingChecklist = []domain.ChecklistItem{
		{Category: "Breakers"},
		{Category: "Wire and conduit"},
		{Category: "Load centers"},
	}

	ev := p.Parse(context.Background(), domain.PhaseChecklist, "add all", c)
	conf, ok := ev.(domain.ConfirmChecklist)
	require.True(t, ok)
	assert.Len(t, conf.Categories, 3)

	ev = p.Parse(context.Background(), domain.PhaseChecklist, "no thanks", c)
	assert.Equal(t, domain.EventSkipChecklist, ev.Kind())

	// Comma-separated subset.
	ev = p.Parse(context.Background(), domain.PhaseChecklist, "just breakers and wire", c)
	conf, ok = ev.(domain.ConfirmChecklist)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Breakers", "Wire and conduit"}, conf.Categories)
}

func TestParse_LaborAndMarkup(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	ev := p.Parse(context.Background(), domain.PhaseLabor, "8 hours", c)
	lab, ok := ev.(domain.SetLabor)
	require.True(t, ok)
	assert.Equal(t, 8.0, lab.Hours)

	ev = p.Parse(context.Background(), domain.PhaseMarkup, "15%", c)
	mk, ok := ev.(domain.SetMarkup)
	require.True(t, ok)
	assert.Equal(t, 15.0, mk.Percent)

	ev = p.Parse(context.Background(), domain.PhaseMarkup, "no markup", c)
	mk, ok = ev.(domain.SetMarkup)
	require.True(t, ok)
	assert.Zero(t, mk.Percent)
}

func TestParse_ClarifyRedirectsToPreviousPhase(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()
	c.PreviousPhase = domain.PhaseLabor

	ev := p.Parse(context.Background(), domain.PhaseClarify, "half day", c)
	lab, ok := ev.(domain.SetLabor)
	require.True(t, ok)
	assert.Equal(t, 4.0, lab.Hours)

	ev = p.Parse(context.Background(), domain.PhaseClarify, "go back", c)
	assert.Equal(t, domain.EventGoBack, ev.Kind())
}

func TestParse_ClarifyCycleGuard(t *testing.T) {
	p := newTestParser(t)

	// A clarify that remembers nothing, or remembers clarify itself, cannot
	// be re-dispatched; parsing terminates in one step.
	for _, prev := range []domain.Phase{"", domain.PhaseClarify} {
		c := domain.NewContext()
		c.PreviousPhase = prev
		ev := p.Parse(context.Background(), domain.PhaseClarify, "8 hours", c)
		assert.Equal(t, domain.EventUnclear, ev.Kind(), "previous %q", prev)
	}
}

func TestParse_NeverReturnsNil(t *testing.T) {
	p := newTestParser(t)
	c := domain.NewContext()

	for _, phase := range []domain.Phase{
		domain.PhaseGreeting, domain.PhaseJobSelection, domain.PhaseScoping,
		domain.PhaseChecklist, domain.PhaseProducts, domain.PhaseLabor,
		domain.PhaseMarkup, domain.PhaseReview, domain.PhaseDone, domain.PhaseClarify,
	} {
		ev := p.Parse(context.Background(), phase, "@#$%^&*", c)
		require.NotNil(t, ev, "phase %s", phase)
		assert.Equal(t, domain.EventUnclear, ev.Kind(), "phase %s", phase)
	}
}

func TestMatchesAny_ShortPhrasesNeedBoundaries(t *testing.T) {
	vocab := []string{"no", "none", "skip"}

	assert.True(t, matchesAny("no", vocab))
	assert.True(t, matchesAny("no thanks", vocab))
	assert.True(t, matchesAny("please skip this", vocab))
	// "no" must not fire inside unrelated words.
	assert.False(t, matchesAny("normal", vocab))
	assert.False(t, matchesAny("nothing doing", vocab))
}
