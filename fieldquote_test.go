package fieldquote_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldquote/fieldquote"
	"github.com/fieldquote/fieldquote/pkg/adapters/memory"
	"github.com/fieldquote/fieldquote/pkg/domain"
)

// Drives a complete quote through the public facade, the way an embedding
// application would: thread phase and context between turns, persist nothing
// on the engine side.
func TestEngine_HappyPath(t *testing.T) {
	eng := fieldquote.New()
	ctx := context.Background()
	settings := domain.Settings{DefaultLaborRate: 90}

	phase := fieldquote.StartPhase
	state := eng.NewContext()

	turn := func(input string) *fieldquote.Result {
		t.Helper()
		res := eng.Dispatch(ctx, phase, state, input, settings)
		require.NotNil(t, res)
		phase, state = res.Phase, res.Context
		return res
	}

	res := turn("")
	assert.Equal(t, domain.PhaseGreeting, res.Phase)

	res = turn("panel upgrade")
	assert.Equal(t, domain.PhaseScoping, res.Phase)

	turn("200 amp")
	turn("Garage")
	res = turn("yes")
	require.Equal(t, domain.PhaseChecklist, res.Phase)

	res = turn("add all")
	require.Equal(t, domain.PhaseProducts, res.Phase)
	require.NotEmpty(t, state.PendingProducts)

	res = turn("add to quote")
	require.Equal(t, domain.PhaseLabor, res.Phase)
	assert.NotEmpty(t, state.QuoteItems)

	res = turn("full day")
	require.Equal(t, domain.PhaseMarkup, res.Phase)
	assert.Equal(t, 8.0, state.LaborHours)
	assert.Equal(t, 90.0, state.LaborRate)

	res = turn("15%")
	require.Equal(t, domain.PhaseReview, res.Phase)
	require.NotNil(t, res.Display)
	require.NotNil(t, res.Display.Summary)
	assert.InDelta(t, 8*90.0, res.Display.Summary.LaborTotal, 0.001)

	res = turn("finalize")
	assert.Equal(t, domain.PhaseDone, res.Phase)
	assert.True(t, res.IsComplete)
}

func TestEngine_JobSuggestionsComeFromStore(t *testing.T) {
	store := memory.NewTradecraftStore()
	store.Add(&domain.Tradecraft{
		JobType:  "deck_build",
		Trade:    "carpentry",
		Title:    "Deck build",
		Keywords: []string{"deck"},
	})
	eng := fieldquote.New(fieldquote.WithTrades(store))

	res := eng.Dispatch(context.Background(), fieldquote.StartPhase, nil, "", domain.Settings{})
	assert.Equal(t, []string{"Deck build"}, res.QuickReplies)
}

func TestEngine_CustomClarifyThreshold(t *testing.T) {
	eng := fieldquote.New(fieldquote.WithClarifyThreshold(1))

	res := eng.Dispatch(context.Background(), domain.PhaseLabor, eng.NewContext(), "banana", domain.Settings{})
	require.Equal(t, domain.PhaseClarify, res.Phase)
	// With a threshold of one, the very first miss escalates.
	assert.Equal(t, []string{"Start over", "Go back"}, res.QuickReplies)
}

func TestEngine_TradesAccessor(t *testing.T) {
	eng := fieldquote.New()
	jobs, err := eng.Trades().List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, jobs, "panel_upgrade")
}
