package httpapi

import (
	"context"
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"github.com/fieldquote/fieldquote/pkg/domain"
	"github.com/fieldquote/fieldquote/pkg/ports"
)

// ChatRequest is the body of POST /chat. State is raw because it may arrive
// in the current {phase, context} shape or the legacy flat shape.
type ChatRequest struct {
	UserMessage  string          `json:"userMessage"`
	State        json.RawMessage `json:"state,omitempty"`
	UserSettings *UserSettings   `json:"userSettings,omitempty"`
}

// UserSettings carries per-caller defaults.
type UserSettings struct {
	DefaultLaborRate     float64 `json:"defaultLaborRate,omitempty"`
	DefaultMarkupPercent float64 `json:"defaultMarkupPercent,omitempty"`
}

// ChatResponse is the body of every /chat reply. Always HTTP 200.
type ChatResponse struct {
	Message      string         `json:"message"`
	QuickReplies []string       `json:"quickReplies"`
	Display      any            `json:"display,omitempty"`
	State        *ResponseState `json:"state"`
}

// ResponseState nests the current {phase, context} shape and mirrors the
// most-used context fields flat for legacy clients.
type ResponseState struct {
	Phase   domain.Phase    `json:"phase"`
	Context *domain.Context `json:"context"`

	// Flat mirror, consumed by pre-phase clients only.
	QuoteName     string             `json:"quoteName,omitempty"`
	QuoteItems    []domain.QuoteItem `json:"quoteItems"`
	LaborHours    float64            `json:"laborHours"`
	LaborRate     float64            `json:"laborRate"`
	MarkupPercent float64            `json:"markupPercent"`

	IsComplete bool `json:"isComplete"`
}

// currentState is the modern request state wrapper.
type currentState struct {
	Phase   domain.Phase    `json:"phase"`
	Context *domain.Context `json:"context"`
}

// legacyState is the flat shape old clients persisted: individual fields
// with no phase/context wrapper.
type legacyState struct {
	QuoteName     string             `mapstructure:"quoteName"`
	JobType       string             `mapstructure:"jobType"`
	QuoteItems    []domain.QuoteItem `mapstructure:"quoteItems"`
	LaborHours    float64            `mapstructure:"laborHours"`
	LaborRate     float64            `mapstructure:"laborRate"`
	MarkupPercent float64            `mapstructure:"markupPercent"`
	ScopingAnswers map[string]string `mapstructure:"scopingAnswers"`
}

// decodeState migrates whatever state shape the caller sent into the current
// {phase, context} pair. A missing or unreadable state yields a fresh
// greeting; migration never fails a request.
func decodeState(ctx context.Context, raw json.RawMessage, trades ports.TradecraftStore) (domain.Phase, *domain.Context) {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.PhaseGreeting, domain.NewContext()
	}

	// Current shape first: the phase discriminator is authoritative.
	var cur currentState
	if err := json.Unmarshal(raw, &cur); err == nil && cur.Phase.Valid() {
		if cur.Context == nil {
			cur.Context = domain.NewContext()
		}
		if cur.Context.ScopingAnswers == nil {
			cur.Context.ScopingAnswers = make(map[string]string)
		}
		if cur.Context.QuoteItems == nil {
			cur.Context.QuoteItems = []domain.QuoteItem{}
		}
		return cur.Phase, cur.Context
	}

	// Legacy flat shape.
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return domain.PhaseGreeting, domain.NewContext()
	}

	var legacy legacyState
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &legacy,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return domain.PhaseGreeting, domain.NewContext()
	}
	if err := decoder.Decode(asMap); err != nil {
		return domain.PhaseGreeting, domain.NewContext()
	}

	return migrateLegacy(ctx, legacy, trades)
}

// migrateLegacy rebuilds a {phase, context} pair from the flat fields,
// inferring a best-guess phase from which field groups are populated.
func migrateLegacy(ctx context.Context, legacy legacyState, trades ports.TradecraftStore) (domain.Phase, *domain.Context) {
	c := domain.NewContext()
	c.QuoteName = legacy.QuoteName
	if legacy.QuoteItems != nil {
		c.QuoteItems = legacy.QuoteItems
	}
	c.LaborHours = legacy.LaborHours
	c.LaborRate = legacy.LaborRate
	c.MarkupPercent = legacy.MarkupPercent
	if legacy.ScopingAnswers != nil {
		c.ScopingAnswers = legacy.ScopingAnswers
	}

	if legacy.JobType != "" && trades != nil {
		if doc, err := trades.Get(ctx, legacy.JobType); err == nil {
			c.Tradecraft = doc
			// Legacy clients only stored answers for questions already
			// asked; resume at the first unanswered one.
			idx := 0
			for _, q := range doc.Questions {
				if _, ok := c.ScopingAnswers[q.ID]; ok {
					idx++
				} else {
					break
				}
			}
			c.CurrentQuestionIndex = idx
		}
	}

	return inferLegacyPhase(legacy, c), c
}

// inferLegacyPhase picks the most advanced phase the stored fields support.
// Legacy clients only persisted a field group after the corresponding step
// completed, so the most advanced populated group is where they were.
func inferLegacyPhase(legacy legacyState, c *domain.Context) domain.Phase {
	switch {
	case legacy.MarkupPercent > 0:
		return domain.PhaseReview
	case legacy.LaborHours > 0:
		return domain.PhaseMarkup
	case len(legacy.QuoteItems) > 0:
		return domain.PhaseLabor
	case c.Tradecraft != nil && c.CurrentQuestionIndex < len(c.Tradecraft.Questions):
		return domain.PhaseScoping
	case c.Tradecraft != nil:
		return domain.PhaseLabor
	default:
		return domain.PhaseGreeting
	}
}

func toSettings(us *UserSettings) domain.Settings {
	if us == nil {
		return domain.Settings{}
	}
	return domain.Settings{
		DefaultLaborRate:     us.DefaultLaborRate,
		DefaultMarkupPercent: us.DefaultMarkupPercent,
	}
}
