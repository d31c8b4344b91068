package domain

// Context is the single piece of state threaded through every turn. The
// caller persists it between requests; the server never does. Transitions
// produce a new Context value via Clone, nothing is mutated in place.
type Context struct {
	QuoteName  string      `json:"quote_name,omitempty"`
	ClientName string      `json:"client_name,omitempty"`
	QuoteItems []QuoteItem `json:"quote_items"`

	LaborHours    float64 `json:"labor_hours"`
	LaborRate     float64 `json:"labor_rate"`
	MarkupPercent float64 `json:"markup_percent"`

	// Tradecraft is the loaded domain document for the selected job. Its
	// Questions drive the scoping phase.
	Tradecraft           *Tradecraft       `json:"tradecraft,omitempty"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	ScopingAnswers       map[string]string `json:"scoping_answers,omitempty"`

	// PendingChecklist holds the suggested material categories until the
	// user confirms or declines them. ConfirmedCategories records which of
	// them survived confirmation; together they drive the product search on
	// entry to the products phase, after which both are consumed.
	PendingChecklist    []ChecklistItem `json:"pending_checklist,omitempty"`
	ConfirmedCategories []string        `json:"confirmed_categories,omitempty"`

	// PendingProducts holds enrichment results awaiting confirmation.
	PendingProducts []Product `json:"pending_products,omitempty"`

	// PreviousPhase remembers which phase clarify interrupted.
	PreviousPhase Phase `json:"previous_phase,omitempty"`
	// ClarifyAttempts counts consecutive unrecognized turns. It only resets
	// on a successful transition back into productive flow or on StartNew.
	ClarifyAttempts int `json:"clarify_attempts"`

	Transcript []Message `json:"transcript,omitempty"`
}

// NewContext creates the context for a fresh conversation.
func NewContext() *Context {
	return &Context{
		QuoteItems:     []QuoteItem{},
		ScopingAnswers: make(map[string]string),
	}
}

// Clone returns a deep copy safe for mutation by a transition action. The
// tradecraft document is shared; it is read-only after load.
func (c *Context) Clone() *Context {
	if c == nil {
		return NewContext()
	}
	next := *c

	next.QuoteItems = make([]QuoteItem, len(c.QuoteItems))
	copy(next.QuoteItems, c.QuoteItems)

	next.ScopingAnswers = make(map[string]string, len(c.ScopingAnswers))
	for k, v := range c.ScopingAnswers {
		next.ScopingAnswers[k] = v
	}

	if c.PendingChecklist != nil {
		next.PendingChecklist = make([]ChecklistItem, len(c.PendingChecklist))
		copy(next.PendingChecklist, c.PendingChecklist)
	}
	if c.ConfirmedCategories != nil {
		next.ConfirmedCategories = make([]string, len(c.ConfirmedCategories))
		copy(next.ConfirmedCategories, c.ConfirmedCategories)
	}
	if c.PendingProducts != nil {
		next.PendingProducts = make([]Product, len(c.PendingProducts))
		copy(next.PendingProducts, c.PendingProducts)
	}
	if c.Transcript != nil {
		next.Transcript = make([]Message, len(c.Transcript))
		copy(next.Transcript, c.Transcript)
	}
	return &next
}

// CurrentQuestion returns the scoping question the conversation is on, or
// nil when none remain.
func (c *Context) CurrentQuestion() *ScopingQuestion {
	if c.Tradecraft == nil {
		return nil
	}
	if c.CurrentQuestionIndex < 0 || c.CurrentQuestionIndex >= len(c.Tradecraft.Questions) {
		return nil
	}
	return &c.Tradecraft.Questions[c.CurrentQuestionIndex]
}

// RemainingQuestions reports how many scoping questions are left, the
// current one included.
func (c *Context) RemainingQuestions() int {
	if c.Tradecraft == nil {
		return 0
	}
	remaining := len(c.Tradecraft.Questions) - c.CurrentQuestionIndex
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OnLastQuestion reports whether the current scoping question is the final
// one. Once it is answered no further scoping self-transition is legal.
func (c *Context) OnLastQuestion() bool {
	if c.Tradecraft == nil {
		return false
	}
	return c.CurrentQuestionIndex == len(c.Tradecraft.Questions)-1
}

// HasChecklist reports whether the selected job suggests any materials.
func (c *Context) HasChecklist() bool {
	return len(c.PendingChecklist) > 0
}
