package domain

import "time"

// QuoteItem is a single material line on the quote in progress.
type QuoteItem struct {
	ProductID   string  `json:"product_id,omitempty"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// Product is a catalog search result candidate, pending user confirmation.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

// ScopingQuestion is one question a tradecraft document asks before
// materials can be suggested.
type ScopingQuestion struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
}

// ChecklistItem is a material category suggested for a job, subject to user
// confirmation before the product search runs.
type ChecklistItem struct {
	Category string `json:"category" yaml:"category"`
	// SearchTerms seed the catalog search for this category.
	SearchTerms []string `json:"search_terms,omitempty" yaml:"search_terms,omitempty"`
}

// Tradecraft is the trade-specific domain record backing a job type. It
// supplies the scoping questions and the materials checklist.
type Tradecraft struct {
	JobType string `json:"job_type" yaml:"job_type"`
	Trade   string `json:"trade" yaml:"trade"`
	Title   string `json:"title" yaml:"title"`
	// Keywords are the phrases the parser matches against user input to
	// recognize this job type.
	Keywords  []string          `json:"keywords" yaml:"keywords"`
	Questions []ScopingQuestion `json:"questions" yaml:"questions"`
	Checklist []ChecklistItem   `json:"checklist" yaml:"checklist"`
}

// Message is one entry in the conversation transcript.
type Message struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings carries per-caller defaults supplied with each request.
type Settings struct {
	DefaultLaborRate     float64 `json:"default_labor_rate,omitempty"`
	DefaultMarkupPercent float64 `json:"default_markup_percent,omitempty"`
}

// DefaultLaborRate applies when the caller supplies no rate.
const DefaultLaborRate = 75.0

// LaborRate resolves the effective hourly rate for these settings.
func (s Settings) LaborRate() float64 {
	if s.DefaultLaborRate > 0 {
		return s.DefaultLaborRate
	}
	return DefaultLaborRate
}
