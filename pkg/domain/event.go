package domain

// EventKind is the discriminator of the Event union. The transition table
// matches on kinds; the payloads are consumed by actions and responders.
type EventKind string

const (
	// EventStartNew resets the conversation from any phase.
	EventStartNew EventKind = "START_NEW"
	// EventBegin acknowledges the greeting and opens job selection.
	EventBegin EventKind = "BEGIN"
	// EventSelectJob picks a job type; carries the loaded tradecraft.
	EventSelectJob EventKind = "SELECT_JOB"
	// EventAnswerScoping answers the current scoping question.
	EventAnswerScoping EventKind = "ANSWER_SCOPING"
	// EventConfirmChecklist accepts (a subset of) the materials checklist.
	EventConfirmChecklist EventKind = "CONFIRM_CHECKLIST"
	// EventSkipChecklist declines the materials checklist entirely.
	EventSkipChecklist EventKind = "SKIP_CHECKLIST"
	// EventConfirmProducts accepts the pending product candidates.
	EventConfirmProducts EventKind = "CONFIRM_PRODUCTS"
	// EventSkipProducts declines the pending product candidates.
	EventSkipProducts EventKind = "SKIP_PRODUCTS"
	// EventSetLabor supplies labor hours.
	EventSetLabor EventKind = "SET_LABOR"
	// EventSetMarkup supplies the markup percentage.
	EventSetMarkup EventKind = "SET_MARKUP"
	// EventFinalize accepts the reviewed quote.
	EventFinalize EventKind = "FINALIZE"
	// EventGoBack leaves clarify toward the remembered phase.
	EventGoBack EventKind = "GO_BACK"
	// EventUnclear is the explicit "I don't understand" event. It is a
	// first-class event, never an error or a silent no-op.
	EventUnclear EventKind = "UNCLEAR"
)

// Event is the closed union of everything one user turn can mean. Each
// variant carries exactly the data its transition needs.
type Event interface {
	Kind() EventKind
	isEvent()
}

// StartNew resets the conversation.
type StartNew struct{}

// Begin moves past the greeting.
type Begin struct{}

// SelectJob picks a job type. Doc is the tradecraft loaded for it.
type SelectJob struct {
	JobType string
	Doc     *Tradecraft
}

// AnswerScoping answers one scoping question.
type AnswerScoping struct {
	QuestionID string
	Answer     string
}

// ConfirmChecklist confirms material categories for product search.
type ConfirmChecklist struct {
	Categories []string
}

// SkipChecklist declines material suggestions.
type SkipChecklist struct{}

// ConfirmProducts accepts the pending product candidates onto the quote.
type ConfirmProducts struct{}

// SkipProducts discards the pending product candidates.
type SkipProducts struct{}

// SetLabor supplies labor hours.
type SetLabor struct {
	Hours float64
}

// SetMarkup supplies the markup percentage applied to materials.
type SetMarkup struct {
	Percent float64
}

// Finalize accepts the reviewed quote.
type Finalize struct{}

// GoBack returns from clarify to the phase it interrupted.
type GoBack struct{}

// Unclear carries the original text of an unrecognized turn for logging.
type Unclear struct {
	Text string
}

func (StartNew) Kind() EventKind         { return EventStartNew }
func (Begin) Kind() EventKind            { return EventBegin }
func (SelectJob) Kind() EventKind        { return EventSelectJob }
func (AnswerScoping) Kind() EventKind    { return EventAnswerScoping }
func (ConfirmChecklist) Kind() EventKind { return EventConfirmChecklist }
func (SkipChecklist) Kind() EventKind    { return EventSkipChecklist }
func (ConfirmProducts) Kind() EventKind  { return EventConfirmProducts }
func (SkipProducts) Kind() EventKind     { return EventSkipProducts }
func (SetLabor) Kind() EventKind         { return EventSetLabor }
func (SetMarkup) Kind() EventKind        { return EventSetMarkup }
func (Finalize) Kind() EventKind         { return EventFinalize }
func (GoBack) Kind() EventKind           { return EventGoBack }
func (Unclear) Kind() EventKind          { return EventUnclear }

func (StartNew) isEvent()         {}
func (Begin) isEvent()            {}
func (SelectJob) isEvent()        {}
func (AnswerScoping) isEvent()    {}
func (ConfirmChecklist) isEvent() {}
func (SkipChecklist) isEvent()    {}
func (ConfirmProducts) isEvent()  {}
func (SkipProducts) isEvent()     {}
func (SetLabor) isEvent()         {}
func (SetMarkup) isEvent()        {}
func (Finalize) isEvent()         {}
func (GoBack) isEvent()           {}
func (Unclear) isEvent()          {}
