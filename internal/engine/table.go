package engine

import "github.com/fieldquote/fieldquote/pkg/domain"

// Table returns the full transition rule set. It is the single source of
// truth for legal phase changes; the dispatcher only scans it.
//
// Ordering is contractual: rules sharing (from, event) are distinguished by
// guards, and the first guard-satisfying rule in declaration order wins. The
// scoping self-loop is declared before the advance rules on purpose; tests
// pin this ordering.
func Table() []domain.Transition {
	return []domain.Transition{
		// Global: a restart phrase resets the conversation from any phase,
		// including done. This is the only exit from the terminal phase.
		{From: domain.PhaseAny, On: domain.EventStartNew, To: domain.PhaseGreeting, Action: actionReset},

		{From: domain.PhaseGreeting, On: domain.EventBegin, To: domain.PhaseJobSelection},
		// Naming a job type during the greeting skips the job menu.
		{From: domain.PhaseGreeting, On: domain.EventSelectJob, To: domain.PhaseScoping, Action: actionSelectJob},

		{From: domain.PhaseJobSelection, On: domain.EventSelectJob, To: domain.PhaseScoping, Action: actionSelectJob},

		{From: domain.PhaseScoping, On: domain.EventAnswerScoping, To: domain.PhaseScoping, Guard: guardMoreQuestions, Action: actionRecordAnswer},
		{From: domain.PhaseScoping, On: domain.EventAnswerScoping, To: domain.PhaseChecklist, Guard: guardLastQuestionWithChecklist, Action: actionRecordAnswer},
		{From: domain.PhaseScoping, On: domain.EventAnswerScoping, To: domain.PhaseLabor, Guard: guardLastQuestionNoChecklist, Action: actionRecordAnswer},

		{From: domain.PhaseChecklist, On: domain.EventConfirmChecklist, To: domain.PhaseProducts, Action: actionConfirmChecklist},
		{From: domain.PhaseChecklist, On: domain.EventSkipChecklist, To: domain.PhaseLabor, Action: actionSkipChecklist},

		{From: domain.PhaseProducts, On: domain.EventConfirmProducts, To: domain.PhaseLabor, Action: actionConfirmProducts},
		{From: domain.PhaseProducts, On: domain.EventSkipProducts, To: domain.PhaseLabor, Action: actionSkipProducts},

		{From: domain.PhaseLabor, On: domain.EventSetLabor, To: domain.PhaseMarkup, Action: actionSetLabor},

		{From: domain.PhaseMarkup, On: domain.EventSetMarkup, To: domain.PhaseReview, Action: actionSetMarkup},

		{From: domain.PhaseReview, On: domain.EventFinalize, To: domain.PhaseDone},
	}
}

// findRule scans the table for the first rule matching (phase, event) whose
// guard passes. Absence of a match is a normal, expected case handled by the
// dispatcher's clarify fallback, not an error.
func findRule(table []domain.Transition, phase domain.Phase, ctx *domain.Context, ev domain.Event) (domain.Transition, bool) {
	for _, rule := range table {
		if rule.Matches(phase, ctx, ev) {
			return rule, true
		}
	}
	return domain.Transition{}, false
}

// -- Guards --

func guardMoreQuestions(ctx *domain.Context, _ domain.Event) bool {
	return !ctx.OnLastQuestion()
}

func guardLastQuestionWithChecklist(ctx *domain.Context, _ domain.Event) bool {
	return ctx.OnLastQuestion() && ctx.HasChecklist()
}

func guardLastQuestionNoChecklist(ctx *domain.Context, _ domain.Event) bool {
	return ctx.OnLastQuestion() && !ctx.HasChecklist()
}

// -- Actions --
// All actions clone before mutating; the incoming context is never touched.

func actionReset(_ *domain.Context, _ domain.Event) *domain.Context {
	return domain.NewContext()
}

func actionSelectJob(ctx *domain.Context, ev domain.Event) *domain.Context {
	sel, ok := ev.(domain.SelectJob)
	if !ok || sel.Doc == nil {
		return ctx.Clone()
	}
	next := ctx.Clone()
	next.Tradecraft = sel.Doc
	next.QuoteName = sel.Doc.Title
	next.CurrentQuestionIndex = 0
	next.ScopingAnswers = make(map[string]string)
	next.PendingChecklist = make([]domain.ChecklistItem, len(sel.Doc.Checklist))
	copy(next.PendingChecklist, sel.Doc.Checklist)
	return next
}

func actionRecordAnswer(ctx *domain.Context, ev domain.Event) *domain.Context {
	ans, ok := ev.(domain.AnswerScoping)
	if !ok {
		return ctx.Clone()
	}
	next := ctx.Clone()
	next.ScopingAnswers[ans.QuestionID] = ans.Answer
	if next.Tradecraft != nil && next.CurrentQuestionIndex < len(next.Tradecraft.Questions) {
		next.CurrentQuestionIndex++
	}
	return next
}

func actionConfirmChecklist(ctx *domain.Context, ev domain.Event) *domain.Context {
	conf, ok := ev.(domain.ConfirmChecklist)
	if !ok {
		return ctx.Clone()
	}
	next := ctx.Clone()
	next.ConfirmedCategories = make([]string, len(conf.Categories))
	copy(next.ConfirmedCategories, conf.Categories)
	return next
}

func actionSkipChecklist(ctx *domain.Context, _ domain.Event) *domain.Context {
	next := ctx.Clone()
	next.PendingChecklist = nil
	next.ConfirmedCategories = nil
	return next
}

func actionConfirmProducts(ctx *domain.Context, _ domain.Event) *domain.Context {
	next := ctx.Clone()
	for _, p := range next.PendingProducts {
		next.QuoteItems = append(next.QuoteItems, domain.QuoteItem{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			UnitPrice: p.UnitPrice,
			Quantity:  1,
		})
	}
	next.PendingProducts = nil
	return next
}

func actionSkipProducts(ctx *domain.Context, _ domain.Event) *domain.Context {
	next := ctx.Clone()
	next.PendingProducts = nil
	return next
}

func actionSetLabor(ctx *domain.Context, ev domain.Event) *domain.Context {
	lab, ok := ev.(domain.SetLabor)
	if !ok {
		return ctx.Clone()
	}
	next := ctx.Clone()
	next.LaborHours = lab.Hours
	return next
}

func actionSetMarkup(ctx *domain.Context, ev domain.Event) *domain.Context {
	mk, ok := ev.(domain.SetMarkup)
	if !ok {
		return ctx.Clone()
	}
	next := ctx.Clone()
	next.MarkupPercent = mk.Percent
	return next
}
