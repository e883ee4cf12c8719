package engine

import (
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// statementKey identifies a credit card's due amount for one month.
type statementKey struct {
	cardID string
	year   int
	month  time.Month
}

// dayEvents is one day's event set, with running sums split by scenario
// eligibility. income holds the optimistic set; the pessimistic scenario
// sees only the guaranteed share of it. Expenses apply to both scenarios.
type dayEvents struct {
	income   []domain.IncomeEvent
	expenses []domain.ExpenseEvent

	optimisticIncomeCents int64
	guaranteedIncomeCents int64
	expenseCents          int64
}

func (ev *dayEvents) addIncome(e domain.IncomeEvent) {
	ev.income = append(ev.income, e)
	ev.optimisticIncomeCents += e.AmountCents
	if e.Certainty == domain.CertaintyGuaranteed {
		ev.guaranteedIncomeCents += e.AmountCents
	}
}

func (ev *dayEvents) addExpense(e domain.ExpenseEvent) {
	ev.expenses = append(ev.expenses, e)
	ev.expenseCents += e.AmountCents
}

// materializer walks the projection window day by day and emits at most
// one event per entity per day. It never mutates the input.
type materializer struct {
	in        *Input
	exp       expander
	overrides map[statementKey]int64
}

func newMaterializer(in *Input, windowStart time.Time, fallback TwiceMonthlyFallback) *materializer {
	overrides := make(map[statementKey]int64, len(in.FutureStatements))
	for _, fs := range in.FutureStatements {
		overrides[statementKey{fs.CardID, fs.TargetYear, time.Month(fs.TargetMonth)}] = fs.AmountCents
	}
	return &materializer{
		in:        in,
		exp:       expander{windowStart: windowStart, fallback: fallback},
		overrides: overrides,
	}
}

// eventsOn produces the income and expense events visible on day d.
// A recurring and a single-shot item may legitimately both fire on the
// same date; they are independent events and both appear. Zero or
// negative amounts are passed through untouched.
func (m *materializer) eventsOn(d time.Time) dayEvents {
	ev := dayEvents{
		income:   []domain.IncomeEvent{},
		expenses: []domain.ExpenseEvent{},
	}

	for i := range m.in.RecurringIncome {
		p := &m.in.RecurringIncome[i]
		if !p.IsActive {
			continue
		}
		amount, ok := m.exp.occursOn(p, d)
		if !ok {
			continue
		}
		ev.addIncome(domain.IncomeEvent{
			SourceID:    p.ID,
			SourceName:  p.Name,
			AmountCents: amount,
			Certainty:   p.Certainty,
		})
	}

	for i := range m.in.SingleShotIncome {
		s := &m.in.SingleShotIncome[i]
		if !sameDate(s.Date, d) {
			continue
		}
		ev.addIncome(domain.IncomeEvent{
			SourceID:    s.ID,
			SourceName:  s.Name,
			AmountCents: s.AmountCents,
			Certainty:   s.Certainty,
		})
	}

	for i := range m.in.FixedExpenses {
		f := &m.in.FixedExpenses[i]
		if !f.IsActive || d.Day() != clampDay(f.DueDay, d.Year(), d.Month()) {
			continue
		}
		ev.addExpense(domain.ExpenseEvent{
			SourceID:    f.ID,
			SourceName:  f.Name,
			SourceType:  domain.ExpenseSourceFixed,
			AmountCents: f.AmountCents,
		})
	}

	for i := range m.in.SingleShotExpenses {
		s := &m.in.SingleShotExpenses[i]
		if !sameDate(s.Date, d) {
			continue
		}
		ev.addExpense(domain.ExpenseEvent{
			SourceID:    s.ID,
			SourceName:  s.Name,
			SourceType:  domain.ExpenseSourceSingleShot,
			AmountCents: s.AmountCents,
		})
	}

	for i := range m.in.CreditCards {
		c := &m.in.CreditCards[i]
		if d.Day() != clampDay(c.DueDay, d.Year(), d.Month()) {
			continue
		}
		amount := c.StatementBalanceCents
		if o, ok := m.overrides[statementKey{c.ID, d.Year(), d.Month()}]; ok {
			amount = o
		}
		ev.addExpense(domain.ExpenseEvent{
			SourceID:    c.ID,
			SourceName:  c.Name,
			SourceType:  domain.ExpenseSourceCreditCard,
			AmountCents: amount,
		})
	}

	return ev
}
