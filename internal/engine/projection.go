package engine

import (
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// DefaultProjectionDays is the window length used when Options leaves
// ProjectionDays unset.
const DefaultProjectionDays = 30

// Input is the full set of household entities the engine projects over.
// The engine treats it as an immutable snapshot; slices may be nil.
type Input struct {
	Accounts           []domain.Account
	RecurringIncome    []domain.RecurringIncome
	SingleShotIncome   []domain.SingleShotIncome
	FixedExpenses      []domain.FixedExpense
	SingleShotExpenses []domain.SingleShotExpense
	CreditCards        []domain.CreditCard
	FutureStatements   []domain.FutureStatement
}

// Options tunes one projection run.
type Options struct {
	// StartDate is the first projected day. The zero value means today
	// (normalized to a UTC calendar date).
	StartDate time.Time

	// ProjectionDays is the window length. Zero means
	// DefaultProjectionDays; negative values are rejected.
	ProjectionDays int

	// RejectNegative makes validation fail negative amounts and balances
	// with INVALID_AMOUNT. Off by default so a refund can be expressed as
	// a negative expense.
	RejectNegative bool

	// TwiceMonthlyFallback selects the amount policy for twice-monthly
	// schedules without per-slot amounts.
	TwiceMonthlyFallback TwiceMonthlyFallback
}

// Project computes the day-by-day balance forecast for the household under
// the optimistic (all income) and pessimistic (guaranteed income only)
// scenarios.
//
// The input is validated atomically up front; on failure a
// *domain.ErrProjectionInput is returned and no partial output is ever
// produced. The returned projection shares no memory with the input.
func Project(in *Input, opts Options) (*domain.CashflowProjection, error) {
	if err := validate(in, opts); err != nil {
		return nil, err
	}

	start := opts.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	start = normalizeDate(start)

	days := opts.ProjectionDays
	if days == 0 {
		days = DefaultProjectionDays
	}

	var startingBalance int64
	for i := range in.Accounts {
		if in.Accounts[i].AccountType == domain.AccountChecking {
			startingBalance += in.Accounts[i].BalanceCents
		}
	}

	m := newMaterializer(in, start, opts.TwiceMonthlyFallback)

	proj := &domain.CashflowProjection{
		StartDate:            start,
		EndDate:              start.AddDate(0, 0, days-1),
		StartingBalanceCents: startingBalance,
		Days:                 make([]domain.DailySnapshot, 0, days),
	}

	optimistic := scenarioFold{balance: startingBalance}
	pessimistic := scenarioFold{balance: startingBalance}

	for offset := 0; offset < days; offset++ {
		d := start.AddDate(0, 0, offset)
		ev := m.eventsOn(d)

		optimistic.apply(d, offset, ev.optimisticIncomeCents, ev.expenseCents)
		pessimistic.apply(d, offset, ev.guaranteedIncomeCents, ev.expenseCents)

		proj.Days = append(proj.Days, domain.DailySnapshot{
			Date:                    d,
			DayOffset:               offset,
			OptimisticBalanceCents:  optimistic.balance,
			PessimisticBalanceCents: pessimistic.balance,
			IncomeEvents:            ev.income,
			ExpenseEvents:           ev.expenses,
			IsOptimisticDanger:      optimistic.balance < 0,
			IsPessimisticDanger:     pessimistic.balance < 0,
		})
	}

	proj.Optimistic = optimistic.summary()
	proj.Pessimistic = pessimistic.summary()
	return proj, nil
}

// scenarioFold accumulates one scenario's running balance, totals and
// danger days over the single pass.
type scenarioFold struct {
	balance       int64
	totalIncome   int64
	totalExpenses int64
	dangerDays    []domain.DangerDay
}

func (s *scenarioFold) apply(d time.Time, offset int, incomeCents, expenseCents int64) {
	s.totalIncome += incomeCents
	s.totalExpenses += expenseCents
	s.balance += incomeCents - expenseCents
	if s.balance < 0 {
		s.dangerDays = append(s.dangerDays, domain.DangerDay{
			Date:         d,
			DayOffset:    offset,
			BalanceCents: s.balance,
		})
	}
}

func (s *scenarioFold) summary() domain.ScenarioSummary {
	danger := s.dangerDays
	if danger == nil {
		danger = []domain.DangerDay{}
	}
	return domain.ScenarioSummary{
		TotalIncomeCents:   s.totalIncome,
		TotalExpensesCents: s.totalExpenses,
		EndBalanceCents:    s.balance,
		DangerDays:         danger,
		DangerDayCount:     len(danger),
	}
}
