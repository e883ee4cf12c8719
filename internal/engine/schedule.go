// Package engine implements the cashflow projection engine: a pure,
// deterministic, side-effect-free transformation from a household's
// financial entities to a day-by-day balance forecast under two certainty
// scenarios.
//
// The engine performs no I/O, holds no state between invocations and never
// mutates its input; identical inputs produce identical output, so results
// are safe to cache and to compare by equality in tests. All money is
// int64 cents end to end.
package engine

import (
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// TwiceMonthlyFallback names the policy applied when a twice-monthly
// schedule carries no per-slot amounts.
type TwiceMonthlyFallback int

const (
	// TwiceMonthlyFullAmount pays the item's full amount on each of the two
	// dates, doubling the monthly total.
	TwiceMonthlyFullAmount TwiceMonthlyFallback = iota
	// TwiceMonthlySplitHalf divides the amount across the two dates; the
	// first slot takes the odd cent.
	TwiceMonthlySplitHalf
)

// normalizeDate strips time-of-day and location from t. Every date
// comparison inside the engine happens on normalized dates.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// isoWeekday maps Go's Sunday-based weekday to ISO numbering,
// 1=Monday .. 7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampDay resolves a 1..31 schedule day against a concrete month: a day
// past the end of the month fires on its last day instead of being
// skipped. Clamping is applied independently per month.
func clampDay(day, year int, month time.Month) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	return day
}

// expander resolves recurrence matches for one projection window. Its only
// state is the window start, which anchors biweekly parity when a schedule
// has no explicit anchor date.
type expander struct {
	windowStart time.Time
	fallback    TwiceMonthlyFallback
}

// occursOn reports whether the recurring item fires on date d and, if so,
// the resolved amount in cents. d must be a normalized date inside the
// projection window.
func (e expander) occursOn(item *domain.RecurringIncome, d time.Time) (int64, bool) {
	s := &item.Schedule
	switch s.Frequency {
	case domain.FrequencyWeekly:
		if isoWeekday(d) == s.Weekday {
			return item.AmountCents, true
		}

	case domain.FrequencyBiweekly:
		if isoWeekday(d) != s.Weekday {
			return 0, false
		}
		ref := e.biweeklyReference(s)
		// d and ref share a weekday and both are UTC midnights, so the
		// difference is an exact number of weeks.
		weeks := int(d.Sub(ref).Hours() / (24 * 7))
		if weeks%2 == 0 {
			return item.AmountCents, true
		}

	case domain.FrequencyMonthly:
		if d.Day() == clampDay(s.DayOfMonth, d.Year(), d.Month()) {
			return item.AmountCents, true
		}

	case domain.FrequencyTwiceMonthly:
		var total int64
		matched := false
		if d.Day() == clampDay(s.FirstDay, d.Year(), d.Month()) {
			total += e.slotAmount(item.AmountCents, s.FirstAmountCents, true)
			matched = true
		}
		if d.Day() == clampDay(s.SecondDay, d.Year(), d.Month()) {
			total += e.slotAmount(item.AmountCents, s.SecondAmountCents, false)
			matched = true
		}
		// Both slots can clamp onto the same month-end date; the single
		// event then carries the combined amount.
		if matched {
			return total, true
		}
	}
	return 0, false
}

// biweeklyReference returns the date whose week counts as week 0. An
// explicit anchor wins; otherwise the first matching weekday on or after
// the window start is used, so the cadence is stable for a fixed start
// date.
func (e expander) biweeklyReference(s *domain.Schedule) time.Time {
	if s.AnchorDate != nil {
		return normalizeDate(*s.AnchorDate)
	}
	d := e.windowStart
	for isoWeekday(d) != s.Weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// slotAmount resolves the amount for one twice-monthly slot: the per-slot
// override when present, else the fallback policy applied to the base
// amount.
func (e expander) slotAmount(base int64, override *int64, first bool) int64 {
	if override != nil {
		return *override
	}
	if e.fallback == TwiceMonthlySplitHalf {
		if first {
			return base - base/2
		}
		return base / 2
	}
	return base
}
