package period

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all calendar dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// DefaultMonthStartDay anchors monthly periods to the 1st unless the
// caller asks for a custom billing-cycle day.
const DefaultMonthStartDay = 1

// Kind selects the period resolution algorithm.
type Kind string

const (
	KindWeekly   Kind = "weekly"
	KindMonthly  Kind = "monthly"
	KindAll      Kind = "all"
	KindExplicit Kind = "explicit"
)

var ErrInvalidKind = errors.New("invalid period kind")

// ParseKind validates a period kind supplied by a caller. An empty
// value defaults to monthly; anything else unrecognized is a user
// input error, never a silent default.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindMonthly, nil
	case KindWeekly, KindMonthly, KindAll, KindExplicit:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Range is a resolved period window plus the equal-length window that
// immediately precedes it. All four bounds are nil for all-time; for
// every bounded range PrevEnd is exactly one day before Start and the
// previous window has the same length as the current one.
type Range struct {
	Start     *time.Time
	End       *time.Time
	PrevStart *time.Time
	PrevEnd   *time.Time
}

// Bounded reports whether the range carries concrete date filters.
func (r Range) Bounded() bool {
	return r.Start != nil && r.End != nil
}

// Resolve computes the current and previous period windows for a
// reference date. Rules apply in precedence order:
//
//  1. An explicit start/end pair that parses as valid dates wins over
//     everything else. Malformed or inverted pairs are ignored and
//     resolution falls through to the remaining rules; this leniency is
//     intentional and matches the documented API behavior.
//  2. Kind "all" yields an unbounded range with no comparison window.
//  3. Kind "weekly" anchors to the Monday of the reference date's week.
//  4. Anything else resolves monthly from monthStartDay, clamped to
//     [1,28] so the anchor exists in every month.
//
// The reference date's time-of-day is ignored.
func Resolve(ref time.Time, kind Kind, explicitStart, explicitEnd string, monthStartDay int) Range {
	ref = Truncate(ref)

	if explicitStart != "" && explicitEnd != "" {
		if r, ok := resolveExplicit(explicitStart, explicitEnd); ok {
			return r
		}
	}

	switch kind {
	case KindAll:
		return Range{}
	case KindWeekly:
		return resolveWeekly(ref)
	default:
		return resolveMonthly(ref, monthStartDay)
	}
}

func resolveExplicit(startStr, endStr string) (Range, bool) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return Range{}, false
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return Range{}, false
	}
	periodLen := DaysBetween(start, end) + 1
	if periodLen < 1 {
		// Inverted range; treat like a malformed one.
		return Range{}, false
	}
	return withPrevious(start, end), true
}

func resolveWeekly(ref time.Time) Range {
	// time.Weekday counts from Sunday; periods anchor on Monday.
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7
	start := ref.AddDate(0, 0, -daysSinceMonday)
	end := start.AddDate(0, 0, 6)
	return withPrevious(start, end)
}

func resolveMonthly(ref time.Time, startDay int) Range {
	if startDay < 1 {
		startDay = 1
	}
	if startDay > 28 {
		startDay = 28
	}

	y, m, d := ref.Year(), int(ref.Month()), ref.Day()

	var start, end time.Time
	if d >= startDay {
		// Current period began this calendar month.
		start = Date(y, m, ClampDay(y, m, startDay))
		ny, nm := NextMonth(y, m)
		nextStart := Date(ny, nm, ClampDay(ny, nm, startDay))
		end = nextStart.AddDate(0, 0, -1)
	} else {
		// Current period began last calendar month.
		py, pm := PrevMonth(y, m)
		start = Date(py, pm, ClampDay(py, pm, startDay))
		thisStart := Date(y, m, ClampDay(y, m, startDay))
		end = thisStart.AddDate(0, 0, -1)
	}

	return withPrevious(start, end)
}

// withPrevious attaches the immediately preceding window of equal
// length: prevEnd = start-1d, prevStart = start-periodLen days.
func withPrevious(start, end time.Time) Range {
	periodLen := DaysBetween(start, end) + 1
	prevStart := start.AddDate(0, 0, -periodLen)
	prevEnd := start.AddDate(0, 0, -1)
	return Range{
		Start:     &start,
		End:       &end,
		PrevStart: &prevStart,
		PrevEnd:   &prevEnd,
	}
}
