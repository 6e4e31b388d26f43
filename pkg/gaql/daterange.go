package gaql

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used by BETWEEN literals and by the
// segments.date field of metrics records.
const DateLayout = "2006-01-02"

// defaultWindowDays is the span of the window used when a query carries no
// date-range directive, or when the directive cannot be honored.
const defaultWindowDays = 30

// ResolveDateRange turns a date-range directive into a concrete start/end
// window anchored at now. It never fails:
//
//   - nil spec resolves to the 30 days ending at now;
//   - unknown DURING keywords fall back to the same 30-day default;
//   - BETWEEN bounds are taken verbatim, without reordering — an inverted
//     window matches zero days, which callers must treat as empty, not as an
//     error — and fall back to the default when a literal does not parse.
func ResolveDateRange(spec *DateRangeSpec, now time.Time) (start, end time.Time) {
	if spec == nil {
		return now.AddDate(0, 0, -defaultWindowDays), now
	}

	if spec.Kind == DateRangeBetween {
		s, errStart := time.Parse(DateLayout, spec.StartLiteral)
		e, errEnd := time.Parse(DateLayout, spec.EndLiteral)
		if errStart == nil && errEnd == nil {
			return s, e
		}
		return now.AddDate(0, 0, -defaultWindowDays), now
	}

	switch normalizeKeyword(spec.Keyword) {
	case "LAST_7_DAYS":
		return now.AddDate(0, 0, -7), now
	case "LAST_14_DAYS":
		return now.AddDate(0, 0, -14), now
	case "LAST_30_DAYS":
		return now.AddDate(0, 0, -30), now
	case "THIS_MONTH":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case "LAST_MONTH":
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfThis.AddDate(0, -1, 0), firstOfThis.AddDate(0, 0, -1)
	case "THIS_YEAR":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	}

	return now.AddDate(0, 0, -defaultWindowDays), now
}

// normalizeKeyword makes keyword matching case-insensitive and accepts the
// spelled-out form ("last 7 days") next to the canonical LAST_7_DAYS.
func normalizeKeyword(keyword string) string {
	k := strings.ToUpper(strings.TrimSpace(keyword))
	return strings.ReplaceAll(k, " ", "_")
}
