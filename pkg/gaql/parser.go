package gaql

import (
	"regexp"
	"strings"
)

// ParseError is the type of error returned by Parse when the SELECT or FROM
// clause is missing or malformed. Noise inside an otherwise well-formed WHERE
// clause is not a parse error; unmatchable predicates are dropped.
type ParseError struct {
	// Error message.
	Message string
}

// Error returns a formatted version of the error.
func (e ParseError) Error() string {
	return "query parse error: " + e.Message
}

var (
	// The grammar is whitespace-insensitive (queries are normalized before
	// matching) but keyword-order-sensitive: SELECT before FROM before WHERE.
	selectFromRe = regexp.MustCompile(`(?i)^SELECT\s+(.+?)\s+FROM\s+(\w+)`)
	whereRe      = regexp.MustCompile(`(?i)^\s*WHERE\s+(.+)$`)

	// ORDER BY and LIMIT are recognized only as clause terminators; they are
	// not interpreted.
	terminatorRe = regexp.MustCompile(`(?i)\s+(ORDER\s+BY|LIMIT)\b`)

	// Multi-character operators come before their shorter counterparts so the
	// scanner never mis-tokenizes ">=" as ">" or "NOT IN" as a field.
	predicateRe = regexp.MustCompile(`(?i)^([\w.]+)\s*(>=|<=|!=|NOT\s+IN|IN|LIKE|=|>|<)\s*(.+)$`)

	betweenRe = regexp.MustCompile(`(?i)\b((?:\w+\.)*date)\s+BETWEEN\s+'([^']*)'\s+AND\s+'([^']*)'`)
	duringRe  = regexp.MustCompile(`(?i)\b((?:\w+\.)*date)\s+DURING\s+(\w+)`)
)

// Parse turns a raw query string into a ParsedQuery. It fails with ParseError
// when the SELECT or FROM clause is absent or unmatchable; everything after a
// well-formed SELECT ... FROM is scanned best-effort.
func Parse(query string) (*ParsedQuery, error) {
	q := strings.Join(strings.Fields(query), " ")

	m := selectFromRe.FindStringSubmatch(q)
	if m == nil {
		return nil, ParseError{Message: "expected SELECT <fields> FROM <entity>"}
	}

	var fields []string
	for _, f := range strings.Split(m[1], ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil, ParseError{Message: "SELECT clause names no fields"}
	}

	parsed := &ParsedQuery{
		SelectFields: fields,
		Source:       m[2],
	}

	rest := q[len(m[0]):]
	if wm := whereRe.FindStringSubmatch(rest); wm != nil {
		clause := wm[1]
		if loc := terminatorRe.FindStringIndex(clause); loc != nil {
			clause = clause[:loc[0]]
		}
		parsed.Conditions, parsed.DateRange = parseWhere(clause)
	}

	return parsed, nil
}

// parseWhere scans a WHERE clause left to right. Date-range directives are
// extracted first (BETWEEN before DURING, since BETWEEN contains an AND that
// must not act as a predicate separator); the remaining comma/AND/OR-separated
// predicates become generic conditions. Anything that fails to tokenize is
// silently dropped.
func parseWhere(clause string) ([]Condition, *DateRangeSpec) {
	var dateRange *DateRangeSpec

	if m := betweenRe.FindStringSubmatch(clause); m != nil {
		dateRange = &DateRangeSpec{
			Kind:         DateRangeBetween,
			StartLiteral: m[2],
			EndLiteral:   m[3],
		}
		clause = strings.Replace(clause, m[0], " ", 1)
	}
	if m := duringRe.FindStringSubmatch(clause); m != nil {
		if dateRange == nil {
			dateRange = &DateRangeSpec{
				Kind:    DateRangeDuring,
				Keyword: m[2],
			}
		}
		clause = strings.Replace(clause, m[0], " ", 1)
	}

	var conditions []Condition
	for _, part := range splitPredicates(clause) {
		m := predicateRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		field := m[1]
		if dateRange != nil && isDateField(field) {
			// A date field already drives the query window; it must not also
			// appear in the generic condition list.
			continue
		}
		op := normalizeOperator(m[2])
		conditions = append(conditions, Condition{
			Field:    field,
			Operator: op,
			Value:    normalizeValue(op, m[3]),
		})
	}

	return conditions, dateRange
}

// splitPredicates splits a WHERE clause on commas and the AND/OR keywords,
// ignoring separators inside parentheses and quoted strings.
func splitPredicates(clause string) []string {
	var parts []string
	var buf strings.Builder
	var quote rune
	depth := 0

	flush := func() {
		if p := strings.TrimSpace(buf.String()); p != "" {
			parts = append(parts, p)
		}
		buf.Reset()
	}

	rs := []rune(clause)
	for i := 0; i < len(rs); {
		ch := rs[i]

		if quote == 0 && depth == 0 && (i == 0 || rs[i-1] == ' ') {
			if n := separatorLen(rs[i:]); n > 0 {
				flush()
				i += n
				continue
			}
		}

		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
			buf.WriteRune(ch)
		case ch == '\'' || ch == '"':
			quote = ch
			buf.WriteRune(ch)
		case ch == '(':
			depth++
			buf.WriteRune(ch)
		case ch == ')':
			if depth > 0 {
				depth--
			}
			buf.WriteRune(ch)
		case depth == 0 && ch == ',':
			flush()
		default:
			buf.WriteRune(ch)
		}
		i++
	}
	flush()

	return parts
}

// separatorLen reports the length of an AND/OR separator word starting at the
// head of rs, or 0 when rs does not start with one.
func separatorLen(rs []rune) int {
	end := 0
	for end < len(rs) && rs[end] != ' ' {
		end++
	}
	switch strings.ToUpper(string(rs[:end])) {
	case "AND", "OR":
		return end
	}
	return 0
}

func normalizeOperator(op string) string {
	op = strings.ToUpper(op)
	// "NOT   IN" collapses to the canonical two-word form.
	return strings.Join(strings.Fields(op), " ")
}

// normalizeValue strips the quotes around scalar literals. IN/NOT IN lists are
// kept verbatim; the evaluator parses them.
func normalizeValue(op, raw string) string {
	raw = strings.TrimSpace(raw)
	if op == OpIn || op == OpNotIn {
		return raw
	}
	return unquote(raw)
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// isDateField reports whether the final segment of a dotted path is "date",
// e.g. segments.date.
func isDateField(field string) bool {
	segs := strings.Split(field, ".")
	return strings.EqualFold(segs[len(segs)-1], "date")
}
