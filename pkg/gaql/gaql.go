// Package gaql implements the query engine behind the googleAds:search
// endpoint. It parses a restricted GAQL-flavored SELECT/FROM/WHERE language,
// resolves relative and absolute date ranges, filters dynamically shaped
// records, projects dotted field paths into nested response objects, and
// paginates the result with offset-encoded tokens.
//
// The engine is deliberately tolerant: WHERE predicates it cannot tokenize
// are dropped, unknown DURING keywords fall back to a default window, and
// non-numeric operands to numeric comparisons evaluate to false. Integration
// clients depend on this laxity; do not turn these cases into hard errors.
package gaql

// Operators supported in WHERE predicates. Multi-character operators must be
// tried before their shorter counterparts when scanning.
const (
	OpEqual        = "="
	OpNotEqual     = "!="
	OpGreater      = ">"
	OpLess         = "<"
	OpGreaterEqual = ">="
	OpLessEqual    = "<="
	OpIn           = "IN"
	OpNotIn        = "NOT IN"
	OpLike         = "LIKE"
)

// Condition is a single WHERE predicate. Value holds the raw textual literal:
// quotes are stripped for scalar literals, parenthesized comma lists are kept
// verbatim for IN/NOT IN, and LIKE patterns keep their % wildcards.
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// DateRangeKind discriminates the two date-range forms of the language.
type DateRangeKind int

const (
	DateRangeDuring DateRangeKind = iota
	DateRangeBetween
)

// DateRangeSpec is an unresolved date-range directive extracted from the
// WHERE clause. It is resolved exactly once by ResolveDateRange.
type DateRangeSpec struct {
	Kind         DateRangeKind
	Keyword      string // DURING keyword, e.g. LAST_7_DAYS
	StartLiteral string // BETWEEN lower bound, ISO date
	EndLiteral   string // BETWEEN upper bound, ISO date
}

// ParsedQuery is the structured form of a query string. It is immutable once
// produced: built once per Parse call and only read afterwards.
//
// SelectFields preserves order and duplicates exactly as written. Conditions
// never contain a condition on a date field when DateRange is set.
type ParsedQuery struct {
	SelectFields []string
	Source       string
	Conditions   []Condition
	DateRange    *DateRangeSpec
}

// Record is one row of the searched collection: an arbitrarily nested
// key-value structure. Nested values are plain map[string]any. Records are
// read-only inputs to the engine; filtering and projection never mutate them.
type Record map[string]any
