package gaql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// lookupPath walks a dotted path through the nested record structure. It
// returns false when any path segment is absent or when a non-mapping value
// is reached before the path is exhausted.
func lookupPath(rec Record, path string) (any, bool) {
	cur := any(map[string]any(rec))
	for seg := range strings.SplitSeq(path, ".") {
		m, ok := asMapping(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMapping(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Record:
		return t, true
	default:
		return nil, false
	}
}

// Matches applies one condition to a record. A condition whose field does not
// resolve never matches; it never fails.
func Matches(rec Record, c Condition) bool {
	v, ok := lookupPath(rec, c.Field)
	if !ok {
		return false
	}

	switch c.Operator {
	case OpEqual:
		return stringify(v) == c.Value
	case OpNotEqual:
		return stringify(v) != c.Value
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return compareNumeric(v, c.Value, c.Operator)
	case OpIn:
		return inList(stringify(v), c.Value)
	case OpNotIn:
		return !inList(stringify(v), c.Value)
	case OpLike:
		return likeMatch(stringify(v), c.Value)
	}

	return false
}

// Filter returns the records satisfying every condition, order preserved. An
// empty condition list retains all records.
func Filter(records []Record, conditions []Condition) []Record {
	if len(conditions) == 0 {
		return records
	}

	matched := make([]Record, 0, len(records))
	for _, rec := range records {
		keep := true
		for _, c := range conditions {
			if !Matches(rec, c) {
				keep = false
				break
			}
		}
		if keep {
			matched = append(matched, rec)
		}
	}
	return matched
}

// compareNumeric coerces both sides to numbers. Non-numeric operands make the
// condition false for every numeric operator; they never raise an error.
func compareNumeric(v any, literal, op string) bool {
	left, ok := toFloat(v)
	if !ok {
		return false
	}
	right, err := strconv.ParseFloat(strings.TrimSpace(literal), 64)
	if err != nil {
		return false
	}

	switch op {
	case OpGreater:
		return left > right
	case OpLess:
		return left < right
	case OpGreaterEqual:
		return left >= right
	case OpLessEqual:
		return left <= right
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// inList tests set membership against a parenthesized or bare comma list,
// e.g. ('ENABLED', 'PAUSED') or ENABLED,PAUSED.
func inList(value, list string) bool {
	list = strings.TrimSpace(list)
	list = strings.TrimPrefix(list, "(")
	list = strings.TrimSuffix(list, ")")

	for item := range strings.SplitSeq(list, ",") {
		if unquote(strings.TrimSpace(item)) == value {
			return true
		}
	}
	return false
}

// likeMatch converts % wildcards to a match-any-run regexp and tests the
// stringified field value against it, case-insensitively.
func likeMatch(value, pattern string) bool {
	parts := strings.Split(pattern, "%")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile("(?i)^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// stringify renders a field value for the string-based operators. Floats keep
// their shortest exact representation so 7.0 and 7 compare equal via numbers,
// not here.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
