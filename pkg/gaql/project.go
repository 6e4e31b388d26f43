package gaql

import "strings"

// Project builds one output object per input record containing only the
// selected dotted paths, reconstructed at the same nested shape. Paths that do
// not fully resolve are omitted from the output object; there is no error and
// no null placeholder. Source records are never mutated.
func Project(records []Record, selectFields []string) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		out = append(out, projectRecord(rec, selectFields))
	}
	return out
}

func projectRecord(rec Record, selectFields []string) Record {
	dst := Record{}
	for _, field := range selectFields {
		v, ok := lookupPath(rec, field)
		if !ok {
			continue
		}
		writePath(dst, field, v)
	}
	return dst
}

// writePath writes v into dst at the given dotted path, creating intermediate
// objects as needed.
func writePath(dst Record, path string, v any) {
	segs := strings.Split(path, ".")
	cur := map[string]any(dst)
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = v
}
