package query

import "strings"

// One wraps a single accessor so it can be used as Field.Values.
func One[T any](get func(T) string) func(T) []string {
	return func(rec T) []string { return []string{get(rec)} }
}

// Many joins several single-valued accessors, typically for text search.
func Many[T any](gets ...func(T) string) func(T) []string {
	return func(rec T) []string {
		out := make([]string, 0, len(gets))
		for _, g := range gets {
			out = append(out, g(rec))
		}
		return out
	}
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) float64 {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return float64(n)
}

// Sum adds up val over the items accepted by pred; a nil pred accepts everything.
func Sum[T any](items []T, val func(T) float64, pred func(T) bool) float64 {
	var total float64
	for _, it := range items {
		if pred == nil || pred(it) {
			total += val(it)
		}
	}
	return total
}

// CountBy counts items per key.
func CountBy[T any](items []T, key func(T) string) map[string]float64 {
	out := map[string]float64{}
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// Desc orders ISO date strings newest first.
func Desc(a, b string) int {
	return strings.Compare(b, a)
}
