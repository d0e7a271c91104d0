package query

import (
	"slices"
	"strings"
)

// DefaultPageSize is used when a caller passes a page size below 1.
const DefaultPageSize = 8

// Kind tells the engine how a filter value is matched against a record.
type Kind string

const (
	KindText     Kind = "text"     // case-insensitive substring over any value
	KindEnum     Kind = "enum"     // exact match against any value
	KindDateFrom Kind = "dateFrom" // value >= bound (ISO date strings)
	KindDateTo   Kind = "dateTo"   // value <= bound (ISO date strings)
)

// Criteria maps a filter key to the requested value. Missing or empty values are ignored.
type Criteria map[string]string

// Get returns the trimmed value for key.
func (c Criteria) Get(key string) string {
	return strings.TrimSpace(c.raw(key))
}

func (c Criteria) raw(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}

// Field describes one filterable attribute of T.
type Field[T any] struct {
	Name  string
	Kind  Kind
	Values func(T) []string

	// MissingMatches lets records without any value pass date bounds.
	MissingMatches bool
}

// Spec is the per-domain configuration consumed by Run.
type Spec[T any] struct {
	Fields    []Field[T]
	Compare   func(a, b T) int
	Summarize func(filtered []T) map[string]float64
}

// Result is a page of records plus aggregates over the whole filtered set.
type Result[T any] struct {
	Items       []T                `json:"items"`
	TotalItems  int                `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Summaries   map[string]float64 `json:"summaries"`
}

// Run filters, sorts, summarizes and paginates records. It never mutates records
// and never fails: bad filter values simply match nothing.
func Run[T any](records []T, spec Spec[T], criteria Criteria, page, pageSize int) Result[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(records, spec.Fields, criteria)
	if spec.Compare != nil {
		slices.SortStableFunc(filtered, spec.Compare)
	}

	summaries := map[string]float64{}
	if spec.Summarize != nil {
		if s := spec.Summarize(filtered); s != nil {
			summaries = s
		}
	}

	total := len(filtered)
	return Result[T]{
		Items:       Page(filtered, page, pageSize),
		TotalItems:  total,
		TotalPages:  TotalPages(total, pageSize),
		CurrentPage: page,
		Summaries:   summaries,
	}
}

// Filter returns a new slice holding the records that satisfy every active field.
func Filter[T any](records []T, fields []Field[T], criteria Criteria) []T {
	active := make([]Field[T], 0, len(fields))
	bounds := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Values == nil {
			continue
		}
		// Text search applies any non-empty input as typed, spaces included.
		v := criteria.Get(f.Name)
		if f.Kind == KindText {
			v = strings.ToLower(criteria.raw(f.Name))
		}
		if v == "" {
			continue
		}
		active = append(active, f)
		bounds = append(bounds, v)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		ok := true
		for i, f := range active {
			if !matches(f, f.Values(rec), bounds[i]) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](f Field[T], values []string, want string) bool {
	switch f.Kind {
	case KindText:
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), want) {
				return true
			}
		}
		return false
	case KindEnum:
		return slices.Contains(values, want)
	case KindDateFrom, KindDateTo:
		present := false
		for _, v := range values {
			if v == "" {
				continue
			}
			present = true
			if f.Kind == KindDateFrom && v >= want {
				return true
			}
			if f.Kind == KindDateTo && v <= want {
				return true
			}
		}
		return !present && f.MissingMatches
	default:
		return false
	}
}

// Page slices the 1-indexed page out of items. Out of range pages are empty, not nil.
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	if page > TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	return slices.Clone(items[start:end])
}

// TotalPages is ceil(total/pageSize), 0 for an empty set.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
