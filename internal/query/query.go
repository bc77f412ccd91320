// Package query implements the pure list primitives every content page
// is built from: conjunctive filtering, defensive date sorting,
// pagination, and distinct-value extraction. All functions leave their
// input untouched and return derived views.
package query

import (
	"sort"
	"strings"
)

// Predicate decides whether one record belongs in a filtered view.
type Predicate[T any] func(T) bool

// And combines matchers with conjunction semantics: a record must
// satisfy every predicate. And() with no predicates matches everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// TextContains matches when the lowercased query is a substring of at
// least one of the record's designated text fields. An empty or
// whitespace-only query is an inactive matcher and is vacuously true:
// "no text typed" means "no constraint", not "match nothing".
func TextContains[T any](q string, fields func(T) []string) Predicate[T] {
	q = strings.ToLower(strings.TrimSpace(q))
	return func(item T) bool {
		if q == "" {
			return true
		}
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches when the record's field equals want, case-insensitively.
// An empty want is an inactive matcher.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	want = strings.TrimSpace(want)
	return func(item T) bool {
		if want == "" {
			return true
		}
		return strings.EqualFold(field(item), want)
	}
}

// InSet matches when the record's field is one of the given values,
// case-insensitively. An empty set is an inactive matcher.
func InSet[T any](values []string, field func(T) string) Predicate[T] {
	if len(values) == 0 {
		return func(T) bool { return true }
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return func(item T) bool {
		_, ok := set[strings.ToLower(field(item))]
		return ok
	}
}

// IntRange matches when the record's numeric field lies in [min, max].
// A bound <= 0 disables that bound; both disabled means inactive.
// A record whose field cannot be read (ok=false) does not match an
// active range: a row missing the field fails any filter that depends
// on it, but still appears in unfiltered iteration.
func IntRange[T any](min, max int, field func(T) (int, bool)) Predicate[T] {
	return func(item T) bool {
		if min <= 0 && max <= 0 {
			return true
		}
		v, ok := field(item)
		if !ok {
			return false
		}
		if min > 0 && v < min {
			return false
		}
		if max > 0 && v > max {
			return false
		}
		return true
	}
}

// Filter returns the subsequence of items satisfying pred, preserving
// the original relative order.
func Filter[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortByDate orders items by a free-text date field without mutating
// the input. Unparsable dates sort as the oldest possible value and
// the record is never dropped. The sort is stable, so records with
// equal (or equally unparsable) dates keep their insertion order.
func SortByDate[T any](items []T, date func(T) string, descending bool) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		ti := ParseDate(date(out[i]))
		tj := ParseDate(date(out[j]))
		if descending {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})

	return out
}

// Paginate slices out one page and reports the page count.
// totalPages = ceil(len(items)/pageSize); an empty input yields zero
// pages and an empty slice. page is clamped to [1, totalPages].
func Paginate[T any](items []T, pageSize, page int) ([]T, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if len(items) == 0 {
		return []T{}, 0
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], totalPages
}

// UniqueValues extracts the distinct values of one string field,
// sorted lexicographically. Values are case-sensitive: "Workshop" and
// "workshop" are distinct facet values even though matching is
// case-insensitive; the stored strings are reported as typed.
func UniqueValues[T any](items []T, field func(T) string) []string {
	return uniqueSorted(items, func(item T) []string {
		return []string{field(item)}
	})
}

// UniqueValuesMulti is UniqueValues for multi-valued fields (authors,
// interests).
func UniqueValuesMulti[T any](items []T, field func(T) []string) []string {
	return uniqueSorted(items, field)
}

func uniqueSorted[T any](items []T, field func(T) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		for _, v := range field(item) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
