package snapshot

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Combination assigns one value to every parameter.
type Combination[T any] struct {
	// Index is the position of the combination in enumeration order.
	Index int
	// Identifier is "<index>__<valueID>__<valueID>…", with the index
	// zero-padded to three digits and value IDs in parameter-name order.
	Identifier string
	// Values maps parameter names to the chosen values.
	Values map[string]T
}

type parameter[T any] struct {
	name   string
	ids    []string
	values []T
}

// Combinations enumerates every combination of params, a mapping from
// parameter name to value ID to value. Parameters are ordered by name and
// values by ID; the last parameter varies fastest. No parameters yields a
// single empty combination; a parameter without values yields none.
func Combinations[T any](params map[string]map[string]T) iter.Seq[Combination[T]] {
	ps := make([]parameter[T], 0, len(params))
	for _, name := range slices.Sorted(maps.Keys(params)) {
		p := parameter[T]{name: name, ids: slices.Sorted(maps.Keys(params[name]))}
		for _, id := range p.ids {
			p.values = append(p.values, params[name][id])
		}
		ps = append(ps, p)
	}

	return func(yield func(Combination[T]) bool) {
		for _, p := range ps {
			if len(p.ids) == 0 {
				return
			}
		}

		digits := make([]int, len(ps))
		for index := 0; ; index++ {
			var id strings.Builder
			fmt.Fprintf(&id, "%03d", index)
			values := make(map[string]T, len(ps))
			for i, p := range ps {
				id.WriteString("__")
				id.WriteString(p.ids[digits[i]])
				values[p.name] = p.values[digits[i]]
			}
			if !yield(Combination[T]{Index: index, Identifier: id.String(), Values: values}) {
				return
			}

			i := len(ps) - 1
			for ; i >= 0; i-- {
				digits[i]++
				if digits[i] < len(ps[i].ids) {
					break
				}
				digits[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// Vary calls body once per combination of params, in the order described
// by Combinations.
//
//	snapshot.Vary(map[string]map[string]string{
//		"title":    {"small": "Suspendisse aliquet.", "large": "Mauris risus lacus, placerat quis."},
//		"location": {"small": "Location.", "extreme": "Location taking many more characters."},
//	}, func(id string, values map[string]string) {
//		cell := newCell(values["title"], values["location"])
//		verifier.Expect(t, snapshot.ViewSubject(cell), snapshot.ScreenWidth{}, id)
//	})
func Vary[T any](params map[string]map[string]T, body func(identifier string, values map[string]T)) {
	for c := range Combinations(params) {
		body(c.Identifier, c.Values)
	}
}
