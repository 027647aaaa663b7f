// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map"
)

// sparseValues maps cell → float64 and remembers insertion order.
// Overwriting a stored key keeps its position; delete + set moves it to the end.
type sparseValues struct {
	om *orderedmap.OrderedMap
}

func newSparseValues() sparseValues {
	return sparseValues{om: orderedmap.New()}
}

// get returns the stored value and whether the key is present.
func (s sparseValues) get(i, j int) (float64, bool) {
	v, ok := s.om.Get(cell{row: i, col: j})
	if !ok {
		return 0, false
	}

	return v.(float64), true
}

func (s sparseValues) set(i, j int, v float64) {
	s.om.Set(cell{row: i, col: j}, v)
}

func (s sparseValues) remove(i, j int) {
	s.om.Delete(cell{row: i, col: j})
}

func (s sparseValues) len() int {
	return s.om.Len()
}

// each visits stored entries oldest first. fn may overwrite values of
// existing keys but must not delete or insert.
func (s sparseValues) each(fn func(c cell, v float64)) {
	for p := s.om.Oldest(); p != nil; p = p.Next() {
		fn(p.Key.(cell), p.Value.(float64))
	}
}

// cells returns stored keys in insertion order.
func (s sparseValues) cells() []cell {
	out := make([]cell, 0, s.om.Len())
	s.each(func(c cell, _ float64) {
		out = append(out, c)
	})

	return out
}

// sortedCells returns stored keys in row-major order.
func (s sparseValues) sortedCells() []cell {
	out := s.cells()
	slices.SortFunc(out, compareCells)

	return out
}
