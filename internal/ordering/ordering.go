// Package ordering maintains user-chosen orderings of sections and list entries.
package ordering

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/types"
)

// Move relocates from to the position currently held by to, shifting the
// elements in between. The input slice is never modified. The second return
// value is false (and items is returned as is) when from == to or either
// value is absent.
func Move[T comparable](items []T, from, to T) ([]T, bool) {
	if from == to {
		return items, false
	}
	oldIndex := indexOf(items, from)
	newIndex := indexOf(items, to)
	if oldIndex < 0 || newIndex < 0 {
		return items, false
	}
	return moveIndex(items, oldIndex, newIndex), true
}

// Shift moves item by delta positions, stopping at either end of the list.
func Shift[T comparable](items []T, item T, delta int) ([]T, bool) {
	oldIndex := indexOf(items, item)
	if oldIndex < 0 || delta == 0 {
		return items, false
	}
	newIndex := max(0, min(len(items)-1, oldIndex+delta))
	if newIndex == oldIndex {
		return items, false
	}
	return moveIndex(items, oldIndex, newIndex), true
}

func moveIndex[T any](items []T, oldIndex, newIndex int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:oldIndex]...)
	out = append(out, items[oldIndex+1:]...)

	moved := items[oldIndex]
	out = append(out[:newIndex], append([]T{moved}, out[newIndex:]...)...)
	return out
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}

// DefaultSectionOrder returns the section order of a new document.
func DefaultSectionOrder() []types.SectionID {
	return types.AllSections()
}

// ValidateSectionOrder checks that order is a permutation of the five section identifiers.
func ValidateSectionOrder(order []types.SectionID) error {
	all := types.AllSections()
	if len(order) != len(all) {
		return fmt.Errorf("section order must list %d sections, got %d", len(all), len(order))
	}
	seen := make(map[types.SectionID]bool, len(order))
	for _, id := range order {
		if !id.IsKnown() {
			return fmt.Errorf("unknown section %q", id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate section %q", id)
		}
		seen[id] = true
	}
	return nil
}
