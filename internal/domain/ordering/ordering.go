// Package ordering provides the sequence operations shared by every
// orderable collection: array-move, dense renumbering, and applying a
// client-submitted order to the stored collection.
package ordering

import (
	"fmt"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
)

// Item is implemented by any node that participates in an ordered,
// parent-scoped collection.
type Item interface {
	GetID() string
	GetSortOrder() int
	SetSortOrder(int)
}

// Move removes the element at from and reinserts it at to, shifting
// intermediate elements by one position. It returns a new slice; the
// input is not modified. Moving an element onto its own index is a no-op
// copy.
func Move[T any](seq []T, from, to int) ([]T, error) {
	n := len(seq)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("move: source index %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("move: destination index %d out of range [0,%d)", to, n)
	}

	out := make([]T, 0, n)
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)

	moved := seq[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out, nil
}

// Renumber walks seq in display order and assigns sortOrder = index,
// 0-based. Any gaps or duplicates left behind by prior mutations are
// erased by this pass.
func Renumber[T Item](seq []T) {
	for i, item := range seq {
		item.SetSortOrder(i)
	}
}

// ApplyOrder rearranges current to match orderedIDs and renumbers the
// result densely. The id sets must match exactly; a mismatch means the
// caller reordered a stale view of the collection and yields a
// ConflictError.
func ApplyOrder[T Item](resource string, current []T, orderedIDs []string) ([]T, error) {
	if len(orderedIDs) != len(current) {
		return nil, apperrors.NewConflictError(resource,
			fmt.Sprintf("submitted order has %d items, collection has %d", len(orderedIDs), len(current)))
	}

	byID := make(map[string]T, len(current))
	for _, item := range current {
		byID[item.GetID()] = item
	}

	out := make([]T, 0, len(orderedIDs))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			return nil, apperrors.NewConflictError(resource, "duplicate id in submitted order: "+id)
		}
		seen[id] = true

		item, ok := byID[id]
		if !ok {
			return nil, apperrors.NewConflictError(resource, "unknown id in submitted order: "+id)
		}
		out = append(out, item)
	}

	Renumber(out)
	return out, nil
}

// NextSortOrder returns the sortOrder a newly created item receives:
// the current collection length.
func NextSortOrder[T any](collection []T) int {
	return len(collection)
}
