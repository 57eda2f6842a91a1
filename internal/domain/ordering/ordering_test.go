package ordering

import (
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderedThing struct {
	id        string
	sortOrder int
}

func (o *orderedThing) GetID() string        { return o.id }
func (o *orderedThing) GetSortOrder() int    { return o.sortOrder }
func (o *orderedThing) SetSortOrder(n int)   { o.sortOrder = n }

func things(ids ...string) []*orderedThing {
	out := make([]*orderedThing, len(ids))
	for i, id := range ids {
		out[i] = &orderedThing{id: id, sortOrder: i}
	}
	return out
}

func idsOf(seq []*orderedThing) []string {
	out := make([]string, len(seq))
	for i, item := range seq {
		out[i] = item.id
	}
	return out
}

func TestMoveRelocatesElement(t *testing.T) {
	seq := things("a", "b", "c", "d")

	moved, err := Move(seq, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a", "d"}, idsOf(moved))

	moved, err = Move(seq, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "b", "c"}, idsOf(moved))
}

func TestMoveIsPermutation(t *testing.T) {
	seq := things("a", "b", "c", "d", "e")

	for from := 0; from < len(seq); from++ {
		for to := 0; to < len(seq); to++ {
			moved, err := Move(seq, from, to)
			require.NoError(t, err)
			assert.ElementsMatch(t, seq, moved, "move(%d,%d) must keep the same elements", from, to)
		}
	}
}

func TestMoveSameIndexIsNoOp(t *testing.T) {
	seq := things("a", "b", "c")

	moved, err := Move(seq, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, idsOf(seq), idsOf(moved))
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	seq := things("a", "b", "c")

	_, err := Move(seq, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(seq))
}

func TestMoveRejectsOutOfRangeIndexes(t *testing.T) {
	seq := things("a", "b")

	_, err := Move(seq, -1, 0)
	assert.Error(t, err)
	_, err = Move(seq, 0, 2)
	assert.Error(t, err)
	_, err = Move(seq, 5, 0)
	assert.Error(t, err)
}

func TestRenumberProducesDenseSequence(t *testing.T) {
	seq := things("a", "b", "c", "d")
	// Simulate gaps and duplicates left by concurrent edits.
	seq[0].sortOrder = 7
	seq[1].sortOrder = 7
	seq[2].sortOrder = 2
	seq[3].sortOrder = 99

	Renumber(seq)

	for i, item := range seq {
		assert.Equal(t, i, item.sortOrder)
	}
}

func TestMoveThenDeleteScenario(t *testing.T) {
	// Create [A, B, C] with sortOrder 0,1,2; move A to the end;
	// expect [B, C, A] with sortOrder 0,1,2.
	seq := things("A", "B", "C")

	moved, err := Move(seq, 0, 2)
	require.NoError(t, err)
	Renumber(moved)

	assert.Equal(t, []string{"B", "C", "A"}, idsOf(moved))
	for i, item := range moved {
		assert.Equal(t, i, item.sortOrder)
	}

	// Delete B; renumber siblings; expect [C, A] with sortOrder 0,1.
	remaining := moved[1:]
	Renumber(remaining)

	assert.Equal(t, []string{"C", "A"}, idsOf(remaining))
	assert.Equal(t, 0, remaining[0].sortOrder)
	assert.Equal(t, 1, remaining[1].sortOrder)
}

func TestApplyOrderReordersAndRenumbers(t *testing.T) {
	current := things("a", "b", "c")

	out, err := ApplyOrder("faq", current, []string{"c", "a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, idsOf(out))
	for i, item := range out {
		assert.Equal(t, i, item.sortOrder)
	}
}

func TestApplyOrderRejectsStaleIDSets(t *testing.T) {
	current := things("a", "b", "c")

	_, err := ApplyOrder("faq", current, []string{"a", "b"})
	assert.True(t, apperrors.IsConflict(err), "length mismatch must conflict")

	_, err = ApplyOrder("faq", current, []string{"a", "b", "z"})
	assert.True(t, apperrors.IsConflict(err), "unknown id must conflict")

	_, err = ApplyOrder("faq", current, []string{"a", "a", "b"})
	assert.True(t, apperrors.IsConflict(err), "duplicate id must conflict")
}

func TestNextSortOrderMatchesCollectionLength(t *testing.T) {
	assert.Equal(t, 0, NextSortOrder([]*orderedThing{}))
	assert.Equal(t, 3, NextSortOrder(things("a", "b", "c")))
}
