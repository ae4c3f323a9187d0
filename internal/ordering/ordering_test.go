package ordering

import (
	"math/rand"
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		from, to  string
		want      []string
		wantMoved bool
	}{
		{"forward", []string{"a", "b", "c", "d", "e"}, "a", "c", []string{"b", "c", "a", "d", "e"}, true},
		{"backward", []string{"a", "b", "c", "d", "e"}, "d", "b", []string{"a", "d", "b", "c", "e"}, true},
		{"to end", []string{"a", "b", "c"}, "a", "c", []string{"b", "c", "a"}, true},
		{"to start", []string{"a", "b", "c"}, "c", "a", []string{"c", "a", "b"}, true},
		{"same id", []string{"a", "b", "c"}, "b", "b", []string{"a", "b", "c"}, false},
		{"missing from", []string{"a", "b", "c"}, "x", "b", []string{"a", "b", "c"}, false},
		{"missing to", []string{"a", "b", "c"}, "a", "x", []string{"a", "b", "c"}, false},
		{"empty", nil, "a", "b", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(tt.items, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMoved, moved)
		})
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c"}
	_, moved := Move(items, "a", "c")
	require.True(t, moved)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestShift(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	got, moved := Shift(items, "b", 1)
	assert.True(t, moved)
	assert.Equal(t, []string{"a", "c", "b", "d"}, got)

	got, moved = Shift(items, "b", -5)
	assert.True(t, moved)
	assert.Equal(t, []string{"b", "a", "c", "d"}, got)

	got, moved = Shift(items, "d", 1)
	assert.False(t, moved)
	assert.Equal(t, items, got)

	_, moved = Shift(items, "z", 1)
	assert.False(t, moved)
}

func TestMove_SectionOrderPermutationClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	order := DefaultSectionOrder()
	ids := append(types.AllSections(), "unknown")

	for i := 0; i < 500; i++ {
		from := ids[rng.Intn(len(ids))]
		to := ids[rng.Intn(len(ids))]
		order, _ = Move(order, from, to)
		require.NoError(t, ValidateSectionOrder(order), "after move %d (%s -> %s)", i, from, to)
	}
	assert.ElementsMatch(t, types.AllSections(), order)
}

func TestValidateSectionOrder(t *testing.T) {
	assert.NoError(t, ValidateSectionOrder(DefaultSectionOrder()))
	assert.NoError(t, ValidateSectionOrder([]types.SectionID{"skills", "summary", "courses", "education", "experience"}))

	assert.Error(t, ValidateSectionOrder(nil))
	assert.Error(t, ValidateSectionOrder([]types.SectionID{"summary", "summary", "education", "skills", "courses"}))
	assert.Error(t, ValidateSectionOrder([]types.SectionID{"summary", "projects", "education", "skills", "courses"}))
	assert.Error(t, ValidateSectionOrder(append(DefaultSectionOrder(), types.SectionSummary)))
}
