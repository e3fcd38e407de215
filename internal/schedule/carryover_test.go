package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

func carryOverFixture() (model.Block, model.Archive) {
	b := model.Block{
		ID:             "rb1",
		Title:          "Morning routine",
		Recurring:      true,
		CarryOver:      true,
		RecurrenceDays: []string{"Monday"},
	}
	archive := model.NewArchive()
	archive.Days["2024-01-08"] = []model.ArchivedBlock{{
		ID:        "rb1",
		Title:     "Morning routine",
		Recurring: true,
		Notes:     "don't forget the fern",
		Tasks:     []model.Task{{Text: "Water plants", Completed: true}},
	}}
	return b, archive
}

func TestApplyCarryOver(t *testing.T) {
	b, archive := carryOverFixture()

	display := ApplyCarryOver(b, archive)
	require.Len(t, display.Tasks, 1)
	assert.Equal(t, "Water plants", display.Tasks[0].Text)
	assert.False(t, display.Tasks[0].Completed, "completion resets on carry-over")
	assert.Equal(t, "don't forget the fern", display.Notes)

	// The stored block is untouched.
	assert.Empty(t, b.Tasks)
	assert.Empty(t, b.Notes)
}

func TestApplyCarryOverKeepsOwnData(t *testing.T) {
	b, archive := carryOverFixture()
	b.Notes = "my own notes"
	b.Tasks = []model.Task{{Text: "Different task"}}

	display := ApplyCarryOver(b, archive)
	assert.Equal(t, "my own notes", display.Notes)
	require.Len(t, display.Tasks, 1)
	assert.Equal(t, "Different task", display.Tasks[0].Text)
}

func TestFindMostRecentInstancePrefersNewestDay(t *testing.T) {
	b, archive := carryOverFixture()
	archive.Days["2024-01-15"] = []model.ArchivedBlock{{
		ID:        "rb1",
		Title:     "Morning routine",
		Recurring: true,
		Notes:     "newer notes",
	}}

	got, ok := FindMostRecentInstance(b, archive)
	require.True(t, ok)
	assert.Equal(t, "newer notes", got.Notes)
}

func TestFindMostRecentInstanceTitleFallback(t *testing.T) {
	b, _ := carryOverFixture()
	archive := model.NewArchive()
	archive.Days["2024-01-08"] = []model.ArchivedBlock{
		{ID: "old-style", Title: "Morning routine", Recurring: true, Notes: "matched by title"},
		{ID: "dated", Title: "Morning routine", Recurring: false, Notes: "dated blocks never match"},
	}

	got, ok := FindMostRecentInstance(b, archive)
	require.True(t, ok)
	assert.Equal(t, "matched by title", got.Notes)
}

func TestFindMostRecentInstanceRequiresCarryOver(t *testing.T) {
	b, archive := carryOverFixture()

	b.CarryOver = false
	_, ok := FindMostRecentInstance(b, archive)
	assert.False(t, ok)

	b.CarryOver = true
	b.Recurring = false
	_, ok = FindMostRecentInstance(b, archive)
	assert.False(t, ok)
}

func TestApplyCarryOverNoMatch(t *testing.T) {
	b, _ := carryOverFixture()
	display := ApplyCarryOver(b, model.NewArchive())
	assert.Equal(t, b, display)
}
