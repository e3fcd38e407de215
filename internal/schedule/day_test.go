package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

func TestAppliesOnDateRecurring(t *testing.T) {
	b := model.Block{
		ID:             "r1",
		Title:          "Gym",
		Recurring:      true,
		RecurrenceDays: []string{"Monday", "Wednesday"},
		// A recurring block's literal date never matters.
		StartTime: "2024-01-02T07:00:00",
		EndTime:   "2024-01-02T08:00:00",
	}

	wednesday := time.Date(2024, 1, 17, 0, 0, 0, 0, time.Local)
	require.Equal(t, "Wednesday", WeekdayName(wednesday))
	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, AppliesOnDate(b, wednesday))
	assert.False(t, AppliesOnDate(b, tuesday))
}

func TestAppliesOnDateDated(t *testing.T) {
	b := model.Block{
		ID:        "d1",
		Title:     "Dentist",
		StartTime: "2024-01-15T14:00:00",
		EndTime:   "2024-01-15T15:00:00",
		// Ignored on non-recurring blocks.
		RecurrenceDays: []string{"Sunday"},
	}

	assert.True(t, AppliesOnDate(b, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)))
	assert.False(t, AppliesOnDate(b, time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local)))
}

func TestAppliesOnDateExclusions(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

	archived := model.Block{
		ID:        "a1",
		Title:     "Done",
		StartTime: "2024-01-15T09:00:00",
		EndTime:   "2024-01-15T10:00:00",
		Archived:  true,
	}
	assert.False(t, AppliesOnDate(archived, date))

	undated := model.Block{ID: "u1", Title: "Floating"}
	assert.False(t, AppliesOnDate(undated, date))
}

func TestBlocksForDate(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	blocks := []model.Block{
		{ID: "1", Title: "First", StartTime: "2024-01-15T09:00:00", EndTime: "2024-01-15T10:00:00"},
		{ID: "2", Title: "Off-day", StartTime: "2024-01-16T09:00:00", EndTime: "2024-01-16T10:00:00"},
		{ID: "3", Title: "Weekly", Recurring: true, RecurrenceDays: []string{"Monday"}},
	}

	got := BlocksForDate(blocks, monday)
	require.Len(t, got, 2)
	// Insertion order is preserved.
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "Weekly", got[1].Title)
}

func TestSortByStart(t *testing.T) {
	blocks := []model.Block{
		{ID: "late", Title: "Late", StartTime: "2024-01-15T15:00:00", EndTime: "2024-01-15T16:00:00"},
		{ID: "none", Title: "Zeta"},
		{ID: "early", Title: "Early", StartTime: "2024-01-15T08:00:00", EndTime: "2024-01-15T09:00:00"},
		{ID: "none2", Title: "Alpha"},
	}

	sorted := SortByStart(blocks)
	require.Len(t, sorted, 4)
	assert.Equal(t, "Early", sorted[0].Title)
	assert.Equal(t, "Late", sorted[1].Title)
	// Timeless blocks sort last, by title.
	assert.Equal(t, "Alpha", sorted[2].Title)
	assert.Equal(t, "Zeta", sorted[3].Title)

	// Input order untouched.
	assert.Equal(t, "late", blocks[0].ID)
}
