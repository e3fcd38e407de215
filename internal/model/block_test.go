package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockDateAndTimeOfDay(t *testing.T) {
	b := Block{StartTime: "2026-03-02T09:00:00", EndTime: "2026-03-02T10:30:00"}

	assert.Equal(t, "2026-03-02", b.Date())

	start, end, ok := b.TimeOfDay()
	require.True(t, ok)
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "10:30", end)
}

func TestBlockTimeOfDayMalformed(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty", "", ""},
		{"no separator", "2026-03-02 09:00", "2026-03-02 10:00"},
		{"truncated clock", "2026-03-02T9", "2026-03-02T10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{StartTime: tt.start, EndTime: tt.end}
			_, _, ok := b.TimeOfDay()
			assert.False(t, ok)
		})
	}
}

func TestBlockClone(t *testing.T) {
	b := Block{
		ID:             "b1",
		RecurrenceDays: []string{"Monday"},
		Tasks:          []Task{{Text: "water plants"}},
	}

	c := b.Clone()
	c.RecurrenceDays[0] = "Friday"
	c.Tasks[0].Completed = true

	assert.Equal(t, "Monday", b.RecurrenceDays[0])
	assert.False(t, b.Tasks[0].Completed)
}

func TestSnapshotShape(t *testing.T) {
	b := Block{
		ID:        "b1",
		Title:     "Focus",
		Notes:     "deep work",
		Color:     "#3366ff",
		Category:  "work",
		Recurring: true,
		StartTime: "2026-03-02T09:00",
		EndTime:   "2026-03-02T11:00",
		Tasks:     []Task{{Text: "draft", Completed: true}},
	}

	ab := Snapshot(b)
	assert.Equal(t, b.ID, ab.ID)
	assert.Equal(t, b.Title, ab.Title)
	assert.Equal(t, b.Notes, ab.Notes)
	assert.Equal(t, b.Color, ab.Color)
	assert.Equal(t, b.Category, ab.Category)
	assert.True(t, ab.Recurring)
	assert.Equal(t, b.Tasks, ab.Tasks)
}

func TestArchiveSortedDatesDescending(t *testing.T) {
	a := NewArchive()
	a.Days["2026-01-05"] = []ArchivedBlock{{ID: "a"}}
	a.Days["2026-02-01"] = []ArchivedBlock{{ID: "b"}}
	a.Days["2025-12-31"] = []ArchivedBlock{{ID: "c"}}

	assert.Equal(t, []string{"2026-02-01", "2026-01-05", "2025-12-31"}, a.SortedDates())
	assert.Equal(t, 3, a.BlockCount())
	assert.True(t, a.Contains("2026-01-05", "a"))
	assert.False(t, a.Contains("2026-01-05", "b"))
}

func TestEffectiveColor(t *testing.T) {
	categories := []Category{{ID: "work", Name: "Work", Color: "#112233"}}

	withCategory := Block{Color: "#ff0000", Category: "work"}
	assert.Equal(t, "#112233", EffectiveColor(withCategory, categories))

	ownColor := Block{Color: "#ff0000"}
	assert.Equal(t, "#ff0000", EffectiveColor(ownColor, categories))

	danglingCategory := Block{Color: "#ff0000", Category: "gone"}
	assert.Equal(t, "#ff0000", EffectiveColor(danglingCategory, categories))
}

func TestCategoryNameFallsBackToID(t *testing.T) {
	categories := []Category{{ID: "work", Name: "Work"}}

	assert.Equal(t, "Work", CategoryName(categories, "work"))
	assert.Equal(t, "gone", CategoryName(categories, "gone"))
	assert.Equal(t, "-", CategoryName(categories, ""))
}
