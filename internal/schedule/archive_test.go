package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

var archiveToday = time.Date(2024, 1, 15, 8, 30, 0, 0, time.Local)

func archiveFixture() []model.Block {
	return []model.Block{
		{ID: "old", Title: "Yesterday", StartTime: "2024-01-14T09:00:00", EndTime: "2024-01-14T10:00:00"},
		{ID: "older", Title: "Last week", StartTime: "2024-01-08T13:00:00", EndTime: "2024-01-08T14:00:00"},
		{ID: "today", Title: "Today", StartTime: "2024-01-15T09:00:00", EndTime: "2024-01-15T10:00:00"},
		{ID: "future", Title: "Tomorrow", StartTime: "2024-01-16T09:00:00", EndTime: "2024-01-16T10:00:00"},
		{ID: "weekly", Title: "Weekly", Recurring: true, RecurrenceDays: []string{"Monday"},
			StartTime: "2024-01-01T09:00:00", EndTime: "2024-01-01T10:00:00"},
		{ID: "floating", Title: "No time"},
	}
}

func TestRunArchiveCompleteness(t *testing.T) {
	stillLive, archive, moved := RunArchive(archiveFixture(), model.NewArchive(), archiveToday)

	assert.Equal(t, 2, moved)

	liveIDs := make([]string, len(stillLive))
	for i, b := range stillLive {
		liveIDs[i] = b.ID
	}
	assert.Equal(t, []string{"today", "future", "weekly", "floating"}, liveIDs)

	require.Len(t, archive.Days["2024-01-14"], 1)
	assert.Equal(t, "old", archive.Days["2024-01-14"][0].ID)
	require.Len(t, archive.Days["2024-01-08"], 1)
	assert.Equal(t, "older", archive.Days["2024-01-08"][0].ID)
}

func TestRunArchiveIdempotent(t *testing.T) {
	firstLive, firstArchive, moved := RunArchive(archiveFixture(), model.NewArchive(), archiveToday)
	require.Equal(t, 2, moved)

	secondLive, secondArchive, moved := RunArchive(firstLive, firstArchive, archiveToday)
	assert.Zero(t, moved)
	assert.Equal(t, firstLive, secondLive)
	assert.Equal(t, firstArchive, secondArchive)
}

func TestRunArchiveDuplicateGuardByID(t *testing.T) {
	// The expired block is already archived under its date key, together
	// with a different block sharing the day. Re-running must not append a
	// second copy.
	archive := model.NewArchive()
	archive.Days["2024-01-14"] = []model.ArchivedBlock{
		{ID: "other", Title: "Same day, different block"},
		{ID: "old", Title: "Yesterday"},
	}

	_, out, _ := RunArchive(archiveFixture(), archive, archiveToday)
	assert.Len(t, out.Days["2024-01-14"], 2)
}

func TestRunArchiveRecurringNeverArchived(t *testing.T) {
	blocks := archiveFixture()
	archive := model.NewArchive()
	for i := 0; i < 5; i++ {
		blocks, archive, _ = RunArchive(blocks, archive, archiveToday)
	}

	var found bool
	for _, b := range blocks {
		if b.ID == "weekly" {
			found = true
		}
	}
	assert.True(t, found, "recurring block must survive every pass")
	for _, day := range archive.Days {
		for _, archived := range day {
			assert.NotEqual(t, "weekly", archived.ID)
		}
	}
}

func TestRunArchiveMalformedDateRetained(t *testing.T) {
	blocks := []model.Block{
		{ID: "bad", Title: "Mangled", StartTime: "not-a-dateT09:00:00", EndTime: "not-a-dateT10:00:00"},
		{ID: "worse", Title: "No separator", StartTime: "garbage"},
	}

	stillLive, archive, moved := RunArchive(blocks, model.NewArchive(), archiveToday)
	assert.Zero(t, moved)
	assert.Len(t, stillLive, 2)
	assert.Empty(t, archive.Days)
}

func TestRunArchiveDoesNotMutateInputs(t *testing.T) {
	blocks := archiveFixture()
	archive := model.NewArchive()
	archive.Days["2024-01-01"] = []model.ArchivedBlock{{ID: "x", Title: "Prior"}}

	RunArchive(blocks, archive, archiveToday)

	assert.Len(t, blocks, 6)
	assert.Len(t, archive.Days, 1)
	assert.Len(t, archive.Days["2024-01-01"], 1)
}

func TestRunArchiveSnapshotShape(t *testing.T) {
	blocks := []model.Block{{
		ID:        "old",
		Title:     "Yesterday",
		Notes:     "some notes",
		Color:     "#4F6D7A",
		Category:  "work",
		StartTime: "2024-01-14T09:00:00",
		EndTime:   "2024-01-14T10:00:00",
		Tasks:     []model.Task{{Text: "a", Completed: true}},
	}}

	_, archive, moved := RunArchive(blocks, model.NewArchive(), archiveToday)
	require.Equal(t, 1, moved)
	got := archive.Days["2024-01-14"][0]
	assert.Equal(t, "Yesterday", got.Title)
	assert.Equal(t, "some notes", got.Notes)
	assert.Equal(t, "#4F6D7A", got.Color)
	assert.Equal(t, "work", got.Category)
	require.Len(t, got.Tasks, 1)
	assert.True(t, got.Tasks[0].Completed, "archived tasks keep their completion state")
}
