package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

func TestComputeStatistics(t *testing.T) {
	categories := []model.Category{
		{ID: "work", Name: "Work", Color: "#1111ee"},
		{ID: "idle", Name: "Idle", Color: "#eeeeee"},
	}
	blocks := []model.Block{
		{ID: "1", Title: "Focus", Category: "work",
			StartTime: "2024-01-15T09:00:00", EndTime: "2024-01-15T11:00:00",
			Tasks: []model.Task{{Text: "a", Completed: true}, {Text: "b"}}},
		{ID: "2", Title: "Standup", Recurring: true, RecurrenceDays: []string{"Monday"},
			StartTime: "2024-01-01T09:00:00", EndTime: "2024-01-01T09:30:00"},
		{ID: "3", Title: "Errand",
			StartTime: "2024-01-15T13:00:00", EndTime: "2024-01-15T14:00:00"},
	}
	archive := model.NewArchive()
	archive.Days["2024-01-10"] = []model.ArchivedBlock{{ID: "x"}, {ID: "y"}}
	archive.Days["2024-01-11"] = []model.ArchivedBlock{{ID: "z"}}

	stats := ComputeStatistics(blocks, archive, categories)

	assert.Equal(t, 3, stats.TotalBlocks)
	assert.Equal(t, 120+30+60, stats.TotalMinutes)
	assert.Equal(t, 1, stats.RecurringBlocks)
	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 50, stats.TaskCompletionRate())
	assert.Equal(t, 2, stats.ArchivedDays)
	assert.Equal(t, 3, stats.ArchivedBlocks)

	// Busiest category first; empty ones dropped; uncategorized bucketed.
	require.Len(t, stats.Categories, 2)
	assert.Equal(t, "Work", stats.Categories[0].Name)
	assert.Equal(t, 120, stats.Categories[0].Minutes)
	assert.Equal(t, "Uncategorized", stats.Categories[1].Name)
	assert.Equal(t, 90, stats.Categories[1].Minutes)
}

func TestTaskCompletionRateNoTasks(t *testing.T) {
	assert.Zero(t, Statistics{}.TaskCompletionRate())
}

func TestComputeStatisticsNegativeDurationIgnored(t *testing.T) {
	blocks := []model.Block{{
		ID: "bad", Title: "Inverted",
		StartTime: "2024-01-15T11:00:00", EndTime: "2024-01-15T09:00:00",
	}}
	stats := ComputeStatistics(blocks, model.NewArchive(), nil)
	assert.Equal(t, 1, stats.TotalBlocks)
	assert.Zero(t, stats.TotalMinutes)
	assert.Empty(t, stats.Categories)
}
