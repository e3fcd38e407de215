package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Technical-1/etb-cli/internal/model"
)

func TestFullTextSearch(t *testing.T) {
	blocks := []model.Block{
		{ID: "b1", Title: "Morning review"},
		{ID: "b2", Title: "Gym", Notes: "leg day, review program"},
		{ID: "b3", Title: "Lunch", Tasks: []model.Task{{Text: "book table"}}},
	}

	assert.Len(t, FullTextSearch(blocks, "review"), 2)

	hits := FullTextSearch(blocks, "BOOK")
	assert.Len(t, hits, 1)
	assert.Equal(t, "b3", hits[0].ID)

	assert.Empty(t, FullTextSearch(blocks, "standup"))
	assert.Len(t, FullTextSearch(blocks, ""), 3)
}

func TestFilterBlocks(t *testing.T) {
	blocks := []model.Block{
		{ID: "b1", Category: "work", StartTime: "2026-03-02T09:00"},
		{ID: "b2", Category: "health", StartTime: "2026-03-05T07:00"},
		{ID: "b3", Category: "work", StartTime: "2026-03-10T09:00"},
	}

	byCategory := FilterBlocks(blocks, "Work", "", "")
	assert.Len(t, byCategory, 2)

	byRange := FilterBlocks(blocks, "", "2026-03-03", "2026-03-09")
	assert.Len(t, byRange, 1)
	assert.Equal(t, "b2", byRange[0].ID)

	both := FilterBlocks(blocks, "work", "2026-03-05", "")
	assert.Len(t, both, 1)
	assert.Equal(t, "b3", both[0].ID)
}

func TestIsWithinDateRange(t *testing.T) {
	assert.True(t, IsWithinDateRange("2026-03-02", "", ""))
	assert.True(t, IsWithinDateRange("2026-03-02", "2026-03-01", "2026-03-03"))
	assert.False(t, IsWithinDateRange("2026-03-02", "2026-03-03", ""))
	assert.False(t, IsWithinDateRange("2026-03-02", "", "2026-03-01"))
	assert.False(t, IsWithinDateRange("not-a-date", "2026-03-01", ""))
}
