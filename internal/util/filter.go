package util

import (
	"strings"
	"time"

	"github.com/Technical-1/etb-cli/internal/model"
)

// MatchesQuery checks a block's title, notes and task texts for a
// case-insensitive substring match. An empty query matches everything.
func MatchesQuery(b model.Block, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(b.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Notes), query) {
		return true
	}
	for _, task := range b.Tasks {
		if strings.Contains(strings.ToLower(task.Text), query) {
			return true
		}
	}
	return false
}

// FullTextSearch filters blocks by MatchesQuery, keeping input order.
func FullTextSearch(blocks []model.Block, query string) []model.Block {
	if query == "" {
		return blocks
	}

	var filtered []model.Block
	for _, b := range blocks {
		if MatchesQuery(b, query) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// MatchesArchivedQuery is MatchesQuery for archive snapshots.
func MatchesArchivedQuery(ab model.ArchivedBlock, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(ab.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(ab.Notes), query) {
		return true
	}
	for _, task := range ab.Tasks {
		if strings.Contains(strings.ToLower(task.Text), query) {
			return true
		}
	}
	return false
}

// FilterBlocks narrows blocks by category and date range. Empty filters
// pass everything through.
func FilterBlocks(blocks []model.Block, category, fromDate, toDate string) []model.Block {
	var filtered []model.Block

	for _, b := range blocks {
		if category != "" && !strings.EqualFold(b.Category, category) {
			continue
		}
		// Recurring blocks have no meaningful date; a date range only
		// narrows dated blocks.
		if !b.Recurring && (fromDate != "" || toDate != "") && !IsWithinDateRange(b.Date(), fromDate, toDate) {
			continue
		}
		filtered = append(filtered, b)
	}

	return filtered
}

// IsWithinDateRange checks a YYYY-MM-DD date against an optional range.
func IsWithinDateRange(date string, fromDate, toDate string) bool {
	if fromDate == "" && toDate == "" {
		return true
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}

	if fromDate != "" {
		fromTime, err := time.Parse("2006-01-02", fromDate)
		if err == nil && parsed.Before(fromTime) {
			return false
		}
	}

	if toDate != "" {
		toTime, err := time.Parse("2006-01-02", toDate)
		if err == nil && parsed.After(toTime) {
			return false
		}
	}

	return true
}
