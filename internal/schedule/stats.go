package schedule

import (
	"sort"

	"github.com/Technical-1/etb-cli/internal/model"
)

// CategoryStat is the per-category slice of the statistics report.
type CategoryStat struct {
	ID      string
	Name    string
	Color   string
	Count   int
	Minutes int
}

// Statistics summarizes the live collection and archive for the stats view.
type Statistics struct {
	TotalBlocks     int
	TotalMinutes    int
	TotalTasks      int
	CompletedTasks  int
	RecurringBlocks int
	Categories      []CategoryStat
	ArchivedDays    int
	ArchivedBlocks  int
}

// TaskCompletionRate returns the completed-task percentage, 0 when there
// are no tasks.
func (s Statistics) TaskCompletionRate() int {
	if s.TotalTasks == 0 {
		return 0
	}
	return int(float64(s.CompletedTasks)/float64(s.TotalTasks)*100 + 0.5)
}

// ComputeStatistics aggregates block counts, tracked minutes, task
// completion and a per-category breakdown (sorted by minutes, busiest
// first). Blocks without a category land in the "Uncategorized" bucket.
func ComputeStatistics(blocks []model.Block, archive model.Archive, categories []model.Category) Statistics {
	stats := Statistics{
		ArchivedDays:   len(archive.Days),
		ArchivedBlocks: archive.BlockCount(),
	}

	byCategory := map[string]*CategoryStat{}
	for _, c := range categories {
		byCategory[c.ID] = &CategoryStat{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	uncategorized := &CategoryStat{ID: "uncategorized", Name: "Uncategorized", Color: "#888888"}

	for _, b := range blocks {
		stats.TotalBlocks++
		if b.Recurring {
			stats.RecurringBlocks++
		}

		if start, end, ok := b.TimeOfDay(); ok {
			startMin, sOK := TimeToMinutes(start)
			endMin, eOK := TimeToMinutes(end)
			if sOK && eOK && endMin > startMin {
				duration := endMin - startMin
				stats.TotalMinutes += duration

				bucket := uncategorized
				if cat, ok := byCategory[b.Category]; ok && b.Category != "" {
					bucket = cat
				}
				bucket.Count++
				bucket.Minutes += duration
			}
		}

		stats.TotalTasks += len(b.Tasks)
		for _, t := range b.Tasks {
			if t.Completed {
				stats.CompletedTasks++
			}
		}
	}

	for _, c := range categories {
		if stat := byCategory[c.ID]; stat.Count > 0 {
			stats.Categories = append(stats.Categories, *stat)
		}
	}
	if uncategorized.Count > 0 {
		stats.Categories = append(stats.Categories, *uncategorized)
	}
	sort.SliceStable(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Minutes > stats.Categories[j].Minutes
	})
	return stats
}
