package model

import "sort"

// ArchivedBlock is the reduced snapshot stored in the per-day archive.
// ID references the live block it was taken from; for recurring blocks it is
// the key carry-over lookups match on.
type ArchivedBlock struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	Color     string `json:"color,omitempty"`
	Category  string `json:"category,omitempty"`
	Recurring bool   `json:"recurring"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Tasks     []Task `json:"tasks,omitempty"`
}

// Archive maps "YYYY-MM-DD" date keys to the blocks archived for that day.
// Days are append-only.
type Archive struct {
	Days map[string][]ArchivedBlock `json:"days"`
}

func NewArchive() Archive {
	return Archive{Days: map[string][]ArchivedBlock{}}
}

// Snapshot reduces a live block to its archived form.
func Snapshot(b Block) ArchivedBlock {
	return ArchivedBlock{
		ID:        b.ID,
		Title:     b.Title,
		Notes:     b.Notes,
		Color:     b.Color,
		Category:  b.Category,
		Recurring: b.Recurring,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Tasks:     append([]Task(nil), b.Tasks...),
	}
}

// SortedDates returns the archive's day keys, most recent first.
func (a Archive) SortedDates() []string {
	dates := make([]string, 0, len(a.Days))
	for d := range a.Days {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// Contains reports whether a block with the given id is already archived
// under the given day key.
func (a Archive) Contains(day, id string) bool {
	for _, b := range a.Days[day] {
		if b.ID == id {
			return true
		}
	}
	return false
}

// BlockCount returns the total number of archived blocks across all days.
func (a Archive) BlockCount() int {
	n := 0
	for _, blocks := range a.Days {
		n += len(blocks)
	}
	return n
}
