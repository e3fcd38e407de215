package schedule

import (
	"sort"
	"time"

	"github.com/Technical-1/etb-cli/internal/model"
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekdayName returns the full English weekday name used in RecurrenceDays.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// IsWeekdayName reports whether s is one of the seven weekday names.
func IsWeekdayName(s string) bool {
	for _, name := range weekdayNames {
		if name == s {
			return true
		}
	}
	return false
}

// AppliesOnDate is the day membership test used for both display and
// overlap checking. Recurring blocks match by weekday, dated blocks by
// their date portion. Blocks already flagged archived never apply.
func AppliesOnDate(b model.Block, date time.Time) bool {
	if b.Archived {
		return false
	}
	if b.Recurring && len(b.RecurrenceDays) > 0 {
		weekday := WeekdayName(date)
		for _, day := range b.RecurrenceDays {
			if day == weekday {
				return true
			}
		}
		return false
	}
	if b.StartTime == "" {
		return false
	}
	return b.Date() == FormatDate(date)
}

// BlocksForDate filters the live collection down to the blocks applicable
// on date, preserving the collection's insertion order.
func BlocksForDate(blocks []model.Block, date time.Time) []model.Block {
	var applicable []model.Block
	for _, b := range blocks {
		if AppliesOnDate(b, date) {
			applicable = append(applicable, b)
		}
	}
	return applicable
}

// SortByStart returns a copy of blocks ordered by start time of day.
// Blocks without a parseable start time sort last, by title.
func SortByStart(blocks []model.Block) []model.Block {
	sorted := append([]model.Block(nil), blocks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		mi, iOK := startMinutes(sorted[i])
		mj, jOK := startMinutes(sorted[j])
		switch {
		case iOK && jOK:
			return mi < mj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return sorted[i].Title < sorted[j].Title
		}
	})
	return sorted
}

func startMinutes(b model.Block) (int, bool) {
	start, _, ok := b.TimeOfDay()
	if !ok {
		return 0, false
	}
	return TimeToMinutes(start)
}
