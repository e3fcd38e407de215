package schedule

import (
	"time"

	"github.com/Technical-1/etb-cli/internal/model"
)

// RunArchive performs the day-boundary transition: every non-recurring
// block dated strictly before today moves out of the live collection into
// the per-day archive. The pass is idempotent; a block id already archived
// under its date key is not appended again. moved reports how many blocks
// actually changed state so callers can skip redundant writes.
//
// Recurring blocks and blocks without a start time always stay live. A
// block whose date portion does not parse is retained rather than aborting
// the pass. The inputs are not mutated.
func RunArchive(blocks []model.Block, archive model.Archive, today time.Time) (stillLive []model.Block, out model.Archive, moved int) {
	todayStr := FormatDate(today)

	out = model.NewArchive()
	for day, entries := range archive.Days {
		out.Days[day] = append([]model.ArchivedBlock(nil), entries...)
	}

	stillLive = make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Recurring || b.StartTime == "" {
			stillLive = append(stillLive, b)
			continue
		}
		day := b.Date()
		if !isDateKey(day) || day >= todayStr {
			stillLive = append(stillLive, b)
			continue
		}
		if !out.Contains(day, b.ID) {
			out.Days[day] = append(out.Days[day], model.Snapshot(b))
		}
		moved++
	}
	return stillLive, out, moved
}

// isDateKey checks the "YYYY-MM-DD" shape without being strict about
// calendar validity; lexical comparison against today only works when the
// shape holds.
func isDateKey(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
