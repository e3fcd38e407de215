package schedule

import "github.com/Technical-1/etb-cli/internal/model"

// FindMostRecentInstance walks the archive from the most recent day back,
// looking for an archived occurrence of the given recurring block. A stored
// id match wins; a recurring entry with the same title is accepted as a
// best-effort fallback for archives written before ids were recorded.
// Within a day the first entry in stored order wins.
func FindMostRecentInstance(b model.Block, archive model.Archive) (model.ArchivedBlock, bool) {
	if !b.Recurring || !b.CarryOver {
		return model.ArchivedBlock{}, false
	}
	for _, day := range archive.SortedDates() {
		for _, archived := range archive.Days[day] {
			if archived.ID == b.ID {
				return archived, true
			}
			if archived.Recurring && archived.Title == b.Title {
				return archived, true
			}
		}
	}
	return model.ArchivedBlock{}, false
}

// ApplyCarryOver returns a display copy of b with notes and tasks pulled
// forward from its most recent archived instance. Tasks come back with
// completion reset. The stored block is never mutated; fields the block
// already has keep their own values.
func ApplyCarryOver(b model.Block, archive model.Archive) model.Block {
	archived, ok := FindMostRecentInstance(b, archive)
	if !ok {
		return b
	}
	display := b.Clone()
	if len(display.Tasks) == 0 && len(archived.Tasks) > 0 {
		display.Tasks = make([]model.Task, len(archived.Tasks))
		for i, t := range archived.Tasks {
			display.Tasks[i] = model.Task{Text: t.Text, Completed: false}
		}
	}
	if display.Notes == "" && archived.Notes != "" {
		display.Notes = archived.Notes
	}
	return display
}
