package model

import "strings"

// Task is a single checklist item on a block. Insertion order is display order.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Block is one unit of schedule, either dated or weekday-recurring.
//
// A dated block carries full "YYYY-MM-DDTHH:MM:SS" start/end times on the
// same calendar day. A recurring block carries RecurrenceDays and its
// start/end times (if present) encode only a time of day.
type Block struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Notes          string   `json:"notes,omitempty"`
	Color          string   `json:"color,omitempty"`
	Category       string   `json:"category,omitempty"`
	Recurring      bool     `json:"recurring"`
	RecurrenceDays []string `json:"recurrenceDays,omitempty"`
	CarryOver      bool     `json:"carryOver,omitempty"`
	StartTime      string   `json:"startTime,omitempty"`
	EndTime        string   `json:"endTime,omitempty"`
	Tasks          []Task   `json:"tasks,omitempty"`
	Archived       bool     `json:"archived,omitempty"`
}

// BlockCollection is the live block set as persisted in blocks.json.
type BlockCollection struct {
	Blocks []Block `json:"blocks"`
}

func (b *Block) SetArchived() {
	b.Archived = true
}

func (b *Block) ResetArchived() {
	b.Archived = false
}

// Date returns the "YYYY-MM-DD" portion of StartTime, or "" if the block
// carries no start time.
func (b Block) Date() string {
	if b.StartTime == "" {
		return ""
	}
	date, _, _ := strings.Cut(b.StartTime, "T")
	return date
}

// TimeOfDay returns the "HH:MM" start and end of the block. ok is false if
// either time is missing or not in the expected date-time shape.
func (b Block) TimeOfDay() (start, end string, ok bool) {
	start, ok = clockPart(b.StartTime)
	if !ok {
		return "", "", false
	}
	end, ok = clockPart(b.EndTime)
	if !ok {
		return "", "", false
	}
	return start, end, true
}

func clockPart(dateTime string) (string, bool) {
	_, rest, found := strings.Cut(dateTime, "T")
	if !found || len(rest) < 5 {
		return "", false
	}
	return rest[:5], true
}

// Clone returns a deep copy, so display-time adjustments never leak into
// the stored collection.
func (b Block) Clone() Block {
	c := b
	if b.RecurrenceDays != nil {
		c.RecurrenceDays = append([]string(nil), b.RecurrenceDays...)
	}
	if b.Tasks != nil {
		c.Tasks = append([]Task(nil), b.Tasks...)
	}
	return c
}
