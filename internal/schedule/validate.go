package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/Technical-1/etb-cli/internal/model"
)

// Block duration limits, in minutes.
const (
	MinBlockDuration = 30
	MaxBlockDuration = 480
)

// Validation failure kinds, matchable with errors.Is.
var (
	ErrNonPositive       = errors.New("end time must be after start time")
	ErrTooShort          = errors.New("block is too short")
	ErrTooLong           = errors.New("block is too long")
	ErrMissingTitle      = errors.New("block title is required")
	ErrInvalidTime       = errors.New("invalid time")
	ErrMissingRecurrence = errors.New("recurring block needs at least one weekday")
	ErrDateMismatch      = errors.New("start and end must fall on the same day")
)

// ValidateDuration checks that the span from start to end ("HH:MM" each)
// lies within [MinBlockDuration, MaxBlockDuration] minutes.
func ValidateDuration(start, end string) error {
	startMin, ok := TimeToMinutes(start)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTime, start)
	}
	endMin, ok := TimeToMinutes(end)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTime, end)
	}
	duration := endMin - startMin
	if duration <= 0 {
		return fmt.Errorf("%w (%s to %s)", ErrNonPositive, start, end)
	}
	if duration < MinBlockDuration {
		return fmt.Errorf("%w: must be at least %d minutes, got %d", ErrTooShort, MinBlockDuration, duration)
	}
	if duration > MaxBlockDuration {
		return fmt.Errorf("%w: cannot exceed %d hours, got %dh %dm", ErrTooLong, MaxBlockDuration/60, duration/60, duration%60)
	}
	return nil
}

// ValidateBlock gates a candidate block before it reaches the store.
func ValidateBlock(b model.Block) error {
	if b.Title == "" {
		return ErrMissingTitle
	}
	if b.Recurring {
		if len(b.RecurrenceDays) == 0 {
			return ErrMissingRecurrence
		}
		for _, day := range b.RecurrenceDays {
			if !IsWeekdayName(day) {
				return fmt.Errorf("%w: unknown weekday %q", ErrMissingRecurrence, day)
			}
		}
		// Times are optional on recurring blocks.
		if b.StartTime == "" && b.EndTime == "" {
			return nil
		}
	} else {
		if b.StartTime == "" || b.EndTime == "" {
			return fmt.Errorf("%w: dated block needs start and end times", ErrInvalidTime)
		}
		startDate, _, _ := timeParts(b.StartTime)
		endDate, _, _ := timeParts(b.EndTime)
		if startDate != endDate {
			return ErrDateMismatch
		}
	}
	start, end, ok := b.TimeOfDay()
	if !ok {
		return fmt.Errorf("%w: %q / %q", ErrInvalidTime, b.StartTime, b.EndTime)
	}
	return ValidateDuration(start, end)
}

// FindOverlaps returns the titles of every block applicable on date whose
// [start, end) interval overlaps the candidate's. excludeID skips the block
// being edited. Overlap is advisory; the caller decides whether to proceed.
func FindOverlaps(candidateStart, candidateEnd string, date time.Time, excludeID string, blocks []model.Block) []string {
	s1, ok := TimeToMinutes(candidateStart)
	if !ok {
		return nil
	}
	e1, ok := TimeToMinutes(candidateEnd)
	if !ok {
		return nil
	}

	var titles []string
	for _, b := range blocks {
		if b.ID == excludeID || !AppliesOnDate(b, date) {
			continue
		}
		start, end, ok := b.TimeOfDay()
		if !ok {
			continue
		}
		s2, ok := TimeToMinutes(start)
		if !ok {
			continue
		}
		e2, ok := TimeToMinutes(end)
		if !ok {
			continue
		}
		if s1 < e2 && s2 < e1 {
			titles = append(titles, b.Title)
		}
	}
	return titles
}

func timeParts(dateTime string) (date, clock string, ok bool) {
	for i := 0; i < len(dateTime); i++ {
		if dateTime[i] == 'T' {
			return dateTime[:i], dateTime[i+1:], true
		}
	}
	return "", "", false
}
