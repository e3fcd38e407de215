package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

func TestValidateDurationBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"one minute under the minimum", "09:00", "09:29", ErrTooShort},
		{"exactly the minimum", "09:00", "09:30", nil},
		{"exactly the maximum", "09:00", "17:00", nil},
		{"one minute over the maximum", "09:00", "17:01", ErrTooLong},
		{"zero duration", "09:00", "09:00", ErrNonPositive},
		{"end before start", "10:00", "09:00", ErrNonPositive},
		{"garbage start", "late", "09:00", ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDurationMessageStatesActual(t *testing.T) {
	err := ValidateDuration("09:00", "09:29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "30")
	assert.Contains(t, err.Error(), "29")
}

func TestValidateBlock(t *testing.T) {
	dated := model.Block{
		ID:        "b1",
		Title:     "Deep work",
		StartTime: "2024-01-15T09:00:00",
		EndTime:   "2024-01-15T11:00:00",
	}
	assert.NoError(t, ValidateBlock(dated))

	missingTitle := dated
	missingTitle.Title = ""
	assert.ErrorIs(t, ValidateBlock(missingTitle), ErrMissingTitle)

	crossDay := dated
	crossDay.EndTime = "2024-01-16T11:00:00"
	assert.ErrorIs(t, ValidateBlock(crossDay), ErrDateMismatch)

	noEnd := dated
	noEnd.EndTime = ""
	assert.ErrorIs(t, ValidateBlock(noEnd), ErrInvalidTime)

	recurring := model.Block{
		ID:             "r1",
		Title:          "Standup",
		Recurring:      true,
		RecurrenceDays: []string{"Monday", "Wednesday"},
		StartTime:      "2024-01-01T09:00:00",
		EndTime:        "2024-01-01T09:30:00",
	}
	assert.NoError(t, ValidateBlock(recurring))

	noDays := recurring
	noDays.RecurrenceDays = nil
	assert.ErrorIs(t, ValidateBlock(noDays), ErrMissingRecurrence)

	badDay := recurring
	badDay.RecurrenceDays = []string{"Funday"}
	assert.ErrorIs(t, ValidateBlock(badDay), ErrMissingRecurrence)

	// A pure recurring block without times is fine.
	timeless := recurring
	timeless.StartTime = ""
	timeless.EndTime = ""
	assert.NoError(t, ValidateBlock(timeless))
}

func TestFindOverlaps(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	blocks := []model.Block{
		{
			ID:        "a",
			Title:     "Morning review",
			StartTime: "2024-01-15T09:00:00",
			EndTime:   "2024-01-15T10:00:00",
		},
		{
			ID:        "other-day",
			Title:     "Elsewhere",
			StartTime: "2024-01-16T09:00:00",
			EndTime:   "2024-01-16T10:00:00",
		},
	}

	overlapping := FindOverlaps("09:30", "10:30", date, "", blocks)
	assert.Equal(t, []string{"Morning review"}, overlapping)

	// Touching intervals do not overlap.
	assert.Empty(t, FindOverlaps("10:00", "11:00", date, "", blocks))

	// The block being edited is excluded from its own check.
	assert.Empty(t, FindOverlaps("09:30", "10:30", date, "a", blocks))
}

func TestFindOverlapsRecurring(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	require.Equal(t, "Monday", WeekdayName(monday))

	blocks := []model.Block{{
		ID:             "r",
		Title:          "Standup",
		Recurring:      true,
		RecurrenceDays: []string{"Monday"},
		StartTime:      "2024-01-01T09:00:00",
		EndTime:        "2024-01-01T09:30:00",
	}}

	assert.Equal(t, []string{"Standup"}, FindOverlaps("09:00", "10:00", monday, "", blocks))
	tuesday := monday.AddDate(0, 0, 1)
	assert.Empty(t, FindOverlaps("09:00", "10:00", tuesday, "", blocks))
}

func TestFindOverlapsUnalignedTimes(t *testing.T) {
	// Overlap math must not assume half-hour alignment.
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	blocks := []model.Block{{
		ID:        "a",
		Title:     "Oddly placed",
		StartTime: "2024-01-15T09:10:00",
		EndTime:   "2024-01-15T09:50:00",
	}}
	assert.Equal(t, []string{"Oddly placed"}, FindOverlaps("09:45", "10:15", date, "", blocks))
	assert.Empty(t, FindOverlaps("09:50", "10:20", date, "", blocks))
}
