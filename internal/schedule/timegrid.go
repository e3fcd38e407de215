// Package schedule holds the block layout and lifecycle engine: the
// half-hour grid math, placement validation, day membership, carry-over
// resolution and the day-boundary archive pass. Everything here is pure;
// collections go in as parameters and come back as new values.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// SlotMinutes is the grid quantum.
	SlotMinutes = 30
	// SlotsPerDay is 24 hours * 2 slots per hour.
	SlotsPerDay = 48
)

// SlotLabels returns the fixed 48-label sequence "12:00 AM" .. "11:30 PM",
// one label per half-hour slot starting at midnight.
func SlotLabels() []string {
	labels := make([]string, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			h12 := h % 12
			if h12 == 0 {
				h12 = 12
			}
			suffix := "AM"
			if h >= 12 {
				suffix = "PM"
			}
			labels = append(labels, fmt.Sprintf("%d:%02d %s", h12, m, suffix))
		}
	}
	return labels
}

// To12Hour converts an "HH:MM" time to its 12-hour label. Minutes are
// preserved as given, so it works for arbitrary-minute times, not only
// grid-aligned ones. ok is false for a malformed input.
func To12Hour(hhmm string) (string, bool) {
	hStr, mStr, found := strings.Cut(hhmm, ":")
	if !found || len(mStr) != 2 {
		return "", false
	}
	h, err := strconv.Atoi(hStr)
	if err != nil || h < 0 || h > 23 {
		return "", false
	}
	if _, err := strconv.Atoi(mStr); err != nil {
		return "", false
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, mStr, suffix), true
}

var labelPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// To24Hour converts a 12-hour label back to "HH:MM". ok is false for a
// malformed label; there is deliberately no "00:00" fallback, since a silent
// default would corrupt stored times.
func To24Hour(label string) (string, bool) {
	match := labelPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(label)))
	if match == nil {
		return "", false
	}
	h, err := strconv.Atoi(match[1])
	if err != nil || h < 1 || h > 12 {
		return "", false
	}
	if match[3] == "PM" && h < 12 {
		h += 12
	}
	if match[3] == "AM" && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%s", h, match[2]), true
}

// RangeOfLabels returns the half-open slice of SlotLabels() from startLabel
// up to but excluding endLabel. Empty if either label is not on the grid or
// start does not precede end.
func RangeOfLabels(startLabel, endLabel string) []string {
	labels := SlotLabels()
	si := indexOf(labels, startLabel)
	ei := indexOf(labels, endLabel)
	if si < 0 || ei < 0 || si >= ei {
		return nil
	}
	return labels[si:ei]
}

// RowSpanForRange counts how many rows of the visible grid a label range
// occupies. Labels hidden by user settings are not counted. Defaults to 1
// so a block always occupies at least its own row.
func RowSpanForRange(visible []string, rng []string) int {
	if len(rng) == 0 {
		return 1
	}
	count := 0
	for _, label := range rng {
		if indexOf(visible, label) >= 0 {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// TimeToMinutes converts "HH:MM" to minutes since midnight. ok is false for
// malformed input.
func TimeToMinutes(hhmm string) (int, bool) {
	hStr, mStr, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// FormatDate renders a date as the "YYYY-MM-DD" key used throughout the
// block collection and archive.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
