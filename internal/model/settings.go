package model

// Settings holds per-user display preferences. HiddenTimes lists grid labels
// the day view should not render; Theme and Notifications are kept only so
// exported snapshots round-trip.
type Settings struct {
	HiddenTimes   []string `json:"hiddenTimes"`
	Theme         string   `json:"theme,omitempty"`
	Notifications bool     `json:"notifications,omitempty"`
}
