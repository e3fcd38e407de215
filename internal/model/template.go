package model

// Template is a reusable block outline. Applying a template stamps out a new
// block at a chosen date and time range.
type Template struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Color     string   `json:"color,omitempty"`
	Category  string   `json:"category,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	TaskTexts []string `json:"taskTexts,omitempty"`
}
