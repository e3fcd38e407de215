package model

// Category groups blocks and supplies their display color. A block whose
// Category is set takes the category color over its own.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryColor resolves a category id to its color. ok is false for an
// unknown or empty id.
func CategoryColor(categories []Category, id string) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Color, true
		}
	}
	return "", false
}

// CategoryName resolves a category id to its display name, falling back to
// the id itself for unknown references and "-" for uncategorized blocks.
func CategoryName(categories []Category, id string) string {
	if id == "" {
		return "-"
	}
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// EffectiveColor returns the display color for a block: category color if
// categorized, else the block's own color.
func EffectiveColor(b Block, categories []Category) string {
	if b.Category != "" {
		if color, ok := CategoryColor(categories, b.Category); ok {
			return color
		}
	}
	return b.Color
}
