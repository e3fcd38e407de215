package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadJSON reads a JSON data file into v. A missing or empty file leaves v
// at its zero value so a failed or first-time load degrades to an empty
// collection instead of an error the caller cannot act on.
func LoadJSON(filePath string, v any) error {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read JSON file (%s): %w", filePath, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON (%s): %w", filePath, err)
	}
	return nil
}

// SaveJSON writes v to the data file, creating the parent directory if
// needed.
func SaveJSON(filePath string, v any) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file (%s): %w", filePath, err)
	}
	return nil
}
