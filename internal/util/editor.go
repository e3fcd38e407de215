package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func OpenEditor(filePath string, config model.Config) error {
	c := exec.Command(config.Editor, filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}

// EditText round-trips a string through the configured editor using a
// temporary file. Used for block notes, which are multi-line markdown.
func EditText(initial string, config model.Config) (string, error) {
	tmpDir, err := os.MkdirTemp("", "etb-edit-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, "notes.md")
	if err := os.WriteFile(tmpFile, []byte(initial), 0644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := OpenEditor(tmpFile, config); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpFile)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(edited), nil
}
