package store

import (
	"fmt"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func archivePath(config model.Config) string {
	return filepath.Join(config.DataDir, "archive.json")
}

// LoadArchive reads the per-day archive, returning an empty archive when
// none exists yet.
func LoadArchive(config model.Config) (model.Archive, error) {
	archive := model.NewArchive()
	if err := LoadJSON(archivePath(config), &archive); err != nil {
		return model.NewArchive(), fmt.Errorf("error loading archive: %w", err)
	}
	if archive.Days == nil {
		archive.Days = map[string][]model.ArchivedBlock{}
	}
	return archive, nil
}

func SaveArchive(config model.Config, archive model.Archive) error {
	return SaveJSON(archivePath(config), archive)
}
