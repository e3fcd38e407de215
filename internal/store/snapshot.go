package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Technical-1/etb-cli/internal/model"
)

// SnapshotVersion is the export format version.
const SnapshotVersion = "1.0"

// ErrInvalidSnapshot marks an import document that does not carry a block
// collection.
var ErrInvalidSnapshot = errors.New("not a valid export: missing timeBlocks.blocks")

// Snapshot is the full-app export/import document. Everything the data dir
// holds round-trips through this one JSON shape.
type Snapshot struct {
	Version        string                `json:"version"`
	ExportDate     string                `json:"exportDate"`
	TimeBlocks     model.BlockCollection `json:"timeBlocks"`
	ArchivedBlocks model.Archive         `json:"archivedBlocks"`
	ColorPresets   []string              `json:"colorPresets"`
	Categories     []model.Category      `json:"categories"`
	BlockTemplates []model.Template      `json:"blockTemplates"`
	HiddenTimes    []string              `json:"hiddenTimes"`
}

// BuildSnapshot gathers every collection in the data dir into one document.
func BuildSnapshot(config model.Config, now time.Time) (Snapshot, error) {
	blocks, err := LoadBlocks(config)
	if err != nil {
		return Snapshot{}, err
	}
	archive, err := LoadArchive(config)
	if err != nil {
		return Snapshot{}, err
	}
	presets, err := LoadColorPresets(config)
	if err != nil {
		return Snapshot{}, err
	}
	categories, err := LoadCategories(config)
	if err != nil {
		return Snapshot{}, err
	}
	templates, err := LoadTemplates(config)
	if err != nil {
		return Snapshot{}, err
	}
	settings, err := LoadSettings(config)
	if err != nil {
		return Snapshot{}, err
	}

	if blocks.Blocks == nil {
		blocks.Blocks = []model.Block{}
	}
	if presets == nil {
		presets = []string{}
	}
	if categories == nil {
		categories = []model.Category{}
	}
	if templates == nil {
		templates = []model.Template{}
	}
	hidden := settings.HiddenTimes
	if hidden == nil {
		hidden = []string{}
	}

	return Snapshot{
		Version:        SnapshotVersion,
		ExportDate:     now.Format(time.RFC3339),
		TimeBlocks:     blocks,
		ArchivedBlocks: archive,
		ColorPresets:   presets,
		Categories:     categories,
		BlockTemplates: templates,
		HiddenTimes:    hidden,
	}, nil
}

// ParseSnapshot validates an import document. The block collection is
// required; every other section defaults to empty so partial exports still
// import.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var raw struct {
		Version        string                 `json:"version"`
		ExportDate     string                 `json:"exportDate"`
		TimeBlocks     *model.BlockCollection `json:"timeBlocks"`
		ArchivedBlocks *model.Archive         `json:"archivedBlocks"`
		ColorPresets   []string               `json:"colorPresets"`
		Categories     []model.Category       `json:"categories"`
		BlockTemplates []model.Template       `json:"blockTemplates"`
		HiddenTimes    []string               `json:"hiddenTimes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse import file: %w", err)
	}
	if raw.TimeBlocks == nil || raw.TimeBlocks.Blocks == nil {
		return Snapshot{}, ErrInvalidSnapshot
	}

	s := Snapshot{
		Version:        raw.Version,
		ExportDate:     raw.ExportDate,
		TimeBlocks:     *raw.TimeBlocks,
		ArchivedBlocks: model.NewArchive(),
		ColorPresets:   raw.ColorPresets,
		Categories:     raw.Categories,
		BlockTemplates: raw.BlockTemplates,
		HiddenTimes:    raw.HiddenTimes,
	}
	if raw.ArchivedBlocks != nil && raw.ArchivedBlocks.Days != nil {
		s.ArchivedBlocks = *raw.ArchivedBlocks
	}
	if s.ColorPresets == nil {
		s.ColorPresets = []string{}
	}
	if s.Categories == nil {
		s.Categories = []model.Category{}
	}
	if s.BlockTemplates == nil {
		s.BlockTemplates = []model.Template{}
	}
	if s.HiddenTimes == nil {
		s.HiddenTimes = []string{}
	}
	return s, nil
}

// RestoreSnapshot replaces every collection in the data dir with the
// snapshot's contents.
func RestoreSnapshot(config model.Config, s Snapshot) error {
	if err := SaveBlocks(config, s.TimeBlocks); err != nil {
		return err
	}
	if err := SaveArchive(config, s.ArchivedBlocks); err != nil {
		return err
	}
	if err := SaveColorPresets(config, s.ColorPresets); err != nil {
		return err
	}
	if err := SaveCategories(config, s.Categories); err != nil {
		return err
	}
	if err := SaveTemplates(config, s.BlockTemplates); err != nil {
		return err
	}
	settings, err := LoadSettings(config)
	if err != nil {
		return err
	}
	settings.HiddenTimes = s.HiddenTimes
	return SaveSettings(config, settings)
}
