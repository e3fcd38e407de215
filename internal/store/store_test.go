package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Technical-1/etb-cli/internal/model"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	return model.Config{DataDir: t.TempDir()}
}

func TestLoadJSONMissingFile(t *testing.T) {
	var blocks model.BlockCollection
	err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"), &blocks)
	require.NoError(t, err)
	assert.Nil(t, blocks.Blocks)
}

func TestLoadJSONEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	var categories []model.Category
	err := LoadJSON(path, &categories)
	require.NoError(t, err)
	assert.Nil(t, categories)
}

func TestSaveJSONCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "file.json")
	require.NoError(t, SaveJSON(path, []string{"#ff0000"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var presets []string
	require.NoError(t, json.Unmarshal(data, &presets))
	assert.Equal(t, []string{"#ff0000"}, presets)
}

func TestBlocksRoundTrip(t *testing.T) {
	config := testConfig(t)

	blocks := model.BlockCollection{Blocks: []model.Block{
		{
			ID:        "b1",
			Title:     "Morning review",
			StartTime: "2026-03-02T09:00",
			EndTime:   "2026-03-02T09:30",
			Tasks:     []model.Task{{Text: "read inbox", Completed: true}},
		},
		{
			ID:             "b2",
			Title:          "Standup",
			Recurring:      true,
			RecurrenceDays: []string{"Monday", "Wednesday"},
			CarryOver:      true,
			StartTime:      "2026-03-02T09:30",
			EndTime:        "2026-03-02T10:00",
		},
	}}
	require.NoError(t, SaveBlocks(config, blocks))

	loaded, err := LoadBlocks(config)
	require.NoError(t, err)
	assert.Equal(t, blocks, loaded)
}

func TestLoadBlocksEmptyDataDir(t *testing.T) {
	config := testConfig(t)

	loaded, err := LoadBlocks(config)
	require.NoError(t, err)
	require.NotNil(t, loaded.Blocks)
	assert.Empty(t, loaded.Blocks)
}

func TestFindBlock(t *testing.T) {
	blocks := []model.Block{
		{ID: "abcd-1111", Title: "A"},
		{ID: "abzz-2222", Title: "B"},
		{ID: "efgh-3333", Title: "C"},
	}

	tests := []struct {
		name    string
		query   string
		wantIdx int
		wantOK  bool
	}{
		{"exact id", "efgh-3333", 2, true},
		{"unique prefix", "efgh", 2, true},
		{"ambiguous prefix", "ab", 0, false},
		{"too short prefix", "efg", 0, false},
		{"no match", "zzzz", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := FindBlock(blocks, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	config := testConfig(t)

	archive := model.NewArchive()
	archive.Days["2026-02-27"] = []model.ArchivedBlock{
		{ID: "b1", Title: "Morning review", StartTime: "2026-02-27T09:00", EndTime: "2026-02-27T09:30"},
	}
	require.NoError(t, SaveArchive(config, archive))

	loaded, err := LoadArchive(config)
	require.NoError(t, err)
	assert.Equal(t, archive, loaded)
}

func TestLoadArchiveEmptyDataDir(t *testing.T) {
	config := testConfig(t)

	loaded, err := LoadArchive(config)
	require.NoError(t, err)
	require.NotNil(t, loaded.Days)
	assert.Empty(t, loaded.Days)
}

func TestSnapshotRoundTrip(t *testing.T) {
	config := testConfig(t)

	require.NoError(t, SaveBlocks(config, model.BlockCollection{Blocks: []model.Block{
		{ID: "b1", Title: "Deep work", StartTime: "2026-03-02T14:00", EndTime: "2026-03-02T16:00"},
	}}))
	require.NoError(t, SaveCategories(config, []model.Category{{ID: "c1", Name: "Work", Color: "#3366ff"}}))
	require.NoError(t, SaveColorPresets(config, []string{"#3366ff", "#22aa55"}))
	require.NoError(t, SaveTemplates(config, []model.Template{{ID: "t1", Title: "Gym"}}))
	require.NoError(t, SaveSettings(config, model.Settings{HiddenTimes: []string{"3:00 AM"}}))

	exportedAt, err := time.Parse(time.RFC3339, "2026-03-02T18:00:00Z")
	require.NoError(t, err)

	snapshot, err := BuildSnapshot(config, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.Equal(t, "2026-03-02T18:00:00Z", snapshot.ExportDate)

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	parsed, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot.TimeBlocks, parsed.TimeBlocks)
	assert.Equal(t, snapshot.Categories, parsed.Categories)
	assert.Equal(t, snapshot.ColorPresets, parsed.ColorPresets)
	assert.Equal(t, snapshot.BlockTemplates, parsed.BlockTemplates)
	assert.Equal(t, snapshot.HiddenTimes, parsed.HiddenTimes)

	restore := testConfig(t)
	require.NoError(t, RestoreSnapshot(restore, parsed))

	blocks, err := LoadBlocks(restore)
	require.NoError(t, err)
	assert.Equal(t, snapshot.TimeBlocks, blocks)
}

func TestParseSnapshotRequiresBlocks(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"version":"1.0","categories":[]}`))
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = ParseSnapshot([]byte(`{"timeBlocks":{}}`))
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = ParseSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseSnapshotDefaultsMissingSections(t *testing.T) {
	parsed, err := ParseSnapshot([]byte(`{"timeBlocks":{"blocks":[]}}`))
	require.NoError(t, err)
	assert.NotNil(t, parsed.ArchivedBlocks.Days)
	assert.Empty(t, parsed.ArchivedBlocks.Days)
	assert.NotNil(t, parsed.ColorPresets)
	assert.NotNil(t, parsed.Categories)
	assert.NotNil(t, parsed.BlockTemplates)
	assert.NotNil(t, parsed.HiddenTimes)
}

func TestExpandHomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "etb-data"), expandHomeDir("~/etb-data"))
	assert.Equal(t, "/var/lib/etb", expandHomeDir("/var/lib/etb"))
}
