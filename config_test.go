package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.toml"), "")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, `
save_directory = "~/drawings"
export_name = "board"
border_color = "#E03131"
fill_color = "#1971c2"
fill_opacity = 40
fill_weight = 3
cell_width = 10
cell_height = 20
export_label = true
copy_export_path = false
palette = ["#000000", "#FFFFFF", "not-a-color"]
`)

	config, err := loadConfigFrom(path, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "drawings"), config.SaveDirectory)
	assert.Equal(t, "board", config.ExportName)
	assert.Equal(t, "#E03131", config.BorderColor)
	assert.Equal(t, "#1971c2", config.FillColor)
	assert.Equal(t, 40, config.FillOpacity)
	assert.Equal(t, 3, config.FillWeight)
	assert.Equal(t, 10, config.CellWidth)
	assert.Equal(t, 20, config.CellHeight)
	assert.True(t, config.ExportLabel)
	assert.False(t, config.CopyExportPath)
	assert.Equal(t, []string{"#000000", "#ffffff"}, config.Palette)
}

func TestLoadConfigNormalizes(t *testing.T) {
	path := writeConfig(t, `
export_name = "  "
border_color = "blue"
fill_color = "#12"
fill_opacity = 180
fill_weight = 0
cell_width = -1
palette = ["nope"]
`)

	config, err := loadConfigFrom(path, "")
	require.NoError(t, err)
	defaults := defaultConfig()
	assert.Equal(t, defaults.ExportName, config.ExportName)
	assert.Equal(t, defaults.BorderColor, config.BorderColor)
	assert.Equal(t, defaults.FillColor, config.FillColor)
	assert.Equal(t, maxOpacity, config.FillOpacity)
	assert.Equal(t, minFillWeight, config.FillWeight)
	assert.Equal(t, defaults.CellWidth, config.CellWidth)
	assert.Equal(t, defaults.Palette, config.Palette)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "export_name = [unterminated")

	config, err := loadConfigFrom(path, "")
	assert.Error(t, err)
	assert.Equal(t, defaultConfig(), config, "a broken file falls back to the defaults")
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	path, err := config.GetSavePath("drawing.png")
	require.NoError(t, err)
	assert.Equal(t, "drawing.png", path)

	config.SaveDirectory = filepath.Join(t.TempDir(), "out")
	path, err = config.GetSavePath("drawing.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(config.SaveDirectory, "drawing.png"), path)
	info, err := os.Stat(config.SaveDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetSavePathUncreatableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "out")
	_, err := config.GetSavePath("drawing.png")
	assert.ErrorContains(t, err, "create save directory")
}

func TestValidHex(t *testing.T) {
	assert.True(t, validHex("#a1b2c3"))
	assert.True(t, validHex("#A1B2C3"))
	assert.False(t, validHex("#a1b2c3ff"))
	assert.False(t, validHex("a1b2c3"))
	assert.False(t, validHex("#zza1b2"))
}
