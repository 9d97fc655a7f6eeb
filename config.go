package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const configFileName = ".sketchboard.toml"

type Config struct {
	SaveDirectory  string   `toml:"save_directory"`
	ExportName     string   `toml:"export_name"`
	BorderColor    string   `toml:"border_color"`
	FillColor      string   `toml:"fill_color"`
	FillOpacity    int      `toml:"fill_opacity"`
	FillWeight     int      `toml:"fill_weight"`
	CellWidth      int      `toml:"cell_width"`
	CellHeight     int      `toml:"cell_height"`
	ExportLabel    bool     `toml:"export_label"`
	CopyExportPath bool     `toml:"copy_export_path"`
	Palette        []string `toml:"palette"`
}

var defaultPalette = []string{
	"#000000", "#ffffff", "#e03131", "#2f9e44", "#1971c2", "#f08c00", "#9c36b5", "#868e96",
}

func defaultConfig() *Config {
	return &Config{
		ExportName:     "drawing",
		BorderColor:    "#000000",
		FillOpacity:    0,
		FillWeight:     minFillWeight,
		CellWidth:      defaultCellWidth,
		CellHeight:     defaultCellHeight,
		CopyExportPath: true,
		Palette:        append([]string(nil), defaultPalette...),
	}
}

// loadConfig reads ~/.sketchboard.toml. A missing file yields the defaults;
// a malformed one yields the defaults and an error describing the problem.
func loadConfig() (*Config, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(filepath.Join(homeDir, configFileName), homeDir)
}

func loadConfigFrom(path, homeDir string) (*Config, error) {
	config := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	config.normalize(homeDir)
	return config, nil
}

// normalize clamps numeric settings into range and drops colors that do not
// parse back to their defaults.
func (c *Config) normalize(homeDir string) {
	defaults := defaultConfig()

	if strings.HasPrefix(c.SaveDirectory, "~") && homeDir != "" {
		c.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(c.SaveDirectory, "~"))
	}
	if c.SaveDirectory != "" && !filepath.IsAbs(c.SaveDirectory) {
		if absPath, err := filepath.Abs(c.SaveDirectory); err == nil {
			c.SaveDirectory = absPath
		}
	}
	if strings.TrimSpace(c.ExportName) == "" {
		c.ExportName = defaults.ExportName
	}
	if !validHex(c.BorderColor) {
		c.BorderColor = defaults.BorderColor
	}
	if c.FillColor != "" && !validHex(c.FillColor) {
		c.FillColor = defaults.FillColor
	}
	c.FillOpacity = clampInt(c.FillOpacity, 0, maxOpacity)
	c.FillWeight = clampInt(c.FillWeight, minFillWeight, maxFillWeight)
	if c.CellWidth < 1 {
		c.CellWidth = defaults.CellWidth
	}
	if c.CellHeight < 1 {
		c.CellHeight = defaults.CellHeight
	}

	palette := c.Palette[:0]
	for _, hex := range c.Palette {
		if validHex(hex) {
			palette = append(palette, strings.ToLower(hex))
		}
	}
	if len(palette) == 0 {
		palette = defaults.Palette
	}
	c.Palette = palette
}

// GetSavePath places filename in the save directory, creating the directory
// when it does not exist yet.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := parseHexColor(s)
	return err == nil
}
