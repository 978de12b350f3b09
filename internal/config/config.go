package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Config is the load-time configuration of the roster page.
type Config struct {
	SheetURL         string `env:"ROSTER_SHEET_URL"`
	ColumnsPerRow    int    `env:"ROSTER_COLUMNS_PER_ROW"`
	ItemsPerPage     int    `env:"ROSTER_ITEMS_PER_PAGE"`
	SortMembers      bool   `env:"ROSTER_SORT_MEMBERS"`
	Collation        string `env:"ROSTER_COLLATION"`
	PlaceholderImage string `env:"ROSTER_PLACEHOLDER_IMAGE"`
	AudioFile        string `env:"ROSTER_AUDIO_FILE"`
	AudioPlayer      string `env:"ROSTER_AUDIO_PLAYER"`
	LogFile          string `env:"ROSTER_LOG_FILE"`
	TimeoutSeconds   int    `env:"ROSTER_TIMEOUT_SECONDS"`
}

const (
	defaultConfigPath    = "~/.config/roster/config.toml"
	defaultLogFile       = "~/.local/share/roster/roster.log"
	defaultSheetURL      = "https://docs.google.com/spreadsheets/d/e/2PACX-1vThs9RopNxmax2tjqFBvjU3QdA07hISEzwOTL9uMsfolujSimOZMN6md3mdGoq0FXZqiX6TCgqK3Os5/pub?output=csv"
	defaultColumns       = 2
	defaultItemsPerPage  = 12
	defaultCollation     = "und"
	defaultPlaceholder   = "https://via.placeholder.com/150"
	defaultAudioPlayer   = "ffplay"
	defaultTimeoutSecond = 15
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SheetURL:         defaultSheetURL,
		ColumnsPerRow:    defaultColumns,
		ItemsPerPage:     defaultItemsPerPage,
		SortMembers:      true,
		Collation:        defaultCollation,
		PlaceholderImage: defaultPlaceholder,
		AudioPlayer:      defaultAudioPlayer,
		LogFile:          mustExpand(defaultLogFile),
		TimeoutSeconds:   defaultTimeoutSecond,
	}
}

// Load reads the TOML config at path (or the default location), applies
// environment overrides, and validates the result. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := mergeFile(&cfg, resolved); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SheetURL         string  `toml:"sheet_url"`
		ColumnsPerRow    int     `toml:"columns_per_row"`
		ItemsPerPage     int     `toml:"items_per_page"`
		SortMembers      *bool   `toml:"sort_members"`
		Collation        string  `toml:"collation"`
		PlaceholderImage string  `toml:"placeholder_image"`
		AudioFile        string  `toml:"audio_file"`
		AudioPlayer      string  `toml:"audio_player"`
		LogFile          *string `toml:"log_file"`
		TimeoutSeconds   int     `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.SheetURL); v != "" {
		cfg.SheetURL = v
	}
	if raw.ColumnsPerRow != 0 {
		cfg.ColumnsPerRow = raw.ColumnsPerRow
	}
	if raw.ItemsPerPage != 0 {
		cfg.ItemsPerPage = raw.ItemsPerPage
	}
	if raw.SortMembers != nil {
		cfg.SortMembers = *raw.SortMembers
	}
	if v := strings.TrimSpace(raw.Collation); v != "" {
		cfg.Collation = v
	}
	if v := strings.TrimSpace(raw.PlaceholderImage); v != "" {
		cfg.PlaceholderImage = v
	}
	cfg.AudioFile = strings.TrimSpace(raw.AudioFile)
	if v := strings.TrimSpace(raw.AudioPlayer); v != "" {
		cfg.AudioPlayer = v
	}
	// An explicit empty log_file disables the log file.
	if raw.LogFile != nil {
		cfg.LogFile = strings.TrimSpace(*raw.LogFile)
	}
	if raw.TimeoutSeconds != 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	return nil
}

func (c *Config) normalize() {
	c.SheetURL = strings.TrimSpace(c.SheetURL)
	if c.ColumnsPerRow <= 0 {
		c.ColumnsPerRow = defaultColumns
	}
	if c.ItemsPerPage <= 0 {
		c.ItemsPerPage = defaultItemsPerPage
	}
	if strings.TrimSpace(c.Collation) == "" {
		c.Collation = defaultCollation
	}
	if strings.TrimSpace(c.PlaceholderImage) == "" {
		c.PlaceholderImage = defaultPlaceholder
	}
	if strings.TrimSpace(c.AudioPlayer) == "" {
		c.AudioPlayer = defaultAudioPlayer
	}
	if c.AudioFile != "" {
		c.AudioFile = mustExpand(c.AudioFile)
	}
	if c.LogFile != "" {
		c.LogFile = mustExpand(c.LogFile)
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSecond
	}
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	u, err := url.Parse(c.SheetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid sheet_url %q", c.SheetURL)
	}
	if _, err := language.Parse(c.Collation); err != nil {
		return fmt.Errorf("invalid collation %q: %w", c.Collation, err)
	}
	return nil
}

// CollationTag returns the parsed collation language, falling back to the
// root collation.
func (c Config) CollationTag() language.Tag {
	tag, err := language.Parse(c.Collation)
	if err != nil {
		return language.Und
	}
	return tag
}

// Timeout is the HTTP timeout for the sheet fetch.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSecond * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
