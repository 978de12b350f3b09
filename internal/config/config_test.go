package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ROSTER_SHEET_URL", "ROSTER_COLUMNS_PER_ROW", "ROSTER_ITEMS_PER_PAGE",
		"ROSTER_SORT_MEMBERS", "ROSTER_COLLATION", "ROSTER_PLACEHOLDER_IMAGE",
		"ROSTER_AUDIO_FILE", "ROSTER_AUDIO_PLAYER", "ROSTER_LOG_FILE", "ROSTER_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SheetURL != defaultSheetURL {
		t.Fatalf("SheetURL = %q, want default", cfg.SheetURL)
	}
	if cfg.ColumnsPerRow != defaultColumns || cfg.ItemsPerPage != defaultItemsPerPage {
		t.Fatalf("layout = %d cols / %d per page, want %d / %d", cfg.ColumnsPerRow, cfg.ItemsPerPage, defaultColumns, defaultItemsPerPage)
	}
	if !cfg.SortMembers {
		t.Fatalf("SortMembers = false, want true by default")
	}
	if cfg.AudioPlayer != defaultAudioPlayer || cfg.AudioFile != "" {
		t.Fatalf("audio = %q/%q, want %q and no file", cfg.AudioPlayer, cfg.AudioFile, defaultAudioPlayer)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Fatalf("Timeout = %v, want 15s", cfg.Timeout())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
sheet_url = "  https://example.com/pub?output=csv  "
columns_per_row = 3
items_per_page = 10
sort_members = false
collation = "th"
placeholder_image = "  blank.png "
audio_file = "~/music/theme.mp3"
audio_player = "mpv"
log_file = "~/logs/roster.log"
timeout_seconds = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SheetURL != "https://example.com/pub?output=csv" {
		t.Fatalf("SheetURL = %q", cfg.SheetURL)
	}
	if cfg.ColumnsPerRow != 3 || cfg.ItemsPerPage != 10 {
		t.Fatalf("layout = %d/%d, want 3/10", cfg.ColumnsPerRow, cfg.ItemsPerPage)
	}
	if cfg.SortMembers {
		t.Fatalf("SortMembers = true, want false from file")
	}
	if cfg.CollationTag() != language.Thai {
		t.Fatalf("CollationTag = %v, want th", cfg.CollationTag())
	}
	if cfg.PlaceholderImage != "blank.png" {
		t.Fatalf("PlaceholderImage = %q", cfg.PlaceholderImage)
	}
	if cfg.AudioFile != filepath.Join(home, "music/theme.mp3") || cfg.AudioPlayer != "mpv" {
		t.Fatalf("audio = %q/%q", cfg.AudioFile, cfg.AudioPlayer)
	}
	if cfg.LogFile != filepath.Join(home, "logs/roster.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Timeout() != 4*time.Second {
		t.Fatalf("Timeout = %v, want 4s", cfg.Timeout())
	}
}

func TestLoad_EmptyLogFileDisablesLogging(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `log_file = ""`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `
columns_per_row = -1
items_per_page = -5
audio_player = "   "
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ColumnsPerRow != defaultColumns || cfg.ItemsPerPage != defaultItemsPerPage {
		t.Fatalf("layout = %d/%d, want defaults", cfg.ColumnsPerRow, cfg.ItemsPerPage)
	}
	if cfg.AudioPlayer != defaultAudioPlayer {
		t.Fatalf("AudioPlayer = %q, want default", cfg.AudioPlayer)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROSTER_SHEET_URL", "https://override.example.com/sheet.csv")
	t.Setenv("ROSTER_ITEMS_PER_PAGE", "5")
	t.Setenv("ROSTER_SORT_MEMBERS", "false")

	cfg, err := Load(writeConfig(t, `
sheet_url = "https://file.example.com/sheet.csv"
items_per_page = 20
columns_per_row = 4
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SheetURL != "https://override.example.com/sheet.csv" {
		t.Fatalf("SheetURL = %q, want env override", cfg.SheetURL)
	}
	if cfg.ItemsPerPage != 5 {
		t.Fatalf("ItemsPerPage = %d, want 5 from env", cfg.ItemsPerPage)
	}
	if cfg.ColumnsPerRow != 4 {
		t.Fatalf("ColumnsPerRow = %d, want 4 from file", cfg.ColumnsPerRow)
	}
	if cfg.SortMembers {
		t.Fatalf("SortMembers = true, want env override false")
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROSTER_ITEMS_PER_PAGE", "many")

	_, err := Load(writeConfig(t, ``))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, `sheet_url = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	tests := map[string]string{
		"scheme":    `sheet_url = "ftp://example.com/x"`,
		"no host":   `sheet_url = "https://"`,
		"collation": `collation = "not a language tag!"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("Load returned nil error for %s", body)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
