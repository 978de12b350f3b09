package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p != Default() {
		t.Fatalf("Load = %#v, want %#v", p, Default())
	}
	if p.Volume != DefaultVolume {
		t.Fatalf("Volume = %v, want %v", p.Volume, DefaultVolume)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "roster")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\nvolume = 0.6\nmuted = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	want := Prefs{Theme: "Slate", Volume: 0.6, Muted: true}
	if p != want {
		t.Fatalf("Load = %#v, want %#v", p, want)
	}
}

func TestLoad_ZeroVolumeIsKept(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "custom.toml")
	if err := os.WriteFile(prefsFile, []byte("volume = 0.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.Volume != 0 {
		t.Fatalf("Volume = %v, want 0", p.Volume)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default", p.Theme)
	}
}

func TestLoad_InvalidTOMLUsesDefaults(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "bad.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p != Default() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestSave_RoundTripAndClamp(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "nested", "dir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Kanagawa", Volume: 3, Muted: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(prefsFile)
	want := Prefs{Theme: "Kanagawa", Volume: 1, Muted: true}
	if p != want {
		t.Fatalf("Load after Save = %#v, want %#v", p, want)
	}
}
