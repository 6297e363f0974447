package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/buffer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !kb.Matches(ev) {
		t.Fatalf("expected match for Ctrl+X")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for KeyCtrlX")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatalf("bare x must not match Ctrl+X")
	}
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Alt+X", "Ctrl+1", "X", "Ctrl+X+Y"} {
		if _, err := ParseKeybinding(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "[Code Journal]" {
		t.Fatalf("unexpected default title %q", cfg.Title)
	}
	if cfg.Buffer.Capacity != buffer.DefaultCapacity || cfg.Buffer.Window != buffer.DefaultWindowSize {
		t.Fatalf("unexpected buffer defaults %+v", cfg.Buffer)
	}
	if !cfg.Keymap["quit"].Matches(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) {
		t.Fatalf("expected default quit on Ctrl+Q")
	}
	if cfg.Theme != DefaultTheme() {
		t.Fatalf("expected default theme")
	}
}

func TestLoadConfigRemap(t *testing.T) {
	path := writeConfig(t, "[keymap]\nquit = \"Ctrl+X\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	if !cfg.Keymap["quit"].Matches(ev) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	if _, ok := cfg.Keymap["save"]; !ok {
		t.Fatalf("unmapped commands keep their defaults")
	}
}

func TestLoad_AllSections(t *testing.T) {
	path := writeConfig(t, `
title = "[Notes]"
log_file = "/tmp/notes.log"

[buffer]
capacity = 64
window = 8

[theme]
background = "#000000"
frame = "red"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "[Notes]" || cfg.LogFile != "/tmp/notes.log" {
		t.Fatalf("unexpected top-level values %+v", cfg)
	}
	if cfg.Buffer.Capacity != 64 || cfg.Buffer.Window != 8 {
		t.Fatalf("unexpected buffer values %+v", cfg.Buffer)
	}
	if cfg.Theme.Background != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("unexpected background %v", cfg.Theme.Background)
	}
	if cfg.Theme.Frame != tcell.ColorRed {
		t.Fatalf("unexpected frame %v", cfg.Theme.Frame)
	}
	if cfg.Theme.Text != tcell.ColorWhite {
		t.Fatalf("text colour should keep its default")
	}
	b := cfg.NewBuffer()
	if b.Cap() != 64 || b.Window().Size != 8 {
		t.Fatalf("buffer not sized from config: cap=%d window=%+v", b.Cap(), b.Window())
	}
}

func TestLoad_ThemePreset(t *testing.T) {
	path := writeConfig(t, "[theme]\npreset = \"terminal\"\ntext = \"yellow\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := TerminalTheme()
	want.Text = tcell.ColorYellow
	if cfg.Theme != want {
		t.Fatalf("unexpected theme %+v", cfg.Theme)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":  "title = \n",
		"keymap":  "[keymap]\nquit = \"Meta+Q\"\n",
		"color":   "[theme]\nframe = \"not-a-colour\"\n",
		"key":     "[theme]\nborder = \"red\"\n",
		"preset":  "[theme]\npreset = \"neon\"\n",
		"bufsize": "[buffer]\ncapacity = \"big\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if name == "syntax" && !strings.Contains(err.Error(), path) {
				t.Fatalf("error should name the file: %v", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	if c := ParseColor("#EE6D85", tcell.ColorBlack); c != tcell.NewRGBColor(238, 109, 133) {
		t.Fatalf("unexpected colour %v", c)
	}
	if c := ParseColor("bogus", tcell.ColorGreen); c != tcell.ColorGreen {
		t.Fatalf("expected fallback, got %v", c)
	}
	if c := ParseColor("default", tcell.ColorGreen); c != tcell.ColorDefault {
		t.Fatalf("expected ColorDefault, got %v", c)
	}
}
