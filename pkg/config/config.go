package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"example.com/codejournal/pkg/buffer"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// BufferConfig sizes the gap buffer.
type BufferConfig struct {
	Capacity int
	Window   int
}

// Config holds user configuration values.
type Config struct {
	Title   string
	LogFile string
	Buffer  BufferConfig
	Keymap  map[string]Keybinding
	Theme   Theme
}

// fileConfig mirrors the TOML layout of the config file.
type fileConfig struct {
	Title   string `toml:"title"`
	LogFile string `toml:"log_file"`
	Buffer  struct {
		Capacity int `toml:"capacity"`
		Window   int `toml:"window"`
	} `toml:"buffer"`
	Keymap map[string]string `toml:"keymap"`
	Theme  map[string]string `toml:"theme"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Title:  "[Code Journal]",
		Buffer: BufferConfig{Capacity: buffer.DefaultCapacity, Window: buffer.DefaultWindowSize},
		Keymap: DefaultKeymap(),
		Theme:  DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit": mustParse("Ctrl+Q"),
		"save": mustParse("Ctrl+S"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if fc.Title != "" {
		cfg.Title = fc.Title
	}
	cfg.LogFile = fc.LogFile
	if fc.Buffer.Capacity > 0 {
		cfg.Buffer.Capacity = fc.Buffer.Capacity
	}
	if fc.Buffer.Window > 0 {
		cfg.Buffer.Window = fc.Buffer.Window
	}
	for cmd, binding := range fc.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: %w", cmd, err)
		}
		cfg.Keymap[cmd] = kb
	}
	if len(fc.Theme) > 0 {
		th, err := cfg.Theme.apply(fc.Theme)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		cfg.Theme = th
	}
	return cfg, nil
}

// DefaultPath returns ~/.journal/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".journal", "config.toml"), nil
}

// LoadDefault attempts to read ~/.journal/config.toml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// NewBuffer returns an empty gap buffer sized by the configuration.
func (c *Config) NewBuffer() *buffer.GapBuffer {
	return buffer.NewWithWindow(c.Buffer.Capacity, c.Buffer.Window)
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}
