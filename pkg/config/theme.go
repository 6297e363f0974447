package config

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours of the journal frame and text area.
type Theme struct {
	Background tcell.Color // behind the frame and the text
	Frame      tcell.Color // title and border marker
	Text       tcell.Color
	Prompt     tcell.Color // bottom border prompts
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: tcell.NewRGBColor(17, 18, 29),
		Frame:      tcell.NewRGBColor(238, 109, 133),
		Text:       tcell.ColorWhite,
		Prompt:     tcell.ColorYellow,
	}
}

// TerminalTheme leverages terminal-provided defaults so the journal follows
// the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		Background: tcell.ColorDefault,
		Frame:      tcell.ColorRed,
		Text:       tcell.ColorDefault,
		Prompt:     tcell.ColorYellow,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	c, err := parseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" {
		return tcell.ColorDefault, nil
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, errors.New("invalid color: " + s)
	}
	return c, nil
}

// apply overrides theme colours from a name->value table. A "preset" key
// selects a builtin theme first.
func (t Theme) apply(values map[string]string) (Theme, error) {
	if name, ok := values["preset"]; ok {
		preset, ok := BuiltinThemes[name]
		if !ok {
			return t, errors.New("unknown theme preset: " + name)
		}
		t = preset
	}
	targets := map[string]*tcell.Color{
		"background": &t.Background,
		"frame":      &t.Frame,
		"text":       &t.Text,
		"prompt":     &t.Prompt,
	}
	for key, v := range values {
		if key == "preset" {
			continue
		}
		dst, ok := targets[key]
		if !ok {
			return t, errors.New("unknown theme key: " + key)
		}
		c, err := parseColor(v)
		if err != nil {
			return t, err
		}
		*dst = c
	}
	return t, nil
}
