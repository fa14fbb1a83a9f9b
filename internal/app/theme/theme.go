// Package theme resolves named themes against the remote catalog and
// persists the active selection for the next startup.
package theme

import (
	"fmt"
	"strings"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// Preference keys for the active theme. The accent is stored separately so
// accent-tinted consumers can read one small value instead of the whole
// theme record.
const (
	PrefName   = "theme"
	PrefAccent = "theme_accent"
)

// Resolve looks up a theme by name, case-insensitively, scanning the
// catalog in order; the first match wins. An empty name or a name with no
// catalog entry resolves to the fixed default — theme lookup never fails.
func Resolve(name string, catalog []domain.Theme) domain.Theme {
	if name != "" {
		for _, t := range catalog {
			if strings.EqualFold(t.Name, name) {
				return t
			}
		}
	}
	return Default()
}

// PrefStore is the slice of the preference store Apply needs.
type PrefStore interface {
	SetPref(key, value string) error
}

// Apply makes a resolved theme the active one: its name and primary accent
// are written to the preference store for reuse on next load and for
// cross-component color coordination.
func Apply(t domain.Theme, store PrefStore) error {
	if err := store.SetPref(PrefName, t.Name); err != nil {
		return fmt.Errorf("save theme name: %w", err)
	}
	if err := store.SetPref(PrefAccent, t.Accent()); err != nil {
		return fmt.Errorf("save theme accent: %w", err)
	}
	return nil
}

// Default returns the built-in fallback theme. The payload is the light
// "Zen White" record, kept byte-for-byte in sync with the dashboard's
// stylesheet defaults.
func Default() domain.Theme {
	return domain.Theme{
		Name: "Zen White",
		Vars: map[string]string{
			"--accent-primary": "#ff1e56",

			"--text-primary":      "#444444",
			"--text-btn":          "#fff",
			"--text-secondary":    "#4d4d4d",
			"--home-heading":      "#646464",
			"--heading-primary":   "#3d3d3d",
			"--heading-secondary": "#444",
			"--animation-text":    "#757575",
			"--badge-text":        "#f8f9fa",
			"--tags":              "#a0a0a0",
			"--tag-text":          "#757575",
			"--tagcount-bg":       "#e6e6e6",
			"--tagbg-hover":       "#ff5e860c",

			"--background":   "#fff",
			"--header-bg":    "#f8f9fa",
			"--subheader-bg": "#fff",
			"--border":       "#d1d1d1",
			"--icons-social": "#5e5e5e",
			"--drop-shadow":  "#2222224f",
		},
	}
}
