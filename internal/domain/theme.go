package domain

import "encoding/json"

// themeNameKey is the one key in a theme document that is not a CSS
// custom property.
const themeNameKey = "$theme"

// Theme is one theme document: a display name plus a flat map of CSS
// custom-property name → color string.
type Theme struct {
	Name string
	Vars map[string]string
}

// Accent returns the theme's primary accent color, the value shared with
// every accent-tinted surface (particles, chart strokes, badges).
func (t Theme) Accent() string {
	return t.Vars["--accent-primary"]
}

// UnmarshalJSON decodes the flat {"$theme": name, "--prop": color, ...}
// document shape.
func (t *Theme) UnmarshalJSON(data []byte) error {
	raw := map[string]string{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name = raw[themeNameKey]
	delete(raw, themeNameKey)
	t.Vars = raw
	return nil
}

// MarshalJSON re-encodes the flat document shape.
func (t Theme) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(t.Vars)+1)
	for k, v := range t.Vars {
		raw[k] = v
	}
	raw[themeNameKey] = t.Name
	return json.Marshal(raw)
}

// ThemeListEntry is one row of themelist.json: a name and the URL of the
// per-theme detail document.
type ThemeListEntry struct {
	Theme string `json:"theme"`
	URL   string `json:"url"`
}
