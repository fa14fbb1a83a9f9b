package theme_test

import (
	"errors"
	"testing"

	"github.com/fightclub-net/fightclub/internal/app/theme"
	"github.com/fightclub-net/fightclub/internal/domain"
)

func catalog() []domain.Theme {
	return []domain.Theme{
		{Name: "Dark Knight", Vars: map[string]string{"--accent-primary": "#ffd700"}},
		{Name: "Zen White", Vars: map[string]string{"--accent-primary": "#ff1e56"}},
		{Name: "dark knight", Vars: map[string]string{"--accent-primary": "#000000"}},
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	got := theme.Resolve("DARK KNIGHT", catalog())
	if got.Accent() != "#ffd700" {
		t.Errorf("expected first catalog match, got %+v", got)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	got := theme.Resolve("dark knight", catalog())
	if got.Accent() != "#ffd700" {
		t.Errorf("expected the earlier entry despite exact-case later one, got %q", got.Accent())
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	got := theme.Resolve("nonexistent", catalog())
	if got.Name != "Zen White" {
		t.Errorf("expected default theme, got %q", got.Name)
	}
	if got.Accent() != "#ff1e56" {
		t.Errorf("default accent: got %q", got.Accent())
	}
}

func TestResolve_EmptyNameFallsBack(t *testing.T) {
	got := theme.Resolve("", catalog())
	if got.Name != "Zen White" {
		t.Errorf("expected default theme, got %q", got.Name)
	}
}

func TestResolve_EmptyCatalog(t *testing.T) {
	got := theme.Resolve("Dark Knight", nil)
	if got.Name != "Zen White" {
		t.Errorf("expected default theme, got %q", got.Name)
	}
}

func TestDefault_HasFullVarSet(t *testing.T) {
	def := theme.Default()
	for _, key := range []string{"--accent-primary", "--background", "--text-primary", "--drop-shadow"} {
		if def.Vars[key] == "" {
			t.Errorf("default theme missing %s", key)
		}
	}
}

type fakeStore struct {
	prefs map[string]string
	err   error
}

func (s *fakeStore) SetPref(key, value string) error {
	if s.err != nil {
		return s.err
	}
	if s.prefs == nil {
		s.prefs = map[string]string{}
	}
	s.prefs[key] = value
	return nil
}

func TestApply_PersistsNameAndAccent(t *testing.T) {
	store := &fakeStore{}
	sel := catalog()[0]
	if err := theme.Apply(sel, store); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if store.prefs[theme.PrefName] != "Dark Knight" {
		t.Errorf("name pref: got %q", store.prefs[theme.PrefName])
	}
	if store.prefs[theme.PrefAccent] != "#ffd700" {
		t.Errorf("accent pref: got %q", store.prefs[theme.PrefAccent])
	}
}

func TestApply_PropagatesStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	if err := theme.Apply(theme.Default(), store); err == nil {
		t.Fatal("expected error")
	}
}
