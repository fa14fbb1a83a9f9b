package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fightclub-net/fightclub/internal/api"
	"github.com/fightclub-net/fightclub/internal/app/dashboard"
	"github.com/fightclub-net/fightclub/internal/app/summary"
	"github.com/fightclub-net/fightclub/internal/app/theme"
	"github.com/fightclub-net/fightclub/internal/domain"
	"github.com/fightclub-net/fightclub/internal/health"
)

// fakeBackend serves a canned projection.
type fakeBackend struct {
	proj      *dashboard.Projection
	themeSet  string
	refreshed bool
	healthy   bool
}

func (f *fakeBackend) Projection() (*dashboard.Projection, error) {
	if f.proj == nil {
		return nil, domain.ErrNoSnapshot
	}
	return f.proj, nil
}

func (f *fakeBackend) SelectTheme(name string) (domain.Theme, error) {
	f.themeSet = name
	return theme.Resolve(name, f.proj.ThemeCatalog), nil
}

func (f *fakeBackend) Refresh(ctx context.Context) error {
	f.refreshed = true
	return nil
}

func (f *fakeBackend) HealthStatuses() ([]health.Status, bool) {
	return []health.Status{{Name: "sqlite", Healthy: f.healthy}}, f.healthy
}

func testProjection() *dashboard.Projection {
	return &dashboard.Projection{
		SnapshotID:  "snap-1",
		FetchedAt:   time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2024, 6, 10, 12, 0, 1, 0, time.UTC),
		Streak: dashboard.StreakView{
			StreakResult:   domain.StreakResult{Current: 3, Best: 7},
			CurrentDisplay: "0003",
			BestDisplay:    "0007",
		},
		NotCompleted: []dashboard.MissionView{
			{Mission: domain.Mission{MissionCode: "M-001", Status: domain.MissionInProgress}},
		},
		Rewards: []domain.Reward{
			{RewardID: "r1", RewardType: domain.RewardApex, IsLocked: false},
			{RewardID: "r2", RewardType: domain.RewardStreet, IsLocked: true},
		},
		RewardsSummary: summary.RewardsSummary{Total: 2, Unlocked: 1, Locked: 1},
		Badges: []domain.Badge{
			{BadgeID: "b1", Status: domain.BadgeUnlocked, Rarity: domain.RarityRare},
			{BadgeID: "b2", Status: domain.BadgeLocked, Rarity: domain.RarityEpic},
		},
		BadgesSummary: summary.BadgesSummary{Total: 2, Unlocked: 1},
		Egos: []dashboard.EgoView{
			{AlterEgo: domain.AlterEgo{Name: "tyler", Level: 5}},
		},
		History: []domain.HistoryEntry{{HistoryIndex: 1, AlterEgo: "tyler"}},
		Theme:   theme.Default(),
		ThemeCatalog: []domain.Theme{
			{Name: "Dark Knight", Vars: map[string]string{"--accent-primary": "#ffd700"}},
		},
	}
}

func testServer(t *testing.T, backend api.Backend) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewServer(backend).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, dst interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestDashboardEndpoint(t *testing.T) {
	backend := &fakeBackend{proj: testProjection(), healthy: true}
	srv := testServer(t, backend)

	var got dashboard.Projection
	if code := get(t, srv.URL+"/api/dashboard", &got); code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if got.SnapshotID != "snap-1" {
		t.Errorf("snapshot id: %q", got.SnapshotID)
	}
	if got.Streak.CurrentDisplay != "0003" {
		t.Errorf("streak display: %q", got.Streak.CurrentDisplay)
	}
}

func TestNoSnapshotIs503(t *testing.T) {
	srv := testServer(t, &fakeBackend{})

	if code := get(t, srv.URL+"/api/dashboard", nil); code != http.StatusServiceUnavailable {
		t.Errorf("status: %d", code)
	}
}

func TestRewardsFiltering(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection()})

	var got struct {
		Rewards []domain.Reward `json:"rewards"`
	}
	if code := get(t, srv.URL+"/api/rewards?locked=true", &got); code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if len(got.Rewards) != 1 || got.Rewards[0].RewardID != "r2" {
		t.Errorf("filtered rewards: %+v", got.Rewards)
	}

	if code := get(t, srv.URL+"/api/rewards?locked=sideways", nil); code != http.StatusBadRequest {
		t.Errorf("bad filter status: %d", code)
	}
}

func TestBadgesFiltering(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection()})

	var got struct {
		Badges []domain.Badge `json:"badges"`
	}
	if code := get(t, srv.URL+"/api/badges?status=unlocked", &got); code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if len(got.Badges) != 1 || got.Badges[0].BadgeID != "b1" {
		t.Errorf("filtered badges: %+v", got.Badges)
	}
}

func TestEgoLookup(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection()})

	var got dashboard.EgoView
	if code := get(t, srv.URL+"/api/egos/TYLER", &got); code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if got.Name != "tyler" {
		t.Errorf("ego: %q", got.Name)
	}

	if code := get(t, srv.URL+"/api/egos/ghost", nil); code != http.StatusNotFound {
		t.Errorf("missing ego status: %d", code)
	}
}

func TestSetTheme(t *testing.T) {
	backend := &fakeBackend{proj: testProjection()}
	srv := testServer(t, backend)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/theme",
		strings.NewReader(`{"name":"Dark Knight"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if backend.themeSet != "Dark Knight" {
		t.Errorf("backend got %q", backend.themeSet)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["$theme"] != "Dark Knight" {
		t.Errorf("resolved theme: %v", got)
	}
}

func TestSetTheme_EmptyNameRejected(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection()})

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/theme", strings.NewReader(`{}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: %d", resp.StatusCode)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	backend := &fakeBackend{proj: testProjection()}
	srv := testServer(t, backend)

	resp, err := http.Post(srv.URL+"/api/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: %d", resp.StatusCode)
	}
	if !backend.refreshed {
		t.Error("backend refresh not called")
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection(), healthy: true})
	if code := get(t, srv.URL+"/health", nil); code != http.StatusOK {
		t.Errorf("healthy status: %d", code)
	}

	srv = testServer(t, &fakeBackend{proj: testProjection(), healthy: false})
	if code := get(t, srv.URL+"/health", nil); code != http.StatusServiceUnavailable {
		t.Errorf("degraded status: %d", code)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t, &fakeBackend{proj: testProjection()})

	resp, err := http.Get(srv.URL + "/api/streak")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS header")
	}
}
