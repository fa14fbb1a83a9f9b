package source_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fightclub-net/fightclub/internal/infra/source"
)

// testRepo serves a minimal but complete data repo.
func testRepo(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc("/"+path, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("t") == "" {
				t.Errorf("%s: missing cache-buster param", path)
			}
			fmt.Fprint(w, body)
		})
	}

	serve("timeline.json", `[
		{"date":"2024-06-10","title":"daily check-in"},
		{"date":"2024-06-09","title":"daily check-in"}
	]`)
	serve("gamification/missions/active.json", `{"missions":[
		{"mission_code":"M-001","title":"Morning Run","status":"in-progress",
		 "progress":{"current":2,"total":5},
		 "reward":[{"reward_type":"street","title":"First Blood","reward_id":"r1"}],
		 "start_date":"2024-06-01"}
	]}`)
	serve("gamification/missions/not-started.json", `{"missions":[
		{"mission_code":"M-002","title":"Deep Work","status":"not-started","start_date":"2024-06-05"}
	]}`)
	serve("gamification/missions/failed.json", `{"missions":[]}`)
	serve("gamification/missions/completed.json", `{"missions":[
		{"mission_code":"M-000","title":"Setup","status":"completed","start_date":"2024-05-01"}
	]}`)
	serve("gamification/rewards/locked-aggregate.json", `{"rewards":[
		{"reward_id":"r9","title":"Night Shift","reward_type":"apex","is_locked":true,"associated_mission_ids":[]}
	]}`)
	serve("gamification/rewards/unlocked-aggregate.json", `{"rewards":[
		{"reward_id":"r1","title":"First Blood","reward_type":"street","is_locked":false,"associated_mission_ids":["M-001"]}
	]}`)
	serve("gamification/badges.json", `{"badges":[
		{"badge_id":"b1","title":"Starter","rarity":"common","category":"general","status":"unlocked"}
	]}`)
	serve("gamification/synergy.json", `{"fight_club":{
		"level":3,"total_synergy":180,
		"synergy":{"mind":60,"body":70,"soul":50},
		"missions":{"total":4,"completed":1,"failed":0,"not-started":1,"in-progress":2},
		"rewards":{"total":2,"locked":1,"unlocked":1},
		"daily_progress":{"daily_progress_streak":2,"days_checked_in":12}
	}}`)
	serve("gamification/history.json", `[
		{"history_index":1,"alter-ego":"tyler","event_type":"completed","mission_associated":"M-000","date":"2024-06-01"},
		{"history_index":3,"alter-ego":"kei","event_type":"streak_milestone","streak_days":7,"date":"2024-06-09"},
		{"history_index":2,"alter-ego":"tyler","event_type":"failed","mission_associated":"M-003","date":"2024-06-05"}
	]`)
	serve("gamification/alter-egoes/tyler.json", `{
		"name":"tyler","title":"The Anarchist","level":5,
		"xp_details":{"current_xp":40,"xp_to_next_level":100},
		"health_details":{"current_health":90,"max_health":100},
		"energy_details":{"current_energy":50,"max_energy":100},
		"abilities":{"street_smartness":85,"iq":70,"charisma":95},
		"unlocked_rewards":["r1"],"locked_rewards":["r9"]
	}`)
	serve("gamification/alter-egoes/kei.json", `{
		"name":"kei","title":"The Hacker","level":4,
		"xp_details":{"current_xp":10,"xp_to_next_level":100},
		"health_details":{"current_health":70,"max_health":100},
		"energy_details":{"current_energy":80,"max_energy":100},
		"abilities":{"focus":90}
	}`)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	serve("themelist.json", fmt.Sprintf(`[
		{"theme":"Dark Knight","url":"%s/themes/dark-knight.json"},
		{"theme":"Zen White","url":"%s/themes/zen-white.json"}
	]`, srv.URL, srv.URL))
	serve("themes/dark-knight.json", `{"$theme":"Dark Knight","--accent-primary":"#ffd700","--background":"#111"}`)
	serve("themes/zen-white.json", `{"$theme":"Zen White","--accent-primary":"#ff1e56","--background":"#fff"}`)

	return srv
}

func TestFetchSnapshot_AllSources(t *testing.T) {
	srv := testRepo(t)
	c := source.New(srv.URL, []string{"tyler", "kei"}, 5*time.Second)

	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(snap.Failures) != 0 {
		t.Errorf("unexpected failures: %v", snap.Failures)
	}
	if snap.ID == "" || snap.FetchedAt.IsZero() {
		t.Error("snapshot identity not set")
	}
	if len(snap.Activity) != 2 {
		t.Errorf("activity: got %d", len(snap.Activity))
	}
	if len(snap.MissionsActive) != 1 || snap.MissionsActive[0].MissionCode != "M-001" {
		t.Errorf("active missions: %+v", snap.MissionsActive)
	}
	if len(snap.RewardsLocked) != 1 || len(snap.RewardsUnlocked) != 1 {
		t.Errorf("rewards: %d locked, %d unlocked", len(snap.RewardsLocked), len(snap.RewardsUnlocked))
	}
	if len(snap.Badges) != 1 {
		t.Errorf("badges: got %d", len(snap.Badges))
	}
	if snap.Synergy == nil || snap.Synergy.FightClub.TotalSynergy != 180 {
		t.Errorf("synergy: %+v", snap.Synergy)
	}
	if len(snap.Themes) != 2 || snap.Themes[0].Name != "Dark Knight" {
		t.Errorf("themes: %+v", snap.Themes)
	}
}

func TestFetchSnapshot_HistorySortedNewestFirst(t *testing.T) {
	srv := testRepo(t)
	c := source.New(srv.URL, nil, 5*time.Second)

	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	want := []int{3, 2, 1}
	if len(snap.History) != 3 {
		t.Fatalf("history: got %d entries", len(snap.History))
	}
	for i, idx := range want {
		if snap.History[i].HistoryIndex != idx {
			t.Errorf("slot %d: got index %d, want %d", i, snap.History[i].HistoryIndex, idx)
		}
	}
}

func TestFetchSnapshot_EgosKeepConfigOrder(t *testing.T) {
	srv := testRepo(t)
	c := source.New(srv.URL, []string{"kei", "tyler"}, 5*time.Second)

	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(snap.Egos) != 2 {
		t.Fatalf("egos: got %d", len(snap.Egos))
	}
	if snap.Egos[0].Name != "kei" || snap.Egos[1].Name != "tyler" {
		t.Errorf("ego order: %s, %s", snap.Egos[0].Name, snap.Egos[1].Name)
	}
}

func TestFetchSnapshot_FailedSourceIsEmptyNotFatal(t *testing.T) {
	srv := testRepo(t)
	// "ghost" has no document; its fan-out slot must vanish from the
	// result while the rest of the snapshot stays intact.
	c := source.New(srv.URL, []string{"tyler", "ghost"}, 5*time.Second)

	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(snap.Egos) != 1 || snap.Egos[0].Name != "tyler" {
		t.Errorf("egos: %+v", snap.Egos)
	}
	if _, ok := snap.Failures["ego_ghost"]; !ok {
		t.Errorf("expected ego_ghost failure recorded, got %v", snap.Failures)
	}
	if len(snap.MissionsActive) != 1 {
		t.Error("healthy sources should be unaffected")
	}
}

func TestFetchSnapshot_UnreachableRepo(t *testing.T) {
	// Every source fails, but the cycle still completes with a snapshot
	// full of empty partitions.
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := source.New(srv.URL, []string{"tyler"}, 5*time.Second)
	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(snap.Failures) == 0 {
		t.Error("expected failures recorded")
	}
	if len(snap.MissionsActive) != 0 || len(snap.Egos) != 0 {
		t.Error("expected empty partitions")
	}
}

func TestFetchSnapshot_CancelledContext(t *testing.T) {
	srv := testRepo(t)
	c := source.New(srv.URL, nil, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FetchSnapshot(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestReachable(t *testing.T) {
	srv := testRepo(t)
	c := source.New(srv.URL, nil, 5*time.Second)
	if err := c.Reachable(context.Background()); err != nil {
		t.Errorf("reachable: %v", err)
	}

	down := source.New("http://127.0.0.1:1", nil, 500*time.Millisecond)
	if err := down.Reachable(context.Background()); err == nil {
		t.Error("expected error for unreachable repo")
	}
}
