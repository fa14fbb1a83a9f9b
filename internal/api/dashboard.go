package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fightclub-net/fightclub/internal/app/dashboard"
	"github.com/fightclub-net/fightclub/internal/app/summary"
	"github.com/fightclub-net/fightclub/internal/domain"
)

// projection fetches the current projection or writes a 503 when no
// snapshot has landed yet.
func (s *Server) projection(w http.ResponseWriter) (*dashboard.Projection, bool) {
	proj, err := s.backend.Projection()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot available yet")
		return nil, false
	}
	return proj, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	statuses, healthy := s.backend.HealthStatuses()
	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": statuses,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, proj.Streak)
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"not_completed_missions": proj.NotCompleted,
		"completed_missions":     proj.Completed,
	})
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}

	// Optional filters mirror the dashboard's toggle chips:
	// ?locked=true|false and ?type=<tier>.
	var filter summary.RewardFilter
	if v := r.URL.Query().Get("locked"); v != "" {
		locked, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "locked must be true or false")
			return
		}
		filter.Locked = &locked
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.RewardType = &v
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rewards": filter.Apply(proj.Rewards),
		"summary": proj.RewardsSummary,
	})
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}

	var filter summary.BadgeFilter
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.BadgeStatus(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("rarity"); v != "" {
		filter.Rarity = &v
	}
	if v := r.URL.Query().Get("category"); v != "" {
		filter.Category = &v
	}
	if v := r.URL.Query().Get("archetype"); v != "" {
		filter.Archetype = &v
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"badges":  filter.Apply(proj.Badges),
		"summary": proj.BadgesSummary,
	})
}

func (s *Server) handleEgos(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"egos": proj.Egos,
	})
}

func (s *Server) handleEgo(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")
	for _, ego := range proj.Egos {
		if strings.EqualFold(ego.Name, name) {
			writeJSON(w, http.StatusOK, ego)
			return
		}
	}
	writeError(w, http.StatusNotFound, "alter-ego not found: "+name)
}

func (s *Server) handleSynergy(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	if proj.Synergy == nil {
		writeError(w, http.StatusNotFound, "synergy data unavailable")
		return
	}
	writeJSON(w, http.StatusOK, proj.Synergy)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": proj.History,
	})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"themes": proj.ThemeCatalog,
	})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, proj.Theme)
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	resolved, err := s.backend.SelectTheme(req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	proj, ok := s.projection(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id": proj.SnapshotID,
		"fetched_at":  proj.FetchedAt,
	})
}
