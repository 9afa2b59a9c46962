package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cutlineapp/cutline/internal/manager"
)

type projectRoutes struct {
	manager *manager.Manager
}

func (rs projectRoutes) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", rs.Project)
	r.Post("/playhead", rs.SetPlayhead)
	r.Get("/playhead", rs.Playhead)

	return r
}

func (rs projectRoutes) Project(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rs.manager.Engine.Project())
}

func (rs projectRoutes) Playhead(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"playhead": rs.manager.Engine.Playhead()})
}

func (rs projectRoutes) SetPlayhead(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Time float64 `json:"time"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	rs.manager.Engine.SetPlayhead(input.Time)
	writeJSON(w, http.StatusOK, map[string]float64{"playhead": rs.manager.Engine.Playhead()})
}

// parseTimeQuery reads the t query parameter, defaulting to the
// playhead when absent.
func parseTimeQuery(r *http.Request, fallback float64) float64 {
	raw := r.URL.Query().Get("t")
	if raw == "" {
		return fallback
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return t
}
