package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cutlineapp/cutline/internal/manager"
)

type editRoutes struct {
	manager *manager.Manager
}

func (rs editRoutes) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/commit", rs.Commit)
	r.Post("/undo", rs.Undo)
	r.Post("/redo", rs.Redo)
	r.Post("/end-gesture", rs.EndGesture)
	r.Get("/history", rs.History)

	return r
}

func (rs editRoutes) Commit(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Label string `json:"label"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Label == "" {
		writeNoOp(w, "commit requires a label")
		return
	}

	if err := rs.manager.Engine.Commit(input.Label); err != nil {
		writeNoOp(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"committed": true,
		"label":     input.Label,
	})
}

func (rs editRoutes) Undo(w http.ResponseWriter, r *http.Request) {
	if !rs.manager.Engine.Undo() {
		writeNoOp(w, "nothing to undo")
		return
	}
	writeJSON(w, http.StatusOK, rs.manager.Engine.Project())
}

func (rs editRoutes) Redo(w http.ResponseWriter, r *http.Request) {
	if !rs.manager.Engine.Redo() {
		writeNoOp(w, "nothing to redo")
		return
	}
	writeJSON(w, http.StatusOK, rs.manager.Engine.Project())
}

func (rs editRoutes) EndGesture(w http.ResponseWriter, r *http.Request) {
	rs.manager.Engine.EndGesture()
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (rs editRoutes) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"labels":   rs.manager.Engine.HistoryLabels(),
		"can_undo": rs.manager.Engine.CanUndo(),
		"can_redo": rs.manager.Engine.CanRedo(),
	})
}
