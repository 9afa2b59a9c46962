package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/internal/manager"
	"github.com/cutlineapp/cutline/pkg/models"
)

type assetRoutes struct {
	manager *manager.Manager
}

func (rs assetRoutes) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", rs.Register)
	r.Delete("/{assetId}", rs.Remove)

	return r
}

func (rs assetRoutes) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string  `json:"name"`
		Kind     string  `json:"kind"`
		Path     string  `json:"path"`
		Duration float64 `json:"duration"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	asset, err := rs.manager.RegisterAsset(input.Name, models.AssetKind(input.Kind), input.Path, input.Duration)
	if err != nil {
		writeNoOp(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (rs assetRoutes) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "assetId"))
	if err != nil {
		writeNoOp(w, "invalid asset id")
		return
	}

	if !rs.manager.RemoveAsset(id) {
		writeNoOp(w, "asset not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}
