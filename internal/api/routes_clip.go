package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/internal/manager"
)

type clipRoutes struct {
	manager *manager.Manager
}

func (rs clipRoutes) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", rs.Add)

	r.Route("/{clipId}", func(r chi.Router) {
		r.Use(rs.ClipCtx)

		r.Delete("/", rs.Remove)
		r.Post("/move", rs.Move)
		r.Post("/trim", rs.Trim)
		r.Post("/split", rs.Split)
		r.Post("/reverse", rs.Reverse)
		r.Post("/slip", rs.Slip)

		r.Post("/preview/move", rs.PreviewMove)
		r.Post("/preview/trim-start", rs.PreviewTrimStart)
		r.Post("/preview/trim-end", rs.PreviewTrimEnd)

		r.Get("/transform", rs.Transform)
		r.Get("/source-time", rs.SourceTime)
	})

	return r
}

type clipKeyType struct{}

var clipKey = clipKeyType{}

func (rs clipRoutes) ClipCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "clipId"))
		if err != nil {
			writeNoOp(w, "invalid clip id")
			return
		}
		if clip, _ := rs.manager.Engine.Project().FindClip(id); clip == nil {
			writeNoOp(w, "clip not found")
			return
		}

		ctx := context.WithValue(r.Context(), clipKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clipID(r *http.Request) uuid.UUID {
	return r.Context().Value(clipKey).(uuid.UUID)
}

func (rs clipRoutes) Add(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TrackID uuid.UUID `json:"track_id"`
		AssetID uuid.UUID `json:"asset_id"`
		Start   float64   `json:"start"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	clip, ok := rs.manager.Engine.AddClip(input.TrackID, input.AssetID, input.Start)
	if !ok {
		writeNoOp(w, "track locked, missing or asset unknown")
		return
	}
	writeJSON(w, http.StatusOK, clip)
}

func (rs clipRoutes) Remove(w http.ResponseWriter, r *http.Request) {
	if !rs.manager.Engine.RemoveClip(clipID(r)) {
		writeNoOp(w, "clip not removable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (rs clipRoutes) Move(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Start   float64    `json:"start"`
		TrackID *uuid.UUID `json:"track_id,omitempty"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	id := clipID(r)
	var ok bool
	if input.TrackID != nil {
		ok = rs.manager.Engine.MoveClipToTrack(id, *input.TrackID, input.Start)
	} else {
		ok = rs.manager.Engine.MoveClip(id, input.Start)
	}
	if !ok {
		writeNoOp(w, "move refused")
		return
	}
	rs.writeClip(w, id)
}

func (rs clipRoutes) Trim(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Start    float64 `json:"start"`
		Duration float64 `json:"duration"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	id := clipID(r)
	if !rs.manager.Engine.TrimClip(id, input.Start, input.Duration) {
		writeNoOp(w, "trim refused")
		return
	}
	rs.writeClip(w, id)
}

func (rs clipRoutes) Split(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Time float64 `json:"time"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	right, ok := rs.manager.Engine.SplitClip(clipID(r), input.Time)
	if !ok {
		writeNoOp(w, "split point outside clip bounds")
		return
	}
	writeJSON(w, http.StatusOK, right)
}

func (rs clipRoutes) Reverse(w http.ResponseWriter, r *http.Request) {
	id := clipID(r)
	if !rs.manager.Engine.ReverseClip(id) {
		writeNoOp(w, "reverse refused")
		return
	}
	rs.writeClip(w, id)
}

func (rs clipRoutes) Slip(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Delta float64 `json:"delta"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	applied, ok := rs.manager.Engine.SlipClip(clipID(r), input.Delta)
	if !ok {
		writeNoOp(w, "slip refused")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"applied": applied})
}

func (rs clipRoutes) PreviewMove(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Start float64 `json:"start"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	start, ok := rs.manager.Engine.PreviewMove(clipID(r), input.Start)
	if !ok {
		writeNoOp(w, "preview refused")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"start": start})
}

func (rs clipRoutes) PreviewTrimStart(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Edge float64 `json:"edge"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	start, ok := rs.manager.Engine.PreviewTrimStart(clipID(r), input.Edge)
	if !ok {
		writeNoOp(w, "preview refused")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"start": start})
}

func (rs clipRoutes) PreviewTrimEnd(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Edge float64 `json:"edge"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	end, ok := rs.manager.Engine.PreviewTrimEnd(clipID(r), input.Edge)
	if !ok {
		writeNoOp(w, "preview refused")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"end": end})
}

func (rs clipRoutes) Transform(w http.ResponseWriter, r *http.Request) {
	t := parseTimeQuery(r, rs.manager.Engine.Playhead())

	tr := rs.manager.Engine.ResolveTransform(clipID(r), t)
	if tr == nil {
		writeNoOp(w, "clip not found")
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (rs clipRoutes) SourceTime(w http.ResponseWriter, r *http.Request) {
	t := parseTimeQuery(r, rs.manager.Engine.Playhead())

	src, ok := rs.manager.Engine.MapToSourceTime(clipID(r), t)
	if !ok {
		writeNoOp(w, "clip not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"source_time": src})
}

func (rs clipRoutes) writeClip(w http.ResponseWriter, id uuid.UUID) {
	clip, _ := rs.manager.Engine.Project().FindClip(id)
	writeJSON(w, http.StatusOK, clip)
}
