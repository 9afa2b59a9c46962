package models

import (
	"github.com/google/uuid"
)

// Settings are the global project settings.
type Settings struct {
	FrameRate    float64 `json:"frame_rate"`
	CanvasWidth  int     `json:"canvas_width"`
	CanvasHeight int     `json:"canvas_height"`
	Duration     float64 `json:"duration"`
}

// Selection is the set of currently selected clip IDs, in selection
// order. It travels with history snapshots.
type Selection struct {
	ClipIDs []uuid.UUID `json:"clip_ids"`
}

// Project is the root aggregate: the ordered track list, the asset
// arena keyed by identity, and the global settings. It is created
// once per session and replaced wholesale on load.
type Project struct {
	Tracks   []*Track             `json:"tracks"`
	Assets   map[uuid.UUID]*Asset `json:"assets"`
	Settings Settings             `json:"settings"`
}

// NewProject creates a project with default settings and one video
// and one audio track.
func NewProject() *Project {
	return &Project{
		Tracks: []*Track{
			NewTrack(TrackKindVideo, "Video 1"),
			NewTrack(TrackKindAudio, "Audio 1"),
		},
		Assets: make(map[uuid.UUID]*Asset),
		Settings: Settings{
			FrameRate:    30,
			CanvasWidth:  1920,
			CanvasHeight: 1080,
			Duration:     60,
		},
	}
}

// Asset implements AssetGetter over the project's asset arena.
func (p *Project) Asset(id uuid.UUID) *Asset {
	return p.Assets[id]
}

// AddAsset places an asset in the arena.
func (p *Project) AddAsset(a *Asset) {
	p.Assets[a.ID] = a
}

// RemoveAsset removes an asset by ID. Clips referencing it are left
// in place and degrade to missing media.
func (p *Project) RemoveAsset(id uuid.UUID) bool {
	if _, ok := p.Assets[id]; !ok {
		return false
	}
	delete(p.Assets, id)
	return true
}

// TrackByID returns the track with the given ID, or nil.
func (p *Project) TrackByID(id uuid.UUID) *Track {
	for _, t := range p.Tracks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindClip locates a clip anywhere in the project, returning the clip
// and its track, or nils.
func (p *Project) FindClip(id uuid.UUID) (*Clip, *Track) {
	for _, t := range p.Tracks {
		if c := t.ClipByID(id); c != nil {
			return c, t
		}
	}
	return nil, nil
}
