package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind is the media type of an asset.
type AssetKind string

const (
	AssetKindVideo AssetKind = "video"
	AssetKindImage AssetKind = "image"
	AssetKindAudio AssetKind = "audio"
)

// Asset is a read-only reference to external media. The engine does
// not own decode resources for it; clips reference assets weakly by
// ID and must tolerate the asset disappearing.
type Asset struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Kind     AssetKind `json:"kind"`
	Path     string    `json:"path"`
	Duration float64   `json:"duration"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewAsset(name string, kind AssetKind, path string, duration float64) *Asset {
	return &Asset{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Path:      path,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
}

// MediaInfo is the probed metadata for a media file.
type MediaInfo struct {
	Duration float64
	Width    int
	Height   int
}

// AssetGetter looks up an asset by ID, returning nil when the asset
// is not (or no longer) present.
type AssetGetter interface {
	Asset(id uuid.UUID) *Asset
}

// MediaInfoProber reports metadata for a media file on disk. The
// implementation lives outside the engine core.
type MediaInfoProber interface {
	Probe(path string) (MediaInfo, error)
}
