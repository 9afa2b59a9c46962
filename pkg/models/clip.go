package models

import (
	"github.com/google/uuid"
)

// MinClipDuration is the hard floor below which a clip cannot be
// trimmed.
const MinClipDuration = 0.1

// Clip is a time-bounded placement of one asset on one track. AssetID
// is a weak reference: the asset may be removed while the clip still
// points at it, in which case the clip resolves to a missing-media
// placeholder.
type Clip struct {
	ID      uuid.UUID `json:"id"`
	AssetID uuid.UUID `json:"asset_id"`

	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`

	// Source-time trim bounds: 0 <= InPoint < OutPoint <= asset duration.
	InPoint  float64 `json:"in_point"`
	OutPoint float64 `json:"out_point"`

	PlaybackSpeed float64 `json:"playback_speed"`
	Reversed      bool    `json:"reversed"`

	// Transform holds the visual keyframe tables, one sorted list per
	// property. Audio holds scalar volume keyframes. Both lists are
	// kept sorted ascending by time.
	Transform map[Property][]Keyframe `json:"transform,omitempty"`
	Audio     []Keyframe              `json:"audio,omitempty"`
}

func NewClip(assetID uuid.UUID, start, duration float64) *Clip {
	return &Clip{
		ID:            uuid.New(),
		AssetID:       assetID,
		Start:         start,
		Duration:      duration,
		OutPoint:      duration,
		PlaybackSpeed: 1,
	}
}

// Speed returns the playback speed, defaulting to 1 when unset.
func (c *Clip) Speed() float64 {
	if c.PlaybackSpeed <= 0 {
		return 1
	}
	return c.PlaybackSpeed
}

// EffectiveDuration is the clip's duration on the timeline adjusted
// by playback speed.
func (c *Clip) EffectiveDuration() float64 {
	return c.Duration / c.Speed()
}

// End is the exclusive end of the clip's timeline span.
func (c *Clip) End() float64 {
	return c.Start + c.EffectiveDuration()
}

// Contains reports whether timeline time t falls within the clip's
// span.
func (c *Clip) Contains(t float64) bool {
	return t >= c.Start && t < c.End()
}
