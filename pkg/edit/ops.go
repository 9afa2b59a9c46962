// Package edit implements the structural clip operations: split,
// reverse and slip. Operations return new clips or report an invalid
// precondition; they never touch track membership or history.
package edit

import (
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/models"
)

// Split cuts a clip at absolute timeline time t, producing the left
// and right children. Valid only strictly inside the clip's span;
// returns ok=false otherwise and leaves the clip untouched.
//
// Both children receive the complete keyframe tables of the original
// (the right child's copies shifted by the split offset). Keyframes
// are deliberately not clipped to each child's sub-range: keeping the
// full curves lets either child be re-trimmed later without losing
// animation data.
func Split(clip *models.Clip, t float64) (left, right *models.Clip, ok bool) {
	if clip == nil || t <= clip.Start || t >= clip.Start+clip.Duration {
		return nil, nil, false
	}

	r := t - clip.Start

	left = &models.Clip{
		ID:            clip.ID,
		AssetID:       clip.AssetID,
		Start:         clip.Start,
		Duration:      r,
		InPoint:       clip.InPoint,
		OutPoint:      clip.InPoint + r,
		PlaybackSpeed: clip.PlaybackSpeed,
		Reversed:      clip.Reversed,
		Transform:     copyTransformTable(clip.Transform, 0),
		Audio:         copyKeyframes(clip.Audio, 0),
	}

	right = &models.Clip{
		ID:            uuid.New(),
		AssetID:       clip.AssetID,
		Start:         clip.Start + r,
		Duration:      clip.Duration - r,
		InPoint:       clip.InPoint + r,
		OutPoint:      clip.OutPoint,
		PlaybackSpeed: clip.PlaybackSpeed,
		Reversed:      clip.Reversed,
		Transform:     copyTransformTable(clip.Transform, -r),
		Audio:         copyKeyframes(clip.Audio, -r),
	}

	return left, right, true
}

// Reverse toggles the clip's reversal flag. Timeline position,
// duration and keyframe times are untouched; only the source-time
// mapping changes.
func Reverse(clip *models.Clip) bool {
	if clip == nil {
		return false
	}
	clip.Reversed = !clip.Reversed
	return true
}

// Slip shifts the clip's source window by delta while holding its
// timeline placement fixed. The delta is clamped so the window stays
// within [0, assetDuration]; a window already wider than the asset
// cannot satisfy both bounds, so no slip is applied. Returns the
// applied delta.
func Slip(clip *models.Clip, assetDuration, delta float64) float64 {
	if clip == nil {
		return 0
	}

	lo := -clip.InPoint
	hi := assetDuration - clip.OutPoint
	if lo > hi {
		return 0
	}

	if delta < lo {
		delta = lo
	}
	if delta > hi {
		delta = hi
	}

	clip.InPoint += delta
	clip.OutPoint += delta
	return delta
}

func copyKeyframes(kfs []models.Keyframe, shift float64) []models.Keyframe {
	if kfs == nil {
		return nil
	}
	out := make([]models.Keyframe, len(kfs))
	for i, kf := range kfs {
		kf.Time += shift
		if kf.Value.Kind == models.ValueFields {
			fields := make(map[string]float64, len(kf.Value.Fields))
			for k, v := range kf.Value.Fields {
				fields[k] = v
			}
			kf.Value.Fields = fields
		}
		out[i] = kf
	}
	return out
}

func copyTransformTable(table map[models.Property][]models.Keyframe, shift float64) map[models.Property][]models.Keyframe {
	if table == nil {
		return nil
	}
	out := make(map[models.Property][]models.Keyframe, len(table))
	for prop, kfs := range table {
		out[prop] = copyKeyframes(kfs, shift)
	}
	return out
}
