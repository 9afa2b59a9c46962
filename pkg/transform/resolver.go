// Package transform resolves a clip's animated properties into a
// render-ready transform at a point in time.
package transform

import (
	"github.com/cutlineapp/cutline/pkg/keyframe"
	"github.com/cutlineapp/cutline/pkg/models"
)

// Resolve computes the clip's transform at relativeTime (seconds from
// the clip's start). Properties with no keyframes keep the identity
// defaults.
func Resolve(clip *models.Clip, relativeTime float64) models.Transform {
	out := models.IdentityTransform()
	if clip == nil || len(clip.Transform) == 0 {
		return out
	}

	if kfs, ok := clip.Transform[models.PropertyPosition]; ok && len(kfs) > 0 {
		v := keyframe.Interpolate(kfs, relativeTime)
		out.X = v.Vec[0]
		out.Y = v.Vec[1]
	}
	if kfs, ok := clip.Transform[models.PropertyRotation]; ok && len(kfs) > 0 {
		out.Rotation = keyframe.Interpolate(kfs, relativeTime).Scalar
	}
	if kfs, ok := clip.Transform[models.PropertyScale]; ok && len(kfs) > 0 {
		v := keyframe.Interpolate(kfs, relativeTime)
		out.ScaleX = v.Vec[0]
		out.ScaleY = v.Vec[1]
	}
	if kfs, ok := clip.Transform[models.PropertyOpacity]; ok && len(kfs) > 0 {
		out.Opacity = keyframe.Interpolate(kfs, relativeTime).Scalar
	}

	return out
}

// ResolveVolume computes the clip's audio volume at relativeTime from
// the audio keyframe table, defaulting to 1.
func ResolveVolume(clip *models.Clip, relativeTime float64) float64 {
	if clip == nil {
		return 1
	}
	return keyframe.InterpolateScalar(clip.Audio, relativeTime, 1)
}
