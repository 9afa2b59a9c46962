// Package timemap converts timeline time to source-media time. The
// same mapping feeds interactive playback and frame-exact export;
// any divergence between the two would make exports differ from what
// was previewed.
package timemap

import "github.com/cutlineapp/cutline/pkg/models"

// SourceTime maps absolute timeline time t to the source-media time
// of the clip, honoring trim bounds, playback speed and reversal.
// Times outside the clip's span clamp to its edges.
func SourceTime(clip *models.Clip, t float64) float64 {
	rel := t - clip.Start

	eff := clip.EffectiveDuration()
	if rel < 0 {
		rel = 0
	}
	if rel > eff {
		rel = eff
	}

	if clip.Reversed {
		if eff <= 0 {
			return clip.InPoint
		}
		return clip.InPoint + (1-rel/eff)*(clip.OutPoint-clip.InPoint)
	}
	return clip.InPoint + rel*clip.Speed()
}

// RelativeTime converts absolute timeline time to clip-relative time
// without clamping.
func RelativeTime(clip *models.Clip, t float64) float64 {
	return t - clip.Start
}
