// Package keyframe interpolates sorted keyframe lists. It is pure:
// no extrapolation, no mutation of its inputs.
package keyframe

import (
	"sort"

	"github.com/cutlineapp/cutline/pkg/models"
)

// Interpolate returns the value of a sorted keyframe list at time t.
// An empty list yields scalar 0; a single keyframe its value. Times
// before the first or after the last keyframe clamp to the endpoint
// value - there is no extrapolation.
func Interpolate(kfs []models.Keyframe, t float64) models.KeyframeValue {
	if len(kfs) == 0 {
		return models.ScalarValue(0)
	}
	if len(kfs) == 1 || t <= kfs[0].Time {
		return kfs[0].Value
	}
	last := kfs[len(kfs)-1]
	if t >= last.Time {
		return last.Value
	}

	// Locate the bracketing pair with prev.Time <= t <= next.Time.
	i := sort.Search(len(kfs), func(i int) bool {
		return kfs[i].Time > t
	})
	prev, next := kfs[i-1], kfs[i]

	span := next.Time - prev.Time
	if span <= 0 {
		return next.Value
	}
	u := ease(next.Easing, (t-prev.Time)/span)

	return blend(prev.Value, next.Value, u)
}

// InterpolateScalar is Interpolate for scalar-valued lists, with a
// caller-supplied default for the empty list.
func InterpolateScalar(kfs []models.Keyframe, t, def float64) float64 {
	if len(kfs) == 0 {
		return def
	}
	return Interpolate(kfs, t).Scalar
}

// blend mixes two values by normalized progress u according to their
// shape. A named field missing from one endpoint is held constant at
// the value from the endpoint that has it.
func blend(a, b models.KeyframeValue, u float64) models.KeyframeValue {
	switch a.Kind {
	case models.ValueVec:
		return models.VecValue(
			lerp(a.Vec[0], b.Vec[0], u),
			lerp(a.Vec[1], b.Vec[1], u),
		)
	case models.ValueFields:
		out := make(map[string]float64, len(a.Fields))
		for k, av := range a.Fields {
			if bv, ok := b.Fields[k]; ok {
				out[k] = lerp(av, bv, u)
			} else {
				out[k] = av
			}
		}
		for k, bv := range b.Fields {
			if _, ok := a.Fields[k]; !ok {
				out[k] = bv
			}
		}
		return models.FieldsValue(out)
	default:
		return models.ScalarValue(lerp(a.Scalar, b.Scalar, u))
	}
}

// Sorted returns a copy of kfs ordered ascending by time.
func Sorted(kfs []models.Keyframe) []models.Keyframe {
	out := make([]models.Keyframe, len(kfs))
	copy(out, kfs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Insert adds a keyframe to a sorted list, keeping it sorted. A
// keyframe within models.KeyframeTimeEpsilon of an existing one
// replaces it rather than adding a near-duplicate time.
func Insert(kfs []models.Keyframe, kf models.Keyframe) []models.Keyframe {
	for i, existing := range kfs {
		d := kf.Time - existing.Time
		if d < models.KeyframeTimeEpsilon && d > -models.KeyframeTimeEpsilon {
			out := make([]models.Keyframe, len(kfs))
			copy(out, kfs)
			out[i] = kf
			return out
		}
	}
	out := append(append([]models.Keyframe{}, kfs...), kf)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
