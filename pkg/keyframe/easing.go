package keyframe

import "github.com/cutlineapp/cutline/pkg/models"

// ease applies the named easing curve to a normalized progress value
// in [0, 1]. Unknown easings fall back to linear.
func ease(easing models.Easing, u float64) float64 {
	switch easing {
	case models.EasingIn:
		return u * u
	case models.EasingOut:
		return 1 - (1-u)*(1-u)
	case models.EasingInOut:
		if u < 0.5 {
			return 2 * u * u
		}
		return 1 - 2*(1-u)*(1-u)
	default:
		return u
	}
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}
