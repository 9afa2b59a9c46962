package models

// Transform is the resolved visual state of a clip at a point in time.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scale_x"`
	ScaleY   float64 `json:"scale_y"`
	Opacity  float64 `json:"opacity"`
}

// IdentityTransform returns the default transform applied to a clip
// with no keyframes.
func IdentityTransform() Transform {
	return Transform{
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
	}
}

// MissingMediaTransform is the placeholder returned when a clip's
// asset can no longer be found. It hides the clip rather than failing
// the resolve pass.
func MissingMediaTransform() Transform {
	t := IdentityTransform()
	t.Opacity = 0
	return t
}
