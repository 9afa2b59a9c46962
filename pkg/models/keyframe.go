package models

// KeyframeTimeEpsilon is the minimum spacing between two keyframes on
// the same property. Keyframes closer than this are treated as the
// same sample.
const KeyframeTimeEpsilon = 0.01

// Property identifies one animatable transform property.
type Property string

const (
	PropertyPosition Property = "position"
	PropertyRotation Property = "rotation"
	PropertyScale    Property = "scale"
	PropertyOpacity  Property = "opacity"
)

// Easing names the curve applied when interpolating toward a keyframe
// from the previous one.
type Easing string

const (
	EasingLinear Easing = "linear"
	EasingIn     Easing = "ease-in"
	EasingOut    Easing = "ease-out"
	EasingInOut  Easing = "ease-in-out"
)

// ValueKind discriminates the shape held by a KeyframeValue.
type ValueKind int

const (
	ValueScalar ValueKind = iota
	ValueVec
	ValueFields
)

// KeyframeValue is a property-typed sample: a scalar, a 2-component
// vector, or a named-field object. Exactly one shape is meaningful,
// selected by Kind.
type KeyframeValue struct {
	Kind   ValueKind          `json:"kind"`
	Scalar float64            `json:"scalar,omitempty"`
	Vec    [2]float64         `json:"vec,omitempty"`
	Fields map[string]float64 `json:"fields,omitempty"`
}

func ScalarValue(v float64) KeyframeValue {
	return KeyframeValue{Kind: ValueScalar, Scalar: v}
}

func VecValue(x, y float64) KeyframeValue {
	return KeyframeValue{Kind: ValueVec, Vec: [2]float64{x, y}}
}

func FieldsValue(fields map[string]float64) KeyframeValue {
	return KeyframeValue{Kind: ValueFields, Fields: fields}
}

// Keyframe is a timed value sample. Time is relative to the owning
// clip's start. Easing describes the approach from the previous
// keyframe to this one.
type Keyframe struct {
	Time   float64       `json:"time"`
	Value  KeyframeValue `json:"value"`
	Easing Easing        `json:"easing"`
}
