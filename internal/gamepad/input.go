package gamepad

import "math"

// Axis identifies one of the six logical analog axes on a pad.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

// Button identifies a logical digital button, independent of how the
// physical device numbers it. South/East/West/North follow controller
// position rather than label (South is A on Xbox, Cross on PlayStation).
type Button int

const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonWest
	ButtonNorth

	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

// AxisDirection is the directional requirement of an axis query.
type AxisDirection int

const (
	DirectionNone AxisDirection = iota
	DirectionEither
	DirectionUp
	DirectionLeft
	DirectionRight
	DirectionDown
)

// Compare reports whether a finalized axis value satisfies the direction.
// Up/Left share the negative branch and Down/Right the positive one, so the
// same signed threshold covers both stick orientations. A value exactly at
// the threshold is inactive in both directions; DirectionNone is never
// active.
func (d AxisDirection) Compare(value, sensitivity float64) bool {
	switch d {
	case DirectionEither:
		return math.Abs(value) > 0
	case DirectionDown, DirectionRight:
		return value > sensitivity
	case DirectionUp, DirectionLeft:
		return value < -sensitivity
	default:
		return false
	}
}

// DescriptorKind tags the shape of an InputDescriptor.
type DescriptorKind int

const (
	DescriptorButton DescriptorKind = iota
	DescriptorAxis
	DescriptorEither
)

// InputDescriptor names a logical input for activation queries: a single
// button, a single axis, or "either of this button / this axis". The mapping
// layer builds these; the registry only dispatches on them.
type InputDescriptor struct {
	Kind   DescriptorKind
	Button Button
	Axis   Axis
}

// ButtonInput describes a plain button input.
func ButtonInput(button Button) InputDescriptor {
	return InputDescriptor{Kind: DescriptorButton, Button: button}
}

// AxisInput describes a plain axis input.
func AxisInput(axis Axis) InputDescriptor {
	return InputDescriptor{Kind: DescriptorAxis, Axis: axis}
}

// EitherInput describes an input that is active when the button is held or
// the axis satisfies the queried direction.
func EitherInput(button Button, axis Axis) InputDescriptor {
	return InputDescriptor{Kind: DescriptorEither, Button: button, Axis: axis}
}
