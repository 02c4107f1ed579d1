package gamepad

import "math"

// DeviceID is the stable identifier the backend assigns to a controller at
// connection time. It correlates raw events with a pad; it is never reused
// as a storage index.
type DeviceID uint32

// Device is the platform controller handle a Pad owns. The backend supplies
// the implementation; the registry only needs identity and release.
type Device interface {
	InstanceID() DeviceID
	Name() string
	Close()
}

// deadzone is the finalize-stage noise floor. Raw samples with a smaller
// magnitude become exactly 0; everything else passes through unclamped.
const deadzone = 0.12

// Pad wraps one connected controller and its derived logical state. Raw
// samples accumulate in rawAxes as events arrive; the six named fields hold
// the finalized values queries read, so results cannot jitter mid-frame as
// multiple samples for the same axis land between finalize calls.
type Pad struct {
	device Device

	leftX        float64
	leftY        float64
	rightX       float64
	rightY       float64
	triggerLeft  float64
	triggerRight float64

	axisSensitivity float64

	pressed map[Button]struct{}
	rawAxes map[Axis]float64
}

func newPad(device Device, axisSensitivity float64) *Pad {
	return &Pad{
		device:          device,
		axisSensitivity: axisSensitivity,
		pressed:         make(map[Button]struct{}, 16),
		rawAxes:         make(map[Axis]float64, 8),
	}
}

func (p *Pad) held(button Button) bool {
	_, ok := p.pressed[button]
	return ok
}

// finalizeAxes publishes the dead-zone-filtered value of every axis that has
// received a raw sample. Axes with no sample keep their previous finalized
// value.
func (p *Pad) finalizeAxes() {
	targets := [...]struct {
		value *float64
		axis  Axis
	}{
		{&p.leftX, AxisLeftX},
		{&p.leftY, AxisLeftY},
		{&p.rightX, AxisRightX},
		{&p.rightY, AxisRightY},
		{&p.triggerLeft, AxisTriggerLeft},
		{&p.triggerRight, AxisTriggerRight},
	}

	for _, t := range targets {
		raw, ok := p.rawAxes[t.axis]
		if !ok {
			continue
		}
		if math.Abs(raw) < deadzone {
			*t.value = 0
		} else {
			*t.value = raw
		}
	}
}
