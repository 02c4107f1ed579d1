// Package gamepad tracks connected physical controllers and answers
// activation queries against their finalized input state.
package gamepad

// Registry is the single source of truth for connected controllers. Pads
// are addressed two ways: by stable DeviceID when correlating backend
// events, and by positional index ("player 1" is index 0) from gameplay
// queries. Registration appends; removal shifts every later pad down by one
// index, so indices are not stable across disconnects.
//
// The registry is not safe for concurrent use. The frame loop delivers all
// device and input events, then finalizes, then queries, from a single
// goroutine; that phase ordering is the caller's contract.
type Registry struct {
	pads []*Pad
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Count returns the number of registered pads.
func (r *Registry) Count() int {
	return len(r.pads)
}

func (r *Registry) byID(id DeviceID) *Pad {
	for _, p := range r.pads {
		if p.device.InstanceID() == id {
			return p
		}
	}
	return nil
}

func (r *Registry) byIndex(index int) *Pad {
	if index < 0 || index >= len(r.pads) {
		return nil
	}
	return r.pads[index]
}

// Register appends a pad for device with every button released and every
// axis at zero. The new pad's index is Count()-1. The registry takes
// ownership of the device handle.
func (r *Registry) Register(device Device, axisSensitivity float64) {
	r.pads = append(r.pads, newPad(device, axisSensitivity))
}

// Unregister removes the pad with the given id and releases its device
// handle. An unknown id is ignored: the backend may deliver a stray
// disconnect for a device whose pad is already gone.
func (r *Registry) Unregister(id DeviceID) {
	for i, p := range r.pads {
		if p.device.InstanceID() == id {
			p.device.Close()
			r.pads = append(r.pads[:i], r.pads[i+1:]...)
			return
		}
	}
}

// SetButton records a button edge on the pad with the given id. Pressing an
// already-held button or releasing an idle one changes nothing.
func (r *Registry) SetButton(id DeviceID, button Button, pressed bool) {
	p := r.byID(id)
	if p == nil {
		return
	}
	if pressed {
		p.pressed[button] = struct{}{}
	} else {
		delete(p.pressed, button)
	}
}

// SetAxisSample overwrites the raw sample for axis on the pad with the given
// id. Queries do not observe the value until FinalizeAxes runs.
func (r *Registry) SetAxisSample(id DeviceID, axis Axis, value float64) {
	if p := r.byID(id); p != nil {
		p.rawAxes[axis] = value
	}
}

// FinalizeAxes publishes the dead-zone-filtered axis state of one pad. The
// frame loop calls this once per pad per frame, after all raw samples for
// the frame have been delivered and before any query.
func (r *Registry) FinalizeAxes(id DeviceID) {
	if p := r.byID(id); p != nil {
		p.finalizeAxes()
	}
}

// FinalizeAll runs the finalize step over every registered pad.
func (r *Registry) FinalizeAll() {
	for _, p := range r.pads {
		p.finalizeAxes()
	}
}

// IsButtonActive reports whether button is held on the pad at index. An out
// of range index is inactive, never an error; a disconnected controller
// must not be able to take down the frame loop.
func (r *Registry) IsButtonActive(index int, button Button) bool {
	p := r.byIndex(index)
	if p == nil {
		return false
	}
	return p.held(button)
}

// IsAxisActive reports whether the finalized value of axis on the pad at
// index satisfies direction. Stick axes compare against the pad's
// sensitivity; the trigger axes rest at exactly zero and compare against 0.
func (r *Registry) IsAxisActive(index int, axis Axis, direction AxisDirection) bool {
	p := r.byIndex(index)
	if p == nil {
		return false
	}
	switch axis {
	case AxisLeftX:
		return direction.Compare(p.leftX, p.axisSensitivity)
	case AxisLeftY:
		return direction.Compare(p.leftY, p.axisSensitivity)
	case AxisRightX:
		return direction.Compare(p.rightX, p.axisSensitivity)
	case AxisRightY:
		return direction.Compare(p.rightY, p.axisSensitivity)
	case AxisTriggerLeft:
		return direction.Compare(p.triggerLeft, 0)
	case AxisTriggerRight:
		return direction.Compare(p.triggerRight, 0)
	}
	return false
}

// IsActive dispatches an activation query over the descriptor's shape. The
// button branch ignores direction; the either shape is the logical OR of
// the button and axis checks.
func (r *Registry) IsActive(index int, desc InputDescriptor, direction AxisDirection) bool {
	switch desc.Kind {
	case DescriptorButton:
		return r.IsButtonActive(index, desc.Button)
	case DescriptorAxis:
		return r.IsAxisActive(index, desc.Axis, direction)
	case DescriptorEither:
		return r.IsButtonActive(index, desc.Button) ||
			r.IsAxisActive(index, desc.Axis, direction)
	}
	return false
}
