package gamepad

import "math"

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StickState struct {
	Position Vector `json:"position"`
	Pressed  bool   `json:"pressed"`
}

type TriggerState struct {
	Value float64 `json:"value"`
}

type ButtonState struct {
	South         bool `json:"south"`
	East          bool `json:"east"`
	West          bool `json:"west"`
	North         bool `json:"north"`
	LeftShoulder  bool `json:"leftShoulder"`
	RightShoulder bool `json:"rightShoulder"`
	Back          bool `json:"back"`
	Guide         bool `json:"guide"`
	Start         bool `json:"start"`
}

type DpadState struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

type SticksState struct {
	Left  StickState `json:"left"`
	Right StickState `json:"right"`
}

type TriggersState struct {
	LT TriggerState `json:"lt"`
	RT TriggerState `json:"rt"`
}

// PadState is the viewer-facing snapshot of one pad. Stick and trigger
// values are the finalized ones, so a snapshot taken after the finalize
// step matches what activation queries see.
type PadState struct {
	Connected bool          `json:"connected"`
	Index     int           `json:"index"`
	Name      string        `json:"name"`
	Buttons   ButtonState   `json:"buttons"`
	Dpad      DpadState     `json:"dpad"`
	Sticks    SticksState   `json:"sticks"`
	Triggers  TriggersState `json:"triggers"`
}

// Snapshot returns the state of the pad at index. Out of range indices
// yield a zero snapshot with Connected false.
func (r *Registry) Snapshot(index int) PadState {
	p := r.byIndex(index)
	if p == nil {
		return PadState{Index: index}
	}

	return PadState{
		Connected: true,
		Index:     index,
		Name:      p.device.Name(),
		Buttons: ButtonState{
			South:         p.held(ButtonSouth),
			East:          p.held(ButtonEast),
			West:          p.held(ButtonWest),
			North:         p.held(ButtonNorth),
			LeftShoulder:  p.held(ButtonLeftShoulder),
			RightShoulder: p.held(ButtonRightShoulder),
			Back:          p.held(ButtonBack),
			Guide:         p.held(ButtonGuide),
			Start:         p.held(ButtonStart),
		},
		Dpad: DpadState{
			Up:    p.held(ButtonDPadUp),
			Down:  p.held(ButtonDPadDown),
			Left:  p.held(ButtonDPadLeft),
			Right: p.held(ButtonDPadRight),
		},
		Sticks: SticksState{
			Left: StickState{
				Position: Vector{X: p.leftX, Y: p.leftY},
				Pressed:  p.held(ButtonLeftStick),
			},
			Right: StickState{
				Position: Vector{X: p.rightX, Y: p.rightY},
				Pressed:  p.held(ButtonRightStick),
			},
		},
		Triggers: TriggersState{
			LT: TriggerState{Value: p.triggerLeft},
			RT: TriggerState{Value: p.triggerRight},
		},
	}
}

// Snapshots returns the state of every registered pad in index order.
func (r *Registry) Snapshots() []PadState {
	states := make([]PadState, len(r.pads))
	for i := range r.pads {
		states[i] = r.Snapshot(i)
	}
	return states
}

// DeltaChanges carries only the parts of a PadState that changed between
// two snapshots. Nil fields are unchanged.
type DeltaChanges struct {
	Connected *bool          `json:"connected,omitempty"`
	Name      *string        `json:"name,omitempty"`
	Buttons   *ButtonState   `json:"buttons,omitempty"`
	Dpad      *DpadState     `json:"dpad,omitempty"`
	Sticks    *SticksState   `json:"sticks,omitempty"`
	Triggers  *TriggersState `json:"triggers,omitempty"`
}

func (d *DeltaChanges) IsEmpty() bool {
	return d.Connected == nil &&
		d.Name == nil &&
		d.Buttons == nil &&
		d.Dpad == nil &&
		d.Sticks == nil &&
		d.Triggers == nil
}

// analogThreshold suppresses deltas from sub-perceptual analog drift.
const analogThreshold = 0.01

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

// ComputeDelta compares two snapshots of the same pad and returns the
// changed portions.
func ComputeDelta(old, current PadState) *DeltaChanges {
	d := &DeltaChanges{}

	if old.Connected != current.Connected {
		d.Connected = &current.Connected
	}
	if old.Name != current.Name {
		d.Name = &current.Name
	}
	if old.Buttons != current.Buttons {
		d.Buttons = &current.Buttons
	}
	if old.Dpad != current.Dpad {
		d.Dpad = &current.Dpad
	}

	if !floatEqual(old.Sticks.Left.Position.X, current.Sticks.Left.Position.X) ||
		!floatEqual(old.Sticks.Left.Position.Y, current.Sticks.Left.Position.Y) ||
		old.Sticks.Left.Pressed != current.Sticks.Left.Pressed ||
		!floatEqual(old.Sticks.Right.Position.X, current.Sticks.Right.Position.X) ||
		!floatEqual(old.Sticks.Right.Position.Y, current.Sticks.Right.Position.Y) ||
		old.Sticks.Right.Pressed != current.Sticks.Right.Pressed {
		d.Sticks = &current.Sticks
	}

	if !floatEqual(old.Triggers.LT.Value, current.Triggers.LT.Value) ||
		!floatEqual(old.Triggers.RT.Value, current.Triggers.RT.Value) {
		d.Triggers = &current.Triggers
	}

	return d
}
