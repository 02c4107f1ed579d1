// Package framework holds the execution context the frame loop threads
// through its subsystems.
package framework

import "github.com/soar/padframe/internal/gamepad"

// Context owns the per-process services shared by the frame loop. The
// gamepad registry is the only service wired in here; it lives as long as
// the context does.
type Context struct {
	Gamepads *gamepad.Registry
}

func NewContext() *Context {
	return &Context{Gamepads: gamepad.NewRegistry()}
}

// AddGamepad registers a newly connected controller on the context.
func AddGamepad(ctx *Context, device gamepad.Device, axisSensitivity float64) {
	ctx.Gamepads.Register(device, axisSensitivity)
}

// RemoveGamepad drops the controller with the given id from the context.
func RemoveGamepad(ctx *Context, id gamepad.DeviceID) {
	ctx.Gamepads.Unregister(id)
}

// IsActive reports whether the described input is active on the pad at
// padIndex.
func IsActive(ctx *Context, padIndex int, desc gamepad.InputDescriptor, direction gamepad.AxisDirection) bool {
	return ctx.Gamepads.IsActive(padIndex, desc, direction)
}

// IsButtonActive reports whether button is held on the pad at padIndex.
func IsButtonActive(ctx *Context, padIndex int, button gamepad.Button) bool {
	return ctx.Gamepads.IsButtonActive(padIndex, button)
}

// IsAxisActive reports whether axis on the pad at padIndex satisfies
// direction.
func IsAxisActive(ctx *Context, padIndex int, axis gamepad.Axis, direction gamepad.AxisDirection) bool {
	return ctx.Gamepads.IsAxisActive(padIndex, axis, direction)
}
