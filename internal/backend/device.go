package backend

import (
	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padframe/internal/gamepad"
)

// joyDevice adapts an opened SDL joystick to the registry's Device
// interface. The registry closes it when the pad is unregistered.
type joyDevice struct {
	js   *sdl.Joystick
	id   gamepad.DeviceID
	name string
}

func (d *joyDevice) InstanceID() gamepad.DeviceID { return d.id }

func (d *joyDevice) Name() string { return d.name }

func (d *joyDevice) Close() { sdl.CloseJoystick(d.js) }
