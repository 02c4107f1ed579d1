// Package backend drives the gamepad registry from the SDL3 joystick API.
package backend

import (
	"context"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padframe/internal/gamepad"
)

const (
	pollDelayNS = 16_000_000 // ~60Hz

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

type joystickInfo struct {
	device  *joyDevice
	mapping *DeviceMapping
	lastHat uint8
}

// Pump owns the SDL event loop and is the registry's only writer. Each tick
// it drains connect/disconnect and input events into the registry, runs the
// finalize step for every pad, and emits a snapshot of all pads when
// something changed.
type Pump struct {
	registry    *gamepad.Registry
	sensitivity float64
	joysticks   map[sdl.JoystickID]*joystickInfo
	changes     chan []gamepad.PadState
	last        []gamepad.PadState
	padCount    atomic.Int32
}

// NewPump creates a pump feeding registry. New pads are registered with the
// given stick axis sensitivity.
func NewPump(registry *gamepad.Registry, sensitivity float64) *Pump {
	return &Pump{
		registry:    registry,
		sensitivity: sensitivity,
		joysticks:   make(map[sdl.JoystickID]*joystickInfo),
		changes:     make(chan []gamepad.PadState, 64),
	}
}

// Changes returns the channel on which pad snapshots are sent.
func (p *Pump) Changes() <-chan []gamepad.PadState {
	return p.changes
}

// PadCount returns the number of connected pads. Safe from any goroutine.
func (p *Pump) PadCount() int {
	return int(p.padCount.Load())
}

// Run initializes SDL and runs the event+finalize loop on the current
// thread until ctx is cancelled. Must be called from a goroutine that can
// hold the OS thread for the process lifetime.
func (p *Pump) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		log.Fatalf("SDL init failed: %s", sdl.GetError())
	}
	defer sdl.Quit()

	log.Println("SDL3 joystick subsystem initialized")

	// Pick up joysticks that were connected before we started.
	for _, id := range sdl.GetJoysticks() {
		p.openJoystick(id)
	}

	for {
		select {
		case <-ctx.Done():
			p.closeAll()
			return
		default:
		}

		p.processEvents()
		p.registry.FinalizeAll()
		p.emitIfChanged()
		sdl.DelayNS(pollDelayNS)
	}
}

func (p *Pump) processEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			p.openJoystick(event.JDevice().Which)

		case sdl.EventJoystickRemoved:
			p.removeJoystick(event.JDevice().Which)

		case sdl.EventJoystickButtonDown:
			be := event.JButton()
			p.handleButton(be.Which, int32(be.Button), true)

		case sdl.EventJoystickButtonUp:
			be := event.JButton()
			p.handleButton(be.Which, int32(be.Button), false)

		case sdl.EventJoystickAxisMotion:
			ae := event.JAxis()
			p.handleAxis(ae.Which, int32(ae.Axis), int16(ae.Value))

		case sdl.EventJoystickHatMotion:
			he := event.JHat()
			p.handleHat(he.Which, uint8(he.Value))
		}
	}
}

func (p *Pump) openJoystick(instanceID sdl.JoystickID) {
	if _, exists := p.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := GetMapping(vendorID, productID)

	dev := &joyDevice{js: js, id: gamepad.DeviceID(jsID), name: name}
	p.joysticks[jsID] = &joystickInfo{device: dev, mapping: mapping}

	p.registry.Register(dev, p.sensitivity)
	p.padCount.Store(int32(p.registry.Count()))

	log.Printf("Joystick connected: %s (VID=%04X PID=%04X) mapping=%s pad=%d",
		name, vendorID, productID, mapping.Name, p.registry.Count()-1)
}

func (p *Pump) removeJoystick(instanceID sdl.JoystickID) {
	info, exists := p.joysticks[instanceID]
	if !exists {
		return
	}

	log.Printf("Joystick disconnected: %s", info.device.Name())
	delete(p.joysticks, instanceID)

	// Unregister releases the SDL handle through the device's Close.
	p.registry.Unregister(info.device.InstanceID())
	p.padCount.Store(int32(p.registry.Count()))
}

func (p *Pump) closeAll() {
	for id, info := range p.joysticks {
		p.registry.Unregister(info.device.InstanceID())
		delete(p.joysticks, id)
	}
	p.padCount.Store(0)
}

func (p *Pump) handleButton(which sdl.JoystickID, index int32, pressed bool) {
	info, ok := p.joysticks[which]
	if !ok {
		return
	}
	button, ok := info.mapping.button(index)
	if !ok {
		return
	}
	p.registry.SetButton(info.device.InstanceID(), button, pressed)
}

func (p *Pump) handleAxis(which sdl.JoystickID, index int32, raw int16) {
	info, ok := p.joysticks[which]
	if !ok {
		return
	}
	am, ok := info.mapping.axis(index)
	if !ok {
		return
	}

	var val float64
	if am.IsTrigger {
		val = NormalizeTrigger(raw, am.RawMin, am.RawMax)
	} else {
		val = NormalizeAxis(raw)
		if am.Invert {
			val = -val
		}
	}
	p.registry.SetAxisSample(info.device.InstanceID(), am.Target, val)
}

// handleHat turns hat bitmask transitions into DPad button edges, which is
// all the registry understands.
func (p *Pump) handleHat(which sdl.JoystickID, value uint8) {
	info, ok := p.joysticks[which]
	if !ok || !info.mapping.HasHat {
		return
	}

	id := info.device.InstanceID()
	prev := info.lastHat
	for _, h := range [...]struct {
		bit    uint8
		button gamepad.Button
	}{
		{hatUp, gamepad.ButtonDPadUp},
		{hatRight, gamepad.ButtonDPadRight},
		{hatDown, gamepad.ButtonDPadDown},
		{hatLeft, gamepad.ButtonDPadLeft},
	} {
		now := value&h.bit != 0
		if now != (prev&h.bit != 0) {
			p.registry.SetButton(id, h.button, now)
		}
	}
	info.lastHat = value
}

func (p *Pump) emitIfChanged() {
	states := p.registry.Snapshots()
	if padStatesEqual(p.last, states) {
		return
	}
	p.last = states

	select {
	case p.changes <- states:
	default:
		// Drop if the channel is full to avoid blocking the SDL thread.
	}
}

func padStatesEqual(a, b []gamepad.PadState) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !gamepad.ComputeDelta(a[i], b[i]).IsEmpty() {
			return false
		}
	}
	return true
}
