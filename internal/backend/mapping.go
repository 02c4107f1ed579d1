package backend

import (
	"math"

	"github.com/soar/padframe/internal/gamepad"
)

// AxisMapping defines how a raw axis index maps to a logical axis.
type AxisMapping struct {
	Index     int32
	Target    gamepad.Axis
	IsTrigger bool
	Invert    bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// ButtonMapping defines how a raw button index maps to a logical button.
type ButtonMapping struct {
	Index  int32
	Target gamepad.Button
}

// DeviceMapping holds the complete mapping for a specific device type.
type DeviceMapping struct {
	Name    string
	Axes    []AxisMapping
	Buttons []ButtonMapping
	HasHat  bool
}

func (m *DeviceMapping) axis(index int32) (AxisMapping, bool) {
	for _, am := range m.Axes {
		if am.Index == index {
			return am, true
		}
	}
	return AxisMapping{}, false
}

func (m *DeviceMapping) button(index int32) (gamepad.Button, bool) {
	for _, bm := range m.Buttons {
		if bm.Index == index {
			return bm.Target, true
		}
	}
	return 0, false
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to 0.0..1.0.
func NormalizeTrigger(raw int16, rawMin, rawMax int16) float64 {
	if rawMax == rawMin {
		return 0
	}
	v := float64(raw-rawMin) / float64(rawMax-rawMin)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// Built-in mappings for common controllers. Dead-zone filtering is not done
// here; the registry's finalize step owns that.

var xboxMapping = &DeviceMapping{
	Name: "xbox",
	Axes: []AxisMapping{
		{Index: 0, Target: gamepad.AxisLeftX},
		{Index: 1, Target: gamepad.AxisLeftY, Invert: true},
		{Index: 2, Target: gamepad.AxisRightX},
		{Index: 3, Target: gamepad.AxisRightY, Invert: true},
		{Index: 4, Target: gamepad.AxisTriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: gamepad.AxisTriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Target: gamepad.ButtonSouth},
		{Index: 1, Target: gamepad.ButtonEast},
		{Index: 2, Target: gamepad.ButtonWest},
		{Index: 3, Target: gamepad.ButtonNorth},
		{Index: 4, Target: gamepad.ButtonLeftShoulder},
		{Index: 5, Target: gamepad.ButtonRightShoulder},
		{Index: 6, Target: gamepad.ButtonBack},
		{Index: 7, Target: gamepad.ButtonStart},
		{Index: 8, Target: gamepad.ButtonLeftStick},
		{Index: 9, Target: gamepad.ButtonRightStick},
		{Index: 10, Target: gamepad.ButtonGuide},
	},
	HasHat: true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Axes: []AxisMapping{
		{Index: 0, Target: gamepad.AxisLeftX},
		{Index: 1, Target: gamepad.AxisLeftY, Invert: true},
		{Index: 2, Target: gamepad.AxisRightX},
		{Index: 3, Target: gamepad.AxisRightY, Invert: true},
		{Index: 4, Target: gamepad.AxisTriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: gamepad.AxisTriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Target: gamepad.ButtonSouth},  // Cross
		{Index: 1, Target: gamepad.ButtonEast},   // Circle
		{Index: 2, Target: gamepad.ButtonWest},   // Square
		{Index: 3, Target: gamepad.ButtonNorth},  // Triangle
		{Index: 4, Target: gamepad.ButtonBack},   // Share / Create
		{Index: 5, Target: gamepad.ButtonGuide},  // PS button
		{Index: 6, Target: gamepad.ButtonStart},  // Options
		{Index: 7, Target: gamepad.ButtonLeftStick},
		{Index: 8, Target: gamepad.ButtonRightStick},
		{Index: 9, Target: gamepad.ButtonLeftShoulder},   // L1
		{Index: 10, Target: gamepad.ButtonRightShoulder}, // R1
	},
	HasHat: true,
}

var switchProMapping = &DeviceMapping{
	Name: "switch_pro",
	Axes: []AxisMapping{
		{Index: 0, Target: gamepad.AxisLeftX},
		{Index: 1, Target: gamepad.AxisLeftY, Invert: true},
		{Index: 2, Target: gamepad.AxisRightX},
		{Index: 3, Target: gamepad.AxisRightY, Invert: true},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Target: gamepad.ButtonSouth},
		{Index: 1, Target: gamepad.ButtonEast},
		{Index: 2, Target: gamepad.ButtonWest},
		{Index: 3, Target: gamepad.ButtonNorth},
		{Index: 4, Target: gamepad.ButtonLeftShoulder},
		{Index: 5, Target: gamepad.ButtonRightShoulder},
		{Index: 6, Target: gamepad.ButtonBack},
		{Index: 7, Target: gamepad.ButtonStart},
		{Index: 8, Target: gamepad.ButtonLeftStick},
		{Index: 9, Target: gamepad.ButtonRightStick},
		{Index: 10, Target: gamepad.ButtonGuide},
	},
	HasHat: true,
}

var genericMapping = &DeviceMapping{
	Name: "generic",
	Axes: []AxisMapping{
		{Index: 0, Target: gamepad.AxisLeftX},
		{Index: 1, Target: gamepad.AxisLeftY, Invert: true},
		{Index: 2, Target: gamepad.AxisRightX},
		{Index: 3, Target: gamepad.AxisRightY, Invert: true},
		{Index: 4, Target: gamepad.AxisTriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Target: gamepad.AxisTriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []ButtonMapping{
		{Index: 0, Target: gamepad.ButtonSouth},
		{Index: 1, Target: gamepad.ButtonEast},
		{Index: 2, Target: gamepad.ButtonWest},
		{Index: 3, Target: gamepad.ButtonNorth},
		{Index: 4, Target: gamepad.ButtonLeftShoulder},
		{Index: 5, Target: gamepad.ButtonRightShoulder},
		{Index: 6, Target: gamepad.ButtonBack},
		{Index: 7, Target: gamepad.ButtonStart},
		{Index: 8, Target: gamepad.ButtonLeftStick},
		{Index: 9, Target: gamepad.ButtonRightStick},
		{Index: 10, Target: gamepad.ButtonGuide},
	},
	HasHat: true,
}

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1
	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// GetMapping returns the mapping for a device identified by vendor/product
// ID, falling back to the generic mapping.
func GetMapping(vendorID, productID uint16) *DeviceMapping {
	key := deviceKey{VendorID: vendorID, ProductID: productID}
	if m, ok := knownDevices[key]; ok {
		return m
	}
	return genericMapping
}
