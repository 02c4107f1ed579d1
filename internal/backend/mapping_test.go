package backend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soar/padframe/internal/gamepad"
)

func TestNormalizeAxis(t *testing.T) {
	require.Equal(t, 0.0, NormalizeAxis(0))
	require.Equal(t, 1.0, NormalizeAxis(32767))
	require.Equal(t, -1.0, NormalizeAxis(-32768)) // clamped
	require.InDelta(t, 0.5, NormalizeAxis(16384), 0.001)
}

func TestNormalizeTrigger(t *testing.T) {
	// Full-range devices
	require.Equal(t, 0.0, NormalizeTrigger(-32768, -32768, 32767))
	require.Equal(t, 1.0, NormalizeTrigger(32767, -32768, 32767))
	require.InDelta(t, 0.5, NormalizeTrigger(0, -32768, 32767), 0.001)

	// Half-range devices
	require.Equal(t, 0.0, NormalizeTrigger(0, 0, 32767))
	require.Equal(t, 1.0, NormalizeTrigger(32767, 0, 32767))

	// Values outside the declared range are clamped
	require.Equal(t, 0.0, NormalizeTrigger(-100, 0, 32767))

	// Degenerate range
	require.Equal(t, 0.0, NormalizeTrigger(100, 50, 50))
}

func TestGetMappingKnownDevices(t *testing.T) {
	require.Equal(t, "xbox", GetMapping(0x045E, 0x028E).Name)
	require.Equal(t, "playstation", GetMapping(0x054C, 0x0CE6).Name)
	require.Equal(t, "switch_pro", GetMapping(0x057E, 0x2009).Name)
}

func TestGetMappingFallback(t *testing.T) {
	require.Equal(t, "generic", GetMapping(0xDEAD, 0xBEEF).Name)
}

func TestMappingLookups(t *testing.T) {
	m := GetMapping(0x045E, 0x028E)

	b, ok := m.button(0)
	require.True(t, ok)
	require.Equal(t, gamepad.ButtonSouth, b)

	_, ok = m.button(42)
	require.False(t, ok)

	am, ok := m.axis(4)
	require.True(t, ok)
	require.True(t, am.IsTrigger)
	require.Equal(t, gamepad.AxisTriggerLeft, am.Target)

	_, ok = m.axis(42)
	require.False(t, ok)
}

func TestStickAxesInvertY(t *testing.T) {
	for _, m := range []*DeviceMapping{xboxMapping, playstationMapping, switchProMapping, genericMapping} {
		am, ok := m.axis(1)
		require.True(t, ok, m.Name)
		require.Equal(t, gamepad.AxisLeftY, am.Target, m.Name)
		require.True(t, am.Invert, m.Name)
	}
}
