package gamepad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	id     DeviceID
	name   string
	closed bool
}

func (d *fakeDevice) InstanceID() DeviceID { return d.id }
func (d *fakeDevice) Name() string         { return d.name }
func (d *fakeDevice) Close()               { d.closed = true }

func newTestRegistry(t *testing.T, ids ...DeviceID) (*Registry, []*fakeDevice) {
	t.Helper()
	r := NewRegistry()
	devs := make([]*fakeDevice, 0, len(ids))
	for _, id := range ids {
		d := &fakeDevice{id: id, name: "fake"}
		devs = append(devs, d)
		r.Register(d, 0.25)
	}
	return r, devs
}

func TestButtonPressRelease(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2)

	r.SetButton(1, ButtonSouth, true)
	require.True(t, r.IsButtonActive(0, ButtonSouth))
	require.False(t, r.IsButtonActive(0, ButtonEast))
	require.False(t, r.IsButtonActive(1, ButtonSouth))

	// Activity on another pad or button leaves the first untouched.
	r.SetButton(2, ButtonSouth, true)
	r.SetButton(1, ButtonEast, true)
	require.True(t, r.IsButtonActive(0, ButtonSouth))

	r.SetButton(1, ButtonSouth, false)
	require.False(t, r.IsButtonActive(0, ButtonSouth))
	require.True(t, r.IsButtonActive(0, ButtonEast))
	require.True(t, r.IsButtonActive(1, ButtonSouth))
}

func TestButtonIdempotent(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	r.SetButton(1, ButtonStart, true)
	r.SetButton(1, ButtonStart, true)
	require.True(t, r.IsButtonActive(0, ButtonStart))

	r.SetButton(1, ButtonStart, false)
	require.False(t, r.IsButtonActive(0, ButtonStart))

	r.SetButton(1, ButtonStart, false)
	require.False(t, r.IsButtonActive(0, ButtonStart))
}

func TestMutatorsIgnoreUnknownID(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	r.SetButton(99, ButtonSouth, true)
	r.SetAxisSample(99, AxisLeftX, 1.0)
	r.FinalizeAxes(99)
	r.Unregister(99)

	require.Equal(t, 1, r.Count())
	require.False(t, r.IsButtonActive(0, ButtonSouth))
}

func TestDeadZoneFloor(t *testing.T) {
	for _, raw := range []float64{0.0, 0.05, -0.05, 0.119, -0.119} {
		r, _ := newTestRegistry(t, 1)
		r.SetAxisSample(1, AxisLeftX, raw)
		r.FinalizeAxes(1)
		require.Equal(t, 0.0, r.Snapshot(0).Sticks.Left.Position.X, "raw %v", raw)
	}
}

func TestDeadZonePassthrough(t *testing.T) {
	// Values at or above the floor pass through unchanged, including
	// out-of-range ones; raw samples are not clamped.
	for _, raw := range []float64{0.12, -0.12, 0.5, -1.0, 1.5} {
		r, _ := newTestRegistry(t, 1)
		r.SetAxisSample(1, AxisLeftX, raw)
		r.FinalizeAxes(1)
		require.Equal(t, raw, r.Snapshot(0).Sticks.Left.Position.X, "raw %v", raw)
	}
}

func TestAxisSampleInvisibleUntilFinalize(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	r.SetAxisSample(1, AxisLeftX, 0.9)
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionRight))
	require.Equal(t, 0.0, r.Snapshot(0).Sticks.Left.Position.X)

	r.FinalizeAxes(1)
	require.True(t, r.IsAxisActive(0, AxisLeftX, DirectionRight))
	require.Equal(t, 0.9, r.Snapshot(0).Sticks.Left.Position.X)
}

func TestFinalizeKeepsAxesWithoutSamples(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	r.SetAxisSample(1, AxisLeftX, 0.5)
	r.FinalizeAxes(1)

	// A later frame with samples only for another axis must not disturb the
	// previously finalized value.
	r.SetAxisSample(1, AxisRightY, 0.7)
	r.FinalizeAxes(1)

	snap := r.Snapshot(0)
	require.Equal(t, 0.5, snap.Sticks.Left.Position.X)
	require.Equal(t, 0.7, snap.Sticks.Right.Position.Y)
}

func TestDirectionCompare(t *testing.T) {
	tests := []struct {
		dir         AxisDirection
		value       float64
		sensitivity float64
		want        bool
	}{
		{DirectionNone, 1.0, 0.0, false},
		{DirectionNone, -1.0, 0.0, false},

		{DirectionEither, 0.0, 0.25, false},
		{DirectionEither, 0.01, 0.25, true},
		{DirectionEither, -0.01, 0.25, true},

		{DirectionRight, 0.5, 0.25, true},
		{DirectionRight, 0.25, 0.25, false}, // boundary is inactive
		{DirectionRight, -0.5, 0.25, false},
		{DirectionDown, 0.5, 0.25, true},
		{DirectionDown, 0.25, 0.25, false},

		{DirectionLeft, -0.5, 0.25, true},
		{DirectionLeft, -0.25, 0.25, false}, // boundary is inactive
		{DirectionLeft, 0.5, 0.25, false},
		{DirectionUp, -0.5, 0.25, true},
		{DirectionUp, -0.25, 0.25, false},
	}

	for _, tc := range tests {
		got := tc.dir.Compare(tc.value, tc.sensitivity)
		require.Equal(t, tc.want, got, "dir %v value %v sensitivity %v", tc.dir, tc.value, tc.sensitivity)
	}
}

func TestAxisActiveDirections(t *testing.T) {
	r, _ := newTestRegistry(t, 7)

	r.SetAxisSample(7, AxisLeftX, 0.5)
	r.FinalizeAxes(7)

	require.True(t, r.IsAxisActive(0, AxisLeftX, DirectionRight))
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionLeft))
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionNone))
	require.True(t, r.IsAxisActive(0, AxisLeftX, DirectionEither))
}

func TestAxisWithinDeadZoneIsInactive(t *testing.T) {
	r, _ := newTestRegistry(t, 7)

	r.SetAxisSample(7, AxisLeftX, 0.05)
	r.FinalizeAxes(7)

	// Floored to exactly 0.0, and Either requires strictly nonzero.
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionEither))
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionRight))
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionLeft))
}

func TestTriggerIgnoresStickSensitivity(t *testing.T) {
	r, _ := newTestRegistry(t, 1) // stick sensitivity 0.25

	// 0.13 clears the finalize floor but not the stick sensitivity; triggers
	// compare against 0 so they still read as active.
	r.SetAxisSample(1, AxisTriggerRight, 0.13)
	r.SetAxisSample(1, AxisLeftX, 0.13)
	r.FinalizeAxes(1)

	require.True(t, r.IsAxisActive(0, AxisTriggerRight, DirectionDown))
	require.True(t, r.IsAxisActive(0, AxisTriggerRight, DirectionEither))
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionRight))
}

func TestRegisterUnregisterRoundTrip(t *testing.T) {
	r, devs := newTestRegistry(t, 1)
	first := devs[0]

	extra := &fakeDevice{id: 2, name: "extra"}
	r.Register(extra, 0.25)
	require.Equal(t, 2, r.Count())

	r.SetButton(1, ButtonSouth, true)

	r.Unregister(2)
	require.Equal(t, 1, r.Count())
	require.True(t, extra.closed)
	require.False(t, first.closed)

	// Remaining pad kept its index and state.
	require.True(t, r.IsButtonActive(0, ButtonSouth))
}

func TestRemovalShiftsIndices(t *testing.T) {
	r, devs := newTestRegistry(t, 10, 20, 30)

	r.SetButton(10, ButtonSouth, true)
	r.SetButton(20, ButtonEast, true)
	r.SetButton(30, ButtonWest, true)

	r.Unregister(20)
	require.Equal(t, 2, r.Count())
	require.True(t, devs[1].closed)

	// Pad 30 shifted down from index 2 to index 1.
	require.True(t, r.IsButtonActive(0, ButtonSouth))
	require.True(t, r.IsButtonActive(1, ButtonWest))
	require.False(t, r.IsButtonActive(1, ButtonEast))

	// The old index 2 is now out of range.
	require.False(t, r.IsButtonActive(2, ButtonWest))
}

func TestOutOfRangeQueries(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	require.False(t, r.IsButtonActive(5, ButtonSouth))
	require.False(t, r.IsAxisActive(5, AxisLeftX, DirectionEither))
	require.False(t, r.IsActive(5, ButtonInput(ButtonSouth), DirectionNone))
	require.False(t, r.IsButtonActive(-1, ButtonSouth))
	require.False(t, r.IsAxisActive(-1, AxisLeftX, DirectionEither))
}

func TestIsActiveDispatch(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	r.SetButton(1, ButtonSouth, true)
	r.SetAxisSample(1, AxisLeftX, 0.5)
	r.FinalizeAxes(1)

	require.True(t, r.IsActive(0, ButtonInput(ButtonSouth), DirectionNone))
	require.False(t, r.IsActive(0, ButtonInput(ButtonEast), DirectionNone))

	require.True(t, r.IsActive(0, AxisInput(AxisLeftX), DirectionRight))
	require.False(t, r.IsActive(0, AxisInput(AxisLeftX), DirectionLeft))

	// Either: button held, axis pointing the wrong way.
	require.True(t, r.IsActive(0, EitherInput(ButtonSouth, AxisLeftX), DirectionLeft))
	// Either: button idle, axis satisfied.
	require.True(t, r.IsActive(0, EitherInput(ButtonEast, AxisLeftX), DirectionRight))
	// Either: neither side active.
	require.False(t, r.IsActive(0, EitherInput(ButtonEast, AxisLeftX), DirectionLeft))
}

func TestIsActiveButtonIgnoresDirection(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	r.SetButton(1, ButtonSouth, true)

	for _, dir := range []AxisDirection{DirectionNone, DirectionEither, DirectionUp, DirectionLeft, DirectionRight, DirectionDown} {
		require.True(t, r.IsActive(0, ButtonInput(ButtonSouth), dir))
	}
}

func TestRegisterStartsNeutral(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	snap := r.Snapshot(0)
	require.True(t, snap.Connected)
	require.Equal(t, ButtonState{}, snap.Buttons)
	require.Equal(t, 0.0, snap.Sticks.Left.Position.X)
	require.Equal(t, 0.0, snap.Triggers.LT.Value)
	require.False(t, r.IsAxisActive(0, AxisLeftX, DirectionEither))
}
