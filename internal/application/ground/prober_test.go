package ground

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

func createTestProber() (*Prober, *world.BoxWorld, world.ColliderID) {
	w := world.NewBoxWorld()
	floor := w.AddBox("floor", mgl64.Vec3{-10, -1, -10}, mgl64.Vec3{10, 0, 10}, world.SurfaceMetal)
	return NewProber(config.Default().Ground, w, nil), w, floor
}

func TestProber_Grounded(t *testing.T) {
	p, _, floor := createTestProber()

	// Feet exactly on the floor (position is 0.9 above the feet)
	info := p.Probe(mgl64.Vec3{0, 0.9, 0})

	require.True(t, info.IsGrounded)
	assert.InDelta(t, 0.0, info.GroundHeight, 1e-9)
	assert.InDelta(t, 0.0, info.Distance, 1e-9)
	assert.Equal(t, world.Up, info.Normal)
	assert.InDelta(t, 0.0, info.SlopeAngle, 1e-9)
	assert.True(t, info.IsWalkable)
	assert.Equal(t, world.SurfaceMetal, info.Surface)
	assert.Equal(t, floor, info.Collider)
}

func TestProber_ProbeDistance(t *testing.T) {
	p, _, _ := createTestProber()

	tests := []struct {
		name   string
		feetY  float64
		wantOK bool
	}{
		{"touching", 0, true},
		{"hovering within reach", 0.15, true},
		{"at reach", 0.2, true},
		{"just past reach", 0.25, false},
		{"airborne", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := p.Probe(mgl64.Vec3{0, tt.feetY + 0.9, 0})
			assert.Equal(t, tt.wantOK, info.IsGrounded)
		})
	}
}

func TestProber_MissKeepsStaleData(t *testing.T) {
	p, _, _ := createTestProber()

	p.Probe(mgl64.Vec3{0, 0.9, 0})
	info := p.Probe(mgl64.Vec3{0, 10, 0})

	assert.False(t, info.IsGrounded)
	assert.Equal(t, world.SurfaceMetal, info.Surface)
	assert.InDelta(t, 0.0, info.GroundHeight, 1e-9)

	p.Reset()
	assert.Equal(t, world.SurfaceDefault, p.Last().Surface)
}

func TestProber_IgnoredColliders(t *testing.T) {
	w := world.NewBoxWorld()
	floor := w.AddBox("floor", mgl64.Vec3{-10, -1, -10}, mgl64.Vec3{10, 0, 10}, world.SurfaceRock)
	ignore := world.NewIgnoreList()
	ignore.Add(floor)
	p := NewProber(config.Default().Ground, w, ignore)

	assert.False(t, p.Probe(mgl64.Vec3{0, 0.9, 0}).IsGrounded)
}

func TestProber_Slopes(t *testing.T) {
	tests := []struct {
		name         string
		angle        float64
		wantWalkable bool
	}{
		{"gentle", 20, true},
		{"limit", 45, true},
		{"steep", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.NewBoxWorld()
			rad := tt.angle * math.Pi / 180
			w.AddPlane("ramp", mgl64.Vec3{}, mgl64.Vec3{math.Sin(rad), math.Cos(rad), 0}, world.SurfaceRock)
			p := NewProber(config.Default().Ground, w, nil)

			info := p.Probe(mgl64.Vec3{0, 0.9, 0})
			require.True(t, info.IsGrounded)
			assert.InDelta(t, tt.angle, info.SlopeAngle, 1e-6)
			assert.Equal(t, tt.wantWalkable, info.IsWalkable)
		})
	}
}

func TestProber_Sweep(t *testing.T) {
	p, _, _ := createTestProber()

	dist, ok := p.Sweep(mgl64.Vec3{0, 2.9, 0}, 3)
	require.True(t, ok)
	assert.InDelta(t, 2.0, dist, 1e-9)

	_, ok = p.Sweep(mgl64.Vec3{0, 2.9, 0}, 1)
	assert.False(t, ok)

	_, ok = p.Sweep(mgl64.Vec3{0, 2.9, 0}, 0)
	assert.False(t, ok)
}

func TestSlopeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, SlopeAngle(world.Up), 1e-9)
	assert.InDelta(t, 90.0, SlopeAngle(mgl64.Vec3{1, 0, 0}), 1e-9)
	assert.InDelta(t, 0.0, SlopeAngle(mgl64.Vec3{}), 1e-9)
}
