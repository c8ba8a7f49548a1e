// Package ground answers "is the character standing on something, and what is it?"
package ground

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

const (
	// probeMargin lifts the ray origin above the feet so it never starts inside the floor
	probeMargin = 0.1
	// acceptEpsilon tolerates float drift at the edge of the probe distance
	acceptEpsilon = 0.01
)

// Info is the result of one ground probe.
// When IsGrounded is false the remaining fields hold the last successful probe.
type Info struct {
	IsGrounded   bool
	GroundHeight float64
	Normal       mgl64.Vec3
	SlopeAngle   float64 // Degrees from world-up
	IsWalkable   bool
	Surface      world.Surface
	Collider     world.ColliderID
	Distance     float64 // Feet to ground
}

// Prober casts a short ray down from the character's feet
type Prober struct {
	cfg    config.GroundConfig
	world  world.Raycaster
	ignore *world.IgnoreList
	last   Info
}

// NewProber creates a prober. ignore may be nil.
func NewProber(cfg config.GroundConfig, rc world.Raycaster, ignore *world.IgnoreList) *Prober {
	if ignore == nil {
		ignore = world.NewIgnoreList()
	}
	return &Prober{
		cfg:    cfg,
		world:  rc,
		ignore: ignore,
		last:   Info{Normal: world.Up, IsWalkable: true},
	}
}

// FeetY returns the height of the feet for a character position
func (p *Prober) FeetY(position mgl64.Vec3) float64 {
	return position.Y() - p.cfg.FeetOffset()
}

// Probe samples the ground under position
func (p *Prober) Probe(position mgl64.Vec3) Info {
	origin := p.origin(position)
	maxDist := probeMargin + p.cfg.ProbeDistance + acceptEpsilon

	hit, ok := p.world.Raycast(origin, mgl64.Vec3{0, -1, 0}, maxDist, p.ignore.Filter())
	if !ok || hit.Distance-probeMargin > p.cfg.ProbeDistance+acceptEpsilon {
		p.last.IsGrounded = false
		return p.last
	}

	angle := SlopeAngle(hit.Normal)
	p.last = Info{
		IsGrounded:   true,
		GroundHeight: hit.Point.Y(),
		Normal:       hit.Normal,
		SlopeAngle:   angle,
		IsWalkable:   angle <= p.cfg.MaxWalkableSlope+1e-9,
		Surface:      hit.Surface,
		Collider:     hit.Collider,
		Distance:     hit.Distance - probeMargin,
	}
	return p.last
}

// Sweep looks for ground within drop units below the feet.
// It returns the feet-to-ground distance of the first hit.
func (p *Prober) Sweep(position mgl64.Vec3, drop float64) (float64, bool) {
	if drop <= 0 {
		return 0, false
	}
	hit, ok := p.world.Raycast(p.origin(position), mgl64.Vec3{0, -1, 0}, probeMargin+drop, p.ignore.Filter())
	if !ok {
		return 0, false
	}
	return hit.Distance - probeMargin, true
}

// Last returns the most recent probe result
func (p *Prober) Last() Info {
	return p.last
}

// Reset forgets the stale ground data
func (p *Prober) Reset() {
	p.last = Info{Normal: world.Up, IsWalkable: true}
}

func (p *Prober) origin(position mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{position.X(), p.FeetY(position) + probeMargin, position.Z()}
}

// SlopeAngle returns the angle between normal and world-up in degrees
func SlopeAngle(normal mgl64.Vec3) float64 {
	n := world.Normalize(normal)
	if n == (mgl64.Vec3{}) {
		return 0
	}
	cos := mgl64.Clamp(n.Dot(world.Up), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}
