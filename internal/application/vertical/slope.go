package vertical

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
)

// SlopeAdjustedMovement projects a horizontal move onto a walkable sloped floor so
// the character hugs it instead of lifting off. Flat ground and airborne moves pass through.
func (c *Controller) SlopeAdjustedMovement(move mgl64.Vec3) mgl64.Vec3 {
	g := c.groundInfo
	if !c.grounded || !g.IsWalkable || g.SlopeAngle < minSlopeAdjust {
		return move
	}
	n := world.Normalize(g.Normal)
	return move.Sub(n.Mul(move.Dot(n)))
}

// SlopeSlideVelocity is the downhill velocity for a character standing on an
// unwalkable slope; zero otherwise
func (c *Controller) SlopeSlideVelocity() mgl64.Vec3 {
	g := c.groundInfo
	if !c.grounded || g.IsWalkable {
		return mgl64.Vec3{}
	}

	n := world.Normalize(g.Normal)
	down := mgl64.Vec3{0, -1, 0}
	dir := world.Normalize(down.Sub(n.Mul(down.Dot(n))))
	speed := (g.SlopeAngle - c.cfg.Ground.MaxWalkableSlope) * c.cfg.Ground.SlideFactor
	return dir.Mul(speed)
}
