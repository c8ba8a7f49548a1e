package ledge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
)

const (
	chestHeight    = 0.5  // Above the feet
	reachSlack     = 0.5  // Added to the forward reach of the wall probe
	topClearance   = 0.3  // Down probe starts this far above the highest grabbable edge
	downSlack      = 0.5  // Added to the down probe length
	minLedgeInset  = 0.4  // Down probe lands at least this far past the wall face
	wallNormalMaxY = 0.7  // Steeper normals than this are floors, not walls
	headroom       = 2.0  // Clear space required above the edge
	headroomLift   = 0.05 // Keeps the headroom ray off the edge surface
	standBack      = 0.3  // Target and climb column sit this far behind the edge
)

// Info describes a climbable edge found by DetectLedge
type Info struct {
	Found        bool
	Position     mgl64.Vec3 // Point on top of the edge
	Normal       mgl64.Vec3 // Wall normal, facing the character
	Height       float64    // Edge height above the feet
	Collider     world.ColliderID
	IsLedgeGrab  bool
	WallPoint    mgl64.Vec3
	WallDistance float64
}

// DetectLedge sweeps for a climbable edge in front of the character.
// A wall must sit within reach at chest height and its top must land in the
// mantle or ledge-grab height band with enough headroom above it.
func (s *System) DetectLedge(position, forward mgl64.Vec3) Info {
	fwd := world.Flatten(forward)
	if fwd == (mgl64.Vec3{}) {
		return Info{}
	}

	filter := s.ignore.Filter()
	feet := position.Y() - s.feetOffset

	// 1. Wall in front of the chest
	chest := mgl64.Vec3{position.X(), feet + chestHeight, position.Z()}
	wall, ok := s.world.Raycast(chest, fwd, s.mantle.ForwardReach+reachSlack, filter)
	if !ok || math.Abs(wall.Normal.Y()) > wallNormalMaxY {
		return Info{}
	}

	// 2. Drop onto the top of the wall from above the highest grabbable edge
	inset := math.Max(wall.Distance, minLedgeInset)
	origin := wall.Point.Add(fwd.Mul(inset))
	origin[1] = feet + s.grab.MaxHeight + topClearance

	top, ok := s.world.Raycast(origin, mgl64.Vec3{0, -1, 0}, s.grab.MaxHeight+downSlack, filter)
	if !ok {
		return Info{}
	}

	// 3. Classify by height above the feet
	height := top.Point.Y() - feet
	var isGrab bool
	switch {
	case height >= s.grab.MinHeight && height <= s.grab.MaxHeight:
		isGrab = true
	case height >= s.mantle.MinHeight && height <= s.mantle.MaxHeight:
		isGrab = false
	default:
		return Info{}
	}

	// 4. Room to stand up
	lift := top.Point.Add(mgl64.Vec3{0, headroomLift, 0})
	if _, blocked := s.world.Raycast(lift, world.Up, headroom, filter); blocked {
		return Info{}
	}

	return Info{
		Found:        true,
		Position:     top.Point,
		Normal:       wall.Normal,
		Height:       height,
		Collider:     top.Collider,
		IsLedgeGrab:  isGrab,
		WallPoint:    wall.Point,
		WallDistance: wall.Distance,
	}
}
