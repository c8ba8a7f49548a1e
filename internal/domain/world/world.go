// Package world describes the collision geometry the movement core queries.
//
// The core only ever asks one question of the world: "what does this ray hit first?"
// Hosts plug in their own physics through the Raycaster interface; BoxWorld is a small
// in-memory implementation used by the sandbox and by tests.
package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// ColliderID is the opaque handle of a collider
type ColliderID = uuid.UUID

// NoCollider is the zero handle
var NoCollider ColliderID

// Up is the world-up axis
var Up = mgl64.Vec3{0, 1, 0}

// Hit describes the first surface a ray touched
type Hit struct {
	Distance float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Collider ColliderID
	Name     string
	Surface  Surface
}

// Filter reports whether a collider should be skipped by a query.
// A nil Filter skips nothing.
type Filter func(id ColliderID) bool

// Raycaster is the collision capability supplied by the host world
type Raycaster interface {
	// Raycast returns the closest hit along dir within maxDist.
	// dir does not need to be normalized.
	Raycast(origin, dir mgl64.Vec3, maxDist float64, filter Filter) (Hit, bool)
}

// IgnoreList holds colliders excluded from every query of one character
type IgnoreList struct {
	ids map[ColliderID]struct{}
}

// NewIgnoreList creates an empty ignore list
func NewIgnoreList() *IgnoreList {
	return &IgnoreList{ids: make(map[ColliderID]struct{})}
}

// Add excludes a collider
func (l *IgnoreList) Add(id ColliderID) {
	l.ids[id] = struct{}{}
}

// Remove includes a collider again
func (l *IgnoreList) Remove(id ColliderID) {
	delete(l.ids, id)
}

// Contains reports whether id is excluded
func (l *IgnoreList) Contains(id ColliderID) bool {
	_, ok := l.ids[id]
	return ok
}

// Len returns the number of excluded colliders
func (l *IgnoreList) Len() int {
	return len(l.ids)
}

// Filter returns a Filter backed by the list. The filter sees later Add/Remove calls.
func (l *IgnoreList) Filter() Filter {
	return func(id ColliderID) bool {
		return l.Contains(id)
	}
}

// Normalize returns v scaled to unit length, or the zero vector if v has no length
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Flatten drops the vertical component and normalizes the rest
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return Normalize(mgl64.Vec3{v.X(), 0, v.Z()})
}
