package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type shapeKind int

const (
	shapeBox shapeKind = iota
	shapePlane
)

// collider is either an axis-aligned box (Min/Max) or a one-sided plane (Min = point, Max = normal)
type collider struct {
	id      ColliderID
	kind    shapeKind
	name    string
	surface Surface
	min     mgl64.Vec3
	max     mgl64.Vec3
}

// BoxWorld is an in-memory Raycaster over axis-aligned boxes and planes
type BoxWorld struct {
	colliders []collider
}

// NewBoxWorld creates an empty world
func NewBoxWorld() *BoxWorld {
	return &BoxWorld{}
}

// AddBox adds an axis-aligned box. min and max may be given in any order.
func (w *BoxWorld) AddBox(name string, a, b mgl64.Vec3, surface Surface) ColliderID {
	lo := mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
	hi := mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
	id := uuid.New()
	w.colliders = append(w.colliders, collider{
		id:      id,
		kind:    shapeBox,
		name:    name,
		surface: surface,
		min:     lo,
		max:     hi,
	})
	return id
}

// AddPlane adds an infinite one-sided plane through point facing normal.
// Rays only hit it from the side the normal points to.
func (w *BoxWorld) AddPlane(name string, point, normal mgl64.Vec3, surface Surface) ColliderID {
	id := uuid.New()
	w.colliders = append(w.colliders, collider{
		id:      id,
		kind:    shapePlane,
		name:    name,
		surface: surface,
		min:     point,
		max:     Normalize(normal),
	})
	return id
}

// Remove deletes a collider, reporting whether it existed
func (w *BoxWorld) Remove(id ColliderID) bool {
	for i, c := range w.colliders {
		if c.id == id {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of colliders
func (w *BoxWorld) Len() int {
	return len(w.colliders)
}

// Raycast implements Raycaster. On equal distances the collider added first wins.
func (w *BoxWorld) Raycast(origin, dir mgl64.Vec3, maxDist float64, filter Filter) (Hit, bool) {
	d := Normalize(dir)
	if d == (mgl64.Vec3{}) || maxDist <= 0 {
		return Hit{}, false
	}

	var best Hit
	found := false
	bestT := maxDist

	for _, c := range w.colliders {
		if filter != nil && filter(c.id) {
			continue
		}

		var t float64
		var n mgl64.Vec3
		var ok bool
		switch c.kind {
		case shapeBox:
			t, n, ok = rayBox(origin, d, c.min, c.max)
		case shapePlane:
			t, n, ok = rayPlane(origin, d, c.min, c.max)
		}
		if !ok || t > bestT || (found && t == bestT) {
			continue
		}

		bestT = t
		found = true
		best = Hit{
			Distance: t,
			Point:    origin.Add(d.Mul(t)),
			Normal:   n,
			Collider: c.id,
			Name:     c.name,
			Surface:  c.surface,
		}
	}

	return best, found
}

// rayBox is the slab test in three axes. Rays starting inside a box do not hit it.
func rayBox(o, d, lo, hi mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	axis := -1
	sign := 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}

		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
			axis = i
			sign = -math.Copysign(1, d[i])
		}
		if t2 < tExit {
			tExit = t2
		}
	}

	if axis < 0 || tEnter > tExit || tEnter < 0 {
		return 0, mgl64.Vec3{}, false
	}

	var n mgl64.Vec3
	n[axis] = sign
	return tEnter, n, true
}

func rayPlane(o, d, point, normal mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	denom := normal.Dot(d)
	if denom > -1e-12 {
		return 0, mgl64.Vec3{}, false
	}
	t := normal.Dot(point.Sub(o)) / denom
	if t < 0 {
		return 0, mgl64.Vec3{}, false
	}
	return t, normal, true
}
