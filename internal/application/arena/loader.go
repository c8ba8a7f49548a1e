// Package arena turns arena configs into queryable collision worlds.
package arena

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

// Box is a solid box as loaded, kept for drawing
type Box struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Surface world.Surface
}

// Arena is a loaded arena ready for a character
type Arena struct {
	ID     string
	Name   string
	World  *world.BoxWorld
	Spawn  mgl64.Vec3
	Facing mgl64.Vec3
	Boxes  []Box

	colliders map[string]world.ColliderID
}

// Collider returns the handle of a named collider
func (a *Arena) Collider(name string) (world.ColliderID, bool) {
	id, ok := a.colliders[name]
	return id, ok
}

// LoadArena converts an ArenaConfig into an Arena.
// Colliders carry their configured surface; an empty surface is inferred from the name.
func LoadArena(cfg *config.ArenaConfig) *Arena {
	a := &Arena{
		ID:        cfg.ID,
		Name:      cfg.Name,
		World:     world.NewBoxWorld(),
		Spawn:     mgl64.Vec3(cfg.Spawn),
		Facing:    mgl64.Vec3(cfg.Facing),
		colliders: make(map[string]world.ColliderID, len(cfg.Boxes)+len(cfg.Planes)),
	}
	if a.Facing.Len() == 0 {
		a.Facing = mgl64.Vec3{1, 0, 0}
	}

	for _, b := range cfg.Boxes {
		box := Box{Name: b.Name, Min: mgl64.Vec3(b.Min), Max: mgl64.Vec3(b.Max), Surface: surfaceOf(b.Name, b.Surface)}
		a.colliders[b.Name] = a.World.AddBox(box.Name, box.Min, box.Max, box.Surface)
		a.Boxes = append(a.Boxes, box)
	}
	for _, p := range cfg.Planes {
		id := a.World.AddPlane(p.Name, mgl64.Vec3(p.Point), mgl64.Vec3(p.Normal), surfaceOf(p.Name, p.Surface))
		a.colliders[p.Name] = id
	}

	return a
}

func surfaceOf(name, explicit string) world.Surface {
	if explicit != "" {
		return world.ParseSurface(explicit)
	}
	return world.ClassifySurface(name)
}
