package world

import "strings"

// Surface is the coarse material tag of a collider
type Surface int

const (
	SurfaceDefault Surface = iota
	SurfaceMetal
	SurfaceOrganic
	SurfaceIce
	SurfaceRock
)

// String returns the string representation of the surface
func (s Surface) String() string {
	switch s {
	case SurfaceMetal:
		return "metal"
	case SurfaceOrganic:
		return "organic"
	case SurfaceIce:
		return "ice"
	case SurfaceRock:
		return "rock"
	default:
		return "default"
	}
}

// ParseSurface converts a surface name back into a Surface.
// Unknown names map to SurfaceDefault.
func ParseSurface(name string) Surface {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metal":
		return SurfaceMetal
	case "organic":
		return SurfaceOrganic
	case "ice":
		return SurfaceIce
	case "rock":
		return SurfaceRock
	default:
		return SurfaceDefault
	}
}

// Order matters: the first rule with a matching keyword wins.
var surfaceKeywords = []struct {
	surface  Surface
	keywords []string
}{
	{SurfaceMetal, []string{"metal", "steel", "grate", "floor"}},
	{SurfaceOrganic, []string{"organic", "flesh", "hive", "alien"}},
	{SurfaceIce, []string{"ice", "snow", "frozen"}},
	{SurfaceRock, []string{"rock", "stone", "terrain", "ground"}},
}

// ClassifySurface guesses a surface from a collider name.
// Hosts use it when building colliders that carry no explicit material.
func ClassifySurface(name string) Surface {
	lower := strings.ToLower(name)
	for _, rule := range surfaceKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.surface
			}
		}
	}
	return SurfaceDefault
}
