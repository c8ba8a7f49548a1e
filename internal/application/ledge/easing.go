package ledge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func easeInOutCubic(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeOutQuad(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return 1 - (1-t)*(1-t)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
