package letterplay

import "math/rand"

// randomizeMagnitude is the full range of a perturbation on one axis.
// Offsets are centered on zero, giving a uniform draw in [-10, 10).
const randomizeMagnitude = 20

// RandomizePath returns a copy of the path with every anchor and control
// point perturbed by an independent uniform offset on each axis. Close
// commands carry no coordinates and are unaffected.
//
// The generator is math/rand seeded with the given value, and points are
// visited in the fixed EachPoint order drawing x before y, so the result
// is fully reproducible: the same seed and starting path always yield
// bit-identical coordinates.
func RandomizePath(p *Path, seed int64) *Path {
	rng := rand.New(rand.NewSource(seed))
	result := p.Clone()
	result.EachPoint(func(ref PointRef, pt Point) {
		pt.X += (rng.Float64() - 0.5) * randomizeMagnitude
		pt.Y += (rng.Float64() - 0.5) * randomizeMagnitude
		result.SetPoint(ref, pt)
	})
	return result
}
