package hull

import "github.com/Faultbox/midgard-pcg/pkg/math"

// Rand is the random source used by GeneratePoints. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
}

// GeneratePoints samples count points uniformly inside the cube [-radius, radius]^3.
// The origin and duplicates are dropped without retrying, so the result may
// hold fewer than count points.
func GeneratePoints(rng Rand, radius float32, count int) []math.Vec3 {
	if count <= 0 || radius <= 0 {
		return nil
	}

	points := make([]math.Vec3, 0, count)
	seen := make(map[math.Vec3]struct{}, count)

	for range count {
		v := math.Vec3{
			X: randRange(rng, radius),
			Y: randRange(rng, radius),
			Z: randRange(rng, radius),
		}

		if v.IsZero() || !v.InCube(radius) {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		points = append(points, v)
	}

	return points
}

func randRange(rng Rand, r float32) float32 {
	return -r + rng.Float32()*2*r
}
