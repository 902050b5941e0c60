package core

import (
	"math"

	"github.com/pragmr/vorko/internal/domain"
)

// DefaultProximityRadius is the media-eligibility distance in grid tiles.
// Overridable via config; consumed only through Eligible.
const DefaultProximityRadius = 3

// Eligible reports whether two positions are within radius of each other
// (Euclidean distance, inclusive). Pure; room membership is the caller's
// concern.
func Eligible(a, b domain.Position, radius float64) bool {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx+dy*dy) <= radius
}
