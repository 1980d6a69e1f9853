package geo

import (
	"math"
)

// Coordinate is a planar node position as given in NODE_COORD_SECTION.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{
		X: x,
		Y: y,
	}
}

// CalculateEuclideanDistance. straight-line distance between two planar points
func CalculateEuclideanDistance(px, py, qx, qy float64) float64 {
	dx := px - qx
	dy := py - qy
	return math.Sqrt(dx*dx + dy*dy)
}

// EUC2D. TSPLIB EUC_2D edge weight: euclidean distance rounded half-up, nint(d) = int(d + 0.5)
func EUC2D(p, q Coordinate) int {
	return int(CalculateEuclideanDistance(p.X, p.Y, q.X, q.Y) + 0.5)
}
