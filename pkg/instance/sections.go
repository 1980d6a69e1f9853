package instance

import (
	"strconv"
	"strings"

	da "github.com/lintang-b-s/cvrp/pkg/datastructure"
	"github.com/lintang-b-s/cvrp/pkg/geo"
)

// triangleScanner reads the lower triangle of EDGE_WEIGHT_SECTION, row 1..n-1 and
// col 0..row-1, as one integer stream. Tokens may be split over lines in any way.
// The matrix is allocated by the first scan, once the section has actually started.
type triangleScanner struct {
	n        int
	costs    *da.CostMatrix
	row, col int
	read     int
}

func newTriangleScanner(n int) *triangleScanner {
	return &triangleScanner{n: n, row: 1}
}

func (ts *triangleScanner) expected() int {
	return ts.n * (ts.n - 1) / 2
}

func (ts *triangleScanner) complete() bool {
	return ts.row >= ts.n
}

// matrix returns the costs read so far, allocating the matrix if nothing was scanned.
func (ts *triangleScanner) matrix() *da.CostMatrix {
	if ts.costs == nil {
		ts.costs = da.NewCostMatrix(ts.n)
	}
	return ts.costs
}

// scan consumes the integers on line. A token that is not an integer ends the line;
// tokens left after the triangle is complete are ignored.
func (ts *triangleScanner) scan(line string) {
	costs := ts.matrix()
	for _, token := range strings.Fields(line) {
		if ts.complete() {
			return
		}
		val, err := strconv.Atoi(token)
		if err != nil {
			return
		}
		costs.SetSymmetric(ts.row, ts.col, val)
		ts.read++
		ts.col++
		if ts.col == ts.row {
			ts.row++
			ts.col = 0
		}
	}
}

// parseCoordRecord parses "<index> <x> <y>". The index is checked but discarded.
func parseCoordRecord(line string) (geo.Coordinate, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return geo.Coordinate{}, false
	}
	if _, err := strconv.Atoi(tokens[0]); err != nil {
		return geo.Coordinate{}, false
	}
	x, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return geo.Coordinate{}, false
	}
	y, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return geo.Coordinate{}, false
	}
	return geo.NewCoordinate(x, y), true
}

// parseDemandRecord parses "<index> <demand>". The index is checked but discarded.
func parseDemandRecord(line string) (float64, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return 0, false
	}
	if _, err := strconv.Atoi(tokens[0]); err != nil {
		return 0, false
	}
	demand, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return 0, false
	}
	return demand, true
}

// DeriveEUC2DCosts fills costs with the EUC_2D distance of every pair of distinct
// nodes. The diagonal is left untouched.
func DeriveEUC2DCosts(coords []geo.Coordinate, costs *da.CostMatrix) {
	n := len(coords)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			costs.SetSymmetric(i, j, geo.EUC2D(coords[i], coords[j]))
		}
	}
}
