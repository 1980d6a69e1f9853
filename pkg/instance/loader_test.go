package instance

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lintang-b-s/cvrp/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const euc2dInstance = `NAME : rect-4
COMMENT : four corners of a 4x3 rectangle
TYPE : CVRP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
CAPACITY : 50
NODE_COORD_SECTION
1 0 0
2 0 3
3 4 0
4 4 3
DEMAND_SECTION
1 0
2 2
3 3
4 1
DEPOT_SECTION
1
-1
EOF
`

const explicitInstance = `NAME : tri-3
TYPE : CVRP
DIMENSION : 3
CAPACITY : 10
EDGE_WEIGHT_TYPE : EXPLICIT
EDGE_WEIGHT_FORMAT : LOWER_ROW
EDGE_WEIGHT_SECTION
7
9 2
NODE_COORD_SECTION
1 0 0
2 1 1
3 2 2
DEMAND_SECTION
1 0
2 4
3 5
`

func newTestLoader() *Loader {
	return NewLoader(zap.NewNop(), "")
}

func load(t *testing.T, content string) (*Instance, error) {
	t.Helper()
	return newTestLoader().Load(strings.NewReader(content), "test.vrp")
}

func TestLoadEUC2D(t *testing.T) {
	inst, err := load(t, euc2dInstance)
	require.NoError(t, err)

	assert.Equal(t, 4, inst.NumNodes())
	assert.Equal(t, 50, inst.Capacity())
	assert.Equal(t, "EUC_2D", inst.EdgeWeightType())
	assert.Equal(t, "test", inst.Name())
	assert.True(t, inst.CostsDefined())
	assert.Equal(t, []float64{0, 2, 3, 1}, inst.Demands())
	assert.Equal(t, 6.0, inst.TotalDemand())

	want := [][]int{
		{0, 3, 4, 5},
		{3, 0, 5, 4},
		{4, 5, 0, 3},
		{5, 4, 3, 0},
	}
	assert.Equal(t, want, inst.CostMatrix().Rows())
}

func TestLoadExplicit(t *testing.T) {
	inst, err := load(t, explicitInstance)
	require.NoError(t, err)

	want := [][]int{
		{0, 7, 9},
		{7, 0, 2},
		{9, 2, 0},
	}
	assert.Equal(t, want, inst.CostMatrix().Rows())
	assert.Equal(t, []float64{0, 4, 5}, inst.Demands())
}

func TestLoadExplicitTokenLayout(t *testing.T) {
	header := "DIMENSION: 4\nCAPACITY: 9\nEDGE_WEIGHT_TYPE: EXPLICIT\n"
	tail := "NODE_COORD_SECTION\n1 0 0\n2 0 0\n3 0 0\n4 0 0\nDEMAND_SECTION\n1 0\n2 1\n3 1\n4 1\n"
	want := [][]int{
		{0, 1, 2, 4},
		{1, 0, 3, 5},
		{2, 3, 0, 6},
		{4, 5, 6, 0},
	}

	testCases := []struct {
		name     string
		triangle string
	}{
		{
			name:     "one row per line",
			triangle: "1\n2 3\n4 5 6\n",
		},
		{
			name:     "whole triangle on one line",
			triangle: "1 2 3 4 5 6\n",
		},
		{
			name:     "arbitrary split with blank lines",
			triangle: "1 2\n\n3 4\n   \n5\n6\n",
		},
		{
			name:     "unrelated lines before marker",
			triangle: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var body string
			if tt.triangle == "" {
				body = header + "EDGE_WEIGHT_FORMAT: LOWER_ROW\nDISPLAY_DATA_TYPE: NO_DISPLAY\nEDGE_WEIGHT_SECTION\n1\n2 3\n4 5 6\n" + tail
			} else {
				body = header + "EDGE_WEIGHT_SECTION\n" + tt.triangle + tail
			}
			inst, err := load(t, body)
			require.NoError(t, err)
			assert.Equal(t, want, inst.CostMatrix().Rows())
		})
	}
}

func TestCostMatrixSymmetricZeroDiagonal(t *testing.T) {
	for _, content := range []string{euc2dInstance, explicitInstance} {
		inst, err := load(t, content)
		require.NoError(t, err)
		costs := inst.CostMatrix()
		assert.True(t, costs.IsSymmetric())
		assert.True(t, costs.IsZeroDiagonal())
	}
}

func TestEUC2DRoundsHalfUp(t *testing.T) {
	content := `DIMENSION: 3
CAPACITY: 5
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 2.5 0
3 0 1.4
DEMAND_SECTION
1 0
2 1
3 1
`
	inst, err := load(t, content)
	require.NoError(t, err)

	assert.Equal(t, 3, inst.Cost(0, 1), "2.5 rounds up")
	assert.Equal(t, 1, inst.Cost(0, 2), "1.4 rounds down")
	// sqrt(2.5^2 + 1.4^2) = 2.865...
	assert.Equal(t, 3, inst.Cost(1, 2))
	assert.Equal(t, inst.Cost(1, 2), inst.Cost(2, 1))

	coords := []geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(2.5, 0), geo.NewCoordinate(0, 1.4)}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			d := math.Hypot(coords[i].X-coords[j].X, coords[i].Y-coords[j].Y)
			assert.Equal(t, int(math.Floor(d+0.5)), inst.Cost(i, j))
		}
	}
}

func TestRecordNoise(t *testing.T) {
	content := `DIMENSION: 3
CAPACITY: 20
EDGE_WEIGHT_TYPE: EUC_2D

NODE_COORD_SECTION

7 0 0
this line is not a record
3 3 4

1 6 8
DEMAND_SECTION
2
9 0

1 5
x y
5 7
`
	inst, err := load(t, content)
	require.NoError(t, err)

	assert.Len(t, inst.Demands(), 3)
	assert.Equal(t, []float64{0, 5, 7}, inst.Demands())
	assert.Equal(t, 5, inst.Cost(0, 1))
	assert.Equal(t, 10, inst.Cost(0, 2))
	assert.Equal(t, 5, inst.Cost(1, 2))
}

func TestHeaderForms(t *testing.T) {
	tail := "NODE_COORD_SECTION\n1 0 0\n2 3 4\nDEMAND_SECTION\n1 0\n2 1\n"

	testCases := []struct {
		name         string
		header       string
		wantCapacity int
	}{
		{
			name:         "colon with spaces",
			header:       "DIMENSION : 2\nCAPACITY : 15\nEDGE_WEIGHT_TYPE : EUC_2D\n",
			wantCapacity: 15,
		},
		{
			name:         "colon without spaces",
			header:       "DIMENSION:2\nCAPACITY:15\nEDGE_WEIGHT_TYPE:EUC_2D\n",
			wantCapacity: 15,
		},
		{
			name:         "no colon",
			header:       "DIMENSION 2\nCAPACITY 15\nEDGE_WEIGHT_TYPE EUC_2D\n",
			wantCapacity: 15,
		},
		{
			name:         "trailing garbage after integer",
			header:       "DIMENSION: 2 nodes\nCAPACITY: 15kg\nEDGE_WEIGHT_TYPE:   EUC_2D   \n",
			wantCapacity: 15,
		},
		{
			name:         "unknown headers and blank lines",
			header:       "NAME: x\n\nCOMMENT: (Augerat)\nDIMENSION: 2\nTYPE: CVRP\n\nCAPACITY: 15\nEDGE_WEIGHT_TYPE: EUC_2D\n",
			wantCapacity: 15,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := load(t, tt.header+tail)
			require.NoError(t, err)
			assert.Equal(t, 2, inst.NumNodes())
			assert.Equal(t, tt.wantCapacity, inst.Capacity())
			assert.Equal(t, "EUC_2D", inst.EdgeWeightType())
			assert.Equal(t, 5, inst.Cost(0, 1))
		})
	}
}

func TestMalformedHeader(t *testing.T) {
	tail := "NODE_COORD_SECTION\n1 0 0\n2 3 4\nDEMAND_SECTION\n1 0\n2 1\n"

	testCases := []struct {
		name       string
		content    string
		wantFields []string
	}{
		{
			name:       "missing dimension",
			content:    "CAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" + tail,
			wantFields: []string{"DIMENSION"},
		},
		{
			name:       "missing capacity",
			content:    "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\n" + tail,
			wantFields: []string{"CAPACITY"},
		},
		{
			name:       "missing edge weight type",
			content:    "DIMENSION: 2\nCAPACITY: 10\n" + tail,
			wantFields: []string{"EDGE_WEIGHT_TYPE"},
		},
		{
			name:       "zero dimension",
			content:    "DIMENSION: 0\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" + tail,
			wantFields: []string{"DIMENSION"},
		},
		{
			name:       "negative capacity",
			content:    "DIMENSION: 2\nCAPACITY: -3\nEDGE_WEIGHT_TYPE: EUC_2D\n" + tail,
			wantFields: []string{"CAPACITY"},
		},
		{
			name:       "non numeric dimension",
			content:    "DIMENSION: many\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" + tail,
			wantFields: []string{"DIMENSION"},
		},
		{
			name:       "empty edge weight type",
			content:    "DIMENSION: 2\nCAPACITY: 10\nEDGE_WEIGHT_TYPE:   \n" + tail,
			wantFields: []string{"EDGE_WEIGHT_TYPE"},
		},
		{
			name:       "dimension overflows the cost matrix",
			content:    "DIMENSION: 5000000000\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n",
			wantFields: []string{"DIMENSION"},
		},
		{
			name:       "dimension just past the matrix limit",
			content:    "DIMENSION: 3037000500\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n",
			wantFields: []string{"DIMENSION"},
		},
		{
			name:       "empty input",
			content:    "",
			wantFields: []string{"DIMENSION", "CAPACITY", "EDGE_WEIGHT_TYPE"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := load(t, tt.content)
			require.Error(t, err)
			assert.Nil(t, inst)
			assert.True(t, errors.Is(err, ErrMalformedHeader))
			assert.False(t, errors.Is(err, ErrTruncatedSection))

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "test.vrp", loadErr.Path)
			assert.Equal(t, tt.wantFields, loadErr.Fields)
			assert.Contains(t, err.Error(), "test.vrp")
		})
	}
}

func TestTruncatedSection(t *testing.T) {
	testCases := []struct {
		name         string
		content      string
		wantSection  string
		wantExpected int
		wantGot      int
	}{
		{
			name: "short coordinate section",
			content: "DIMENSION: 3\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" +
				"NODE_COORD_SECTION\n1 0 0\n2 1 1\n",
			wantSection:  "NODE_COORD_SECTION",
			wantExpected: 3,
			wantGot:      2,
		},
		{
			name: "demand records cannot fill coordinate slots",
			content: "DIMENSION: 3\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" +
				"NODE_COORD_SECTION\n1 0 0\nDEMAND_SECTION\n1 0\n2 1\n3 1\n",
			wantSection:  "NODE_COORD_SECTION",
			wantExpected: 3,
			wantGot:      1,
		},
		{
			name: "missing coordinate section",
			content: "DIMENSION: 3\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" +
				"DEMAND_SECTION\n1 0\n2 1\n3 1\n",
			wantSection:  "NODE_COORD_SECTION",
			wantExpected: 3,
			wantGot:      0,
		},
		{
			name: "short demand section",
			content: "DIMENSION: 3\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" +
				"NODE_COORD_SECTION\n1 0 0\n2 1 1\n3 2 2\nDEMAND_SECTION\n1 0\n\n2 4\n",
			wantSection:  "DEMAND_SECTION",
			wantExpected: 3,
			wantGot:      2,
		},
		{
			name: "short explicit triangle",
			content: "DIMENSION: 4\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
				"EDGE_WEIGHT_SECTION\n1\n2 3\n4\n",
			wantSection:  "EDGE_WEIGHT_SECTION",
			wantExpected: 6,
			wantGot:      4,
		},
		{
			name: "large dimension with one coordinate",
			content: "DIMENSION: 200000\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EUC_2D\n" +
				"NODE_COORD_SECTION\n1 0 0\n",
			wantSection:  "NODE_COORD_SECTION",
			wantExpected: 200000,
			wantGot:      1,
		},
		{
			name: "large explicit dimension without matrix",
			content: "DIMENSION: 40000\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
				"NODE_COORD_SECTION\n1 0 0\n",
			wantSection:  "EDGE_WEIGHT_SECTION",
			wantExpected: 40000 * 39999 / 2,
			wantGot:      0,
		},
		{
			name: "missing explicit section",
			content: "DIMENSION: 2\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
				"NODE_COORD_SECTION\n1 0 0\n2 1 1\nDEMAND_SECTION\n1 0\n2 1\n",
			wantSection:  "EDGE_WEIGHT_SECTION",
			wantExpected: 1,
			wantGot:      0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := load(t, tt.content)
			require.Error(t, err)
			assert.Nil(t, inst)
			assert.True(t, errors.Is(err, ErrTruncatedSection))

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.wantSection, loadErr.Section)
			assert.Equal(t, tt.wantExpected, loadErr.Expected)
			assert.Equal(t, tt.wantGot, loadErr.Got)
			assert.Equal(t, "test.vrp", loadErr.Path)
		})
	}
}

func TestUnknownEdgeWeightTypeLeavesZeroCosts(t *testing.T) {
	content := "DIMENSION: 2\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: CEIL_2D\n" +
		"NODE_COORD_SECTION\n1 0 0\n2 3 4\nDEMAND_SECTION\n1 0\n2 1\n"
	inst, err := load(t, content)
	require.NoError(t, err)

	assert.False(t, inst.CostsDefined())
	assert.True(t, inst.CostMatrix().IsZero())
	assert.Equal(t, "CEIL_2D", inst.EdgeWeightType())
}

func TestSingleNodeExplicit(t *testing.T) {
	content := "DIMENSION: 1\nCAPACITY: 10\nEDGE_WEIGHT_TYPE: EXPLICIT\n" +
		"NODE_COORD_SECTION\n1 0 0\nDEMAND_SECTION\n1 0\n"
	inst, err := load(t, content)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, inst.CostMatrix().Rows())
}

func TestInstanceOwnsBuffers(t *testing.T) {
	inst, err := load(t, euc2dInstance)
	require.NoError(t, err)

	demands := inst.Demands()
	demands[1] = 99
	assert.Equal(t, 2.0, inst.Demand(1))

	costs := inst.CostMatrix()
	costs.SetSymmetric(0, 1, 99)
	assert.Equal(t, 3, inst.Cost(0, 1))
}

func TestDeriveEUC2DDeterministic(t *testing.T) {
	first, err := load(t, euc2dInstance)
	require.NoError(t, err)
	second, err := load(t, euc2dInstance)
	require.NoError(t, err)
	assert.True(t, first.CostMatrix().Equal(second.CostMatrix()))
}

func TestLoadStopsAfterDemandSection(t *testing.T) {
	content := euc2dInstance + "DIMENSION: 9\nEDGE_WEIGHT_SECTION\ngarbage that is never read\n"
	inst, err := load(t, content)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.NumNodes())
}

func TestCRLFInput(t *testing.T) {
	inst, err := load(t, strings.ReplaceAll(explicitInstance, "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "EXPLICIT", inst.EdgeWeightType())
	assert.Equal(t, 2, inst.Cost(1, 2))
}
