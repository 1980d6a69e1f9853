package instance

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/cvrp/pkg"
	da "github.com/lintang-b-s/cvrp/pkg/datastructure"
	"github.com/lintang-b-s/cvrp/pkg/geo"
	"github.com/lintang-b-s/cvrp/pkg/util"
	"go.uber.org/zap"
)

type loadState uint8

const (
	seekHeader loadState = iota
	seekMatrix
	seekCoords
	seekDemand
	done
)

func (s loadState) String() string {
	switch s {
	case seekHeader:
		return "SeekHeader"
	case seekMatrix:
		return "SeekMatrix"
	case seekCoords:
		return "SeekCoords"
	case seekDemand:
		return "SeekDemand"
	default:
		return "Done"
	}
}

type Loader struct {
	log     *zap.Logger
	dataDir string
}

// NewLoader returns a Loader that resolves instance names against dataDir.
func NewLoader(log *zap.Logger, dataDir string) *Loader {
	return &Loader{
		log:     log,
		dataDir: dataDir,
	}
}

func (l *Loader) DataDir() string {
	return l.dataDir
}

// InstancePath returns the .vrp path an instance name resolves to.
func (l *Loader) InstancePath(name string) string {
	return util.BuildInstancePath(l.dataDir, name)
}

// LoadByName loads {dataDir}/{name}.vrp.
func (l *Loader) LoadByName(name string) (*Instance, error) {
	return l.LoadFile(l.InstancePath(name))
}

func (l *Loader) LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newFileNotFoundError(path, err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load parses one instance from r in a single pass. path is only used to name the
// instance and in errors.
func (l *Loader) Load(r io.Reader, path string) (*Instance, error) {
	p := &instanceParser{
		br:   bufio.NewReader(r),
		path: path,
	}

	for p.state != done {
		line, err := util.ReadLine(p.br)
		if errors.Is(err, io.EOF) {
			return nil, p.endOfInput()
		} else if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "reading %s", path)
		}
		if err := p.step(line); err != nil {
			return nil, err
		}
	}

	var costs *da.CostMatrix
	switch pkg.GetEdgeWeightType(p.header.EdgeWeightType) {
	case pkg.EXPLICIT:
		costs = p.triangle.matrix()
	case pkg.EUC_2D:
		costs = da.NewCostMatrix(p.header.NodeCount)
		DeriveEUC2DCosts(p.coords, costs)
	default:
		costs = da.NewCostMatrix(p.header.NodeCount)
		l.log.Warn("unsupported edge weight type, cost matrix left zero",
			zap.String("path", path), zap.String("edge_weight_type", p.header.EdgeWeightType))
	}

	l.log.Debug("loaded CVRP instance", zap.String("path", path),
		zap.Int("dimension", p.header.NodeCount), zap.Int("capacity", p.header.VehicleCapacity),
		zap.String("edge_weight_type", p.header.EdgeWeightType))

	return NewInstance(instanceName(path), p.header.NodeCount, p.header.VehicleCapacity,
		p.header.EdgeWeightType, p.demand, costs), nil
}

func instanceName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), pkg.INSTANCE_FILE_EXT)
}

// instanceParser is the state of one Load call. Every state skips lines until its
// section marker shows up, so unrelated lines between sections are never an error.
// Tables grow as records arrive; DIMENSION alone never sizes an allocation.
type instanceParser struct {
	br    *bufio.Reader
	path  string
	state loadState

	headerScanner headerScanner
	header        Header

	inSection bool
	triangle  *triangleScanner
	filled    int

	coords []geo.Coordinate
	demand []float64
}

func (p *instanceParser) step(line string) error {
	switch p.state {
	case seekHeader:
		return p.stepHeader(line)
	case seekMatrix:
		p.stepMatrix(line)
	case seekCoords:
		p.stepCoords(line)
	case seekDemand:
		p.stepDemand(line)
	}
	return nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func (p *instanceParser) stepHeader(line string) error {
	if isBlank(line) {
		return nil
	}
	p.headerScanner.scan(line)
	if !p.headerScanner.complete() {
		return nil
	}

	p.header = p.headerScanner.header
	if fields := p.header.invalidFields(); len(fields) > 0 {
		return newMalformedHeaderError(p.path, fields)
	}

	if pkg.GetEdgeWeightType(p.header.EdgeWeightType) == pkg.EXPLICIT {
		p.triangle = newTriangleScanner(p.header.NodeCount)
		if !p.triangle.complete() {
			p.transition(seekMatrix)
			return nil
		}
	}
	p.transition(seekCoords)
	return nil
}

func (p *instanceParser) transition(next loadState) {
	p.state = next
	p.inSection = false
	p.filled = 0
}

// enterSection reports whether line is (or follows) the marker of the current section.
func (p *instanceParser) enterSection(line, marker string) bool {
	if p.inSection {
		return true
	}
	if strings.HasPrefix(line, marker) {
		p.inSection = true
	}
	return false
}

func (p *instanceParser) stepMatrix(line string) {
	if !p.enterSection(line, pkg.EDGE_WEIGHT_SECTION) || isBlank(line) {
		return
	}
	p.triangle.scan(line)
	if p.triangle.complete() {
		p.transition(seekCoords)
	}
}

func (p *instanceParser) stepCoords(line string) {
	if !p.enterSection(line, pkg.NODE_COORD_SECTION) || isBlank(line) {
		return
	}
	coord, ok := parseCoordRecord(line)
	if !ok {
		return
	}
	p.coords = append(p.coords, coord)
	p.filled++
	if p.filled == p.header.NodeCount {
		p.transition(seekDemand)
	}
}

func (p *instanceParser) stepDemand(line string) {
	if !p.enterSection(line, pkg.DEMAND_SECTION) || isBlank(line) {
		return
	}
	demand, ok := parseDemandRecord(line)
	if !ok {
		return
	}
	p.demand = append(p.demand, demand)
	p.filled++
	if p.filled == p.header.NodeCount {
		p.transition(done)
	}
}

// endOfInput maps running out of input in the current state to its error.
func (p *instanceParser) endOfInput() error {
	switch p.state {
	case seekHeader:
		return newMalformedHeaderError(p.path, p.headerScanner.missingFields())
	case seekMatrix:
		return newTruncatedSectionError(p.path, pkg.EDGE_WEIGHT_SECTION, p.triangle.expected(), p.triangle.read)
	case seekCoords:
		return newTruncatedSectionError(p.path, pkg.NODE_COORD_SECTION, p.header.NodeCount, p.filled)
	default:
		return newTruncatedSectionError(p.path, pkg.DEMAND_SECTION, p.header.NodeCount, p.filled)
	}
}
