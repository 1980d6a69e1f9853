package instance

import (
	"github.com/lintang-b-s/cvrp/pkg"
	da "github.com/lintang-b-s/cvrp/pkg/datastructure"
)

// Instance is one loaded CVRP problem. It owns its demand table and cost matrix
// and is never mutated after construction; accessors hand out copies.
type Instance struct {
	name           string
	numNodes       int
	capacity       int
	edgeWeightType string
	demand         []float64
	costs          *da.CostMatrix
}

// NewInstance takes ownership of demand and costs.
func NewInstance(name string, numNodes, capacity int, edgeWeightType string, demand []float64,
	costs *da.CostMatrix) *Instance {
	return &Instance{
		name:           name,
		numNodes:       numNodes,
		capacity:       capacity,
		edgeWeightType: edgeWeightType,
		demand:         demand,
		costs:          costs,
	}
}

func (inst *Instance) Name() string {
	return inst.name
}

func (inst *Instance) NumNodes() int {
	return inst.numNodes
}

func (inst *Instance) Capacity() int {
	return inst.capacity
}

func (inst *Instance) EdgeWeightType() string {
	return inst.edgeWeightType
}

func (inst *Instance) WeightType() pkg.EdgeWeightType {
	return pkg.GetEdgeWeightType(inst.edgeWeightType)
}

// CostsDefined reports whether the cost matrix was read or derived. Edge weight types
// other than EXPLICIT and EUC_2D are accepted but leave the matrix all zero.
func (inst *Instance) CostsDefined() bool {
	return inst.WeightType() != pkg.UNKNOWN_EDGE_WEIGHT
}

func (inst *Instance) Demand(node int) float64 {
	return inst.demand[node]
}

func (inst *Instance) Demands() []float64 {
	demand := make([]float64, len(inst.demand))
	copy(demand, inst.demand)
	return demand
}

func (inst *Instance) TotalDemand() float64 {
	total := 0.0
	for _, d := range inst.demand {
		total += d
	}
	return total
}

func (inst *Instance) Cost(from, to int) int {
	return inst.costs.Get(from, to)
}

func (inst *Instance) CostMatrix() *da.CostMatrix {
	return inst.costs.Clone()
}
