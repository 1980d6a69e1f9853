package controllers

import (
	"github.com/lintang-b-s/cvrp/pkg/instance"
)

type instanceRequest struct {
	Name string `json:"name" validate:"required,max=128,excludesall=/\\"`
}

type costRequest struct {
	Name string `json:"name" validate:"required,max=128,excludesall=/\\"`
	From int    `json:"from" validate:"min=0"`
	To   int    `json:"to" validate:"min=0"`
}

type instanceResponse struct {
	Name           string    `json:"name"`
	Dimension      int       `json:"dimension"`
	Capacity       int       `json:"capacity"`
	EdgeWeightType string    `json:"edge_weight_type"`
	CostsDefined   bool      `json:"costs_defined"`
	TotalDemand    float64   `json:"total_demand"`
	Demands        []float64 `json:"demands"`
}

func NewInstanceResponse(inst *instance.Instance) instanceResponse {
	return instanceResponse{
		Name:           inst.Name(),
		Dimension:      inst.NumNodes(),
		Capacity:       inst.Capacity(),
		EdgeWeightType: inst.EdgeWeightType(),
		CostsDefined:   inst.CostsDefined(),
		TotalDemand:    inst.TotalDemand(),
		Demands:        inst.Demands(),
	}
}

type costMatrixResponse struct {
	Name      string  `json:"name"`
	Dimension int     `json:"dimension"`
	Costs     [][]int `json:"costs"`
}

func NewCostMatrixResponse(inst *instance.Instance) costMatrixResponse {
	return costMatrixResponse{
		Name:      inst.Name(),
		Dimension: inst.NumNodes(),
		Costs:     inst.CostMatrix().Rows(),
	}
}

type costResponse struct {
	From int `json:"from"`
	To   int `json:"to"`
	Cost int `json:"cost"`
}

func NewCostResponse(from, to, cost int) costResponse {
	return costResponse{
		From: from,
		To:   to,
		Cost: cost,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
