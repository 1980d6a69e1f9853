package controllers

import (
	"github.com/lintang-b-s/cvrp/pkg/instance"
)

type InstanceService interface {
	GetInstance(name string) (*instance.Instance, error)
	Cost(name string, from, to int) (int, error)
}
