package usecases

import (
	"github.com/lintang-b-s/cvrp/pkg/instance"
)

type InstanceLoader interface {
	LoadByName(name string) (*instance.Instance, error)
}
