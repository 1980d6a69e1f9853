package usecases

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/cvrp/pkg/instance"
	"github.com/lintang-b-s/cvrp/pkg/util"
	"go.uber.org/zap"
)

type InstanceService struct {
	log    *zap.Logger
	loader InstanceLoader
	cache  *lru.Cache[string, *instance.Instance]
}

// NewInstanceService keeps up to cacheSize loaded instances in memory.
func NewInstanceService(log *zap.Logger, loader InstanceLoader, cacheSize int) (*InstanceService, error) {
	cache, err := lru.New[string, *instance.Instance](cacheSize)
	if err != nil {
		return nil, err
	}
	return &InstanceService{
		log:    log,
		loader: loader,
		cache:  cache,
	}, nil
}

func (is *InstanceService) GetInstance(name string) (*instance.Instance, error) {
	if inst, ok := is.cache.Get(name); ok {
		return inst, nil
	}

	inst, err := is.loader.LoadByName(name)
	if err != nil {
		switch {
		case errors.Is(err, instance.ErrFileNotFound):
			return nil, util.WrapErrorf(err, util.ErrNotFound, "instance %s not found", name)
		case errors.Is(err, instance.ErrMalformedHeader), errors.Is(err, instance.ErrTruncatedSection):
			is.log.Warn("malformed CVRP instance", zap.String("name", name), zap.Error(err))
			return nil, util.WrapErrorf(err, util.ErrUnprocessable, "instance %s is malformed", name)
		default:
			is.log.Error("failed to load CVRP instance", zap.String("name", name), zap.Error(err))
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "failed to load instance %s", name)
		}
	}

	is.log.Info("loaded CVRP instance", zap.String("name", name), zap.Int("dimension", inst.NumNodes()),
		zap.Int("capacity", inst.Capacity()))
	is.cache.Add(name, inst)
	return inst, nil
}

// Cost returns the travel cost between two 0-based nodes of an instance.
func (is *InstanceService) Cost(name string, from, to int) (int, error) {
	inst, err := is.GetInstance(name)
	if err != nil {
		return 0, err
	}
	n := inst.NumNodes()
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput,
			"node index out of range: instance %s has %d nodes", name, n)
	}
	return inst.Cost(from, to), nil
}
