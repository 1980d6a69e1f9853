package instance

import (
	"context"

	"github.com/lintang-b-s/cvrp/pkg/concurrent"
	"github.com/lintang-b-s/cvrp/pkg/util"
	"go.uber.org/zap"
)

type BatchResult struct {
	Name     string
	Instance *Instance
	Err      error
}

type batchJob struct {
	index int
	name  string
}

type batchOutput struct {
	index  int
	result BatchResult
}

// LoadBatch loads independent instances by name with numWorkers goroutines. Results are
// in the order of names. Once ctx is done the remaining names are not loaded and their
// results carry ctx.Err().
func (l *Loader) LoadBatch(ctx context.Context, names []string, numWorkers int) []BatchResult {
	wp := concurrent.NewWorkerPool[batchJob, batchOutput](numWorkers, len(names))
	wp.Start(func(job batchJob) batchOutput {
		if util.StopConcurrentOperation(ctx) {
			return batchOutput{index: job.index, result: BatchResult{Name: job.name, Err: ctx.Err()}}
		}
		inst, err := l.LoadByName(job.name)
		if err != nil {
			l.log.Error("failed to load CVRP instance", zap.String("name", job.name), zap.Error(err))
		}
		return batchOutput{index: job.index, result: BatchResult{Name: job.name, Instance: inst, Err: err}}
	})

	for i, name := range names {
		wp.AddJob(batchJob{index: i, name: name})
	}
	wp.Close()
	wp.Wait()

	results := make([]BatchResult, len(names))
	for out := range wp.CollectResults() {
		results[out.index] = out.result
	}
	return results
}
