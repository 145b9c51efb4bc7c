package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent run of a sweep. Each job needs its own Simulator:
// metrics carry per-run state.
type Job struct {
	Name   string
	Sim    *Simulator
	Init   State
	Config Config
}

// Sweep runs jobs concurrently, at most limit at a time (limit <= 0 means
// unbounded). The first failure cancels the remaining runs.
func Sweep(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			res, err := job.Sim.Run(gctx, job.Init, job.Config)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
