// File: parallel.go
// Role: Branch parallelism across independent subtrees.
//
// The top of the computation tree is expanded breadth-first on the calling
// goroutine until there are enough pending subtrees (seedFactor per worker)
// or nothing is left to expand. Each pending subtree is then drained by
// run() on its own accumulator inside an errgroup limited to Workers
// goroutines; the partial sums are merged at the end. Addition commutes, so
// the result equals the sequential one.

package tutte

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/polynomial"
)

// seedFactor is the number of pending subtrees per worker before fan-out.
const seedFactor = 4

func (e *engine) runParallel(ctx context.Context, g *core.Graph) (*polynomial.Polynomial, error) {
	total := polynomial.NewAccumulator()

	// Stage 1: breadth-first seeding on the caller's goroutine.
	frontier := []*core.Graph{g}
	want := e.opts.Workers * seedFactor
	for len(frontier) > 0 && len(frontier) < want {
		head := frontier[0]
		frontier = frontier[1:]
		children, err := e.step(ctx, head, total)
		if err != nil {
			return nil, err
		}
		frontier = append(frontier, children...)
	}
	e.observeStack(len(frontier))

	// Stage 2: fan out.
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(e.opts.Workers)
	var mu sync.Mutex
	for _, sub := range frontier {
		sub := sub // per-iteration copy (go.mod targets Go 1.21)
		grp.Go(func() error {
			acc := polynomial.NewAccumulator()
			if err := e.run(gctx, []*core.Graph{sub}, acc); err != nil {
				return err
			}
			mu.Lock()
			total.Merge(acc.Polynomial())
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return total.Polynomial(), nil
}
