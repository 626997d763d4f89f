// File: engine.go
// Role: Deletion–contraction driver with an explicit work stack.
//
// Rationale (succinct):
//  1. T(G) = T(G−e) + T(G/e) for a free edge e, and T(G) = x^b · y^l when
//     every edge is one of b bridges or l loops. Unrolled, T(G) is the sum
//     of the leaf monomials of the computation tree, so the driver pops a
//     graph, either adds its monomial to an accumulator or pushes its two
//     children. No call-stack recursion, no intermediate polynomials.
//  2. Graph views never mutate their input, so children are independent and
//     can be handed to other workers (parallel.go).
//  3. The budget counter is shared (atomic) so it bounds the whole tree,
//     not each worker.
//
// Determinism:
//   - With one worker, nodes are processed in a fixed order (deletion child
//     first). The polynomial is independent of order and worker count.

package tutte

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/dfs"
	"github.com/katalvlaran/tutte/polynomial"
)

// engine holds the configuration and shared counters of one Compute call.
type engine struct {
	opts   Options
	nodes  atomic.Int64
	leaves atomic.Int64
	maxStk atomic.Int64
}

// Compute returns the Tutte polynomial of the undirected multigraph g.
//
// Errors:
//   - ErrGraphNil, ErrUnsupportedGraphKind (directed g), ErrOptionViolation.
//   - ErrResourceExhausted when more than NodeBudget nodes are needed.
//   - ctx.Err() (wrapped) on cancellation or deadline.
//
// No partial result is returned on error. g is not modified.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*polynomial.Polynomial, error) {
	p, _, err := ComputeWithStats(ctx, g, opts...)

	return p, err
}

// ComputeWithStats is Compute that also reports work statistics. Stats are
// filled in on error as well, describing the work done before aborting.
func ComputeWithStats(ctx context.Context, g *core.Graph, opts ...Option) (*polynomial.Polynomial, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrGraphNil
	}
	if g.Directed() {
		return nil, Stats{}, ErrUnsupportedGraphKind
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, Stats{}, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := &engine{opts: o}
	log := o.Logger.WithValues("vertices", g.VertexCount(), "edges", g.EdgeCount(), "workers", o.Workers)
	log.V(1).Info("tutte computation started")
	start := time.Now()

	var (
		p   *polynomial.Polynomial
		err error
	)
	if o.Workers > 1 {
		p, err = e.runParallel(ctx, g)
	} else {
		acc := polynomial.NewAccumulator()
		err = e.run(ctx, []*core.Graph{g}, acc)
		if err == nil {
			p = acc.Polynomial()
		}
	}

	stats := Stats{
		Nodes:    e.nodes.Load(),
		Leaves:   e.leaves.Load(),
		MaxStack: int(e.maxStk.Load()),
		Elapsed:  time.Since(start),
	}
	if err != nil {
		log.V(1).Info("tutte computation aborted", "nodes", stats.Nodes, "error", err.Error())
		return nil, stats, err
	}
	log.V(1).Info("tutte computation finished", "nodes", stats.Nodes, "leaves", stats.Leaves,
		"terms", p.Len(), "elapsed", stats.Elapsed)

	return p, stats, nil
}

// run drains a work stack seeded with roots, adding leaf monomials to acc.
func (e *engine) run(ctx context.Context, roots []*core.Graph, acc *polynomial.Accumulator) error {
	stack := arraystack.New()
	for _, r := range roots {
		stack.Push(r)
	}
	for !stack.Empty() {
		e.observeStack(stack.Size())
		top, _ := stack.Pop()
		children, err := e.step(ctx, top.(*core.Graph), acc)
		if err != nil {
			return err
		}
		// contraction pushed first so the deletion child is processed next
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(children[i])
		}
	}

	return nil
}

// step processes one node: a leaf adds x^b y^l to acc and returns no
// children; an internal node returns [G−e, G/e].
func (e *engine) step(ctx context.Context, g *core.Graph, acc *polynomial.Accumulator) ([]*core.Graph, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("tutte: Compute: %w", ctx.Err())
	default:
	}
	n := e.nodes.Add(1)
	if e.opts.NodeBudget > 0 && n > e.opts.NodeBudget {
		return nil, fmt.Errorf("%w: more than %d nodes", ErrResourceExhausted, e.opts.NodeBudget)
	}

	c, err := dfs.Classify(g)
	if err != nil {
		return nil, fmt.Errorf("tutte: Classify: %w", err)
	}
	if c.IsBase() {
		acc.AddMonomial(len(c.Bridges), len(c.Loops))
		e.leaves.Add(1)
		e.opts.OnLeaf(len(c.Bridges), len(c.Loops))
		return nil, nil
	}

	eid := e.opts.EdgeOrder(c.Free)
	if !contains(c.Free, eid) {
		return nil, fmt.Errorf("%w: %q", ErrBadEdgeChoice, eid)
	}
	e.opts.OnExpand(g, eid)
	e.opts.Logger.V(2).Info("expand", "edge", eid, "free", len(c.Free), "node", n)

	del, err := core.DeleteEdge(g, eid)
	if err != nil {
		return nil, fmt.Errorf("tutte: DeleteEdge: %w", err)
	}
	con, err := core.ContractEdge(g, eid)
	if err != nil {
		return nil, fmt.Errorf("tutte: ContractEdge: %w", err)
	}

	return []*core.Graph{del, con}, nil
}

// observeStack records the high-water mark of a worker's stack.
func (e *engine) observeStack(size int) {
	for {
		cur := e.maxStk.Load()
		if int64(size) <= cur || e.maxStk.CompareAndSwap(cur, int64(size)) {
			return
		}
	}
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}
