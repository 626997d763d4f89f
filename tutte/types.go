// Package tutte defines options, statistics and sentinel errors for the
// deletion–contraction Tutte polynomial engine.
package tutte

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/tutte/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Compute.
	ErrGraphNil = errors.New("tutte: graph is nil")

	// ErrUnsupportedGraphKind indicates a directed graph; the Tutte
	// polynomial is defined for undirected multigraphs only.
	ErrUnsupportedGraphKind = errors.New("tutte: unsupported graph kind (directed)")

	// ErrResourceExhausted indicates that the node budget was exceeded.
	// No partial polynomial is returned.
	ErrResourceExhausted = errors.New("tutte: node budget exhausted")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("tutte: invalid option supplied")

	// ErrBadEdgeChoice indicates that a custom EdgeOrder returned an edge
	// that is not one of the free edges it was offered.
	ErrBadEdgeChoice = errors.New("tutte: edge order returned a non-free edge")
)

// EdgeChooser picks the edge to branch on from the free edges of one node,
// given in Edges() (creation) order. It must return one of them.
type EdgeChooser func(free []string) string

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// NodeBudget caps the number of classified nodes (internal and leaves).
	// 0 means unlimited.
	NodeBudget int64

	// Workers > 1 expands the top of the computation tree and sums the
	// independent subtrees concurrently. Default 1 (single-threaded).
	Workers int

	// EdgeOrder chooses the branching edge. Default: first free edge.
	// The resulting polynomial does not depend on the choice.
	EdgeOrder EdgeChooser

	// Logger receives V(1) start/finish and V(2) per-expansion records.
	Logger logr.Logger

	// OnExpand is called for every internal node with the chosen edge.
	// With Workers > 1 it may be called concurrently.
	OnExpand func(g *core.Graph, eid string)

	// OnLeaf is called for every base-case node with its bridge and loop
	// counts. With Workers > 1 it may be called concurrently.
	OnLeaf func(bridges, loops int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no budget, one worker, the
// first-free-edge rule, a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		NodeBudget: 0,
		Workers:    1,
		EdgeOrder:  FirstFree,
		Logger:     logr.Discard(),
		OnExpand:   func(*core.Graph, string) {},
		OnLeaf:     func(int, int) {},
	}
}

// FirstFree is the default EdgeChooser: the first free edge in creation order.
func FirstFree(free []string) string { return free[0] }

// LastFree chooses the most recently created free edge. Useful to check that
// results do not depend on the branching order.
func LastFree(free []string) string { return free[len(free)-1] }

// WithNodeBudget caps the number of classified nodes; n < 0 is invalid,
// n == 0 means unlimited.
func WithNodeBudget(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeBudget = n
	}
}

// WithWorkers sets the number of concurrent subtree workers (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithEdgeOrder installs a custom branching rule; nil keeps FirstFree.
func WithEdgeOrder(fn EdgeChooser) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeOrder = fn
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnExpand registers a callback for internal nodes; nil is ignored.
func WithOnExpand(fn func(g *core.Graph, eid string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnLeaf registers a callback for base-case nodes; nil is ignored.
func WithOnLeaf(fn func(bridges, loops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLeaf = fn
		}
	}
}

// Stats reports how much work one computation did.
type Stats struct {
	// Nodes is the number of classified graphs (internal nodes + leaves).
	Nodes int64
	// Leaves is the number of base-case graphs (monomials summed).
	Leaves int64
	// MaxStack is the largest explicit work-stack size seen by any worker.
	MaxStack int
	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration
}
