package runner

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/tutte/builder"
	"github.com/katalvlaran/tutte/core"
	"github.com/katalvlaran/tutte/polynomial"
)

// Evaluation domains.
const (
	DomainInt   = "int"
	DomainRat   = "rat"
	DomainFloat = "float"
)

// ErrBadValue marks an unparsable evaluation point or unknown domain.
var ErrBadValue = errors.New("runner: bad evaluation value")

// Evaluator parses x and y in the requested domain and returns a function
// rendering p(x, y).
func Evaluator(domain, xs, ys string) (func(*polynomial.Polynomial) string, error) {
	if xs == "" || ys == "" {
		return nil, fmt.Errorf("%w: x and y are required", ErrBadValue)
	}
	switch domain {
	case DomainInt:
		x, errX := strconv.ParseInt(xs, 10, 64)
		y, errY := strconv.ParseInt(ys, 10, 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: x=%q y=%q are not int64", ErrBadValue, xs, ys)
		}
		return func(p *polynomial.Polynomial) string { return polynomial.EvalInt(p, x, y).String() }, nil
	case DomainRat:
		x, okX := new(big.Rat).SetString(xs)
		y, okY := new(big.Rat).SetString(ys)
		if !okX || !okY {
			return nil, fmt.Errorf("%w: x=%q y=%q are not rationals", ErrBadValue, xs, ys)
		}
		return func(p *polynomial.Polynomial) string { return polynomial.EvalRat(p, x, y).RatString() }, nil
	case DomainFloat:
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: x=%q y=%q are not floats", ErrBadValue, xs, ys)
		}
		return func(p *polynomial.Polynomial) string {
			return strconv.FormatFloat(polynomial.EvalFloat(p, x, y), 'g', -1, 64)
		}, nil
	default:
		return nil, fmt.Errorf("%w: domain %q (want int, rat or float)", ErrBadValue, domain)
	}
}

// ErrBadArgs marks a family invocation with non-integer parameters.
var ErrBadArgs = errors.New("runner: bad family arguments")

// BuildArgs builds a graph from command-line style arguments: the family
// name followed by its integer parameters, e.g. ["grid", "3", "4"]. The
// runner's size caps apply.
func (r *Runner) BuildArgs(args []string) (*core.Graph, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: family name required (one of %v)", ErrBadArgs, builder.Families())
	}
	params := make([]int, 0, len(args)-1)
	for _, raw := range args[1:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadArgs, raw)
		}
		params = append(params, v)
	}

	return r.Build(args[0], params)
}
