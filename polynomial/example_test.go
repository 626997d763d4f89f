package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/tutte/polynomial"
)

func ExamplePolynomial_String() {
	p := polynomial.MustFromTerms(
		polynomial.T(1, 0, 1),
		polynomial.T(2, 1, 1),
		polynomial.T(1, 3, 0),
	)
	fmt.Println(p)
	fmt.Println(polynomial.EvalInt(p, 2, 0))
	// Output:
	// x^3 + 2xy + y
	// 8
}
