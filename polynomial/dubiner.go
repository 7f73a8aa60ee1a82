package polynomial

import (
	"github.com/king-tvlip/ngsolve/autodiff"
)

// DubinerDim returns the number of Dubiner basis members of total degree
// <= n on the triangle.
func DubinerDim(n int) int {
	return (n + 1) * (n + 2) / 2
}

// Dubiner fills out with the hierarchical orthogonal simplex basis of total
// degree <= n over the barycentric pair (x, y): block i holds the scaled
// Legendre member of degree i in the collapsed first coordinate multiplied
// by the Jacobi family P_j^(2i+1,0)(2y-1), j = 0..n-i. Block ordering is
// part of the facet DOF layout contract.
func Dubiner(n int, x, y autodiff.Dual2, out []autodiff.Dual2) {
	if n < 0 {
		return
	}
	checkLen("Dubiner", DubinerDim(n), len(out))
	var (
		xi  = x.Scale(2).Add(y).AddScalar(-1) // 2x+y-1
		eta = autodiff.NewConstant(1).Sub(y)  // 1-y
		y2  = y.Scale(2).AddScalar(-1)        // 2y-1
		ii  = 0
	)
	LegendreScaledSeq(n, xi, eta, func(i int, val autodiff.Dual2) {
		JacobiAlphaMult(n-i, float64(2*i+1), y2, val, out[ii:ii+n-i+1])
		ii += n - i + 1
	})
}
