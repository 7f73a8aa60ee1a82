package polynomial

import (
	"github.com/king-tvlip/ngsolve/autodiff"
)

// IntegratedLegendreTrig fills out[j-2] = y^j L_j(x/y) for j = 2..n, the
// scaled integrated Legendre (monomial extension) family on the triangle.
// L_j is the integrated Legendre polynomial, L_j(1) = 0 for j >= 2, which
// makes these the edge-bubble generators of the interior basis. Fills n-1
// entries.
func IntegratedLegendreTrig(n int, x, y autodiff.Dual2, out []autodiff.Dual2) {
	if n < 2 {
		return
	}
	checkLen("IntegratedLegendreTrig", n-1, len(out))
	var (
		yy = y.Mul(y)
		p3 autodiff.Dual2
		p2 = autodiff.NewConstant(-1)
		p1 = x
	)
	for j := 2; j <= n; j++ {
		fj := float64(j)
		p3, p2 = p2, p1
		// j L_j = (2j-3) x L_{j-1} - (j-3) y^2 L_{j-2}
		p1 = x.Mul(p2).Scale((2*fj - 3) / fj).Sub(yy.Mul(p3).Scale((fj - 3) / fj))
		out[j-2] = p1
	}
}
