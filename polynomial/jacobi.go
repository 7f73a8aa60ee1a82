package polynomial

import (
	"github.com/king-tvlip/ngsolve/autodiff"
)

// JacobiAlphaMult fills out[j] = P_j^(alpha,0)(x)*c for j = 0..n. The alpha
// parameter varies along the collapsed-coordinate recursion of the interior
// tetrahedral basis; beta is always zero for this family.
func JacobiAlphaMult(n int, alpha float64, x, c autodiff.Dual2, out []autodiff.Dual2) {
	if n < 0 {
		return
	}
	checkLen("JacobiAlphaMult", n+1, len(out))
	out[0] = c
	if n == 0 {
		return
	}
	// P_1 = ((alpha+2) x + alpha)/2
	out[1] = x.Scale(alpha + 2).AddScalar(alpha).Scale(0.5).Mul(c)
	for j := 2; j <= n; j++ {
		var (
			fj = float64(j)
			a1 = 2 * fj * (fj + alpha) * (2*fj + alpha - 2)
			a2 = (2*fj + alpha - 1) * alpha * alpha
			a3 = (2*fj + alpha - 1) * (2*fj + alpha) * (2*fj + alpha - 2)
			a4 = 2 * (fj + alpha - 1) * (fj - 1) * (2*fj + alpha)
		)
		// a1 P_j = (a3 x + a2) P_{j-1} - a4 P_{j-2}
		out[j] = x.Scale(a3).AddScalar(a2).Mul(out[j-1]).Sub(out[j-2].Scale(a4)).Scale(1 / a1)
	}
}

// JacobiAlphaScaledSeq pushes (j, t^j P_j^(alpha,0)(x/t)*c) for j = 0..n in
// order. A negative n pushes nothing.
func JacobiAlphaScaledSeq(n int, alpha float64, x, t, c autodiff.Dual2,
	emit func(j int, val autodiff.Dual2)) {
	if n < 0 {
		return
	}
	tt := t.Mul(t)
	pm1 := c
	emit(0, pm1)
	if n == 0 {
		return
	}
	p := x.Scale(alpha + 2).Add(t.Scale(alpha)).Scale(0.5).Mul(c)
	emit(1, p)
	for j := 2; j <= n; j++ {
		var (
			fj = float64(j)
			a1 = 2 * fj * (fj + alpha) * (2*fj + alpha - 2)
			a2 = (2*fj + alpha - 1) * alpha * alpha
			a3 = (2*fj + alpha - 1) * (2*fj + alpha) * (2*fj + alpha - 2)
			a4 = 2 * (fj + alpha - 1) * (fj - 1) * (2*fj + alpha)
		)
		// homogenized: a1 P_j = (a3 x + a2 t) P_{j-1} - a4 t^2 P_{j-2}
		pm1, p = p, x.Scale(a3).Add(t.Scale(a2)).Mul(p).Sub(tt.Mul(pm1).Scale(a4)).Scale(1/a1)
		emit(j, p)
	}
}
