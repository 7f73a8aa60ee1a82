package polynomial

import (
	"fmt"

	"github.com/king-tvlip/ngsolve/autodiff"
)

/*
Hierarchical orthogonal polynomial families evaluated over second-order dual
numbers. Every evaluator here fills the sequence P_0..P_n by three-term
recurrence, so values, gradients and Hessians of the arguments propagate
exactly through each member of the family.
*/

func checkLen(name string, need, have int) {
	if have < need {
		err := fmt.Errorf("%s: output slice too short, need %d, have %d", name, need, have)
		panic(err)
	}
}

// Legendre fills out[j] = P_j(x) for j = 0..n.
func Legendre(n int, x autodiff.Dual2, out []autodiff.Dual2) {
	LegendreMult(n, x, autodiff.NewConstant(1), out)
}

// LegendreMult fills out[j] = P_j(x)*c for j = 0..n. The recurrence is
// linear, so premultiplying the seed values by c carries c through exactly.
func LegendreMult(n int, x, c autodiff.Dual2, out []autodiff.Dual2) {
	if n < 0 {
		return
	}
	checkLen("LegendreMult", n+1, len(out))
	out[0] = c
	if n == 0 {
		return
	}
	out[1] = x.Mul(c)
	for j := 1; j < n; j++ {
		fj := float64(j)
		// (j+1) P_{j+1} = (2j+1) x P_j - j P_{j-1}
		out[j+1] = x.Mul(out[j]).Scale(2*fj + 1).Sub(out[j-1].Scale(fj)).Scale(1 / (fj + 1))
	}
}

// LegendreScaled fills out[j] = t^j P_j(x/t), the scaled Legendre family
// used on simplex facets, for j = 0..n.
func LegendreScaled(n int, x, t autodiff.Dual2, out []autodiff.Dual2) {
	if n < 0 {
		return
	}
	checkLen("LegendreScaled", n+1, len(out))
	tt := t.Mul(t)
	out[0] = autodiff.NewConstant(1)
	if n == 0 {
		return
	}
	out[1] = x
	for j := 1; j < n; j++ {
		fj := float64(j)
		// (j+1) P_{j+1} = (2j+1) x P_j - j t^2 P_{j-1}
		out[j+1] = x.Mul(out[j]).Scale(2*fj + 1).Sub(tt.Mul(out[j-1]).Scale(fj)).Scale(1 / (fj + 1))
	}
}

// LegendreScaledSeq pushes (j, t^j P_j(x/t)) for j = 0..n in order. A
// negative n pushes nothing. Emission order is part of the DOF layout
// contract of the element assemblers.
func LegendreScaledSeq(n int, x, t autodiff.Dual2, emit func(j int, val autodiff.Dual2)) {
	if n < 0 {
		return
	}
	tt := t.Mul(t)
	pm1 := autodiff.NewConstant(1)
	emit(0, pm1)
	if n == 0 {
		return
	}
	p := x
	emit(1, p)
	for j := 1; j < n; j++ {
		fj := float64(j)
		pm1, p = p, x.Mul(p).Scale(2*fj+1).Sub(tt.Mul(pm1).Scale(fj)).Scale(1/(fj+1))
		emit(j+1, p)
	}
}
