package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/king-tvlip/ngsolve/autodiff"
)

func TestLegendreValues(t *testing.T) {
	var (
		tol = 1.e-12
		n   = 5
		out = make([]autodiff.Dual2, n+1)
	)
	for _, x := range []float64{-0.9, -0.3, 0.1, 0.62, 1} {
		X := autodiff.NewVariable(x, 0)
		Legendre(n, X, out)
		assert.InDelta(t, 1., out[0].Value(), tol)
		assert.InDelta(t, x, out[1].Value(), tol)
		assert.InDelta(t, 0.5*(3*x*x-1), out[2].Value(), tol)
		assert.InDelta(t, 0.5*(5*x*x*x-3*x), out[3].Value(), tol)
		// d/dx P_2 = 3x
		assert.InDelta(t, 3*x, out[2].DValue(0), tol)
	}
}

func TestLegendreScaledHomogeneity(t *testing.T) {
	var (
		tol    = 1.e-12
		n      = 6
		x, tt  = 0.35, 0.8
		scaled = make([]autodiff.Dual2, n+1)
		plain  = make([]autodiff.Dual2, n+1)
	)
	LegendreScaled(n, autodiff.NewConstant(x), autodiff.NewConstant(tt), scaled)
	Legendre(n, autodiff.NewConstant(x/tt), plain)
	for j := 0; j <= n; j++ {
		assert.InDelta(t, math.Pow(tt, float64(j))*plain[j].Value(), scaled[j].Value(), tol)
	}
	// Push-style emission matches the array fill, in order
	var jSeen int
	LegendreScaledSeq(n, autodiff.NewConstant(x), autodiff.NewConstant(tt),
		func(j int, val autodiff.Dual2) {
			assert.Equal(t, jSeen, j)
			assert.InDelta(t, scaled[j].Value(), val.Value(), tol)
			jSeen++
		})
	assert.Equal(t, n+1, jSeen)
}

func TestJacobiAlphaZeroIsLegendre(t *testing.T) {
	var (
		tol = 1.e-12
		n   = 6
		jac = make([]autodiff.Dual2, n+1)
		leg = make([]autodiff.Dual2, n+1)
	)
	for _, x := range []float64{-0.7, 0., 0.45, 0.9} {
		X := autodiff.NewVariable(x, 0)
		JacobiAlphaMult(n, 0, X, autodiff.NewConstant(1), jac)
		Legendre(n, X, leg)
		for j := 0; j <= n; j++ {
			assert.InDelta(t, leg[j].Value(), jac[j].Value(), tol)
			assert.InDelta(t, leg[j].DValue(0), jac[j].DValue(0), tol)
		}
	}
}

func TestJacobiAlphaEndpoint(t *testing.T) {
	// P_j^(alpha,0)(1) = binomial(j+alpha, j)
	var (
		tol = 1.e-10
		n   = 5
		out = make([]autodiff.Dual2, n+1)
	)
	for _, alpha := range []float64{1, 2, 3.5, 6} {
		JacobiAlphaMult(n, alpha, autodiff.NewConstant(1), autodiff.NewConstant(1), out)
		for j := 0; j <= n; j++ {
			binom := math.Gamma(float64(j)+alpha+1) /
				(math.Gamma(alpha+1) * math.Gamma(float64(j)+1))
			assert.InDelta(t, binom, out[j].Value(), tol*binom)
		}
	}
}

func TestJacobiAlphaScaledSeq(t *testing.T) {
	var (
		tol   = 1.e-12
		n     = 5
		alpha = 3.0
		x, tt = 0.3, 0.75
		ref   = make([]autodiff.Dual2, n+1)
	)
	JacobiAlphaMult(n, alpha, autodiff.NewConstant(x/tt), autodiff.NewConstant(1), ref)
	var jSeen int
	JacobiAlphaScaledSeq(n, alpha, autodiff.NewConstant(x), autodiff.NewConstant(tt),
		autodiff.NewConstant(1), func(j int, val autodiff.Dual2) {
			assert.InDelta(t, math.Pow(tt, float64(j))*ref[j].Value(), val.Value(), tol)
			jSeen++
		})
	assert.Equal(t, n+1, jSeen)
	// Negative degree emits nothing
	JacobiAlphaScaledSeq(-1, alpha, autodiff.NewConstant(x), autodiff.NewConstant(tt),
		autodiff.NewConstant(1), func(j int, val autodiff.Dual2) {
			t.Fatal("emitted for negative degree")
		})
}

func TestIntegratedLegendreTrig(t *testing.T) {
	var (
		tol = 1.e-12
		n   = 7
		out = make([]autodiff.Dual2, n-1)
		leg = make([]autodiff.Dual2, n)
	)
	x := 0.4
	X := autodiff.NewVariable(x, 0)
	one := autodiff.NewConstant(1)
	IntegratedLegendreTrig(n, X, one, out)
	// Lowest member is (x^2-y^2)/2
	assert.InDelta(t, 0.5*(x*x-1), out[0].Value(), tol)
	// d/dx L_j = P_{j-1} when the scaling coordinate is 1
	Legendre(n-1, X, leg)
	for j := 2; j <= n; j++ {
		assert.InDelta(t, leg[j-1].Value(), out[j-2].DValue(0), tol)
	}
	// L_j vanishes on x = y, the edge shared with the scaling coordinate
	xy := autodiff.NewConstant(0.55)
	IntegratedLegendreTrig(n, xy, xy, out)
	for j := 2; j <= n; j++ {
		assert.InDelta(t, 0., out[j-2].Value(), tol)
	}
}

func TestDubinerLayout(t *testing.T) {
	var (
		tol = 1.e-12
		n   = 4
		out = make([]autodiff.Dual2, DubinerDim(n))
	)
	assert.Equal(t, 15, DubinerDim(n))
	X := autodiff.NewVariable(0.2, 0)
	Y := autodiff.NewVariable(0.3, 1)
	Dubiner(n, X, Y, out)
	// First member is the constant 1
	assert.InDelta(t, 1., out[0].Value(), tol)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0., out[0].DValue(i), tol)
	}
	// All members are finite and carry finite derivatives
	for k := range out {
		assert.False(t, math.IsNaN(out[k].Value()))
		assert.False(t, math.IsNaN(out[k].DDValue(0, 1)))
	}
}
