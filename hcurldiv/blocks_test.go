package hcurldiv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/king-tvlip/ngsolve/autodiff"
)

// blockAt builds one tensor block from the coordinate duals at a 2D point.
type blockAt func(x, y autodiff.Dual2) tensorMode

// checkBlockDivergenceFD verifies a block's closed-form divergence against
// central differences of its shape entries.
func checkBlockDivergenceFD(t *testing.T, build blockAt, ip []float64) {
	var (
		h    = 1.e-5
		seed = func(p []float64) tensorMode {
			return build(autodiff.NewVariable(p[0], 0), autodiff.NewVariable(p[1], 1))
		}
		div = seed(ip).DivShape()
		fd  = make([]float64, 2)
	)
	for j := 0; j < 2; j++ {
		ipp := append([]float64{}, ip...)
		ipm := append([]float64{}, ip...)
		ipp[j] += h
		ipm[j] -= h
		sp := seed(ipp).Shape()
		sm := seed(ipm).Shape()
		for i := 0; i < 2; i++ {
			fd[i] += (sp[i*2+j] - sm[i*2+j]) / (2 * h)
		}
	}
	assert.True(t, nearVec(div, fd, 1.e-6))
}

func TestRotNTDivergence(t *testing.T) {
	// linear coefficient fields, arbitrary polynomial weight
	build := func(x, y autodiff.Dual2) tensorMode {
		var (
			one = autodiff.NewConstant(1)
			l1  = x
			l2  = one.Sub(x).Sub(y)
			v   = x.Mul(y).Mul(x.Scale(2).AddScalar(-1))
		)
		return rotNT{l1, l2, v}
	}
	checkBlockDivergenceFD(t, build, []float64{0.3, 0.2})
	checkBlockDivergenceFD(t, build, []float64{0.6, 0.1})
}

func TestSigmaUGradVDivergence(t *testing.T) {
	build := func(x, y autodiff.Dual2) tensorMode {
		var (
			u = x.Mul(x).Mul(y)
			v = x.Mul(y).Add(y.Mul(y).Mul(x))
		)
		return sigmaUGradV{u, v}
	}
	checkBlockDivergenceFD(t, build, []float64{0.3, 0.2})
	checkBlockDivergenceFD(t, build, []float64{0.15, 0.55})
}
