package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDual2Polynomial(t *testing.T) {
	var (
		tol  = 1.e-12
		x, y = 0.7, 0.3
	)
	X := NewVariable(x, 0)
	Y := NewVariable(y, 1)
	// g = x^2 y + 3 x y^2
	g := X.Mul(X).Mul(Y).Add(X.Mul(Y).Mul(Y).Scale(3))
	assert.InDelta(t, x*x*y+3*x*y*y, g.Value(), tol)
	assert.InDelta(t, 2*x*y+3*y*y, g.DValue(0), tol)
	assert.InDelta(t, x*x+6*x*y, g.DValue(1), tol)
	assert.InDelta(t, 2*y, g.DDValue(0, 0), tol)
	assert.InDelta(t, 6*x, g.DDValue(1, 1), tol)
	assert.InDelta(t, 2*x+6*y, g.DDValue(0, 1), tol)
	assert.InDelta(t, g.DDValue(0, 1), g.DDValue(1, 0), tol)
}

func TestDual2Division(t *testing.T) {
	var (
		tol  = 1.e-12
		x, y = 0.4, 0.25
	)
	X := NewVariable(x, 0)
	Y := NewVariable(y, 1)
	// h = x / (1+y)
	h := X.Div(Y.AddScalar(1))
	d := 1 + y
	assert.InDelta(t, x/d, h.Value(), tol)
	assert.InDelta(t, 1/d, h.DValue(0), tol)
	assert.InDelta(t, -x/(d*d), h.DValue(1), tol)
	assert.InDelta(t, 0., h.DDValue(0, 0), tol)
	assert.InDelta(t, -1/(d*d), h.DDValue(0, 1), tol)
	assert.InDelta(t, 2*x/(d*d*d), h.DDValue(1, 1), tol)
}

func TestDual2Seeding(t *testing.T) {
	var (
		tol = 1.e-12
	)
	// Constants carry no derivatives
	c := NewConstant(2.5)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0., c.DValue(i), tol)
	}
	// A prescribed gradient survives products against constants
	f := NewFromGradient(1.5, [3]float64{0.5, -1, 2})
	p := f.Mul(c)
	assert.InDelta(t, 3.75, p.Value(), tol)
	assert.InDelta(t, 1.25, p.DValue(0), tol)
	assert.InDelta(t, -2.5, p.DValue(1), tol)
	assert.InDelta(t, 5., p.DValue(2), tol)
	// Second derivatives of a product of two linear fields
	q := f.Mul(f)
	assert.InDelta(t, 2*0.5*-1, q.DDValue(0, 1), tol)
	assert.InDelta(t, 2*2*2, q.DDValue(2, 2), tol)
}
