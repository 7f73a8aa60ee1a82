package hcurldiv

import (
	"github.com/king-tvlip/ngsolve/autodiff"
)

/*
Shape-function building blocks. Each block combines one to four
differentiable scalar fields into the closed-form tensor value of one basis
mode and its exact row-wise divergence. Blocks are stateless values; the
element assemblers construct them on the fly while enumerating modes.

Tensors are flattened row-major: 2D blocks fill 4 entries, 3D blocks 9.
*/

type tensorMode interface {
	Shape() []float64
	DivShape() []float64
}

/* ------------- edge basis functions, div-free -------------
   sigma(grad v) = Curl(grad v), with the 1D-to-2D curl operator */

type sigmaGradV struct {
	v autodiff.Dual2
}

func (b sigmaGradV) Shape() []float64 {
	return []float64{
		-b.v.DDValue(0, 1), b.v.DDValue(0, 0),
		-b.v.DDValue(1, 1), b.v.DDValue(0, 1),
	}
}

func (b sigmaGradV) DivShape() []float64 {
	return []float64{0, 0}
}

/* ------------- type 1 inner basis functions, div-free -------------
   sigma(grad(u)*v) = Curl(grad(u))*v + grad(u)*Curl(v) */

type sigmaGradUV struct {
	u, v autodiff.Dual2
}

func (b sigmaGradUV) Shape() []float64 {
	var (
		u, v = b.u, b.v
	)
	return []float64{
		-u.DDValue(1, 0)*v.Value() - v.DValue(1)*u.DValue(0),
		u.DDValue(0, 0)*v.Value() + v.DValue(0)*u.DValue(0),
		-u.DDValue(1, 1)*v.Value() - v.DValue(1)*u.DValue(1),
		u.DDValue(0, 1)*v.Value() + v.DValue(0)*u.DValue(1),
	}
}

func (b sigmaGradUV) DivShape() []float64 {
	return []float64{0, 0}
}

/* ------------- type 2 inner basis functions, NOT div-free -------------
   Curl(grad(u))*v - grad(u)*Curl(v) */

type curlGradUV struct {
	u, v autodiff.Dual2
}

func (b curlGradUV) Shape() []float64 {
	var (
		u, v = b.u, b.v
	)
	return []float64{
		-u.DDValue(1, 0)*v.Value() + v.DValue(1)*u.DValue(0),
		u.DDValue(0, 0)*v.Value() - v.DValue(0)*u.DValue(0),
		-u.DDValue(1, 1)*v.Value() + v.DValue(1)*u.DValue(1),
		u.DDValue(0, 1)*v.Value() - v.DValue(0)*u.DValue(1),
	}
}

func (b curlGradUV) DivShape() []float64 {
	var (
		uxx = b.u.DDValue(0, 0)
		uxy = b.u.DDValue(0, 1)
		uyy = b.u.DDValue(1, 1)
		vx  = b.v.DValue(0)
		vy  = b.v.DValue(1)
	)
	return []float64{
		-2 * (-uxx*vy + uxy*vx),
		-2 * (-uxy*vy + uyy*vx),
	}
}

/* ------------- type 3 inner basis functions, div-free -------------
   Curl( [grad(l1) l2 - l1 grad(l2)] * v ) */

type curlLamV struct {
	l1, l2, v autodiff.Dual2
}

func (b curlLamV) Shape() []float64 {
	var (
		l1, l2, v  = b.l1, b.l2, b.v
		lam1x      = l1.DValue(0)
		lam1y      = l1.DValue(1)
		lam1xx     = l1.DDValue(0, 0)
		lam1xy     = l1.DDValue(1, 0)
		lam1yx     = l1.DDValue(0, 1)
		lam1yy     = l1.DDValue(1, 1)
		lam2x      = l2.DValue(0)
		lam2y      = l2.DValue(1)
		lam2xx     = l2.DDValue(0, 0)
		lam2xy     = l2.DDValue(1, 0)
		lam2yx     = l2.DDValue(0, 1)
		lam2yy     = l2.DDValue(1, 1)
		vx, vy     = v.DValue(0), v.DValue(1)
		vv, w1, w2 = v.Value(), l1.Value(), l2.Value()
	)
	return []float64{
		vv*(-lam1yx*w2-lam1x*lam2y+lam2yx*w1+lam2x*lam1y) - (lam1x*w2-lam2x*w1)*vy,
		vv*(lam1xx*w2+lam1x*lam2x-lam2xx*w1-lam2x*lam1x) + (lam1x*w2-lam2x*w1)*vx,
		vv*(-lam1yy*w2-lam1y*lam2y+lam2yy*w1+lam2y*lam1y) - (lam1y*w2-lam2y*w1)*vy,
		vv*(lam1xy*w2+lam1y*lam2x-lam2xy*w1-lam2y*lam1x) + (lam1y*w2-lam2y*w1)*vx,
	}
}

func (b curlLamV) DivShape() []float64 {
	return []float64{0, 0}
}

/* ------------- curl-div bubble functions -------------
   sigma(u grad v) = Curl(u grad v) - tr(Curl(u grad v)) I */

type sigmaUGradV struct {
	u, v autodiff.Dual2
}

func (b sigmaUGradV) Shape() []float64 {
	var (
		u, v = b.u, b.v
		mix  = 0.5 * (u.DValue(1)*v.DValue(0) + u.DValue(0)*v.DValue(1))
	)
	return []float64{
		-u.Value()*v.DDValue(0, 1) - mix,
		u.DValue(0)*v.DValue(0) + u.Value()*v.DDValue(0, 0),
		-u.DValue(1)*v.DValue(1) - u.Value()*v.DDValue(1, 1),
		u.Value()*v.DDValue(1, 0) + mix,
	}
}

func (b sigmaUGradV) DivShape() []float64 {
	var (
		uxx, uyy, uxy = b.u.DDValue(0, 0), b.u.DDValue(1, 1), b.u.DDValue(0, 1)
		ux, uy        = b.u.DValue(0), b.u.DValue(1)
		vxx, vyy, vxy = b.v.DDValue(0, 0), b.v.DDValue(1, 1), b.v.DDValue(0, 1)
		vx, vy        = b.v.DValue(0), b.v.DValue(1)
	)
	return []float64{
		-0.5 * (-vx*uxy - uy*vxx + vxy*ux + vy*uxx),
		-0.5 * (vyy*ux + vy*uxy - vxy*uy - vx*uyy),
	}
}

/* ------------- edge basis functions, normal-tangential continuous -------------
   [(grad l1) o-times (rot-grad l2)] * scaled legendre.
   DivShape assumes the outer-product coefficient is piecewise constant,
   which holds for barycentric gradients on straight elements. */

type rotNT struct {
	l1, l2, v autodiff.Dual2
}

func (b rotNT) Shape() []float64 {
	var (
		vv       = b.v.Value()
		l1x, l1y = b.l1.DValue(0), b.l1.DValue(1)
		l2x, l2y = b.l2.DValue(0), b.l2.DValue(1)
	)
	return []float64{
		-vv * l1x * l2y, vv * l1x * l2x,
		-vv * l1y * l2y, vv * l1y * l2x,
	}
}

func (b rotNT) DivShape() []float64 {
	var (
		vx, vy   = b.v.DValue(0), b.v.DValue(1)
		l1x, l1y = b.l1.DValue(0), b.l1.DValue(1)
		l2x, l2y = b.l2.DValue(0), b.l2.DValue(1)
	)
	return []float64{
		-vx*l1x*l2y + vy*l1x*l2x,
		-vx*l1y*l2y + vy*l1y*l2x,
	}
}

/* ------------- face basis functions, normal-tangential continuous -------------
   [(grad l1) o-times (grad l2 x grad l3)] * legendre, with the same
   piecewise-constant coefficient assumption in DivShape. */

type crossNT struct {
	l1, l2, l3, v autodiff.Dual2
}

func (b crossNT) cross() (c [3]float64) {
	var (
		l2, l3 = b.l2, b.l3
	)
	c[0] = l2.DValue(1)*l3.DValue(2) - l2.DValue(2)*l3.DValue(1)
	c[1] = -(l2.DValue(0)*l3.DValue(2) - l2.DValue(2)*l3.DValue(0))
	c[2] = l2.DValue(0)*l3.DValue(1) - l2.DValue(1)*l3.DValue(0)
	return
}

func (b crossNT) Shape() []float64 {
	var (
		c     = b.cross()
		vv    = b.v.Value()
		sigma = make([]float64, 9)
	)
	for i := 0; i < 3; i++ {
		di := b.l1.DValue(i)
		sigma[i*3] = vv * di * c[0]
		sigma[i*3+1] = vv * di * c[1]
		sigma[i*3+2] = vv * di * c[2]
	}
	return sigma
}

func (b crossNT) DivShape() []float64 {
	var (
		c   = b.cross()
		gv  = b.v.DValue(0)*c[0] + b.v.DValue(1)*c[1] + b.v.DValue(2)*c[2]
		div = make([]float64, 3)
	)
	for i := 0; i < 3; i++ {
		div[i] = gv * b.l1.DValue(i)
	}
	return div
}

/* ------------- identity inner bubble -------------
   I * v; the normal-tangential trace vanishes in the interior pairing. */

type identityV struct {
	v   autodiff.Dual2
	dim int
}

func (b identityV) Shape() []float64 {
	s := make([]float64, b.dim*b.dim)
	for i := 0; i < b.dim; i++ {
		s[i*(b.dim+1)] = b.v.Value()
	}
	return s
}

func (b identityV) DivShape() []float64 {
	d := make([]float64, b.dim)
	for i := 0; i < b.dim; i++ {
		d[i] = b.v.DValue(i)
	}
	return d
}
