package hcurldiv

import (
	"github.com/king-tvlip/ngsolve/autodiff"
	"github.com/king-tvlip/ngsolve/polynomial"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (el *Element) trigNDof() (ndof, order int) {
	for _, of := range el.OrderFacet {
		ndof += of + 1
		order = maxInt(order, of)
	}
	oi := el.OrderInner
	ninner := oi + 1 + 2*(oi+1)*oi
	order = maxInt(order, oi)
	if el.Plus {
		order++
		ninner += 2 * oi
	}
	ndof += ninner
	return
}

// trigModes enumerates the triangle basis in DOF-layout order: three edge
// blocks, then the type-1/type-2 interior pairs in two coordinate pairings,
// then the type-3 block, then (when enabled) the enrichment bubbles.
func (el *Element) trigModes(xy []autodiff.Dual2, emit func(mode tensorMode)) error {
	var (
		one = autodiff.NewConstant(1)
		x   = xy[0]
		y   = xy[1]
		lam = [3]autodiff.Dual2{x, y, one.Sub(x).Sub(y)}
		oi  = el.OrderInner
	)
	maxorderFacet := maxInt(el.OrderFacet[0], maxInt(el.OrderFacet[1], el.OrderFacet[2]))

	// Edge based basis functions for tangential-normal continuity. Edge
	// endpoints are put into ascending global-number order so that both
	// elements sharing an edge produce identical traces.
	ha := make([]autodiff.Dual2, maxorderFacet+1)
	for i := 0; i < 3; i++ {
		es, ee := TrigEdges[i][0], TrigEdges[i][1]
		if el.VNums[es] > el.VNums[ee] {
			es, ee = ee, es
		}
		ls, le := lam[es], lam[ee]
		polynomial.LegendreScaled(maxorderFacet, le.Sub(ls), le.Add(ls), ha)
		for l := 0; l <= el.OrderFacet[i]; l++ {
			emit(sigmaGradV{le.Mul(ls).Mul(ha[l])})
		}
	}

	// Interior modes use the fixed local triple (0,1,2), deliberately not
	// reordered by global numbers.
	var (
		ls = lam[0]
		le = lam[1]
		lt = lam[2]
		u  = make([]autodiff.Dual2, oi+2)
		v  = make([]autodiff.Dual2, oi+2)
	)

	polynomial.IntegratedLegendreTrig(oi+3, le.Sub(lt), one.Sub(le).Sub(lt), u)
	polynomial.LegendreMult(oi+1, ls.Scale(2).AddScalar(-1), ls, v)
	for i := 0; i <= oi-1; i++ {
		for j := 0; j+i <= oi-1; j++ {
			emit(sigmaGradUV{u[i], v[j]})
			emit(curlGradUV{u[i], v[j]})
		}
	}

	polynomial.IntegratedLegendreTrig(oi+3, le.Sub(ls), one.Sub(le).Sub(ls), u)
	polynomial.LegendreMult(oi+1, lt.Scale(2).AddScalar(-1), lt, v)
	for i := 0; i <= oi-1; i++ {
		for j := 0; j+i <= oi-1; j++ {
			emit(sigmaGradUV{u[i], v[j]})
			emit(curlGradUV{u[i], v[j]})
		}
	}

	polynomial.Legendre(oi, lt.Scale(2).AddScalar(-1), v)
	for i := 0; i <= oi; i++ {
		emit(curlLamV{le, ls, v[i]})
	}

	if el.Plus {
		// The choice of enrichment bubbles is not settled yet; refuse to
		// emit rather than freeze a layout that will change. At inner
		// order zero the block is empty and nothing is emitted.
		if oi >= 1 {
			return ErrNotImplemented
		}
	}
	return nil
}
