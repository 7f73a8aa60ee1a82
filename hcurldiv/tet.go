package hcurldiv

import (
	"github.com/king-tvlip/ngsolve/autodiff"
	"github.com/king-tvlip/ngsolve/polynomial"
)

func (el *Element) tetNDof() (ndof, order int) {
	for _, of := range el.OrderFacet {
		ndof += (of + 1) * (of + 2)
		order = maxInt(order, of)
	}
	oi := el.OrderInner
	// type 1 identity bubbles + type 2 normal-tangential interior modes
	ninner := (oi+1)*(oi+2)*(oi+3)/6 + 8*(oi+2)*(oi+1)*oi/6
	order = maxInt(order, oi)
	// the enriched extension is not available for tetrahedra
	ndof += ninner
	return
}

// tetModes enumerates the tetrahedral basis: per-face normal-tangential
// blocks over the canonicalized face vertices, then the type-1 identity
// bubbles and type-2 interior modes through the collapsed-coordinate
// Jacobi recursion.
func (el *Element) tetModes(xyz []autodiff.Dual2, emit func(mode tensorMode)) error {
	var (
		one = autodiff.NewConstant(1)
		x   = xyz[0]
		y   = xyz[1]
		z   = xyz[2]
		lam = [4]autodiff.Dual2{x, y, z, one.Sub(x).Sub(y).Sub(z)}
		oi  = el.OrderInner
	)

	// Face based basis functions for tangential-normal continuity. The three
	// face vertices are sorted into ascending global-number order by
	// pairwise compare and swap.
	maxorderFacet := 0
	for _, of := range el.OrderFacet {
		maxorderFacet = maxInt(maxorderFacet, of)
	}
	ha := make([]autodiff.Dual2, polynomial.DubinerDim(maxorderFacet))
	for fa := 0; fa < 4; fa++ {
		fav := TetFaces[fa]
		if el.VNums[fav[0]] > el.VNums[fav[1]] {
			fav[0], fav[1] = fav[1], fav[0]
		}
		if el.VNums[fav[1]] > el.VNums[fav[2]] {
			fav[1], fav[2] = fav[2], fav[1]
		}
		if el.VNums[fav[0]] > el.VNums[fav[1]] {
			fav[0], fav[1] = fav[1], fav[0]
		}
		var (
			ls = lam[fav[0]]
			le = lam[fav[1]]
			lt = lam[fav[2]]
			p  = el.OrderFacet[fa]
		)
		polynomial.Dubiner(p, ls, le, ha)
		for l := 0; l < polynomial.DubinerDim(p); l++ {
			emit(crossNT{le, ls, lt, ha[l]})
			emit(crossNT{ls, lt, le, ha[l]})
		}
	}

	// Interior modes use the fixed local quadruple (0,1,2,3).
	var (
		ls   = lam[0]
		le   = lam[1]
		lt   = lam[2]
		lo   = lam[3]
		ls2  = ls.Scale(2).AddScalar(-1)
		vals = make([]autodiff.Dual2, oi+1)
	)

	// type 1: identity bubbles, total degree <= oi
	polynomial.LegendreScaledSeq(oi, lt.Sub(lo), lt.Add(lo),
		func(k int, polz autodiff.Dual2) {
			polynomial.JacobiAlphaScaledSeq(oi-k, float64(2*k+1),
				le.Sub(lt).Sub(lo), one.Sub(ls), polz,
				func(j int, polsy autodiff.Dual2) {
					nn := oi - k - j
					polynomial.JacobiAlphaMult(nn, float64(2*k+2*j+2), ls2, polsy, vals[:nn+1])
					for l := 0; l <= nn; l++ {
						emit(identityV{vals[l], 3})
					}
				})
		})

	// type 2: normal-tangential interior modes, total degree <= oi-1; each
	// index triple yields all four opposite-vertex rotations in both
	// orientations, scaled by the complementary barycentric coordinate.
	polynomial.LegendreScaledSeq(oi-1, lt.Sub(lo), lt.Add(lo),
		func(k int, polz autodiff.Dual2) {
			polynomial.JacobiAlphaScaledSeq(oi-1-k, float64(2*k+1),
				le.Sub(lt).Sub(lo), one.Sub(ls), polz,
				func(j int, polsy autodiff.Dual2) {
					nn := oi - 1 - k - j
					polynomial.JacobiAlphaMult(nn, float64(2*k+2*j+2), ls2, polsy, vals[:nn+1])
					for l := 0; l <= nn; l++ {
						val := vals[l]
						emit(crossNT{le, ls, lt, lo.Mul(val)})
						emit(crossNT{ls, lt, le, lo.Mul(val)})
						emit(crossNT{le, ls, lo, lt.Mul(val)})
						emit(crossNT{ls, lo, le, lt.Mul(val)})
						emit(crossNT{le, lo, lt, ls.Mul(val)})
						emit(crossNT{lo, lt, le, ls.Mul(val)})
						emit(crossNT{lo, ls, lt, le.Mul(val)})
						emit(crossNT{lt, ls, lo, le.Mul(val)})
					}
				})
		})
	return nil
}
