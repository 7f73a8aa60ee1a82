package hcurldiv

import (
	"fmt"

	"github.com/king-tvlip/ngsolve/autodiff"
	"github.com/king-tvlip/ngsolve/polynomial"
	"github.com/king-tvlip/ngsolve/utils"
)

// SurfaceElement is the restriction of the H(curl-div) basis to a boundary
// facet: a segment bounding a triangle, or a triangular face of a
// tetrahedron. Surface shapes are Dim-vectors of scalars rather than
// tensors, and divergence has no meaning here.
type SurfaceElement struct {
	Kind       ElementType // Segment or Triangle
	OrderInner int
	VNums      []int
	NDof       int
	Order      int
}

func NewSurfaceElement(kind ElementType, order int) (el *SurfaceElement, err error) {
	if kind != Segment && kind != Triangle {
		err = fmt.Errorf("%w: %v is not a surface element kind", ErrElementKind, kind)
		return
	}
	el = &SurfaceElement{
		Kind:       kind,
		OrderInner: order,
		VNums:      make([]int, kind.NumVertices()),
	}
	for i := range el.VNums {
		el.VNums[i] = i
	}
	err = el.ComputeNDof()
	return
}

func (el *SurfaceElement) SetVertexNumbers(vnums []int) error {
	if len(vnums) != el.Kind.NumVertices() {
		return fmt.Errorf("need %d vertex numbers for %v, got %d",
			el.Kind.NumVertices(), el.Kind, len(vnums))
	}
	copy(el.VNums, vnums)
	return nil
}

func (el *SurfaceElement) SetOrderInner(order int) { el.OrderInner = order }

func (el *SurfaceElement) ComputeNDof() (err error) {
	if el.OrderInner < 0 {
		return fmt.Errorf("%w: inner order %d", ErrInvalidOrder, el.OrderInner)
	}
	switch el.Kind {
	case Segment:
		el.NDof = el.OrderInner + 1
	case Triangle:
		el.NDof = (el.OrderInner + 1) * (el.OrderInner + 2)
	}
	el.Order = el.OrderInner
	return
}

// CalcShape evaluates the trace basis at the reference point ip, writing
// Dim scalars per row.
func (el *SurfaceElement) CalcShape(ip []float64, shape utils.Matrix) (err error) {
	dim := el.Kind.Dim()
	checkBuffer(shape, el.NDof, dim, "shape")
	switch el.Kind {
	case Segment:
		el.segmModes(ip, shape)
	case Triangle:
		el.trigSurfModes(ip, shape)
	}
	return
}

// CalcDivShape always fails: divergence is undefined on a codimension-1
// trace, and returning zeros would silently corrupt an assembly.
func (el *SurfaceElement) CalcDivShape(ip []float64, divshape utils.Matrix) error {
	return ErrSurfaceDiv
}

// CalcMappedShape under the ambient embedding is an open scope boundary.
func (el *SurfaceElement) CalcMappedShape(mip *MappedPoint, shape utils.Matrix) error {
	return fmt.Errorf("%w: mapped surface shapes", ErrNotImplemented)
}

func (el *SurfaceElement) segmModes(ip []float64, shape utils.Matrix) {
	var (
		x   = autodiff.NewVariable(ip[0], 0)
		one = autodiff.NewConstant(1)
		lam = [2]autodiff.Dual2{x, one.Sub(x)}
	)
	es, ee := 0, 1
	if el.VNums[es] > el.VNums[ee] {
		es, ee = ee, es
	}
	ls, le := lam[es], lam[ee]
	ha := make([]autodiff.Dual2, el.OrderInner+1)
	polynomial.Legendre(el.OrderInner, le.Sub(ls), ha)
	// The sign matches the volume element's facet convention; see the
	// trace-consistency notes in DESIGN.md.
	for l := 0; l <= el.OrderInner; l++ {
		shape.SetRow(l, []float64{-ha[l].Value()})
	}
}

func (el *SurfaceElement) trigSurfModes(ip []float64, shape utils.Matrix) {
	var (
		x   = autodiff.NewVariable(ip[0], 0)
		y   = autodiff.NewVariable(ip[1], 1)
		one = autodiff.NewConstant(1)
		lam = [3]autodiff.Dual2{x, y, one.Sub(x).Sub(y)}
	)
	es, ee, et := 0, 1, 2
	if el.VNums[es] > el.VNums[ee] {
		es, ee = ee, es
	}
	if el.VNums[ee] > el.VNums[et] {
		ee, et = et, ee
	}
	if el.VNums[es] > el.VNums[et] {
		es, et = et, es
	}
	var (
		ls = lam[es]
		le = lam[ee]
		lt = lam[et]
		oi = el.OrderInner
		ha = make([]autodiff.Dual2, polynomial.DubinerDim(oi))
	)
	polynomial.Dubiner(oi, ls, le, ha)
	var nr int
	for l := 0; l < polynomial.DubinerDim(oi); l++ {
		shape.SetRow(nr, surfCrossNT{le, ls, lt, ha[l]}.Shape())
		nr++
		shape.SetRow(nr, surfCrossNT{ls, lt, le, ha[l]}.Shape())
		nr++
	}
}

// surfCrossNT is the codimension-1 variant of the face normal-tangential
// block: the cross product of two in-plane gradients collapses to a scalar.
type surfCrossNT struct {
	l1, l2, l3, v autodiff.Dual2
}

func (b surfCrossNT) Shape() []float64 {
	cross := b.l2.DValue(0)*b.l3.DValue(1) - b.l2.DValue(1)*b.l3.DValue(0)
	return []float64{
		b.v.Value() * b.l1.DValue(0) * cross,
		b.v.Value() * b.l1.DValue(1) * cross,
	}
}
