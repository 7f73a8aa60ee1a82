package hcurldiv

import (
	"fmt"

	"github.com/king-tvlip/ngsolve/autodiff"
	"github.com/king-tvlip/ngsolve/utils"
)

// ElementType is the closed set of reference element kinds. There is no
// generic base element: constructors validate the kind, so the "operation
// not available for base class" failure mode of a virtual hierarchy cannot
// be reached.
type ElementType uint8

const (
	Segment ElementType = iota
	Triangle
	Tetrahedron
)

func (et ElementType) String() string {
	switch et {
	case Segment:
		return "Segment"
	case Triangle:
		return "Triangle"
	case Tetrahedron:
		return "Tetrahedron"
	}
	return fmt.Sprintf("ElementType(%d)", uint8(et))
}

func (et ElementType) Dim() (d int) {
	switch et {
	case Segment:
		d = 1
	case Triangle:
		d = 2
	case Tetrahedron:
		d = 3
	}
	return
}

func (et ElementType) NumVertices() (nv int) {
	return et.Dim() + 1
}

func (et ElementType) NumFacets() (nf int) {
	switch et {
	case Segment:
		nf = 2
	case Triangle:
		nf = 3
	case Tetrahedron:
		nf = 4
	}
	return
}

// TrigEdges lists the local vertex pair bounding each triangle edge, and
// TetFaces the vertex triple bounding each tetrahedron face. Facet blocks of
// the DOF layout follow these tables in order; the vertex indices within a
// facet are re-sorted by global vertex number before use, which is what
// makes shared-facet basis functions match between neighboring elements.
var (
	TrigEdges = [3][2]int{{2, 0}, {1, 2}, {0, 1}}
	TetFaces  = [4][3]int{{3, 1, 2}, {3, 2, 0}, {3, 0, 1}, {0, 2, 1}}
)

// Element is a volume H(curl-div) element on the reference triangle or
// tetrahedron. Orders and vertex numbers are setup state: mutate them only
// before evaluation starts, then call ComputeNDof. Evaluation itself keeps
// no state, so a fully set up Element is safe for concurrent use.
type Element struct {
	Kind       ElementType
	OrderFacet []int
	OrderInner int
	Plus       bool // enriched (non-div-free bubble) extension
	VNums      []int
	NDof       int
	Order      int // reported element-wide polynomial order
}

func NewElement(kind ElementType, order int, plusO ...bool) (el *Element, err error) {
	if kind != Triangle && kind != Tetrahedron {
		err = fmt.Errorf("%w: %v is not a volume element kind", ErrElementKind, kind)
		return
	}
	el = &Element{
		Kind:       kind,
		OrderFacet: make([]int, kind.NumFacets()),
		OrderInner: order,
		VNums:      make([]int, kind.NumVertices()),
	}
	for i := range el.OrderFacet {
		el.OrderFacet[i] = order
	}
	for i := range el.VNums {
		el.VNums[i] = i
	}
	if len(plusO) != 0 {
		el.Plus = plusO[0]
	}
	err = el.ComputeNDof()
	return
}

// SetVertexNumbers assigns the global vertex numbers used to canonicalize
// facet orientation.
func (el *Element) SetVertexNumbers(vnums []int) error {
	if len(vnums) != el.Kind.NumVertices() {
		return fmt.Errorf("need %d vertex numbers for %v, got %d",
			el.Kind.NumVertices(), el.Kind, len(vnums))
	}
	copy(el.VNums, vnums)
	return nil
}

func (el *Element) SetOrderFacet(nr, order int) { el.OrderFacet[nr] = order }
func (el *Element) SetOrderInner(order int)     { el.OrderInner = order }

// ComputeNDof derives the DOF count and reported order from the current
// order specification. Call it again after changing any order.
func (el *Element) ComputeNDof() (err error) {
	for _, of := range el.OrderFacet {
		if of < 0 {
			return fmt.Errorf("%w: facet order %d", ErrInvalidOrder, of)
		}
	}
	if el.OrderInner < 0 {
		return fmt.Errorf("%w: inner order %d", ErrInvalidOrder, el.OrderInner)
	}
	switch el.Kind {
	case Triangle:
		el.NDof, el.Order = el.trigNDof()
	case Tetrahedron:
		el.NDof, el.Order = el.tetNDof()
	}
	return
}

// enumerate dispatches to the kind-specialized mode enumeration. The emit
// callback receives each basis mode in DOF-layout order.
func (el *Element) enumerate(lam []autodiff.Dual2, emit func(mode tensorMode)) (err error) {
	switch el.Kind {
	case Triangle:
		err = el.trigModes(lam, emit)
	case Tetrahedron:
		err = el.tetModes(lam, emit)
	default:
		err = fmt.Errorf("%w: %v", ErrElementKind, el.Kind)
	}
	return
}

// seedReference builds the coordinate fields at a reference point with unit
// gradient seeds, exact to second order.
func seedReference(ip []float64, dim int) (lam []autodiff.Dual2) {
	lam = make([]autodiff.Dual2, dim)
	for i := 0; i < dim; i++ {
		lam[i] = autodiff.NewVariable(ip[i], i)
	}
	return
}

func checkBuffer(m utils.Matrix, nr, nc int, what string) {
	r, c := m.Dims()
	if r < nr || c < nc {
		err := fmt.Errorf("%s buffer too small: need %dx%d, have %dx%d", what, nr, nc, r, c)
		panic(err)
	}
}

// CalcShape evaluates every basis function at the reference point ip and
// writes one flattened Dim x Dim tensor per row of shape.
func (el *Element) CalcShape(ip []float64, shape utils.Matrix) (err error) {
	dim := el.Kind.Dim()
	checkBuffer(shape, el.NDof, dim*dim, "shape")
	var nr int
	err = el.enumerate(seedReference(ip, dim), func(mode tensorMode) {
		shape.SetRow(nr, mode.Shape())
		nr++
	})
	return
}

// CalcDivShape evaluates the divergence of every basis function at the
// reference point ip, one Dim-vector per row.
func (el *Element) CalcDivShape(ip []float64, divshape utils.Matrix) (err error) {
	dim := el.Kind.Dim()
	checkBuffer(divshape, el.NDof, dim, "divshape")
	var nr int
	err = el.enumerate(seedReference(ip, dim), func(mode tensorMode) {
		divshape.SetRow(nr, mode.DivShape())
		nr++
	})
	return
}
