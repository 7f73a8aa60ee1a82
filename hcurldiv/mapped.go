package hcurldiv

import (
	"fmt"

	"github.com/king-tvlip/ngsolve/autodiff"
	"github.com/king-tvlip/ngsolve/utils"
)

// MappedPoint carries what the pushforward needs from a mapped integration
// point: the reference coordinates, the inverse Jacobian of the
// reference-to-physical map at that point, and whether the map is curved.
// JacobianInverse row i holds the physical-space gradient of reference
// coordinate i.
type MappedPoint struct {
	Ref             []float64
	JacobianInverse utils.Matrix
	Curved          bool
}

// seedMapped builds the coordinate fields with physical-space gradients, so
// the mode algebra produces physically mapped tensors directly. Second
// derivatives are zero, which is exact for affine maps.
func seedMapped(mip *MappedPoint, dim int) (lam []autodiff.Dual2) {
	lam = make([]autodiff.Dual2, dim)
	for i := 0; i < dim; i++ {
		var grad [3]float64
		for j := 0; j < dim; j++ {
			grad[j] = mip.JacobianInverse.At(i, j)
		}
		lam[i] = autodiff.NewFromGradient(mip.Ref[i], grad)
	}
	return
}

// CalcMappedShape evaluates every basis function at a mapped point, one
// flattened Dim x Dim physical-space tensor per row.
func (el *Element) CalcMappedShape(mip *MappedPoint, shape utils.Matrix) (err error) {
	dim := el.Kind.Dim()
	checkBuffer(shape, el.NDof, dim*dim, "shape")
	var nr int
	err = el.enumerate(seedMapped(mip, dim), func(mode tensorMode) {
		shape.SetRow(nr, mode.Shape())
		nr++
	})
	return
}

// CalcMappedDivShape evaluates physical-space divergences at a mapped
// point. For affine maps the Piola-type transform of this family leaves the
// divergence equal to its reference value, which the gradient seeding
// reproduces exactly. The curved-map correction term (inverse Jacobian
// contracted with the second derivatives of the map) is not implemented.
func (el *Element) CalcMappedDivShape(mip *MappedPoint, divshape utils.Matrix) (err error) {
	if mip.Curved {
		return fmt.Errorf("%w: divergence transport on curved elements", ErrNotImplemented)
	}
	dim := el.Kind.Dim()
	checkBuffer(divshape, el.NDof, dim, "divshape")
	var nr int
	err = el.enumerate(seedMapped(mip, dim), func(mode tensorMode) {
		divshape.SetRow(nr, mode.DivShape())
		nr++
	})
	return
}
