package hcurldiv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/king-tvlip/ngsolve/utils"
)

func TestSurfaceNDof(t *testing.T) {
	for order := 0; order <= 5; order++ {
		segm, err := NewSurfaceElement(Segment, order)
		assert.NoError(t, err)
		assert.Equal(t, order+1, segm.NDof)

		trig, err := NewSurfaceElement(Triangle, order)
		assert.NoError(t, err)
		assert.Equal(t, (order+1)*(order+2), trig.NDof)
	}
	_, err := NewSurfaceElement(Tetrahedron, 1)
	assert.True(t, errors.Is(err, ErrElementKind))
	_, err = NewSurfaceElement(Segment, -1)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestSegmentSurfaceShape(t *testing.T) {
	var (
		el, err = NewSurfaceElement(Segment, 1)
		shape   = utils.NewMatrix(2, 1)
	)
	assert.NoError(t, err)
	// at x=1/4 the trace weights are -P_l(1-2x) = -P_l(1/2)
	assert.NoError(t, el.CalcShape([]float64{0.25}, shape))
	assert.True(t, near(shape.At(0, 0), -1))
	assert.True(t, near(shape.At(1, 0), -0.5))

	// reversing the global edge direction flips the odd modes
	assert.NoError(t, el.SetVertexNumbers([]int{7, 3}))
	assert.NoError(t, el.CalcShape([]float64{0.25}, shape))
	assert.True(t, near(shape.At(0, 0), -1))
	assert.True(t, near(shape.At(1, 0), 0.5))
}

func TestTrigSurfaceShape(t *testing.T) {
	var (
		order   = 2
		ip      = []float64{0.3, 0.2}
		el, err = NewSurfaceElement(Triangle, order)
	)
	assert.NoError(t, err)
	shape := utils.NewMatrix(el.NDof, 2)
	assert.NoError(t, el.CalcShape(ip, shape))

	// order-preserving relabeling reproduces the basis exactly
	elRe, err := NewSurfaceElement(Triangle, order)
	assert.NoError(t, err)
	assert.NoError(t, elRe.SetVertexNumbers([]int{4, 8, 12}))
	relab := utils.NewMatrix(el.NDof, 2)
	assert.NoError(t, elRe.CalcShape(ip, relab))
	for n := 0; n < el.NDof; n++ {
		assert.True(t, nearVec(shape.Row(n), relab.Row(n), 1.e-12))
	}
}

func TestSurfaceUnsupportedOperations(t *testing.T) {
	el, err := NewSurfaceElement(Triangle, 1)
	assert.NoError(t, err)
	var (
		divshape = utils.NewMatrix(el.NDof, 2)
		shape    = utils.NewMatrix(el.NDof, 2)
		mip      = &MappedPoint{
			Ref:             []float64{0.3, 0.2},
			JacobianInverse: utils.NewMatrix(2, 2, []float64{1, 0, 0, 1}),
		}
	)
	assert.True(t, errors.Is(el.CalcDivShape([]float64{0.3, 0.2}, divshape), ErrSurfaceDiv))
	assert.True(t, errors.Is(el.CalcMappedShape(mip, shape), ErrNotImplemented))
}
