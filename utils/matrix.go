package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a thin convenience wrapper over gonum's dense matrix. Shape and
// divergence buffers passed to the element evaluators are of this type,
// caller allocated, row-major, one row per basis function.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Set(i, j int, val float64) {
	m.M.Set(i, j, val)
}

func (m Matrix) SetRow(i int, row []float64) {
	m.M.SetRow(i, row)
}

// Row returns a copy of row i as a plain slice.
func (m Matrix) Row(i int) (row []float64) {
	var (
		_, nc = m.M.Dims()
	)
	row = make([]float64, nc)
	copy(row, m.M.RawRowView(i))
	return
}

func (m Matrix) Print(labelO ...string) {
	var label string
	if len(labelO) != 0 {
		label = labelO[0]
	}
	fmt.Printf("%s = \n%8.4f\n", label, mat.Formatted(m.M, mat.Squeeze()))
}
