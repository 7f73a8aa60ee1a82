package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{v}
	return
}

func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }

func (v Vector) Set(i int, val float64) {
	v.V.SetVec(i, val)
}

func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

func (v Vector) Print(labelO ...string) {
	var label string
	if len(labelO) != 0 {
		label = labelO[0]
	}
	fmt.Printf("%s = \n%8.4f\n", label, mat.Formatted(v.V, mat.Squeeze()))
}
