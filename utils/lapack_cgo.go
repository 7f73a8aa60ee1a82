//go:build cgo_blas
// +build cgo_blas

package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Optional accelerated BLAS backend, enabled with -tags cgo_blas on hosts
// with openblas installed.
func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
