package autodiff

// Dual2 is a forward-mode algorithmic differentiation number carrying a
// value, a gradient and a Hessian with respect to up to three reference
// coordinates. Axes beyond the dimension of the element in use stay zero, so
// the same type serves 1D, 2D and 3D evaluation without a dimension
// parameter. Dual2 is closed under +,-,*,/ and scalar multiply with the
// exact product/chain rule to second order.
type Dual2 struct {
	W float64
	G [3]float64
	H [3][3]float64
}

// NewVariable seeds coordinate axis i: value val, dVal/dx_i = 1.
func NewVariable(val float64, axis int) (d Dual2) {
	d.W = val
	d.G[axis] = 1
	return
}

func NewConstant(val float64) (d Dual2) {
	d.W = val
	return
}

// NewFromGradient seeds a first-order field with a prescribed gradient and
// zero Hessian. The mapped-shape pushforward uses this with rows of the
// inverse Jacobian.
func NewFromGradient(val float64, grad [3]float64) (d Dual2) {
	d.W = val
	d.G = grad
	return
}

func (d Dual2) Value() float64           { return d.W }
func (d Dual2) DValue(i int) float64     { return d.G[i] }
func (d Dual2) DDValue(i, j int) float64 { return d.H[i][j] }

func (d Dual2) Add(o Dual2) (r Dual2) {
	r.W = d.W + o.W
	for i := 0; i < 3; i++ {
		r.G[i] = d.G[i] + o.G[i]
		for j := 0; j < 3; j++ {
			r.H[i][j] = d.H[i][j] + o.H[i][j]
		}
	}
	return
}

func (d Dual2) Sub(o Dual2) (r Dual2) {
	r.W = d.W - o.W
	for i := 0; i < 3; i++ {
		r.G[i] = d.G[i] - o.G[i]
		for j := 0; j < 3; j++ {
			r.H[i][j] = d.H[i][j] - o.H[i][j]
		}
	}
	return
}

func (d Dual2) Mul(o Dual2) (r Dual2) {
	r.W = d.W * o.W
	for i := 0; i < 3; i++ {
		r.G[i] = d.G[i]*o.W + d.W*o.G[i]
		for j := 0; j < 3; j++ {
			r.H[i][j] = d.H[i][j]*o.W + d.W*o.H[i][j] + d.G[i]*o.G[j] + d.G[j]*o.G[i]
		}
	}
	return
}

func (d Dual2) Div(o Dual2) (r Dual2) {
	// Solve d = r*o for r, order by order
	r.W = d.W / o.W
	for i := 0; i < 3; i++ {
		r.G[i] = (d.G[i] - r.W*o.G[i]) / o.W
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.H[i][j] = (d.H[i][j] - r.W*o.H[i][j] - r.G[i]*o.G[j] - r.G[j]*o.G[i]) / o.W
		}
	}
	return
}

func (d Dual2) Scale(c float64) (r Dual2) {
	r.W = c * d.W
	for i := 0; i < 3; i++ {
		r.G[i] = c * d.G[i]
		for j := 0; j < 3; j++ {
			r.H[i][j] = c * d.H[i][j]
		}
	}
	return
}

func (d Dual2) AddScalar(c float64) (r Dual2) {
	r = d
	r.W += c
	return
}

func (d Dual2) Neg() (r Dual2) {
	return d.Scale(-1)
}
