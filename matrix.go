package coloring

// Matrix is an affine transform mapping (x, y) to
// (A·x + B·y + C, D·x + E·y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a transform moving points by (tx, ty).
func Translate(tx, ty float64) Matrix { return Matrix{A: 1, C: tx, E: 1, F: ty} }

// Scale returns a transform scaling about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// fitMatrix moves (minX, minY) to the origin and scales uniformly by s.
// It is the transform from natural shape space into mask space.
func fitMatrix(minX, minY, s float64) Matrix {
	return Scale(s, s).Multiply(Translate(-minX, -minY))
}

// Multiply returns the transform that applies o first and then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	r1 := [3]float64{m.A, m.B, m.C}
	r2 := [3]float64{m.D, m.E, m.F}
	return Matrix{
		A: r1[0]*o.A + r1[1]*o.D,
		B: r1[0]*o.B + r1[1]*o.E,
		C: r1[0]*o.C + r1[1]*o.F + r1[2],
		D: r2[0]*o.A + r2[1]*o.D,
		E: r2[0]*o.B + r2[1]*o.E,
		F: r2[0]*o.C + r2[1]*o.F + r2[2],
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}
