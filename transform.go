package smallworld

import "math"

// Transform is a 2D affine matrix mapping local coordinates to screen
// coordinates.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// singularEpsilon bounds the determinant below which a matrix is treated as
// non-invertible.
const singularEpsilon = 1e-12

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c Transform) Transform {
	return Transform{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// ok is false if the matrix is singular (determinant ≈ 0).
func invertAffine(m Transform) (inv Transform, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -singularEpsilon && det < singularEpsilon {
		return IdentityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m Transform, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Mul returns t * child: child is applied first, then t.
func (t Transform) Mul(child Transform) Transform {
	return multiplyAffine(t, child)
}

// Translate composes a translation on the right, so the offset is expressed
// in t's local space.
func (t Transform) Translate(x, y float64) Transform {
	return multiplyAffine(t, Transform{1, 0, 0, 1, x, y})
}

// Scale composes a scale on the right.
func (t Transform) Scale(sx, sy float64) Transform {
	return multiplyAffine(t, Transform{sx, 0, 0, sy, 0, 0})
}

// Apply maps a local point to screen space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return transformPoint(t, x, y)
}

// Invert returns the inverse transform. ok is false for singular matrices,
// which map every local point onto a line and therefore contain nothing.
func (t Transform) Invert() (Transform, bool) {
	return invertAffine(t)
}

// VerticalScale returns the length of the transformed local Y axis: how many
// screen pixels one local unit of height covers.
func (t Transform) VerticalScale() float64 {
	return math.Hypot(t[2], t[3])
}

// ToLocal maps a screen-space point into t's local space. ok is false when
// t is singular.
func (t Transform) ToLocal(sx, sy float64) (lx, ly float64, ok bool) {
	inv, ok := invertAffine(t)
	if !ok {
		return 0, 0, false
	}
	lx, ly = transformPoint(inv, sx, sy)
	return lx, ly, true
}
