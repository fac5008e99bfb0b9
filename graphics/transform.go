package graphics

import "math"

// Transform is a 2D affine transformation.
//
//	| A C Tx |
//	| B D Ty |
type Transform struct {
	A, B, C, D, Tx, Ty float64
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{A: 1, D: 1}
}

// SetTransformation composes translation, rotation, scale, origin
// offset and shear into the matrix:
//
//	translate(x,y) * rotate(angle) * scale(sx,sy) * shear(kx,ky) * translate(-ox,-oy)
func (t *Transform) SetTransformation(x, y, angle, sx, sy, ox, oy, kx, ky float64) {
	c := math.Cos(angle)
	s := math.Sin(angle)

	t.A = c*sx - ky*s*sy
	t.B = s*sx + ky*c*sy
	t.C = kx*c*sx - s*sy
	t.D = kx*s*sx + c*sy
	t.Tx = x - ox*t.A - oy*t.C
	t.Ty = y - oy*t.D - ox*t.B
}

// Mul returns the composition t * u, applying u first.
func (t *Transform) Mul(u *Transform) *Transform {
	return &Transform{
		A:  t.A*u.A + t.C*u.B,
		B:  t.B*u.A + t.D*u.B,
		C:  t.A*u.C + t.C*u.D,
		D:  t.B*u.C + t.D*u.D,
		Tx: t.A*u.Tx + t.C*u.Ty + t.Tx,
		Ty: t.B*u.Tx + t.D*u.Ty + t.Ty,
	}
}

// Apply transforms a single point.
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.Tx, t.B*x + t.D*y + t.Ty
}

// TransformVertices writes the transformed positions of src into dst.
// Texture coordinates and colors are left untouched.
func (t *Transform) TransformVertices(dst, src []Vertex) {
	for i := range src {
		x := float64(src[i].X)
		y := float64(src[i].Y)
		dst[i].X = float32(t.A*x + t.C*y + t.Tx)
		dst[i].Y = float32(t.B*x + t.D*y + t.Ty)
	}
}
