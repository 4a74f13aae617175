package math

// Vec4 is a 4-component vector. Curve evaluation uses it for the
// (t³, t², t, 1) parameter rows; the renderer uses it for homogeneous
// light positions.
type Vec4 [4]float32

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Cubic returns (t³, t², t, 1).
func Cubic(t float32) Vec4 {
	return Vec4{t * t * t, t * t, t, 1}
}

// CubicDerivative returns (3t², 2t, 1, 0).
func CubicDerivative(t float32) Vec4 {
	return Vec4{3 * t * t, 2 * t, 1, 0}
}
