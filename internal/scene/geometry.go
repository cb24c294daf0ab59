package scene

import "math"

// Mat4 is a 4x4 row-major homogeneous transform:
// m00,m01,m02,m03, m10,... as T[0..15].
type Mat4 [16]float64

// Mat34 is a 3x4 row-major projection matrix (e.g. a camera matrix that maps
// homogeneous camera-frame points to homogeneous image coordinates).
type Mat34 [12]float64

// Point3 is a point in a Cartesian sensor or camera frame, in meters.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Point2 is a point on the image plane, in pixels.
type Point2 struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Norm returns the Euclidean distance of the point from the frame origin.
func (p Point3) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Identity returns the 4x4 identity transform.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Apply applies the transform to point (x,y,z) with an implicit homogeneous
// coordinate of 1.
func (m Mat4) Apply(x, y, z float64) (wx, wy, wz float64) {
	wx = m[0]*x + m[1]*y + m[2]*z + m[3]
	wy = m[4]*x + m[5]*y + m[6]*z + m[7]
	wz = m[8]*x + m[9]*y + m[10]*z + m[11]
	return
}

// Apply applies the 3x4 matrix to the homogeneous point (x,y,z,1) and
// returns the raw projective coordinates (u',v',w) before perspective
// division.
func (m Mat34) Apply(x, y, z float64) (u, v, w float64) {
	u = m[0]*x + m[1]*y + m[2]*z + m[3]
	v = m[4]*x + m[5]*y + m[6]*z + m[7]
	w = m[8]*x + m[9]*y + m[10]*z + m[11]
	return
}

// Translation returns the translation column of the transform.
func (m Mat4) Translation() (x, y, z float64) {
	return m[3], m[7], m[11]
}

// rigidTolerance bounds how far the rotation block's determinant may drift
// from 1 before the matrix is rejected as a rigid transform.
const rigidTolerance = 0.01

// IsRigidTransform checks that a 4x4 matrix is a proper rigid transform:
// rotation block with determinant ~= 1 and bottom row [0 0 0 1].
func IsRigidTransform(m Mat4) bool {
	r00, r01, r02 := m[0], m[1], m[2]
	r10, r11, r12 := m[4], m[5], m[6]
	r20, r21, r22 := m[8], m[9], m[10]

	det := r00*(r11*r22-r12*r21) - r01*(r10*r22-r12*r20) + r02*(r10*r21-r11*r20)
	if math.Abs(det-1.0) > rigidTolerance {
		return false
	}

	if m[12] != 0 || m[13] != 0 || m[14] != 0 || math.Abs(m[15]-1.0) > 0.001 {
		return false
	}

	return true
}
