package scene

import "math"

// Pose is the ego vehicle's 4x4 rigid transform for one frame. Poses arrive
// as 3x4 rows from the dataset and are homogenised on load, so the bottom
// row is always [0 0 0 1].
type Pose struct {
	T Mat4
}

// Trajectory is the ordered per-frame pose sequence of one recording.
type Trajectory []Pose

// Translation returns the pose's translation component.
func (p Pose) Translation() (x, y, z float64) {
	return p.T.Translation()
}

// YawDegrees returns the heading angle of the pose's rotation block in
// degrees, assuming planar motion: atan2(R[1][0], R[0][0]).
func (p Pose) YawDegrees() float64 {
	return math.Atan2(p.T[4], p.T[0]) * 180.0 / math.Pi
}

// DistanceTo returns the Euclidean distance between the translation
// components of two poses.
func (p Pose) DistanceTo(q Pose) float64 {
	px, py, pz := p.Translation()
	qx, qy, qz := q.Translation()
	dx, dy, dz := px-qx, py-qy, pz-qz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Valid reports whether the pose carries a proper rigid transform.
func (p Pose) Valid() bool {
	return IsRigidTransform(p.T)
}
