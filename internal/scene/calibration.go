package scene

import "fmt"

// Calibration holds the per-sequence calibration matrices. It is loaded once
// per sequence and never mutated afterwards.
type Calibration struct {
	// Tr maps sensor-frame points into the camera frame (4x4 rigid
	// transform built from the 3x4 "Tr" calibration entry).
	Tr Mat4
	// P2 projects camera-frame points onto the image plane of the left
	// colour camera (3x4 "P2" calibration entry).
	P2 Mat34
}

// Validate checks that the calibration is usable: Tr must be a proper rigid
// transform and P2 must have a nonzero focal row.
func (c Calibration) Validate() error {
	if !IsRigidTransform(c.Tr) {
		return fmt.Errorf("calibration Tr is not a proper rigid transform")
	}
	if c.P2[0] == 0 && c.P2[1] == 0 && c.P2[2] == 0 {
		return fmt.Errorf("calibration P2 has a zero first row")
	}
	return nil
}
