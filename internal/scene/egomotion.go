package scene

// EgoMotion is the sensor platform's instantaneous motion at one frame,
// estimated by finite differences over consecutive poses.
type EgoMotion struct {
	Speed        float64 `json:"speed"`
	Acceleration float64 `json:"acceleration"`
	Direction    float64 `json:"direction"`
}

// MotionAccumulator threads ego-motion state through a per-sequence fold:
// the previous pose, timestamp and speed for finite differences, plus the
// running path length. Frames must be fed in increasing frame order.
//
// The zero value is ready to use and treats the first frame fed to Step as
// the start of the sequence.
type MotionAccumulator struct {
	prevPose      Pose
	prevTime      float64
	prevSpeed     float64
	hasPrev       bool
	totalDistance float64
}

// Step consumes the next frame's pose and timestamp and returns the motion
// estimate for that frame.
//
// The first frame has no predecessor: speed and acceleration are zero and it
// contributes nothing to the running distance. Non-positive time deltas map
// speed and acceleration to zero instead of dividing by them; the step
// displacement still counts toward the total path length.
func (a *MotionAccumulator) Step(pose Pose, t float64) EgoMotion {
	m := EgoMotion{Direction: pose.YawDegrees()}

	if a.hasPrev {
		displacement := pose.DistanceTo(a.prevPose)
		dt := t - a.prevTime
		if dt > 0 {
			m.Speed = displacement / dt
			m.Acceleration = (m.Speed - a.prevSpeed) / dt
		}
		a.totalDistance += displacement
	}

	a.prevPose = pose
	a.prevTime = t
	a.prevSpeed = m.Speed
	a.hasPrev = true
	return m
}

// TotalDistance returns the path length accumulated so far: the sum of
// displacements between consecutive poses, not speed integrated over time.
func (a *MotionAccumulator) TotalDistance() float64 {
	return a.totalDistance
}
