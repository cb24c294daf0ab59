package scene

import "fmt"

// FrameSource yields a sequence's raw frames by index. The file-backed
// implementation lives in kittiio; tests supply synthetic sources.
type FrameSource interface {
	// Len returns the number of frames available.
	Len() int
	// FrameID returns frame i's identifier, e.g. the on-disk file stem.
	// Sequences need not start at frame zero.
	FrameID(i int) string
	// Frame returns frame i's points and labels.
	Frame(i int) (Frame, error)
}

// Options configures a sequence run.
type Options struct {
	Projection ProjectionParams
	// Countable lists the class groups reported as object counts.
	Countable []ClassGroup
}

// DefaultOptions returns the standard KITTI camera bounds and the default
// cars/persons count groups.
func DefaultOptions() Options {
	return Options{
		Projection: DefaultProjectionParams(),
		Countable:  DefaultCountableGroups(),
	}
}

// SequenceResult bundles a completed sequence's outputs.
type SequenceResult struct {
	Frames  []FrameSummary
	Summary SequenceSummary
}

// ProcessSequence runs the full per-sequence pipeline: project every frame,
// derive class percentages, instances and object counts, estimate
// ego-motion, then fold the per-frame results into the sequence summary.
//
// Frames are processed strictly in order because the motion accumulator
// carries the previous pose and speed forward. A frame that produces no
// visible points still yields a FrameSummary with empty statistics; a frame
// that cannot be loaded aborts the whole sequence.
func ProcessSequence(src FrameSource, traj Trajectory, times []float64, calib Calibration, opts Options) (SequenceResult, error) {
	if len(traj) != len(times) {
		return SequenceResult{}, fmt.Errorf("pose/time length mismatch: %d poses, %d timestamps", len(traj), len(times))
	}
	n := src.Len()
	if n > len(traj) {
		return SequenceResult{}, fmt.Errorf("frame/pose length mismatch: %d frames, %d poses", n, len(traj))
	}

	frames := make([]FrameSummary, 0, n)
	var motion MotionAccumulator

	for i := 0; i < n; i++ {
		frame, err := src.Frame(i)
		if err != nil {
			return SequenceResult{}, fmt.Errorf("load frame %d: %w", i, err)
		}
		if len(frame.Points) != len(frame.Labels) {
			return SequenceResult{}, fmt.Errorf("frame %d: %d points but %d labels", i, len(frame.Points), len(frame.Labels))
		}

		projected := ProjectFrame(frame, calib, opts.Projection)
		pct := ClassPercentages(projected)
		instances := Instances(projected, opts.Projection)

		frames = append(frames, FrameSummary{
			FrameID:          src.FrameID(i),
			Timestamp:        times[i],
			ClassPercentages: pct,
			UniqueClasses:    UniqueClasses(pct),
			Instances:        instances,
			ObjectCounts:     CountObjects(instances, opts.Countable),
			EgoMotion:        motion.Step(traj[i], times[i]),
		})
	}

	return SequenceResult{
		Frames:  frames,
		Summary: AggregateSequence(frames, motion.TotalDistance()),
	}, nil
}

// FrameID formats a frame index the way the dataset names frame files. It is
// the default id scheme for sources without on-disk names.
func FrameID(i int) string {
	return fmt.Sprintf("%06d", i)
}
