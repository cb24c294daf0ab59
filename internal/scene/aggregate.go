package scene

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AggregateSequence folds an ordered list of frame summaries into the
// sequence-level statistics. totalDistance is the accumulated path length
// from the motion accumulator.
//
// average_speed is the true average (path length over elapsed time) while
// average_speed_from_frames is the arithmetic mean of the per-frame
// instantaneous speeds; the two differ whenever frame intervals are
// non-uniform, so both are reported.
func AggregateSequence(frames []FrameSummary, totalDistance float64) SequenceSummary {
	s := SequenceSummary{
		TotalFrames:             len(frames),
		TotalDistance:           totalDistance,
		AverageClassPercentages: make(map[string]float64),
		TotalUniqueClasses:      []string{},
		TimeSeries:              make([]TimeSeriesEntry, 0, len(frames)),
	}
	if len(frames) == 0 {
		return s
	}

	if len(frames) > 1 {
		s.TotalDuration = frames[len(frames)-1].Timestamp - frames[0].Timestamp
	}
	if s.TotalDuration > 0 {
		s.AverageSpeed = totalDistance / s.TotalDuration
	}

	speeds := make([]float64, len(frames))
	for i, f := range frames {
		speeds[i] = f.EgoMotion.Speed
	}
	s.MinSpeed = floats.Min(speeds)
	s.MaxSpeed = floats.Max(speeds)
	s.AverageSpeedFromFrames = stat.Mean(speeds, nil)

	// Classes absent from a frame count as 0% in that frame, so every
	// class mean runs over the full frame count.
	classes := make(map[string]struct{})
	for _, f := range frames {
		for name := range f.ClassPercentages {
			classes[name] = struct{}{}
		}
	}
	for name := range classes {
		sum := 0.0
		for _, f := range frames {
			sum += f.ClassPercentages[name]
		}
		s.AverageClassPercentages[name] = sum / float64(len(frames))
		s.TotalUniqueClasses = append(s.TotalUniqueClasses, name)
	}
	sort.Strings(s.TotalUniqueClasses)

	for _, f := range frames {
		s.TimeSeries = append(s.TimeSeries, TimeSeriesEntry{
			Timestamp:        f.Timestamp,
			ClassPercentages: f.ClassPercentages,
			ObjectCounts:     f.ObjectCounts,
		})
	}

	return s
}
