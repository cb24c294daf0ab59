package scene

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateSequenceEmpty(t *testing.T) {
	s := AggregateSequence(nil, 0)
	if s.TotalFrames != 0 || s.TotalDuration != 0 || s.AverageSpeed != 0 {
		t.Errorf("empty sequence produced nonzero stats: %+v", s)
	}
	if s.MinSpeed != 0 || s.MaxSpeed != 0 {
		t.Errorf("empty sequence speed extrema should be 0: %+v", s)
	}
}

func TestAggregateSequenceAbsentClassCountsAsZero(t *testing.T) {
	frames := []FrameSummary{
		{Timestamp: 0.0, ClassPercentages: map[string]float64{"car": 10}},
		{Timestamp: 0.1, ClassPercentages: map[string]float64{}},
		{Timestamp: 0.2, ClassPercentages: map[string]float64{"car": 20}},
	}

	s := AggregateSequence(frames, 0)
	if math.Abs(s.AverageClassPercentages["car"]-10.0) > 1e-9 {
		t.Errorf("average car percentage = %v, want 10 (absences count as 0)", s.AverageClassPercentages["car"])
	}
}

func TestAggregateSequenceSpeeds(t *testing.T) {
	frames := []FrameSummary{
		{Timestamp: 0.0, EgoMotion: EgoMotion{Speed: 0}},
		{Timestamp: 1.0, EgoMotion: EgoMotion{Speed: 4}},
		{Timestamp: 2.0, EgoMotion: EgoMotion{Speed: 2}},
	}

	s := AggregateSequence(frames, 12.0)
	if s.MinSpeed != 0 || s.MaxSpeed != 4 {
		t.Errorf("extrema = (%v, %v), want (0, 4)", s.MinSpeed, s.MaxSpeed)
	}
	if math.Abs(s.AverageSpeedFromFrames-2.0) > 1e-9 {
		t.Errorf("frame-mean speed = %v, want 2", s.AverageSpeedFromFrames)
	}
	// True average: path length over duration, not the frame mean.
	if math.Abs(s.AverageSpeed-6.0) > 1e-9 {
		t.Errorf("average speed = %v, want 6", s.AverageSpeed)
	}
	if math.Abs(s.TotalDuration-2.0) > 1e-9 {
		t.Errorf("duration = %v, want 2", s.TotalDuration)
	}
}

func TestAggregateSequenceSingleFrame(t *testing.T) {
	frames := []FrameSummary{{Timestamp: 7.5}}
	s := AggregateSequence(frames, 0)
	if s.TotalDuration != 0 {
		t.Errorf("single-frame duration = %v, want 0", s.TotalDuration)
	}
	if s.AverageSpeed != 0 {
		t.Errorf("single-frame average speed = %v, want 0", s.AverageSpeed)
	}
}

func TestAggregateSequenceTimeSeries(t *testing.T) {
	frames := []FrameSummary{
		{
			Timestamp:        0.0,
			ClassPercentages: map[string]float64{"road": 100},
			ObjectCounts:     map[string]int{"cars": 1},
		},
		{
			Timestamp:        0.1,
			ClassPercentages: map[string]float64{"car": 100},
			ObjectCounts:     map[string]int{"cars": 2},
		},
	}

	s := AggregateSequence(frames, 0)

	want := []TimeSeriesEntry{
		{Timestamp: 0.0, ClassPercentages: map[string]float64{"road": 100}, ObjectCounts: map[string]int{"cars": 1}},
		{Timestamp: 0.1, ClassPercentages: map[string]float64{"car": 100}, ObjectCounts: map[string]int{"cars": 2}},
	}
	if diff := cmp.Diff(want, s.TimeSeries); diff != "" {
		t.Errorf("time series mismatch (-want +got):\n%s", diff)
	}

	wantClasses := []string{"car", "road"}
	if diff := cmp.Diff(wantClasses, s.TotalUniqueClasses); diff != "" {
		t.Errorf("unique classes mismatch (-want +got):\n%s", diff)
	}
}
