package scene

// FrameSummary is the per-frame output record. Field names follow the
// frame_summaries.json layout consumed downstream.
type FrameSummary struct {
	FrameID          string             `json:"frame_id"`
	Timestamp        float64            `json:"timestamp"`
	ClassPercentages map[string]float64 `json:"class_percentages"`
	UniqueClasses    []string           `json:"unique_classes"`
	Instances        []Instance         `json:"instances"`
	ObjectCounts     map[string]int     `json:"object_counts"`
	EgoMotion        EgoMotion          `json:"ego_motion"`
}

// TimeSeriesEntry is one frame's slice of the sequence time series.
type TimeSeriesEntry struct {
	Timestamp        float64            `json:"timestamp"`
	ClassPercentages map[string]float64 `json:"class_percentages"`
	ObjectCounts     map[string]int     `json:"object_counts"`
}

// SequenceSummary is the sequence-level output record written to
// sequence_summary.json.
type SequenceSummary struct {
	TotalFrames             int                `json:"total_frames"`
	TotalDuration           float64            `json:"total_duration"`
	TotalDistance           float64            `json:"total_distance"`
	AverageSpeed            float64            `json:"average_speed"`
	MinSpeed                float64            `json:"min_speed"`
	MaxSpeed                float64            `json:"max_speed"`
	AverageSpeedFromFrames  float64            `json:"average_speed_from_frames"`
	AverageClassPercentages map[string]float64 `json:"average_class_percentages"`
	TotalUniqueClasses      []string           `json:"total_unique_classes"`
	TimeSeries              []TimeSeriesEntry  `json:"time_series"`
}
