package scenedb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "scene_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testResult() scene.SequenceResult {
	frames := []scene.FrameSummary{
		{
			FrameID:          "000000",
			Timestamp:        0.0,
			ClassPercentages: map[string]float64{"road": 60, "car": 40},
			UniqueClasses:    []string{"car", "road"},
			Instances:        []scene.Instance{{Class: "car", InstanceID: 1, SpatialLocation: "middle-center", Distance: 8.5}},
			ObjectCounts:     map[string]int{"cars": 1, "persons": 0},
		},
		{
			FrameID:          "000001",
			Timestamp:        0.1,
			ClassPercentages: map[string]float64{"road": 100},
			UniqueClasses:    []string{"road"},
			Instances:        []scene.Instance{},
			ObjectCounts:     map[string]int{"cars": 0, "persons": 0},
			EgoMotion:        scene.EgoMotion{Speed: 5, Acceleration: 50},
		},
	}
	return scene.SequenceResult{
		Frames:  frames,
		Summary: scene.AggregateSequence(frames, 0.5),
	}
}

func TestOpenMigratesSchema(t *testing.T) {
	db := openTestDB(t)

	// Reopening the same file must be a no-op migration, not an error.
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='analysis_runs'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "analysis_runs", name)
}

func TestInsertRunAssignsID(t *testing.T) {
	db := openTestDB(t)

	run := &Run{DatasetRoot: "/data/sequences"}
	require.NoError(t, db.InsertRun(run))
	require.NotEmpty(t, run.RunID)
	require.NotZero(t, run.CreatedAtNs)

	runs, err := db.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, run.RunID, runs[0].RunID)
}

func TestInsertAndLoadSequenceResult(t *testing.T) {
	db := openTestDB(t)

	run := &Run{DatasetRoot: "/data/sequences"}
	require.NoError(t, db.InsertRun(run))

	res := testResult()
	require.NoError(t, db.InsertSequenceResult(run.RunID, "11", res))

	summary, err := db.SequenceSummary(run.RunID, "11")
	require.NoError(t, err)
	require.Equal(t, res.Summary.TotalFrames, summary.TotalFrames)
	require.InDelta(t, res.Summary.AverageSpeed, summary.AverageSpeed, 1e-12)
	require.Equal(t, res.Summary.TotalUniqueClasses, summary.TotalUniqueClasses)

	frames, err := db.FrameSummaries(run.RunID, "11")
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, "000000", frames[0].FrameID)
	require.InDelta(t, 40.0, frames[0].ClassPercentages["car"], 1e-12)
	require.Equal(t, 1, frames[0].ObjectCounts["cars"])
	require.InDelta(t, 5.0, frames[1].EgoMotion.Speed, 1e-12)
}

func TestSequenceSummaryMissing(t *testing.T) {
	db := openTestDB(t)

	_, err := db.SequenceSummary("no-such-run", "00")
	require.Error(t, err)
}
