// Package runner drives the pipeline over whole datasets: it discovers
// sequence directories, processes each one in its own worker, and writes the
// per-sequence JSON outputs plus the optional database records and reports.
//
// Sequences share no mutable state, so they parallelise freely; frames
// within one sequence are strictly ordered by the motion accumulator.
package runner

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/roadscene-data/sequence.report/internal/report"
	"github.com/roadscene-data/sequence.report/internal/scene"
	"github.com/roadscene-data/sequence.report/internal/scene/kittiio"
	"github.com/roadscene-data/sequence.report/internal/scenedb"
)

// Config configures a dataset run.
type Config struct {
	// DatasetRoot holds one directory per sequence.
	DatasetRoot string
	// LabelDir overrides the per-sequence labels directory. Empty means
	// "<sequence>/labels". Relative names resolve inside each sequence
	// directory, so predictions can live at e.g. "<sequence>/predictions".
	LabelDir string
	// OutputRoot receives one directory per sequence with the JSON
	// outputs; created on demand.
	OutputRoot string
	// Workers bounds the number of sequences processed concurrently.
	// Values below 1 mean serial processing.
	Workers int

	Options scene.Options

	// DB, when set, records frame and sequence summaries under RunID.
	DB    *scenedb.DB
	RunID string

	// EmitReports writes report.html and speed_profile.png next to the
	// JSON outputs.
	EmitReports bool
}

// BatchResult counts a dataset run's outcome.
type BatchResult struct {
	Processed int
	Failed    int
}

// ProcessDataset runs every sequence under cfg.DatasetRoot. A sequence that
// fails is logged and skipped; it produces no output files and does not
// abort the rest of the batch.
func ProcessDataset(cfg Config) (BatchResult, error) {
	dirs, err := kittiio.DiscoverSequences(cfg.DatasetRoot)
	if err != nil {
		return BatchResult{}, err
	}
	if len(dirs) == 0 {
		return BatchResult{}, fmt.Errorf("no sequences under %s", cfg.DatasetRoot)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		wg     sync.WaitGroup
		sem    = make(chan struct{}, workers)
		mu     sync.Mutex
		result BatchResult
	)

	for _, dir := range dirs {
		wg.Add(1)
		sem <- struct{}{}
		go func(seqDir string) {
			defer wg.Done()
			defer func() { <-sem }()

			seqID := filepath.Base(seqDir)
			err := ProcessOne(seqDir, filepath.Join(cfg.OutputRoot, seqID), cfg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("sequence %s failed: %v", seqID, err)
				result.Failed++
				return
			}
			log.Printf("sequence %s done", seqID)
			result.Processed++
		}(dir)
	}
	wg.Wait()

	return result, nil
}

// ProcessOne runs the full pipeline for a single sequence directory and
// writes frame_summaries.json and sequence_summary.json under outDir. The
// output directory is only created once the sequence has processed cleanly,
// so a failed sequence leaves nothing behind.
func ProcessOne(seqDir, outDir string, cfg Config) error {
	paths := kittiio.SequenceDirPaths(seqDir, kittiio.ResolveLabelDir(seqDir, cfg.LabelDir))

	calib, err := kittiio.LoadCalibration(paths.CalibFile)
	if err != nil {
		return err
	}
	traj, err := kittiio.LoadPoses(paths.PosesFile)
	if err != nil {
		return err
	}
	times, err := kittiio.LoadTimes(paths.TimesFile)
	if err != nil {
		return err
	}
	frames, err := kittiio.OpenSequence(paths)
	if err != nil {
		return err
	}

	res, err := scene.ProcessSequence(frames, traj, times, calib, cfg.Options)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(filepath.Join(outDir, "frame_summaries.json"), res.Frames); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "sequence_summary.json"), res.Summary); err != nil {
		return err
	}

	seqID := filepath.Base(seqDir)
	if cfg.DB != nil {
		if err := cfg.DB.InsertSequenceResult(cfg.RunID, seqID, res); err != nil {
			return err
		}
	}
	if cfg.EmitReports {
		if err := report.WriteHTML(filepath.Join(outDir, "report.html"), seqID, res.Frames, res.Summary); err != nil {
			return err
		}
		if err := report.WriteSpeedProfile(filepath.Join(outDir, "speed_profile.png"), seqID, res.Frames); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
