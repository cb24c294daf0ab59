// Command seqstats processes a dataset of labelled point-cloud sequences
// into per-sequence frame_summaries.json and sequence_summary.json files,
// with optional SQLite persistence and HTML/PNG reports.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/roadscene-data/sequence.report/internal/runner"
	"github.com/roadscene-data/sequence.report/internal/scene"
	"github.com/roadscene-data/sequence.report/internal/scenedb"
)

var (
	datasetRoot = flag.String("dataset", "", "Dataset root containing one directory per sequence (required)")
	labelDir    = flag.String("label-dir", "", "Override for the per-sequence label directory (default: <sequence>/labels)")
	outputRoot  = flag.String("out", "stats", "Output root; one directory per sequence is created under it")
	dbFile      = flag.String("db", "", "Optional SQLite database file to record summaries in")
	notes       = flag.String("notes", "", "Free-form notes stored with the database run record")
	reports     = flag.Bool("reports", false, "Also write report.html and speed_profile.png per sequence")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of sequences to process concurrently")
	imageWidth  = flag.Int("image-width", scene.DefaultImageWidth, "Camera image width in pixels")
	imageHeight = flag.Int("image-height", scene.DefaultImageHeight, "Camera image height in pixels")
)

func main() {
	flag.Parse()

	if *datasetRoot == "" {
		log.Fatal("missing required -dataset flag")
	}

	opts := scene.DefaultOptions()
	opts.Projection = scene.ProjectionParams{ImageWidth: *imageWidth, ImageHeight: *imageHeight}

	cfg := runner.Config{
		DatasetRoot: *datasetRoot,
		LabelDir:    *labelDir,
		OutputRoot:  *outputRoot,
		Workers:     *workers,
		Options:     opts,
		EmitReports: *reports,
	}

	if *dbFile != "" {
		db, err := scenedb.Open(*dbFile)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()

		run := &scenedb.Run{DatasetRoot: *datasetRoot, Notes: *notes}
		if err := db.InsertRun(run); err != nil {
			log.Fatalf("record run: %v", err)
		}
		log.Printf("recording summaries under run %s", run.RunID)
		cfg.DB = db
		cfg.RunID = run.RunID
	}

	res, err := runner.ProcessDataset(cfg)
	if err != nil {
		log.Fatalf("process dataset: %v", err)
	}

	log.Printf("done: %d sequences processed, %d failed", res.Processed, res.Failed)
}
