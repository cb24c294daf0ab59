// Command seqrender projects one sequence's labelled point clouds into the
// camera frame and renders them: one PNG per frame, optionally assembled
// into a streaming-ready MP4.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/roadscene-data/sequence.report/internal/scene"
	"github.com/roadscene-data/sequence.report/internal/scene/kittiio"
	"github.com/roadscene-data/sequence.report/internal/scene/render"
)

var (
	sequenceDir = flag.String("sequence", "", "Sequence directory containing calib.txt, velodyne/ and labels/ (required)")
	labelDir    = flag.String("label-dir", "", "Override for the label directory (default: <sequence>/labels)")
	outputDir   = flag.String("out", "projections", "Directory for rendered frame PNGs")
	videoOut    = flag.String("video", "", "Optional MP4 output path; requires ffmpeg on PATH")
	framerate   = flag.Int("framerate", 10, "Video framerate in frames per second")
	imageWidth  = flag.Int("image-width", scene.DefaultImageWidth, "Camera image width in pixels")
	imageHeight = flag.Int("image-height", scene.DefaultImageHeight, "Camera image height in pixels")
)

func main() {
	flag.Parse()

	if *sequenceDir == "" {
		log.Fatal("missing required -sequence flag")
	}

	paths := kittiio.SequenceDirPaths(*sequenceDir, kittiio.ResolveLabelDir(*sequenceDir, *labelDir))
	calib, err := kittiio.LoadCalibration(paths.CalibFile)
	if err != nil {
		log.Fatalf("load calibration: %v", err)
	}
	frames, err := kittiio.OpenSequence(paths)
	if err != nil {
		log.Fatalf("open sequence: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	params := scene.ProjectionParams{ImageWidth: *imageWidth, ImageHeight: *imageHeight}
	ids := frames.FrameIDs()
	for i := 0; i < frames.Len(); i++ {
		frame, err := frames.Frame(i)
		if err != nil {
			log.Fatalf("load frame %s: %v", ids[i], err)
		}

		projected := scene.ProjectFrame(frame, calib, params)
		img := render.Rasterize(projected, params)

		path := filepath.Join(*outputDir, ids[i]+".png")
		if err := render.WritePNG(path, img); err != nil {
			log.Fatalf("write frame %s: %v", ids[i], err)
		}
	}
	log.Printf("rendered %d frames to %s", frames.Len(), *outputDir)

	if *videoOut != "" {
		opts := render.DefaultVideoOptions()
		opts.Framerate = *framerate
		pattern := filepath.Join(*outputDir, "%06d.png")
		if err := render.EncodeVideo(pattern, *videoOut, opts); err != nil {
			log.Fatalf("encode video: %v", err)
		}
		log.Printf("encoded %s", *videoOut)
	}
}
