package render

import (
	"fmt"
	"os/exec"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoOptions configures video assembly from rendered frame images.
type VideoOptions struct {
	// Framerate of the output, frames per second.
	Framerate int
	// CRF is the libx264 constant rate factor; lower is higher quality.
	CRF int
}

// DefaultVideoOptions matches the 10Hz capture rate of the dataset.
func DefaultVideoOptions() VideoOptions {
	return VideoOptions{Framerate: 10, CRF: 23}
}

// EncodeVideo assembles the PNG frames matching framePattern (an ffmpeg
// image2 pattern such as "frames/%06d.png") into an H.264 MP4 prepared for
// progressive streaming (moov atom up front). ffmpeg must be on PATH.
func EncodeVideo(framePattern, outPath string, opts VideoOptions) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	err := ffmpeg.Input(framePattern, ffmpeg.KwArgs{"framerate": opts.Framerate}).
		Output(outPath, ffmpeg.KwArgs{
			"c:v":      "libx264",
			"crf":      opts.CRF,
			"pix_fmt":  "yuv420p",
			"movflags": "+faststart",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return nil
}
