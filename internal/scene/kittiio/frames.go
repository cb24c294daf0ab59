package kittiio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// pointRecordSize is the on-disk size of one velodyne return: four float32
// values (x, y, z, intensity).
const pointRecordSize = 16

// ReadPoints decodes a velodyne .bin file into sensor-frame points. The
// intensity channel is dropped; only xyz feeds the pipeline.
func ReadPoints(path string) ([]scene.Point3, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read point cloud: %w", err)
	}
	if len(raw)%pointRecordSize != 0 {
		return nil, fmt.Errorf("point cloud %s has %d bytes, not a multiple of %d", path, len(raw), pointRecordSize)
	}

	points := make([]scene.Point3, 0, len(raw)/pointRecordSize)
	for off := 0; off < len(raw); off += pointRecordSize {
		points = append(points, scene.Point3{
			X: float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[off:]))),
			Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[off+4:]))),
			Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[off+8:]))),
		})
	}
	return points, nil
}

// ReadLabels decodes a .label file: one packed little-endian uint32 per
// point.
func ReadLabels(path string) ([]scene.PackedLabel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("label file %s has %d bytes, not a multiple of 4", path, len(raw))
	}

	labels := make([]scene.PackedLabel, 0, len(raw)/4)
	for off := 0; off < len(raw); off += 4 {
		labels = append(labels, scene.PackedLabel(binary.LittleEndian.Uint32(raw[off:])))
	}
	return labels, nil
}

// ReadFrame loads a frame's point cloud and labels together and enforces the
// count invariant between them.
func ReadFrame(binPath, labelPath string) (scene.Frame, error) {
	points, err := ReadPoints(binPath)
	if err != nil {
		return scene.Frame{}, err
	}
	labels, err := ReadLabels(labelPath)
	if err != nil {
		return scene.Frame{}, err
	}
	if len(points) != len(labels) {
		return scene.Frame{}, fmt.Errorf("%s: %d points but %d labels", binPath, len(points), len(labels))
	}
	return scene.Frame{Points: points, Labels: labels}, nil
}
