package kittiio

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

func writePointBin(t *testing.T, path string, points [][4]float32) {
	t.Helper()
	buf := make([]byte, 0, len(points)*16)
	for _, p := range points {
		for _, v := range p {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
			buf = append(buf, b[:]...)
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeLabelBin(t *testing.T, path string, labels []uint32) {
	t.Helper()
	buf := make([]byte, 0, len(labels)*4)
	for _, l := range labels {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], l)
		buf = append(buf, b[:]...)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestReadPoints(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "000000.bin")
	writePointBin(t, binPath, [][4]float32{
		{1.5, -2.25, 3.0, 0.9},
		{0, 0, 10, 0.1},
	})

	points, err := ReadPoints(binPath)
	if err != nil {
		t.Fatalf("ReadPoints: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// Intensity is dropped; xyz survives exactly.
	if points[0] != (scene.Point3{X: 1.5, Y: -2.25, Z: 3.0}) {
		t.Errorf("points[0] = %+v", points[0])
	}
}

func TestReadPointsTruncated(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(binPath, make([]byte, 15), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadPoints(binPath)
	if err == nil || !strings.Contains(err.Error(), "not a multiple of") {
		t.Errorf("expected truncation error, got %v", err)
	}
}

func TestReadLabels(t *testing.T) {
	dir := t.TempDir()
	labelPath := filepath.Join(dir, "000000.label")
	writeLabelBin(t, labelPath, []uint32{10, 5<<16 | 252})

	labels, err := ReadLabels(labelPath)
	if err != nil {
		t.Fatalf("ReadLabels: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[1].Semantic() != 252 || labels[1].Instance() != 5 {
		t.Errorf("labels[1] = semantic %d instance %d", labels[1].Semantic(), labels[1].Instance())
	}
}

func TestReadFrameCountMismatch(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "000000.bin")
	labelPath := filepath.Join(dir, "000000.label")
	writePointBin(t, binPath, [][4]float32{{1, 2, 3, 0}, {4, 5, 6, 0}})
	writeLabelBin(t, labelPath, []uint32{10})

	_, err := ReadFrame(binPath, labelPath)
	if err == nil || !strings.Contains(err.Error(), "2 points but 1 labels") {
		t.Errorf("expected count mismatch error, got %v", err)
	}
}

func TestOpenSequence(t *testing.T) {
	dir := t.TempDir()
	velodyne := filepath.Join(dir, "velodyne")
	labels := filepath.Join(dir, "labels")
	if err := os.MkdirAll(velodyne, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(labels, 0o755); err != nil {
		t.Fatal(err)
	}

	// Written out of order; the reader must sort by id.
	for _, id := range []string{"000001", "000000"} {
		writePointBin(t, filepath.Join(velodyne, id+".bin"), [][4]float32{{1, 2, 3, 0}})
		writeLabelBin(t, filepath.Join(labels, id+".label"), []uint32{40})
	}

	reader, err := OpenSequence(SequenceDirPaths(dir, ""))
	if err != nil {
		t.Fatalf("OpenSequence: %v", err)
	}
	if reader.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", reader.Len())
	}
	ids := reader.FrameIDs()
	if ids[0] != "000000" || ids[1] != "000001" {
		t.Errorf("frame ids not sorted: %v", ids)
	}

	frame, err := reader.Frame(0)
	if err != nil {
		t.Fatalf("Frame(0): %v", err)
	}
	if len(frame.Points) != 1 || frame.Labels[0].Semantic() != 40 {
		t.Errorf("unexpected frame contents: %+v", frame)
	}
}

func TestOpenSequenceEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "velodyne"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := OpenSequence(SequenceDirPaths(dir, ""))
	if err == nil || !strings.Contains(err.Error(), "no .bin frames") {
		t.Errorf("expected empty-sequence error, got %v", err)
	}
}

func TestDiscoverSequences(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"00", "01"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, dir, "poses.txt", "1 0 0 0 0 1 0 0 0 0 1 0\n")
	}
	// A directory without poses.txt is not a sequence.
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0o755); err != nil {
		t.Fatal(err)
	}

	dirs, err := DiscoverSequences(root)
	if err != nil {
		t.Fatalf("DiscoverSequences: %v", err)
	}
	if len(dirs) != 2 {
		t.Fatalf("expected 2 sequences, got %v", dirs)
	}
	if filepath.Base(dirs[0]) != "00" || filepath.Base(dirs[1]) != "01" {
		t.Errorf("sequences not sorted: %v", dirs)
	}
}
