package kittiio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validCalib = `P0: 700 0 600 0 0 700 180 0 0 0 1 0
P1: 700 0 600 -380 0 700 180 0 0 0 1 0
P2: 700 0 600 45 0 700 180 -0.1 0 0 1 0.003
P3: 700 0 600 -330 0 700 180 2 0 0 1 0.003
Tr: 0 -1 0 0 0 0 -1 -0.08 1 0 0 -0.27
`

func TestLoadCalibration(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "calib.txt", validCalib)

	calib, err := LoadCalibration(path)
	if err != nil {
		t.Fatalf("LoadCalibration: %v", err)
	}

	// Tr is homogenised: bottom row [0 0 0 1].
	if calib.Tr[12] != 0 || calib.Tr[13] != 0 || calib.Tr[14] != 0 || calib.Tr[15] != 1 {
		t.Errorf("Tr bottom row not homogenised: %v", calib.Tr[12:])
	}
	if calib.Tr[1] != -1 || calib.Tr[7] != -0.08 {
		t.Errorf("Tr values misplaced: %v", calib.Tr)
	}
	if calib.P2[0] != 700 || calib.P2[3] != 45 || calib.P2[11] != 0.003 {
		t.Errorf("P2 values misplaced: %v", calib.P2)
	}

	// The parsed Tr must behave as the rigid transform it encodes.
	x, y, z := calib.Tr.Apply(1, 0, 0)
	if math.Abs(x-0) > 1e-12 || math.Abs(y-(-0.08)) > 1e-12 || math.Abs(z-0.73) > 1e-12 {
		t.Errorf("Tr.Apply(1,0,0) = (%v,%v,%v)", x, y, z)
	}
}

func TestLoadCalibrationErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing Tr",
			"P2: 700 0 600 45 0 700 180 -0.1 0 0 1 0.003\n",
			`missing key "Tr"`,
		},
		{
			"missing P2",
			"Tr: 0 -1 0 0 0 0 -1 -0.08 1 0 0 -0.27\n",
			`missing key "P2"`,
		},
		{
			"short row",
			"Tr: 1 0 0\nP2: 700 0 600 45 0 700 180 -0.1 0 0 1 0.003\n",
			"has 3 values, want 12",
		},
		{
			"bad float",
			"Tr: 0 -1 0 0 0 0 -1 -0.08 1 0 0 xyz\nP2: 700 0 600 45 0 700 180 -0.1 0 0 1 0.003\n",
			"bad float",
		},
		{
			"non-rigid Tr",
			"Tr: 2 0 0 0 0 2 0 0 0 0 2 0\nP2: 700 0 600 45 0 700 180 -0.1 0 0 1 0.003\n",
			"rigid transform",
		},
	}

	for _, tt := range tests {
		path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".txt", tt.content)
		_, err := LoadCalibration(path)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error = %v, want substring %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	_, err := LoadCalibration(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
