package kittiio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// LoadCalibration parses a calib.txt file of "key: v0 v1 ..." lines and
// returns the Tr (sensor to camera, homogenised to 4x4) and P2 (camera
// projection) matrices. A missing or short Tr or P2 entry is a fatal
// per-sequence error.
func LoadCalibration(path string) (scene.Calibration, error) {
	f, err := os.Open(path)
	if err != nil {
		return scene.Calibration{}, fmt.Errorf("open calibration: %w", err)
	}
	defer f.Close()

	entries := make(map[string][]float64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			return scene.Calibration{}, fmt.Errorf("calibration line %q has no key", line)
		}
		values, err := parseFloats(rest)
		if err != nil {
			return scene.Calibration{}, fmt.Errorf("calibration key %q: %w", key, err)
		}
		entries[strings.TrimSpace(key)] = values
	}
	if err := scanner.Err(); err != nil {
		return scene.Calibration{}, fmt.Errorf("read calibration: %w", err)
	}

	tr, err := matrixEntry(entries, "Tr")
	if err != nil {
		return scene.Calibration{}, err
	}
	p2, err := matrixEntry(entries, "P2")
	if err != nil {
		return scene.Calibration{}, err
	}

	calib := scene.Calibration{
		Tr: homogenize(tr),
		P2: mat34(p2),
	}
	if err := calib.Validate(); err != nil {
		return scene.Calibration{}, err
	}
	return calib, nil
}

func matrixEntry(entries map[string][]float64, key string) ([]float64, error) {
	values, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("calibration is missing key %q", key)
	}
	if len(values) != 12 {
		return nil, fmt.Errorf("calibration key %q has %d values, want 12", key, len(values))
	}
	return values, nil
}

func mat34(values []float64) scene.Mat34 {
	var m scene.Mat34
	copy(m[:], values)
	return m
}

// homogenize extends a 3x4 row-major matrix with the [0 0 0 1] bottom row.
func homogenize(values []float64) scene.Mat4 {
	var m scene.Mat4
	copy(m[:12], values)
	m[15] = 1
	return m
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}
