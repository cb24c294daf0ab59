package kittiio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// LoadPoses parses a poses.txt file: one pose per line as 12 floats forming
// a row-major 3x4 matrix, homogenised to 4x4 on load.
func LoadPoses(path string) (scene.Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open poses: %w", err)
	}
	defer f.Close()

	var traj scene.Trajectory
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values, err := parseFloats(line)
		if err != nil {
			return nil, fmt.Errorf("poses line %d: %w", lineNo, err)
		}
		if len(values) != 12 {
			return nil, fmt.Errorf("poses line %d has %d values, want 12", lineNo, len(values))
		}
		traj = append(traj, scene.Pose{T: homogenize(values)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read poses: %w", err)
	}
	if len(traj) == 0 {
		return nil, fmt.Errorf("poses file %s is empty", path)
	}
	return traj, nil
}

// LoadTimes parses a times.txt file: one timestamp (seconds) per line, in
// frame order.
func LoadTimes(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open times: %w", err)
	}
	defer f.Close()

	var times []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("times line %d: %w", lineNo, err)
		}
		times = append(times, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read times: %w", err)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("times file %s is empty", path)
	}
	return times, nil
}
