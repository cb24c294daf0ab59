package kittiio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// SequencePaths locates a sequence's input files. CalibFile, PosesFile and
// TimesFile are single files; VelodyneDir and LabelDir hold one .bin and one
// .label file per frame, named by zero-padded frame id.
type SequencePaths struct {
	CalibFile   string
	PosesFile   string
	TimesFile   string
	VelodyneDir string
	LabelDir    string
}

// ResolveLabelDir resolves a label directory override against a sequence
// directory. Empty selects "<sequence>/labels", a relative name resolves
// inside the sequence directory so one flag can serve every sequence in a
// dataset, and an absolute path is used as-is.
func ResolveLabelDir(sequenceDir, labelDir string) string {
	switch {
	case labelDir == "":
		return filepath.Join(sequenceDir, "labels")
	case filepath.IsAbs(labelDir):
		return labelDir
	default:
		return filepath.Join(sequenceDir, labelDir)
	}
}

// SequenceDirPaths returns the conventional file layout under a single
// sequence directory. labelDir overrides the label location when predictions
// live outside the sequence directory; pass "" for the default.
func SequenceDirPaths(sequenceDir, labelDir string) SequencePaths {
	if labelDir == "" {
		labelDir = filepath.Join(sequenceDir, "labels")
	}
	return SequencePaths{
		CalibFile:   filepath.Join(sequenceDir, "calib.txt"),
		PosesFile:   filepath.Join(sequenceDir, "poses.txt"),
		TimesFile:   filepath.Join(sequenceDir, "times.txt"),
		VelodyneDir: filepath.Join(sequenceDir, "velodyne"),
		LabelDir:    labelDir,
	}
}

// FrameReader serves frames from a sequence's velodyne and label
// directories. It implements scene.FrameSource.
type FrameReader struct {
	velodyneDir string
	labelDir    string
	ids         []string
}

// OpenSequence enumerates the frame files under the sequence's velodyne
// directory and prepares a reader over them. Frames are ordered by id.
func OpenSequence(paths SequencePaths) (*FrameReader, error) {
	entries, err := os.ReadDir(paths.VelodyneDir)
	if err != nil {
		return nil, fmt.Errorf("list velodyne dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".bin") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".bin"))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no .bin frames under %s", paths.VelodyneDir)
	}
	sort.Strings(ids)

	return &FrameReader{
		velodyneDir: paths.VelodyneDir,
		labelDir:    paths.LabelDir,
		ids:         ids,
	}, nil
}

// Len returns the number of frames in the sequence.
func (r *FrameReader) Len() int {
	return len(r.ids)
}

// FrameID returns frame i's on-disk id, e.g. "000042".
func (r *FrameReader) FrameID(i int) string {
	return r.ids[i]
}

// Frame loads frame i's point cloud and labels.
func (r *FrameReader) Frame(i int) (scene.Frame, error) {
	id := r.ids[i]
	return ReadFrame(
		filepath.Join(r.velodyneDir, id+".bin"),
		filepath.Join(r.labelDir, id+".label"),
	)
}

// FrameIDs returns the ordered frame ids, e.g. for naming rendered images.
func (r *FrameReader) FrameIDs() []string {
	return r.ids
}

// DiscoverSequences lists the sequence directories under a dataset root
// (directories containing a poses.txt), sorted by name.
func DiscoverSequences(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list dataset root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if _, err := os.Stat(filepath.Join(dir, "poses.txt")); err == nil {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
