package scene

// Default image bounds for the KITTI left colour camera.
const (
	DefaultImageWidth  = 1242
	DefaultImageHeight = 375
)

// ProjectionParams configures the image bounds used for clipping projected
// points.
type ProjectionParams struct {
	ImageWidth  int
	ImageHeight int
}

// DefaultProjectionParams returns the bounds of the KITTI left colour
// camera.
func DefaultProjectionParams() ProjectionParams {
	return ProjectionParams{ImageWidth: DefaultImageWidth, ImageHeight: DefaultImageHeight}
}

// Frame is one timestep's raw point cloud with its per-point labels. Points
// and Labels are co-indexed and must have equal length.
type Frame struct {
	Points []Point3
	Labels []PackedLabel
}

// ProjectedFrame is the camera-visible subset of a frame. All four slices
// are co-indexed and of equal length. Points stay in the input sensor frame
// so downstream distance estimates are relative to the sensor origin.
type ProjectedFrame struct {
	Points   []Point3
	Pixels   []Point2
	Semantic []uint16
	Instance []uint16
}

// Len returns the number of retained points.
func (pf ProjectedFrame) Len() int {
	return len(pf.Points)
}

// ProjectFrame transforms sensor-frame points into the camera frame, drops
// everything behind the camera, projects the rest onto the image plane and
// clips to the image bounds.
//
// Points behind the camera must be dropped before the perspective division:
// their projections are undefined and would otherwise alias onto valid
// pixels. The returned 3D points are the original sensor-frame coordinates
// of the survivors, not their camera-frame images.
func ProjectFrame(f Frame, calib Calibration, params ProjectionParams) ProjectedFrame {
	out := ProjectedFrame{}
	if len(f.Points) == 0 {
		return out
	}

	w := float64(params.ImageWidth)
	h := float64(params.ImageHeight)

	for i, p := range f.Points {
		cx, cy, cz := calib.Tr.Apply(p.X, p.Y, p.Z)

		// Front-hemisphere filter: camera looks down +z.
		if cz <= 0 {
			continue
		}

		pu, pv, pw := calib.P2.Apply(cx, cy, cz)
		// pw cannot be zero for cz > 0 with a sane projection matrix,
		// but a degenerate calibration must not turn into a NaN pixel.
		if pw == 0 {
			continue
		}
		u := pu / pw
		v := pv / pw

		if u < 0 || u >= w || v < 0 || v >= h {
			continue
		}

		out.Points = append(out.Points, p)
		out.Pixels = append(out.Pixels, Point2{U: u, V: v})
		out.Semantic = append(out.Semantic, f.Labels[i].Semantic())
		out.Instance = append(out.Instance, f.Labels[i].Instance())
	}

	return out
}
