// Package scene implements the analytic core of the sequence statistics
// pipeline: camera projection of labelled point clouds, per-frame instance
// and class aggregation, ego-motion estimation from consecutive poses, and
// sequence-level statistical summaries.
//
// The package is purely computational. File parsing lives in
// internal/scene/kittiio and rendering in internal/scene/render; both sides
// talk to this package through plain slices and small value types so the
// core can be tested without touching disk.
package scene
