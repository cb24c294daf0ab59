package scene

import (
	"math"
	"sort"
)

// Instance is one physical object visible in a frame, derived from the
// points sharing a nonzero instance id.
type Instance struct {
	Class           string  `json:"class"`
	InstanceID      int     `json:"instance_id"`
	SpatialLocation string  `json:"spatial_location"`
	Distance        float64 `json:"distance"`
}

// ClassPercentages returns the per-class share of a projected frame's
// points, in percent. A frame with no points yields an empty map rather than
// a division by zero.
func ClassPercentages(pf ProjectedFrame) map[string]float64 {
	total := pf.Len()
	pct := make(map[string]float64)
	if total == 0 {
		return pct
	}

	counts := make(map[uint16]int)
	for _, id := range pf.Semantic {
		counts[id]++
	}
	for id, n := range counts {
		pct[ClassName(id)] = float64(n) * 100.0 / float64(total)
	}
	return pct
}

// UniqueClasses returns the class names present in the percentage map in
// sorted order.
func UniqueClasses(pct map[string]float64) []string {
	names := make([]string, 0, len(pct))
	for name := range pct {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instances groups a projected frame's points by nonzero instance id and
// derives one Instance per group: its class, its 3x3 spatial bucket from the
// mean pixel position, and the distance to its nearest point.
//
// An instance id should map to a single semantic class. Mixed-class groups
// do occur in predicted labels; the first observed point's class is taken so
// the result is deterministic. Instances are returned in ascending id order.
func Instances(pf ProjectedFrame, params ProjectionParams) []Instance {
	type group struct {
		class      uint16
		sumU, sumV float64
		minDist    float64
		count      int
	}

	groups := make(map[uint16]*group)
	for i, inst := range pf.Instance {
		if inst == 0 {
			// Reserved: point belongs to no labelled instance.
			continue
		}
		g, ok := groups[inst]
		if !ok {
			g = &group{class: pf.Semantic[i], minDist: math.Inf(1)}
			groups[inst] = g
		}
		g.sumU += pf.Pixels[i].U
		g.sumV += pf.Pixels[i].V
		if d := pf.Points[i].Norm(); d < g.minDist {
			g.minDist = d
		}
		g.count++
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	instances := make([]Instance, 0, len(ids))
	for _, id := range ids {
		g := groups[uint16(id)]
		meanU := g.sumU / float64(g.count)
		meanV := g.sumV / float64(g.count)
		instances = append(instances, Instance{
			Class:           ClassName(g.class),
			InstanceID:      id,
			SpatialLocation: SpatialLocation(meanU, meanV, params),
			Distance:        g.minDist,
		})
	}
	return instances
}

// SpatialLocation buckets an image position into a 3x3 grid and names the
// bucket "top-left" through "bottom-right". Boundaries use strict less-than
// comparisons against w/3 and 2w/3 (and the same for height).
func SpatialLocation(u, v float64, params ProjectionParams) string {
	w := float64(params.ImageWidth)
	h := float64(params.ImageHeight)

	var horizontal string
	switch {
	case u < w/3:
		horizontal = "left"
	case u < 2*w/3:
		horizontal = "center"
	default:
		horizontal = "right"
	}

	var vertical string
	switch {
	case v < h/3:
		vertical = "top"
	case v < 2*h/3:
		vertical = "middle"
	default:
		vertical = "bottom"
	}

	return vertical + "-" + horizontal
}

// CountObjects counts instances per countable class group. Every group gets
// an entry even when its count is zero.
func CountObjects(instances []Instance, groups []ClassGroup) map[string]int {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Name] = 0
	}
	for _, inst := range instances {
		for _, g := range groups {
			if g.Contains(inst.Class) {
				counts[g.Name]++
			}
		}
	}
	return counts
}
