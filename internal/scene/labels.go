package scene

import "fmt"

// PackedLabel is one raw 32-bit label from a .label file. The low 16 bits
// carry the semantic class id, the high 16 bits the instance id (0 means
// "no instance").
type PackedLabel uint32

// Semantic returns the 16-bit semantic class id.
func (l PackedLabel) Semantic() uint16 {
	return uint16(l & 0xFFFF)
}

// Instance returns the 16-bit instance id.
func (l PackedLabel) Instance() uint16 {
	return uint16(l >> 16)
}

// Pack combines a semantic class id and an instance id into a raw label.
func Pack(semantic, instance uint16) PackedLabel {
	return PackedLabel(uint32(instance)<<16 | uint32(semantic))
}

// classNames is the canonical SemanticKITTI semantic id to name table. It is
// built once at init and never extended at runtime; ids outside the table
// render as "unknown_<id>".
var classNames = map[uint16]string{
	0:   "unlabeled",
	1:   "outlier",
	10:  "car",
	11:  "bicycle",
	13:  "bus",
	15:  "motorcycle",
	16:  "on-rails",
	18:  "truck",
	20:  "other-vehicle",
	30:  "person",
	31:  "bicyclist",
	32:  "motorcyclist",
	40:  "road",
	44:  "parking",
	48:  "sidewalk",
	49:  "other-ground",
	50:  "building",
	51:  "fence",
	52:  "vegetation",
	60:  "trunk",
	61:  "terrain",
	70:  "pole",
	71:  "traffic-sign",
	80:  "other-object",
	252: "moving-car",
	253: "moving-bicyclist",
	254: "moving-person",
	255: "moving-motorcyclist",
	256: "moving-on-rails",
	257: "moving-bus",
	258: "moving-truck",
	259: "moving-other-vehicle",
}

// ClassName maps a semantic id to its canonical name. Unknown ids are kept
// rather than dropped so future label-set extensions survive aggregation.
func ClassName(id uint16) string {
	if name, ok := classNames[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", id)
}

// ClassGroup names a set of class names counted together, e.g. parked and
// moving cars under one "cars" count.
type ClassGroup struct {
	Name    string
	Classes []string
}

// Contains reports whether the group counts the given class name.
func (g ClassGroup) Contains(class string) bool {
	for _, c := range g.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// DefaultCountableGroups returns the object count groups reported in frame
// summaries by default: cars (static + moving) and persons (static + moving).
func DefaultCountableGroups() []ClassGroup {
	return []ClassGroup{
		{Name: "cars", Classes: []string{"car", "moving-car"}},
		{Name: "persons", Classes: []string{"person", "moving-person"}},
	}
}
