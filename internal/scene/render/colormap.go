// Package render turns projected frames into images and videos: each
// retained point becomes one pixel coloured by its semantic class. The
// output of Rasterize is a plain RGBA buffer, so callers can hand it to any
// encoder; WritePNG and EncodeVideo cover the two the pipeline ships with.
package render

import "image/color"

// colormap maps semantic class ids to display colours. Ids outside the
// table render black, same as unlabeled.
var colormap = map[uint16]color.RGBA{
	0:   {0, 0, 0, 255},       // unlabeled
	1:   {255, 255, 255, 255}, // outlier
	10:  {255, 0, 0, 255},     // car
	11:  {255, 128, 0, 255},   // bicycle
	13:  {255, 255, 0, 255},   // bus
	15:  {128, 0, 255, 255},   // motorcycle
	16:  {255, 0, 255, 255},   // on-rails
	18:  {0, 255, 255, 255},   // truck
	20:  {128, 128, 0, 255},   // other-vehicle
	30:  {0, 0, 255, 255},     // person
	31:  {0, 255, 0, 255},     // bicyclist
	32:  {255, 255, 255, 255}, // motorcyclist
	40:  {128, 0, 0, 255},     // road
	44:  {128, 128, 128, 255}, // parking
	48:  {0, 128, 128, 255},   // sidewalk
	49:  {128, 0, 128, 255},   // other-ground
	50:  {0, 128, 0, 255},     // building
	51:  {128, 128, 128, 255}, // fence
	52:  {0, 0, 128, 255},     // vegetation
	60:  {128, 0, 0, 255},     // trunk
	61:  {0, 128, 128, 255},   // terrain
	70:  {0, 0, 255, 255},     // pole
	71:  {255, 255, 0, 255},   // traffic-sign
	80:  {255, 255, 255, 255}, // other-object
	252: {255, 0, 0, 255},     // moving-car
	253: {255, 128, 0, 255},   // moving-bicyclist
	254: {0, 0, 255, 255},     // moving-person
	255: {0, 255, 0, 255},     // moving-motorcyclist
	256: {255, 0, 255, 255},   // moving-on-rails
	257: {255, 255, 0, 255},   // moving-bus
	258: {255, 255, 0, 255},   // moving-truck
	259: {255, 0, 255, 255},   // moving-other-vehicle
}

// ClassColor returns the display colour for a semantic class id.
func ClassColor(id uint16) color.RGBA {
	if c, ok := colormap[id]; ok {
		return c
	}
	return color.RGBA{0, 0, 0, 255}
}
