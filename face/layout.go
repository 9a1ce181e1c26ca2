package face

import (
	"fmt"
	"math"

	"github.com/pthm-cable/gotchi/components"
)

// Rect is a screen region in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int32
}

// Base display geometry; everything scales with the screen width.
const (
	baseWidth    = 128
	headerHeight = 8
	levelsWidth  = 8
	eyeRadius    = 20
	deadEyeSize  = 10
	eyeDistance  = 40
	pupilRadius  = 5
	eyeOffsetX   = 50
	eyeOffsetY   = 30
)

// Layout splits the screen into a header strip, a level bar on the left and
// the eyes area.
type Layout struct {
	Scale  int32
	Header Rect
	Levels Rect
	Face   Rect
}

// NewLayout builds a layout for the screen size.
func NewLayout(width, height int32) Layout {
	s := max(width/baseWidth, 1)
	return Layout{
		Scale:  s,
		Header: Rect{X: 0, Y: 0, W: width, H: headerHeight * s},
		Levels: Rect{X: 0, Y: headerHeight * s, W: levelsWidth * s, H: height - headerHeight*s},
		Face:   Rect{X: levelsWidth * s, Y: headerHeight * s, W: width - levelsWidth*s, H: height - headerHeight*s},
	}
}

// EyeCenters returns the centers of the left and right eye.
func (l Layout) EyeCenters() (left, right Point) {
	left = Point{X: l.Face.X + eyeOffsetX*l.Scale, Y: l.Face.Y + eyeOffsetY*l.Scale}
	right = Point{X: left.X + eyeDistance*l.Scale, Y: left.Y}
	return left, right
}

// EyeRadius returns the scaled eye radius.
func (l Layout) EyeRadius() int32 { return eyeRadius * l.Scale }

// PupilRadius returns the scaled pupil radius.
func (l Layout) PupilRadius() int32 { return pupilRadius * l.Scale }

// DeadEyeSize returns the scaled half-size of the crosses drawn for dead eyes.
func (l Layout) DeadEyeSize() int32 { return deadEyeSize * l.Scale }

// PupilOffset returns the pupil displacement from the eye center for a gaze.
func (l Layout) PupilOffset(gaze float64) Point {
	r := float64(l.EyeRadius()) / 2
	return Point{
		X: int32(math.Sin(gaze) * r),
		Y: int32(math.Cos(gaze) * r),
	}
}

// LevelHeight returns the height of the level bar for a counter.
func (l Layout) LevelHeight(c components.Counter) int32 {
	return int32(c.Scaled(int(l.Levels.H)))
}

// HeaderText formats the header line.
func HeaderText(name string, value int) string {
	return fmt.Sprintf("%s: %d", name, value)
}
