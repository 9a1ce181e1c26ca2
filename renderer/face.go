// Package renderer draws the creature's face, header and level bar with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/face"
	"github.com/pthm-cable/gotchi/mood"
)

// FaceRenderer draws one creature. It only reads the snapshot it is given.
type FaceRenderer struct {
	layout  face.Layout
	palette Palette
}

// NewFaceRenderer creates a renderer for the given screen size.
func NewFaceRenderer(width, height int32) *FaceRenderer {
	return &FaceRenderer{
		layout:  face.NewLayout(width, height),
		palette: DefaultPalette(),
	}
}

// Layout returns the screen layout in use.
func (r *FaceRenderer) Layout() face.Layout {
	return r.layout
}

// Draw renders the whole face for a snapshot.
func (r *FaceRenderer) Draw(name string, snap creature.Snapshot, eyes *face.Eyes) {
	m := mood.Classify(snap.Get(creature.Happiness), snap.Get(creature.Arousal), snap.Asleep, snap.Alive)
	fg := r.palette.Foreground(snap.Env)

	rl.ClearBackground(r.palette.Background(snap.Env))
	r.DrawHeader(snap.Selected.String(), snap.Current().Value, fg)
	r.DrawLevel(snap, r.palette.Mood(m))
	r.DrawEyes(eyes, fg)

	if name != "" {
		size := 5 * r.layout.Scale
		w := rl.MeasureText(name, size)
		rl.DrawText(name, r.layout.Face.X+r.layout.Face.W-w-2*r.layout.Scale,
			r.layout.Face.Y+r.layout.Face.H-size-2*r.layout.Scale, size, fg)
	}
}

// DrawHeader renders "name: value" across the top strip.
func (r *FaceRenderer) DrawHeader(name string, value int, color rl.Color) {
	h := r.layout.Header
	size := h.H - 2*r.layout.Scale
	rl.DrawText(face.HeaderText(name, value), h.X+r.layout.Scale, h.Y+r.layout.Scale, size, color)
}

// DrawLevel renders the selected attribute as a bar growing up from the bottom.
func (r *FaceRenderer) DrawLevel(snap creature.Snapshot, color rl.Color) {
	l := r.layout.Levels
	level := r.layout.LevelHeight(snap.Current())
	barW := max(l.W/2, 1)
	x := l.X + (l.W-barW)/2
	rl.DrawRectangle(x, l.Y+l.H-level, barW, level, color)
	rl.DrawRectangleLines(x, l.Y, barW, l.H, rl.Fade(color, 0.4))
}

// DrawEyes renders the eyes in their current state.
func (r *FaceRenderer) DrawEyes(eyes *face.Eyes, color rl.Color) {
	left, right := r.layout.EyeCenters()
	for _, c := range []face.Point{left, right} {
		switch {
		case eyes.State == face.EyesDead:
			r.drawCross(c, color)
		case eyes.Closed():
			rad := r.layout.EyeRadius()
			thick := float32(r.layout.Scale)
			rl.DrawLineEx(
				rl.Vector2{X: float32(c.X - rad), Y: float32(c.Y)},
				rl.Vector2{X: float32(c.X + rad), Y: float32(c.Y)},
				thick, color)
		default:
			rl.DrawCircleLines(c.X, c.Y, float32(r.layout.EyeRadius()), color)
			off := r.layout.PupilOffset(eyes.Gaze)
			rl.DrawCircle(c.X+off.X, c.Y+off.Y, float32(r.layout.PupilRadius()), color)
		}
	}
}

func (r *FaceRenderer) drawCross(c face.Point, color rl.Color) {
	s := float32(r.layout.DeadEyeSize())
	x, y := float32(c.X), float32(c.Y)
	thick := float32(r.layout.Scale)
	rl.DrawLineEx(rl.Vector2{X: x - s, Y: y - s}, rl.Vector2{X: x + s, Y: y + s}, thick, color)
	rl.DrawLineEx(rl.Vector2{X: x + s, Y: y - s}, rl.Vector2{X: x - s, Y: y + s}, thick, color)
}
