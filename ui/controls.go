package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button identifies an on-screen button.
type Button int

const (
	ButtonFeed Button = iota // increment the selected attribute
	ButtonNext
	ButtonDark
	ButtonSound
	ButtonPause
	numButtons
)

var buttonLabels = [numButtons]string{"Feed", "Next", "Dark", "Sound", "Pause"}

// ControlBar is a row of raygui buttons along the bottom of the screen.
type ControlBar struct {
	Theme   Theme
	x, y    int32
	visible bool
}

// NewControlBar creates a bar anchored to the bottom-left of the screen.
func NewControlBar(screenWidth, screenHeight int32) *ControlBar {
	t := DefaultTheme()
	return &ControlBar{
		Theme:   t,
		x:       t.Padding,
		y:       screenHeight - t.ButtonH - t.Padding,
		visible: true,
	}
}

// Toggle switches bar visibility.
func (c *ControlBar) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Top returns the y coordinate above the bar.
func (c *ControlBar) Top() int32 {
	return c.y - c.Theme.FontSize - c.Theme.Padding
}

// Draw renders the buttons and returns the ones clicked this frame.
func (c *ControlBar) Draw() []Button {
	if !c.visible {
		return nil
	}

	var pressed []Button
	x := c.x
	for b := range numButtons {
		bounds := rl.Rectangle{
			X:      float32(x),
			Y:      float32(c.y),
			Width:  float32(c.Theme.ButtonW),
			Height: float32(c.Theme.ButtonH),
		}
		if gui.Button(bounds, buttonLabels[b]) {
			pressed = append(pressed, b)
		}
		x += c.Theme.ButtonW + c.Theme.Padding
	}
	return pressed
}
