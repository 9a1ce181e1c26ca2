package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the data shown on the status line.
type HUDData struct {
	Tick       int32
	Speed      int
	FPS        int32
	Paused     bool
	Alive      int
	Population int
	Dark       bool
	Sound      bool
	Mood       string
	Hungry     bool
	Lonely     bool
}

// HUD renders the status line above the button bar.
type HUD struct {
	Theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{Theme: DefaultTheme()}
}

// StatusText formats the status line.
func StatusText(d HUDData) string {
	env := "light"
	if d.Dark {
		env = "dark"
	}
	if d.Sound {
		env += "+sound"
	}
	s := fmt.Sprintf("t=%d %dx %dfps | %d/%d alive | %s | %s", d.Tick, d.Speed, d.FPS, d.Alive, d.Population, env, d.Mood)
	if d.Hungry {
		s += " hungry"
	}
	if d.Lonely {
		s += " lonely"
	}
	if d.Paused {
		s += " | PAUSED"
	}
	return s
}

// Draw renders the status line at y.
func (h *HUD) Draw(y int32, data HUDData) {
	color := h.Theme.TextColor
	if data.Paused || data.Hungry || data.Lonely {
		color = h.Theme.AlertColor
	}
	rl.DrawText(StatusText(data), h.Theme.Padding, y, h.Theme.FontSize, color)
}
