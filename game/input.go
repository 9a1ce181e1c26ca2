package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gotchi/ui"
)

// handleInput processes keyboard input.
//
//	Enter/F   increment the selected attribute
//	Tab/N     next attribute
//	L         toggle dark
//	S         toggle sound
//	Space     pause
//	, .       slower / faster
//	I         inspector (click the panel to page)
//	H         hide the button bar
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyF) {
		g.applyInput()
	}
	if rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyN) {
		g.selectNext()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.manual.ToggleDark()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.manual.ToggleSound()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyI) {
		g.inspector.Toggle(g.focus)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.controls.Toggle()
	}

	mousePos := rl.GetMousePosition()
	g.inspector.HandleInput(mousePos.X, mousePos.Y)
}

// handleButtons applies the buttons clicked while drawing the control bar.
func (g *Game) handleButtons(pressed []ui.Button) {
	for _, b := range pressed {
		switch b {
		case ui.ButtonFeed:
			g.applyInput()
		case ui.ButtonNext:
			g.selectNext()
		case ui.ButtonDark:
			g.manual.ToggleDark()
		case ui.ButtonSound:
			g.manual.ToggleSound()
		case ui.ButtonPause:
			g.togglePause()
		}
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.logWorldState()
}
