// Package ui draws the status line and the on-screen button bar.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	TextColor   rl.Color
	MutedColor  rl.Color
	AlertColor  rl.Color
	FontSize    int32
	Padding     int32
	ButtonW     int32
	ButtonH     int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		TextColor:   rl.LightGray,
		MutedColor:  rl.Gray,
		AlertColor:  rl.Yellow,
		FontSize:    10,
		Padding:     4,
		ButtonW:     56,
		ButtonH:     18,
	}
}
