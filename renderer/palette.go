package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/mood"
)

// Palette maps creature state to display colours.
type Palette struct {
	Content  rl.Color
	Excited  rl.Color
	Bored    rl.Color
	Stressed rl.Color
	Asleep   rl.Color
	Dead     rl.Color

	Day   rl.Color
	Night rl.Color
	Ink   rl.Color
}

// DefaultPalette returns the standard colours.
func DefaultPalette() Palette {
	return Palette{
		Content:  rl.Color{R: 120, G: 200, B: 140, A: 255},
		Excited:  rl.Color{R: 250, G: 190, B: 60, A: 255},
		Bored:    rl.Color{R: 120, G: 140, B: 200, A: 255},
		Stressed: rl.Color{R: 230, G: 90, B: 80, A: 255},
		Asleep:   rl.Color{R: 90, G: 80, B: 150, A: 255},
		Dead:     rl.Color{R: 110, G: 110, B: 110, A: 255},

		Day:   rl.Color{R: 235, G: 235, B: 225, A: 255},
		Night: rl.Color{R: 25, G: 25, B: 40, A: 255},
		Ink:   rl.Color{R: 20, G: 20, B: 20, A: 255},
	}
}

// Mood returns the accent colour for a mood.
func (p Palette) Mood(m mood.Mood) rl.Color {
	switch m {
	case mood.Content:
		return p.Content
	case mood.Excited:
		return p.Excited
	case mood.Bored:
		return p.Bored
	case mood.Stressed:
		return p.Stressed
	case mood.Asleep:
		return p.Asleep
	default:
		return p.Dead
	}
}

// Background returns the backdrop for the environment.
func (p Palette) Background(env components.Environment) rl.Color {
	if env.Dark {
		return p.Night
	}
	return p.Day
}

// Foreground returns the line colour that contrasts with the backdrop.
func (p Palette) Foreground(env components.Environment) rl.Color {
	if env.Dark {
		return p.Day
	}
	return p.Ink
}
