package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/inspector"
	"github.com/pthm-cable/gotchi/mood"
	"github.com/pthm-cable/gotchi/ui"
)

// Draw renders the displayed creature, the status line and the controls.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	pet := g.petMap.Get(g.focus)
	ident := g.idMap.Get(g.focus)
	if pet == nil || ident == nil {
		rl.ClearBackground(rl.Black)
		return
	}
	snap := pet.Creature.Snapshot()

	g.faceRenderer.Draw(ident.Name, snap, g.eyes)

	data := g.hudData(snap)
	data.FPS = rl.GetFPS()
	g.hud.Draw(g.controls.Top(), data)
	g.handleButtons(g.controls.Draw())

	g.inspector.Draw(ident.Name, g.inspectorSections(snap))
}

// hudData fills the status line for the displayed creature. The caretaker
// thresholds decide when it reads as hungry or lonely.
func (g *Game) hudData(snap creature.Snapshot) ui.HUDData {
	hungry, lonely := mood.Wants(snap.Get(creature.Energy), snap.Get(creature.Attention),
		g.cfg.Caretaker.FeedBelow, g.cfg.Caretaker.PlayBelow)
	return ui.HUDData{
		Tick:       g.tick,
		Speed:      g.stepsPerUpdate,
		Paused:     g.paused,
		Alive:      g.aliveCount,
		Population: int(g.nextID),
		Dark:       snap.Env.Dark,
		Sound:      snap.Env.Sound,
		Mood:       string(mood.Classify(snap.Get(creature.Happiness), snap.Get(creature.Arousal), snap.Asleep, snap.Alive)),
		Hungry:     hungry && snap.Alive,
		Lonely:     lonely && snap.Alive,
	}
}

// inspectorSections builds the inspector pages for the displayed creature.
func (g *Game) inspectorSections(snap creature.Snapshot) []inspector.Section {
	attrs := inspector.Section{Title: "attributes"}
	for _, a := range creature.DisplayOrder() {
		attrs.Fields = append(attrs.Fields, inspector.CounterField(a.String(), snap.Get(a)))
	}

	sections := []inspector.Section{
		attrs,
		inspector.ComponentSection("sleep", snap.Sleep),
		inspector.ComponentSection("environment", snap.Env),
		inspector.ComponentSection("eyes", *g.eyes),
	}
	if care := g.careMap.Get(g.focus); care != nil {
		sections = append(sections, inspector.ComponentSection("care", *care))
	}
	if ident := g.idMap.Get(g.focus); ident != nil {
		sections = append(sections, inspector.ComponentSection("identity", *ident))
	}
	return sections
}
