// Package inspector draws a debug panel showing one creature's components.
package inspector

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gotchi/components"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 8
	HeaderHeight = 24
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
)

// Section is one page of the panel.
type Section struct {
	Title  string
	Fields []Field
}

// ComponentSection builds a section from a component's inspect tags.
func ComponentSection(title string, component any) Section {
	return Section{Title: title, Fields: ExtractFields(component)}
}

// CounterField shows a counter as a single bar scaled to its max.
func CounterField(name string, c components.Counter) Field {
	return Field{
		Name:    name,
		Value:   c.Value,
		Widget:  WidgetBar,
		Options: map[string]string{"max": strconv.Itoa(c.Max)},
	}
}

// Inspector manages the selected entity and which page is shown.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	page        int

	panelX int32
	panelY int32
}

// NewInspector creates a new inspector docked to the right edge of the screen.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 4,
		panelY: 4,
	}
}

// Select shows the panel for an entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Toggle opens the panel on e, or closes it if already open.
func (ins *Inspector) Toggle(e ecs.Entity) {
	if ins.hasSelected {
		ins.Deselect()
		return
	}
	ins.Select(e)
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// NextPage flips to the next section.
func (ins *Inspector) NextPage() {
	ins.page++
}

// HandleInput processes the close button, Escape and right click.
func (ins *Inspector) HandleInput(mouseX, mouseY float32) {
	if !ins.hasSelected {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	closeX := ins.panelX + PanelWidth - 22
	closeY := ins.panelY + 3
	if int32(mouseX) >= closeX && int32(mouseX) <= closeX+18 &&
		int32(mouseY) >= closeY && int32(mouseY) <= closeY+18 {
		ins.Deselect()
		return
	}

	// Clicking the panel body pages through the sections
	if int32(mouseX) >= ins.panelX && int32(mouseX) <= ins.panelX+PanelWidth &&
		int32(mouseY) >= ins.panelY+HeaderHeight {
		ins.NextPage()
	}
}

// Draw renders the current page if an entity is selected.
func (ins *Inspector) Draw(title string, sections []Section) {
	if !ins.hasSelected || len(sections) == 0 {
		return
	}
	ins.page %= len(sections)
	sec := sections[ins.page]

	panelHeight := ins.calculatePanelHeight(sec)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	header := fmt.Sprintf("%s  %s (%d/%d)", title, sec.Title, ins.page+1, len(sections))
	rl.DrawText(header, ins.panelX+PanelPadding, ins.panelY+5, 14, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 22
	closeY := ins.panelY + 3
	rl.DrawRectangle(closeX, closeY, 18, 18, ColorCloseBtn)
	rl.DrawText("X", closeX+5, closeY+2, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding
	for _, f := range sec.Fields {
		y += DrawField(x, y, f)
	}
}

// calculatePanelHeight sums the widget heights of a section.
func (ins *Inspector) calculatePanelHeight(sec Section) int32 {
	height := int32(HeaderHeight + 2*PanelPadding)
	for _, f := range sec.Fields {
		height += fieldHeight(f)
	}
	return height
}

// fieldHeight mirrors the row heights returned by the Draw* widgets.
func fieldHeight(f Field) int32 {
	switch f.Widget {
	case WidgetBar:
		if _, ok := GetFloatValue(f.Value); ok {
			return 18
		}
	case WidgetAngle:
		if _, ok := GetFloatValue(f.Value); ok {
			return 44
		}
	case WidgetBool:
		if _, ok := f.Value.(bool); ok {
			return 18
		}
	}
	return 20
}
