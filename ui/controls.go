package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/creature"
)

// ControlsData is what the controls panel shows for one frame.
type ControlsData struct {
	Overlays *OverlayRegistry
	Active   creature.Kind
	Paused   bool
}

// ControlsAction reports a row the player clicked this frame.
type ControlsAction struct {
	Toggle   OverlayID // overlay to flip, empty if none
	Select   bool
	Creature creature.Kind
}

type rowKind int

const (
	rowTitle rowKind = iota
	rowHeader
	rowCreature
	rowOverlay
	rowStatus
)

// controlRow is one line of the panel.
type controlRow struct {
	kind     rowKind
	label    string
	key      string
	on       bool
	overlay  OverlayID
	creature creature.Kind
}

// controlRows lays out the panel top to bottom: creatures, overlays grouped
// by category, then the run state.
func controlRows(data ControlsData) []controlRow {
	rows := []controlRow{
		{kind: rowTitle, label: "Controls"},
		{kind: rowHeader, label: "Creature"},
	}
	for i, k := range creature.Kinds {
		rows = append(rows, controlRow{
			kind:     rowCreature,
			label:    displayName(k),
			key:      fmt.Sprint(i + 1),
			on:       k == data.Active,
			creature: k,
		})
	}

	if data.Overlays != nil {
		for _, cat := range data.Overlays.Categories() {
			rows = append(rows, controlRow{kind: rowHeader, label: categoryLabel(cat)})
			for _, desc := range data.Overlays.ByCategory(cat) {
				rows = append(rows, controlRow{
					kind:    rowOverlay,
					label:   desc.Name,
					key:     desc.KeyLabel,
					on:      data.Overlays.IsEnabled(desc.ID),
					overlay: desc.ID,
				})
			}
		}
	}

	status := "Running"
	if data.Paused {
		status = "Paused"
	}
	return append(rows, controlRow{kind: rowStatus, label: status, key: "Space", on: !data.Paused})
}

// ControlsPanel renders the left-side panel listing creatures and overlay
// toggles. Creature and overlay rows can be clicked.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Bounds returns the area covered on the last draw, empty when hidden.
func (c *ControlsPanel) Bounds() rl.Rectangle {
	if !c.visible {
		return rl.Rectangle{}
	}
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height)}
}

// rowHeight returns the vertical space taken by a row.
func (c *ControlsPanel) rowHeight(row controlRow) int32 {
	switch row.kind {
	case rowTitle:
		return c.renderer.Theme.LineHeight + 4
	case rowHeader:
		return c.renderer.Theme.LineHeight + 2
	default:
		return c.renderer.Theme.LineHeight
	}
}

// Draw renders the panel and returns any row clicked this frame.
func (c *ControlsPanel) Draw(data ControlsData) ControlsAction {
	var action ControlsAction
	if !c.visible {
		return action
	}

	r := c.renderer
	padding := r.Theme.Padding
	rows := controlRows(data)

	c.height = padding * 2
	for _, row := range rows {
		c.height += c.rowHeight(row)
	}
	r.DrawPanel(c.x, c.y, c.width, c.height)

	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft)

	x := c.x + padding
	width := c.width - padding*2
	y := c.y + padding
	for _, row := range rows {
		h := c.rowHeight(row)
		switch row.kind {
		case rowTitle:
			rl.DrawText(row.label, x, y, 16, rl.White)
		case rowHeader:
			rl.DrawText(row.label, x, y+2, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		default:
			c.drawToggle(x, y, row, width)
		}

		hit := rl.Rectangle{X: float32(c.x), Y: float32(y), Width: float32(c.width), Height: float32(h)}
		if clicked && rl.CheckCollisionPointRec(mouse, hit) {
			switch row.kind {
			case rowCreature:
				action.Select = true
				action.Creature = row.creature
			case rowOverlay:
				action.Toggle = row.overlay
			}
		}
		y += h
	}
	return action
}

// drawToggle draws a status square, the row label and its key binding.
func (c *ControlsPanel) drawToggle(x, y int32, row controlRow, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if row.on {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(row.label, x+14, y, r.Theme.FontSize, nameColor)

	if row.key != "" {
		keyText := fmt.Sprintf("[%s]", row.key)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// displayName capitalises a creature kind for labels.
func displayName(k creature.Kind) string {
	s := k.String()
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	case "panels":
		return "Panels"
	default:
		return cat
	}
}
