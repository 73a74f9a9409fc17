package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/components"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/systems"
	"github.com/pthm-cable/wriggle/telemetry"
)

// InspectorData holds all the data needed to render the inspector panel.
type InspectorData struct {
	Controller creature.Controller
	Pose       components.Pose
	Session    *telemetry.Session // running total for this creature, may be nil
}

// Inspector renders the active creature's inspection panel.
type Inspector struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		sections: PoseSections(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for the given data and returns the y
// position below its content.
func (ins *Inspector) Draw(data InspectorData) int32 {
	if data.Controller == nil {
		return ins.y
	}
	r := ins.renderer
	padding := r.Theme.Padding
	contentWidth := ins.width - padding*2

	r.DrawPanel(ins.x, ins.y, ins.width, ins.height(data))

	x := ins.x + padding
	y := ins.y + padding

	rl.DrawText(data.Controller.Kind().String(), x, y, 18, rl.White)
	if data.Pose.Idle {
		rl.DrawText("idle", x+contentWidth-30, y+4, r.Theme.FontSize, rl.Gray)
	}
	y = r.DrawSpacer(y+20, 4)

	pose := data.Pose
	for _, sd := range ins.sections {
		y = r.DrawSection(x, y, sd, &pose, contentWidth)
	}

	y = ins.drawSpine(x, y, data.Controller.Spine().Len(), systems.MeasureChain(data.Controller.Spine()), contentWidth)

	if l, ok := data.Controller.(*creature.Lizard); ok {
		y = ins.drawGait(x, y, l, contentWidth)
	}

	if data.Session != nil {
		y = ins.drawSession(x, y, data.Session)
	}

	return y
}

func (ins *Inspector) height(data InspectorData) int32 {
	lines := int32(14)
	if l, ok := data.Controller.(*creature.Lizard); ok {
		lines += int32(len(l.Limbs())) + 1
	}
	if data.Session != nil {
		lines += 4
	}
	return lines*(ins.renderer.Theme.LineHeight+2) + ins.renderer.Theme.Padding*2
}

func (ins *Inspector) drawSpine(x, y int32, joints int, m systems.ChainMetrics, width int32) int32 {
	r := ins.renderer
	y = r.DrawSectionHeader(x, y, "Spine")
	y = r.DrawLabelValue(x, y, "Joints", fmt.Sprintf("%d", joints))
	y = r.DrawLabelValue(x, y, "Link err", fmt.Sprintf("%.2e", m.LinkError))
	return r.DrawBar(x, y, "Bend", "%.2f", float32(m.BendRatio), DefaultRange(), width) + 4
}

// drawGait shows how close each foot is to its next re-plant.
func (ins *Inspector) drawGait(x, y int32, l *creature.Lizard, width int32) int32 {
	r := ins.renderer
	y = r.DrawSectionHeader(x, y, "Gait")
	for i, limb := range l.Limbs() {
		label := legLabel(i, limb.Side())
		progress := systems.GaitProgress(limb, l.Body(), l.Gait().StepDistance)
		y = r.DrawBar(x, y, label, "%.2f", float32(progress), DefaultRange(), width)
	}
	return y + 4
}

func (ins *Inspector) drawSession(x, y int32, s *telemetry.Session) int32 {
	r := ins.renderer
	y = r.DrawSectionHeader(x, y, "Totals")
	y = r.DrawLabelValue(x, y, "Distance", fmt.Sprintf("%.0f", s.Distance))
	y = r.DrawLabelValue(x, y, "Steps", fmt.Sprintf("%d", s.Steps))
	y = r.DrawLabelValue(x, y, "Idle", fmt.Sprintf("%d ticks", s.IdleTicks))
	return y
}

// legLabel names a leg from its index in front-then-back order.
func legLabel(i int, side float64) string {
	end := "Front"
	if i >= 2 {
		end = "Back"
	}
	if side > 0 {
		return end + " R"
	}
	return end + " L"
}
