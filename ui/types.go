// Package ui provides a descriptor-driven UI system for the creature viewer.
// Instead of hard-coding field names and layouts, UI elements are defined
// through metadata that can be updated alongside the underlying components.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/components"
)

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Progress bar over Range
	WidgetCenteredBar                   // Centered bar [-1, +1] or custom range
	WidgetColorSwatch                   // Color preview square
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float32
	Max float32
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// Normalize maps v into [0, 1] over the range, clamped.
func (r FieldRange) Normalize(v float32) float32 {
	if r.Max <= r.Min {
		return 0
	}
	n := (v - r.Min) / (r.Max - r.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID          string             // Unique identifier for the field
	Label       string             // Display label
	Widget      WidgetType         // How to render
	Format      string             // Printf format for text (e.g., "%.2f")
	Range       FieldRange         // Value range for bars
	Color       rl.Color           // Optional color override
	Visible     func(any) bool     // Optional visibility check (nil = always visible)
	Getter      func(any) float32  // Value extractor (for numeric fields)
	TextGetter  func(any) string   // Value extractor (for text fields)
	ColorGetter func(any) rl.Color // Color extractor (for color swatches)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string            // Unique identifier
	Title   string            // Section header text
	Fields  []FieldDescriptor // Fields in this section
	Visible func(any) bool    // Optional visibility check for entire section
}

// PoseSections builds one section per pose group from the component
// metadata. The data passed to the getters must be a *components.Pose.
func PoseSections() []SectionDescriptor {
	byGroup := make(map[string][]FieldDescriptor)
	for _, cf := range components.PoseFieldDescriptors() {
		byGroup[cf.Group] = append(byGroup[cf.Group], poseField(cf))
	}

	var sections []SectionDescriptor
	for _, g := range components.PoseGroups() {
		if len(byGroup[g]) == 0 {
			continue
		}
		sections = append(sections, SectionDescriptor{ID: g, Title: sectionTitle(g), Fields: byGroup[g]})
	}
	return sections
}

// poseField converts component metadata into a UI field.
func poseField(cf components.FieldDescriptor) FieldDescriptor {
	id := cf.ID
	fd := FieldDescriptor{
		ID:     id,
		Label:  cf.Label,
		Format: cf.Format,
		Range:  FieldRange{Min: cf.Min, Max: cf.Max},
		Getter: func(data any) float32 {
			p, ok := data.(*components.Pose)
			if !ok || p == nil {
				return 0
			}
			return components.GetPoseValue(p, id)
		},
	}
	switch {
	case cf.IsCentered:
		fd.Widget = WidgetCenteredBar
	case cf.IsBar:
		fd.Widget = WidgetBar
	default:
		fd.Widget = WidgetText
	}
	if !cf.ShowWhenZero {
		get := fd.Getter
		fd.Visible = func(data any) bool { return get(data) != 0 }
	}
	return fd
}

// sectionTitle returns a display title for a pose group.
func sectionTitle(group string) string {
	switch group {
	case "position":
		return "Position"
	case "motion":
		return "Motion"
	case "shape":
		return "Shape"
	case "gait":
		return "Gait"
	default:
		return group
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg         rl.Color
	PanelBorder     rl.Color
	SectionHeader   rl.Color
	LabelColor      rl.Color
	ValueColor      rl.Color
	BarBg           rl.Color
	BarFill         rl.Color
	BarFillHigh     rl.Color
	BarFillNegative rl.Color
	BarFillPositive rl.Color
	Padding         int32
	LineHeight      int32
	LabelWidth      int32
	BarHeight       int32
	FontSize        int32
	HeaderFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:         rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder:     rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:   rl.Yellow,
		LabelColor:      rl.LightGray,
		ValueColor:      rl.LightGray,
		BarBg:           rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:         rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillHigh:     rl.Color{R: 200, G: 120, B: 90, A: 255},
		BarFillNegative: rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillPositive: rl.Color{R: 100, G: 200, B: 100, A: 255},
		Padding:         10,
		LineHeight:      16,
		LabelWidth:      70,
		BarHeight:       12,
		FontSize:        12,
		HeaderFontSize:  14,
	}
}
