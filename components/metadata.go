package components

// FieldDescriptor describes a component field for UI display.
type FieldDescriptor struct {
	ID           string  // Unique identifier
	Label        string  // Display name
	Format       string  // Printf format (e.g., "%.2f")
	Min          float32 // Minimum value (for bars)
	Max          float32 // Maximum value (for bars)
	IsCentered   bool    // True for centered bar display
	IsBar        bool    // True to render as progress bar
	ShowWhenZero bool    // Show even when value is zero
	Group        string  // Logical grouping
}

// PoseFieldDescriptors returns metadata for Pose fields.
func PoseFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "x", Label: "Head X", Format: "%.0f", ShowWhenZero: true, Group: "position"},
		{ID: "y", Label: "Head Y", Format: "%.0f", ShowWhenZero: true, Group: "position"},
		{ID: "heading", Label: "Heading", Format: "%.2f", Min: 0, Max: 6.28319, IsBar: true, ShowWhenZero: true, Group: "motion"},
		{ID: "travel", Label: "Speed", Format: "%.1f", Min: 0, Max: 20, IsBar: true, Group: "motion"},
		{ID: "bend", Label: "Bend", Format: "%.2f", Min: 0, Max: 1, IsBar: true, ShowWhenZero: true, Group: "shape"},
		{ID: "steps", Label: "Steps", Format: "%.0f", Group: "gait"},
	}
}

// PoseGroups returns the logical groupings for pose fields.
func PoseGroups() []string {
	return []string{"position", "motion", "shape", "gait"}
}

// GetPoseValue extracts a pose field value by ID.
func GetPoseValue(p *Pose, fieldID string) float32 {
	switch fieldID {
	case "x":
		return p.X
	case "y":
		return p.Y
	case "heading":
		return p.Heading
	case "travel":
		return p.Travel
	case "bend":
		return p.Bend
	case "steps":
		return float32(p.Steps)
	default:
		return 0
	}
}
