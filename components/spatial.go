package components

// Pose summarizes a creature after its last resolve.
type Pose struct {
	X, Y    float32 // head position
	Heading float32 // radians, [0, 2*Pi)
	Travel  float32 // head movement last frame
	Bend    float32 // worst spine bend as a fraction of the angle limit
	Steps   int32   // limb re-plants since creation
	Idle    bool
}
