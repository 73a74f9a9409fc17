package telemetry

// FrameSample holds the chain measurements taken after one resolve.
type FrameSample struct {
	HeadTravel float64 // distance the head moved this frame
	LinkError  float64 // worst relative spine link length error
	BendRatio  float64 // worst spine bend as a fraction of the angle limit
	LimbError  float64 // worst relative limb link length error
}

// Collector accumulates frame samples and events within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Per-frame series for the current window
	headTravel []float64
	bend       []float64

	linkErrorMax float64
	limbErrorMax float64

	// Event counters for current window
	steps    int
	idle     int
	switches int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		headTravel:          make([]float64, 0, ticksPerWindow),
		bend:                make([]float64, 0, ticksPerWindow),
	}
}

// RecordFrame adds one frame's measurements.
func (c *Collector) RecordFrame(s FrameSample) {
	c.headTravel = append(c.headTravel, s.HeadTravel)
	c.bend = append(c.bend, s.BendRatio)
	if s.LinkError > c.linkErrorMax {
		c.linkErrorMax = s.LinkError
	}
	if s.LimbError > c.limbErrorMax {
		c.limbErrorMax = s.LimbError
	}
}

// Record counts an event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventSelect:
		c.switches++
	case EventStep:
		c.steps++
	case EventIdle:
		c.idle++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats for the creature active at window end and
// resets the collector for the next window.
func (c *Collector) Flush(currentTick int32, creature string) WindowStats {
	speed := Summarize(c.headTravel)
	bend := Summarize(c.bend)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),
		Creature:        creature,

		Frames:     len(c.headTravel),
		IdleFrames: c.idle,
		Steps:      c.steps,
		Switches:   c.switches,

		HeadTravelMean: speed.Mean,
		HeadTravelP50:  speed.P50,
		HeadTravelP90:  speed.P90,

		BendMean: bend.Mean,
		BendStd:  bend.Std,
		BendP90:  bend.P90,
		BendMax:  bend.Max,

		LinkErrorMax: c.linkErrorMax,
		LimbErrorMax: c.limbErrorMax,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.headTravel = c.headTravel[:0]
	c.bend = c.bend[:0]
	c.linkErrorMax = 0
	c.limbErrorMax = 0
	c.steps = 0
	c.idle = 0
	c.switches = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
