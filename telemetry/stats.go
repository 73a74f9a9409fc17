package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Creature        string  `csv:"creature"` // active at window end

	// Counts during window
	Frames     int `csv:"frames"`
	IdleFrames int `csv:"idle_frames"`
	Steps      int `csv:"steps"`
	Switches   int `csv:"switches"`

	// Head travel per frame
	HeadTravelMean float64 `csv:"head_travel_mean"`
	HeadTravelP50  float64 `csv:"head_travel_p50"`
	HeadTravelP90  float64 `csv:"head_travel_p90"`

	// Spine bend as a fraction of the angle limit
	BendMean float64 `csv:"bend_mean"`
	BendStd  float64 `csv:"bend_std"`
	BendP90  float64 `csv:"bend_p90"`
	BendMax  float64 `csv:"bend_max"`

	// Link length drift, relative to link size
	LinkErrorMax float64 `csv:"link_error_max"`
	LimbErrorMax float64 `csv:"limb_error_max"`
}

// Summary describes a series of samples.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Summarize computes mean, standard deviation, empirical quantiles and the
// maximum of values. An empty series summarizes to zeros.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  floats.Max(sorted),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	if math.IsNaN(s.Std) {
		s.Std = 0
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("creature", s.Creature),
		slog.Int("frames", s.Frames),
		slog.Int("idle_frames", s.IdleFrames),
		slog.Int("steps", s.Steps),
		slog.Int("switches", s.Switches),
		slog.Float64("head_travel_mean", s.HeadTravelMean),
		slog.Float64("head_travel_p50", s.HeadTravelP50),
		slog.Float64("head_travel_p90", s.HeadTravelP90),
		slog.Float64("bend_mean", s.BendMean),
		slog.Float64("bend_std", s.BendStd),
		slog.Float64("bend_p90", s.BendP90),
		slog.Float64("bend_max", s.BendMax),
		slog.Float64("link_error_max", s.LinkErrorMax),
		slog.Float64("limb_error_max", s.LimbErrorMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"creature", s.Creature,
		"frames", s.Frames,
		"idle_frames", s.IdleFrames,
		"steps", s.Steps,
		"switches", s.Switches,
		"head_travel_mean", s.HeadTravelMean,
		"head_travel_p90", s.HeadTravelP90,
		"bend_mean", s.BendMean,
		"bend_p90", s.BendP90,
		"bend_max", s.BendMax,
		"link_error_max", s.LinkErrorMax,
		"limb_error_max", s.LimbErrorMax,
	)
}
