package main

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/sim"
	"github.com/pthm-cable/wriggle/systems"
	"github.com/pthm-cable/wriggle/telemetry"
)

// Fitness weights.
const (
	lagWeight     = 0.5
	stretchWeight = 4.0
	limbErrWeight = 0.1

	// a leg counts as overstretched past this fraction of its reach
	stretchLimit = 0.98

	// ticks skipped before measuring so every foot has planted once
	warmupTicks = 60
)

// GaitScore breaks a run's fitness into its parts.
type GaitScore struct {
	Cadence   float64 // steps per second per leg
	Lag       float64 // mean foot-to-planted distance over leg link size
	Stretch   float64 // fraction of leg-ticks past stretchLimit
	LimbError float64 // worst relative leg link length error
	Fitness   float64 // lower is better
}

// FitnessEvaluator runs headless lizard simulations and scores the gait.
type FitnessEvaluator struct {
	params        *ParamVector
	configPath    string
	maxTicks      int32
	seeds         []int64
	targetCadence float64
	timeScale     float64 // wander speed override, 0 keeps the config value

	mu        sync.Mutex
	lastScore GaitScore // averaged score from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, configPath string, maxTicks int32, seeds []int64, targetCadence, timeScale float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:        params,
		configPath:    configPath,
		maxTicks:      maxTicks,
		seeds:         seeds,
		targetCadence: targetCadence,
		timeScale:     timeScale,
	}
}

// LastScore returns the averaged score from the most recent evaluation.
func (fe *FitnessEvaluator) LastScore() GaitScore {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastScore
}

// Evaluate computes fitness for a raw parameter vector (lower = better),
// averaged over every seed.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	scores := make([]GaitScore, len(fe.seeds))
	errs := make([]error, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			scores[idx], errs[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var avg GaitScore
	for i, s := range scores {
		if errs[i] != nil {
			// unbuildable geometry is never preferred
			return math.Inf(1)
		}
		avg.Cadence += s.Cadence
		avg.Lag += s.Lag
		avg.Stretch += s.Stretch
		avg.LimbError = math.Max(avg.LimbError, s.LimbError)
		avg.Fitness += s.Fitness
	}
	n := float64(len(scores))
	avg.Cadence /= n
	avg.Lag /= n
	avg.Stretch /= n
	avg.Fitness /= n

	fe.mu.Lock()
	fe.lastScore = avg
	fe.mu.Unlock()

	return avg.Fitness
}

// runSimulation drives the lizard along a wander path for maxTicks.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (GaitScore, error) {
	cfg, err := config.Load(fe.configPath)
	if err != nil {
		return GaitScore{}, err
	}
	fe.params.ApplyToConfig(cfg, x)
	if fe.timeScale > 0 {
		cfg.Wander.TimeScale = fe.timeScale
	}

	s, err := sim.New(cfg, sim.Options{Creature: creature.KindLizard.String()})
	if err != nil {
		return GaitScore{}, err
	}
	defer s.Close()

	var windows []telemetry.WindowStats
	s.SetStatsCallback(func(w telemetry.WindowStats) {
		windows = append(windows, w)
	})

	lizard, ok := s.Controller(creature.KindLizard).(*creature.Lizard)
	if !ok {
		return GaitScore{}, fmt.Errorf("no lizard in simulation")
	}

	center := ik.Vec2{X: cfg.Derived.CenterX, Y: cfg.Derived.CenterY}
	wander := systems.NewWander(seed, center, cfg.Wander)

	var lags []float64
	stretched, legTicks := 0, 0
	startSteps := 0
	for s.Tick() < fe.maxTicks {
		s.Update(wander)
		if s.Tick() == warmupTicks {
			startSteps = totalSteps(lizard)
		}
		if s.Tick() <= warmupTicks {
			continue
		}
		for _, limb := range lizard.Limbs() {
			c := limb.Chain()
			lags = append(lags, limb.Foot().Dist(limb.Desired())/c.LinkSize())
			if limb.Foot().Dist(limb.Shoulder()) > stretchLimit*c.Reach() {
				stretched++
			}
			legTicks++
		}
	}

	score := GaitScore{}
	measured := float64(s.Tick()-warmupTicks) * cfg.Simulation.DT
	if measured > 0 {
		score.Cadence = float64(totalSteps(lizard)-startSteps) / measured / float64(len(lizard.Limbs()))
	}
	if len(lags) > 0 {
		score.Lag = stat.Mean(lags, nil)
	}
	if legTicks > 0 {
		score.Stretch = float64(stretched) / float64(legTicks)
	}
	for _, w := range windows {
		score.LimbError = math.Max(score.LimbError, w.LimbErrorMax)
	}
	score.Fitness = fe.fitness(score)
	return score, nil
}

// fitness combines the score parts. Cadence error is relative to the target.
func (fe *FitnessEvaluator) fitness(s GaitScore) float64 {
	cadenceErr := 1.0
	if fe.targetCadence > 0 {
		d := (s.Cadence - fe.targetCadence) / fe.targetCadence
		cadenceErr = d * d
	}
	return cadenceErr + lagWeight*s.Lag + stretchWeight*s.Stretch + limbErrWeight*s.LimbError
}

func totalSteps(l *creature.Lizard) int {
	n := 0
	for _, limb := range l.Limbs() {
		n += limb.Steps()
	}
	return n
}
