package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
)

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrExpectation   = errors.New("automation: expectation not met")
)

// DefaultWaitTimeout bounds a wait step without its own timeout.
const DefaultWaitTimeout = 5 * time.Second

const pollInterval = 10 * time.Millisecond

// Scenario defines a scripted play-through of the challenge
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single action. Action is one of start, areal, gridwise,
// activate, pick, replay or wait.
type Step struct {
	Action string `yaml:"action"`
	Kind   string `yaml:"kind,omitempty"`
	Region int    `yaml:"region,omitempty"`
	// Expect is the mode the game must be in after the step. A wait step
	// polls until the mode matches or Timeout elapses.
	Expect  string        `yaml:"expect,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// StepResult records the outcome of one step.
type StepResult struct {
	Index    int
	Step     Step
	Applied  bool
	Snapshot fitgame.Snapshot
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

// RunScenario executes all steps against g. clock paces wait steps. It
// stops at the first step that fails its expectation.
func RunScenario(ctx context.Context, scenario *Scenario, g *fitgame.Game, clock clockwork.Clock) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		applied, err := apply(ctx, g, clock, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		snap := g.Snapshot()
		results = append(results, StepResult{Index: i + 1, Step: step, Applied: applied, Snapshot: snap})

		if step.Expect != "" && snap.Mode.String() != step.Expect {
			return results, fmt.Errorf("step %d: %w: mode %s, want %s", i+1, ErrExpectation, snap.Mode, step.Expect)
		}
	}

	return results, nil
}

func apply(ctx context.Context, g *fitgame.Game, clock clockwork.Clock, step Step) (bool, error) {
	switch step.Action {
	case "start":
		return g.StartExperiment(), nil
	case "areal":
		k, err := curve.ParseKind(step.Kind)
		if err != nil {
			return false, err
		}
		return g.SelectArealDistribution(k), nil
	case "gridwise":
		return g.TryGridwise(), nil
	case "activate":
		return g.ActivateRegion(fitgame.RegionID(step.Region)), nil
	case "pick":
		k, err := curve.ParseKind(step.Kind)
		if err != nil {
			return false, err
		}
		if step.Region != 0 && !g.ActivateRegion(fitgame.RegionID(step.Region)) {
			return false, nil
		}
		return g.SelectRegionDistribution(k), nil
	case "replay":
		return g.Replay(), nil
	case "wait":
		return waitFor(ctx, g, clock, step)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
}

func waitFor(ctx context.Context, g *fitgame.Game, clock clockwork.Clock, step Step) (bool, error) {
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	deadline := clock.Now().Add(timeout)
	for {
		if step.Expect == "" || g.Mode().String() == step.Expect {
			return true, nil
		}
		if !clock.Now().Before(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-clock.After(pollInterval):
		}
	}
}

// GuessStats summarises random grid-wise guessing.
type GuessStats struct {
	Trials  int
	Perfect int
	// Mismatches[n] counts trials that left n regions mismatched.
	Mismatches []int
}

// Rate is the share of trials that matched every region.
func (s GuessStats) Rate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Perfect) / float64(s.Trials)
}

// RunGuesses plays trials boards picking a uniformly random family for
// every region, the baseline a grid-wise fit has to beat.
func RunGuesses(regions []fitgame.Region, trials int, seed int64) GuessStats {
	rng := rand.New(rand.NewSource(seed))
	if seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	stats := GuessStats{Trials: trials, Mismatches: make([]int, len(regions)+1)}
	choices := make(map[fitgame.RegionID]curve.Kind, len(regions))
	for trial := 0; trial < trials; trial++ {
		for _, r := range regions {
			choices[r.ID] = curve.Kinds[rng.Intn(len(curve.Kinds))]
		}
		n := fitgame.GridErrors(regions, choices)
		stats.Mismatches[n]++
		if n == 0 {
			stats.Perfect++
		}
	}
	return stats
}
