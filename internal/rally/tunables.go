package rally

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FailureContext names a failure table used to describe an error
type FailureContext string

const (
	FailureServe     FailureContext = "serve"
	FailureReception FailureContext = "reception"
	FailureDig       FailureContext = "dig"
	FailureSet       FailureContext = "set"
	FailureAttack    FailureContext = "attack"
)

var failureContexts = []FailureContext{
	FailureServe, FailureReception, FailureDig, FailureSet, FailureAttack,
}

// FailureCause is one weighted description in a failure table
type FailureCause struct {
	Weight      float64 `yaml:"weight"`
	Description string  `yaml:"description"`
}

// Tunables are the rally constants that have no derivation from player
// attributes. They can be overridden from a YAML file.
type Tunables struct {
	// ExchangeCap bounds the receive/set/attack loop; reaching it decides the
	// point with a coin flip
	ExchangeCap int `yaml:"exchange_cap"`

	// BlockKillThreshold is the chance a successful block ends the point
	BlockKillThreshold float64 `yaml:"block_kill_threshold"`

	// BlockTouchStayThreshold is the chance a block touch leaves the ball on
	// the blocking side
	BlockTouchStayThreshold float64 `yaml:"block_touch_stay_threshold"`

	// AttackKillThreshold is the chance an unblocked successful attack ends
	// the point
	AttackKillThreshold float64 `yaml:"attack_kill_threshold"`

	// Failures holds the weighted causes per failure context; weights sum to 1
	Failures map[FailureContext][]FailureCause `yaml:"failures"`
}

// DefaultTunables returns the stock rally constants
func DefaultTunables() *Tunables {
	return &Tunables{
		ExchangeCap:             20,
		BlockKillThreshold:      0.6,
		BlockTouchStayThreshold: 0.5,
		AttackKillThreshold:     0.7,
		Failures: map[FailureContext][]FailureCause{
			FailureServe: {
				{Weight: 0.4, Description: "ball hits the net"},
				{Weight: 0.3, Description: "ball goes out"},
				{Weight: 0.3, Description: "foot fault"},
			},
			FailureReception: {
				{Weight: 0.5, Description: "ball hits the ground"},
				{Weight: 0.5, Description: "ball goes out of bounds"},
			},
			FailureDig: {
				{Weight: 0.5, Description: "ball hits the ground"},
				{Weight: 0.5, Description: "ball goes out of bounds"},
			},
			FailureSet: {
				{Weight: 0.4, Description: "double touch"},
				{Weight: 0.3, Description: "ball goes into the net"},
				{Weight: 0.3, Description: "overpass"},
			},
			FailureAttack: {
				{Weight: 0.4, Description: "hits it into the net"},
				{Weight: 0.4, Description: "hits it out"},
				{Weight: 0.2, Description: "hits it long"},
			},
		},
	}
}

// LoadTunables reads a YAML file on top of the defaults. Keys absent from the
// file keep their default values.
func LoadTunables(path string) (*Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tunables file %s: %w", path, err)
	}

	t, err := ParseTunables(data)
	if err != nil {
		return nil, fmt.Errorf("tunables file %s: %w", path, err)
	}

	return t, nil
}

// ParseTunables decodes YAML on top of the defaults and validates the result
func ParseTunables(data []byte) (*Tunables, error) {
	t := DefaultTunables()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tunables: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// weightTolerance absorbs float rounding when summing weights
const weightTolerance = 1e-9

// Validate checks the thresholds are probabilities and every failure table
// is present, positive and sums to 1.
func (t *Tunables) Validate() error {
	if t.ExchangeCap < 1 {
		return fmt.Errorf("%w: exchange_cap must be at least 1, got %d", ErrInvalidTunables, t.ExchangeCap)
	}

	thresholds := map[string]float64{
		"block_kill_threshold":       t.BlockKillThreshold,
		"block_touch_stay_threshold": t.BlockTouchStayThreshold,
		"attack_kill_threshold":      t.AttackKillThreshold,
	}
	for name, v := range thresholds {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidTunables, name, v)
		}
	}

	for _, ctx := range failureContexts {
		causes := t.Failures[ctx]
		if len(causes) == 0 {
			return fmt.Errorf("%w: no failure causes for %q", ErrInvalidTunables, ctx)
		}

		sum := 0.0
		for _, c := range causes {
			if c.Weight <= 0 {
				return fmt.Errorf("%w: %q cause %q has non-positive weight", ErrInvalidTunables, ctx, c.Description)
			}
			if c.Description == "" {
				return fmt.Errorf("%w: %q has a cause without a description", ErrInvalidTunables, ctx)
			}
			sum += c.Weight
		}

		if math.Abs(sum-1) > weightTolerance {
			return fmt.Errorf("%w: %q weights sum to %v, want 1", ErrInvalidTunables, ctx, sum)
		}
	}

	return nil
}
