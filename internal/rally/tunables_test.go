package rally

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTunablesValid(t *testing.T) {
	assert.NoError(t, DefaultTunables().Validate())
}

func TestParseTunablesOverlaysDefaults(t *testing.T) {
	data := []byte(`
exchange_cap: 12
block_touch_stay_threshold: 0.25
failures:
  serve:
    - weight: 0.5
      description: ball clips the antenna
    - weight: 0.5
      description: ball sails long
`)

	tunables, err := ParseTunables(data)
	require.NoError(t, err)

	assert.Equal(t, 12, tunables.ExchangeCap)
	assert.Equal(t, 0.25, tunables.BlockTouchStayThreshold)
	assert.Equal(t, 0.6, tunables.BlockKillThreshold)
	assert.Len(t, tunables.Failures[FailureServe], 2)
	assert.Equal(t, DefaultTunables().Failures[FailureAttack], tunables.Failures[FailureAttack])
}

func TestParseTunablesRejects(t *testing.T) {
	testCases := map[string]string{
		"weights do not sum to one": "failures:\n  set:\n    - weight: 0.5\n      description: double touch\n",
		"threshold above one":       "attack_kill_threshold: 1.5\n",
		"zero cap":                  "exchange_cap: 0\n",
		"missing description":       "failures:\n  dig:\n    - weight: 1\n",
		"empty table":               "failures:\n  serve: []\n",
	}

	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTunables([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidTunables)
		})
	}

	_, err := ParseTunables([]byte("exchange_cap: [nope"))
	assert.Error(t, err)
}

func TestLoadTunables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attack_kill_threshold: 0.8\n"), 0o600))

	tunables, err := LoadTunables(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, tunables.AttackKillThreshold)

	_, err = LoadTunables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
