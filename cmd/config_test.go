package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/rink-sim/rink-sim/sim"
)

// changedFlags marks the named flags as explicitly set.
type changedFlags map[string]bool

func (c changedFlags) Changed(name string) bool { return c[name] }

func writeParamsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParamsFile_PartialFile_KeepsBase(t *testing.T) {
	// GIVEN a file overriding only K and the seed
	path := writeParamsFile(t, "K: 9\nseed: 7\n")

	// WHEN loaded over the defaults
	p, err := loadParamsFile(path, sim.DefaultParams())

	// THEN the named keys change and the rest keep their defaults
	require.NoError(t, err)
	assert.Equal(t, 9, p.K)
	assert.Equal(t, int64(7), p.Seed)
	assert.Equal(t, 5.0, p.N)
	assert.Equal(t, 30.0, p.L)
}

func TestLoadParamsFile_UnknownKey_Error(t *testing.T) {
	// GIVEN a typo in a key
	path := writeParamsFile(t, "K: 9\nbasline_mode: completion\n")

	// WHEN loaded
	_, err := loadParamsFile(path, sim.DefaultParams())

	// THEN strict decoding rejects it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basline_mode")
}

func TestLoadParamsFile_Empty_ReturnsBase(t *testing.T) {
	path := writeParamsFile(t, "")
	p, err := loadParamsFile(path, sim.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParams(), p)
}

func TestLoadParamsFile_Missing_Error(t *testing.T) {
	_, err := loadParamsFile(filepath.Join(t.TempDir(), "nope.yaml"), sim.DefaultParams())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveParams_NoConfig_UsesFlags(t *testing.T) {
	// GIVEN flag values and no params file
	fromFlags := sim.DefaultParams()
	fromFlags.K = 3
	fromFlags.BaselineMode = sim.BaselineAtCompletion

	// WHEN resolved
	p, err := resolveParams(changedFlags{}, "", fromFlags)

	// THEN the flag values win even without being marked as changed
	require.NoError(t, err)
	assert.Equal(t, fromFlags, p)
}

func TestResolveParams_ExplicitFlagOverridesFile(t *testing.T) {
	// GIVEN a file setting K and N, and an explicit --K flag
	path := writeParamsFile(t, "K: 9\nN: 7\nM: 1\n")
	fromFlags := sim.DefaultParams()
	fromFlags.K = 2
	fromFlags.N = 99

	// WHEN resolved with only K marked as changed
	p, err := resolveParams(changedFlags{"K": true}, path, fromFlags)

	// THEN K comes from the flag and N from the file
	require.NoError(t, err)
	assert.Equal(t, 2, p.K)
	assert.Equal(t, 7.0, p.N)
	assert.Equal(t, 1.0, p.M)
}

func TestResolveParams_FileOmitsModes_Defaulted(t *testing.T) {
	path := writeParamsFile(t, "baseline_mode: \"\"\n")
	p, err := resolveParams(changedFlags{}, path, sim.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, sim.BaselineAtInterval, p.BaselineMode)
}
