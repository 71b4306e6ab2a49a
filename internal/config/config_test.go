package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrichor-games/granary/pkg/ledger"
)

// writeEconomy writes an economy.yaml with the given content into a temp
// config dir and returns the dir.
func writeEconomy(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "economy.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadParsesResources(t *testing.T) {
	dir := writeEconomy(t, `
resources:
  gold:
    display_name: Gold
    initial: 100
    capacity: 1000
    overflow: clamp
    deficit: reject
  energy:
    initial: 50
    production: 10
    consumption: 3
tick: 0.5
`)

	eco, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 0.5, eco.Tick)
	assert.Equal(t, []string{"energy", "gold"}, eco.Kinds())

	gold := eco.Resources["gold"]
	assert.Equal(t, "Gold", gold.DisplayName)
	assert.Equal(t, 100.0, gold.Initial)
	assert.Equal(t, 1000.0, gold.Capacity)
	assert.Equal(t, "clamp", gold.Overflow)
	assert.Equal(t, "reject", gold.Deficit)

	energy := eco.Resources["energy"]
	assert.Equal(t, 10.0, energy.Production)
	assert.Equal(t, 3.0, energy.Consumption)
}

func TestLoadDefaultsTick(t *testing.T) {
	dir := writeEconomy(t, `
resources:
  gold:
    initial: 1
`)

	eco, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultTick, eco.Tick)
}

func TestLoadWritesDefaultEconomyOnFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	eco, err := Load(dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "economy.yaml"))
	require.NoError(t, eco.Validate(), "the default economy must validate")
	assert.Contains(t, eco.Resources, "gold")
	assert.Contains(t, eco.Resources, "energy")
}

func TestLoadDoesNotOverwriteExistingFile(t *testing.T) {
	dir := writeEconomy(t, `
resources:
  mud:
    initial: 7
`)

	eco, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"mud"}, eco.Kinds())
}

func TestValidate(t *testing.T) {
	base := func() Economy {
		return Economy{
			Resources: map[string]ResourceSpec{
				"gold": {Initial: 10, Capacity: 100, Overflow: "clamp", Deficit: "reject"},
			},
			Tick: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Economy)
		wantErr error
	}{
		{
			name:   "valid economy",
			mutate: func(e *Economy) {},
		},
		{
			name:   "empty policies are valid",
			mutate: func(e *Economy) { e.Resources["gold"] = ResourceSpec{Initial: 10} },
		},
		{
			name:    "no resources",
			mutate:  func(e *Economy) { e.Resources = nil },
			wantErr: ErrNoResources,
		},
		{
			name:    "zero tick",
			mutate:  func(e *Economy) { e.Tick = 0 },
			wantErr: ErrInvalidTick,
		},
		{
			name: "unknown overflow policy",
			mutate: func(e *Economy) {
				e.Resources["gold"] = ResourceSpec{Overflow: "discard"}
			},
			wantErr: ErrUnknownOverflowPolicy,
		},
		{
			name: "unknown deficit policy",
			mutate: func(e *Economy) {
				e.Resources["gold"] = ResourceSpec{Deficit: "allow"}
			},
			wantErr: ErrUnknownDeficitPolicy,
		},
		{
			name: "negative capacity",
			mutate: func(e *Economy) {
				e.Resources["gold"] = ResourceSpec{Capacity: -1}
			},
			wantErr: ErrNegativeCapacity,
		},
		{
			name: "negative rate",
			mutate: func(e *Economy) {
				e.Resources["gold"] = ResourceSpec{Production: -1}
			},
			wantErr: ErrNegativeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eco := base()
			tt.mutate(&eco)

			err := eco.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResourceSpecDefinition(t *testing.T) {
	rs := ResourceSpec{
		DisplayName: "Gold",
		Initial:     100,
		Capacity:    1000,
		Overflow:    "reject",
		Deficit:     "allow_negative",
	}

	def := rs.Definition()
	assert.Equal(t, 100.0, def.InitialAmount)
	assert.Equal(t, 1000.0, def.MaxCapacity)
	assert.Equal(t, ledger.OverflowReject, def.OverflowPolicy)
	assert.Equal(t, ledger.DeficitAllowNegative, def.DeficitPolicy)
	require.NotNil(t, def.DisplayName)
	assert.Equal(t, "Gold", *def.DisplayName)

	// Empty display name stays absent, not empty-string-present.
	def = ResourceSpec{}.Definition()
	assert.Nil(t, def.DisplayName)
}

func TestEconomyApply(t *testing.T) {
	eco := Economy{
		Resources: map[string]ResourceSpec{
			"gold":   {Initial: 100, Capacity: 1000, Overflow: "clamp", Deficit: "reject"},
			"energy": {Initial: 50, Production: 10, Consumption: 3},
		},
		Tick: 1,
	}

	l := ledger.New[string]()
	eco.Apply(l)

	assert.Equal(t, 2, l.DefinedCount())
	assert.Equal(t, 100.0, l.Get("gold"))
	assert.Equal(t, 1000.0, l.Capacity("gold"))
	assert.Equal(t, 50.0, l.Get("energy"))
	assert.Equal(t, 7.0, l.NetRate("energy"))
}
