package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
)

func TestEmbeddedRegistry(t *testing.T) {
	reg, err := NewRegistry(defaultStats)
	require.NoError(t, err)

	order := reg.Order()
	require.NotEmpty(t, order)
	assert.Equal(t, "weight", order[0])
	assert.Equal(t, "health", order[1])

	def, ok := reg.Lookup("eneCap")
	require.True(t, ok)
	assert.Equal(t, "Energy", def.Name)
	assert.True(t, def.Buff)

	def, ok = reg.Lookup("weight")
	require.True(t, ok)
	assert.False(t, def.Beneficial)
	assert.False(t, def.Buff)

	_, ok = reg.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistryAgreesWithBuffableSet(t *testing.T) {
	// Every stat the arena shop upgrades must be defined and flagged buffable.
	reg, err := NewRegistry(defaultStats)
	require.NoError(t, err)

	for _, stat := range buffs.BuffableStats {
		def, ok := reg.Lookup(stat)
		require.True(t, ok, stat)
		assert.True(t, def.Buff, stat)
	}
}

func TestRegistryPosition(t *testing.T) {
	reg, err := NewRegistry(defaultStats)
	require.NoError(t, err)

	assert.Equal(t, 0, reg.Position("weight"))
	assert.Less(t, reg.Position("health"), reg.Position("backfire"))
	assert.Equal(t, len(reg.Order()), reg.Position("nope"))
}

func TestLoadRegistryOverride(t *testing.T) {
	dir := t.TempDir()
	doc := "health: {name: Hit points, emoji: \"❤️\", beneficial: true, buff: true}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stats.yaml"), []byte(doc), 0o644))

	reg, err := LoadRegistry([]string{dir})
	require.NoError(t, err)

	def, ok := reg.Lookup("health")
	require.True(t, ok)
	assert.Equal(t, "Hit points", def.Name)
	assert.Len(t, reg.Order(), 1)

	// Missing directory falls back to the embedded defaults.
	reg, err = LoadRegistry([]string{filepath.Join(dir, "missing")})
	require.NoError(t, err)
	assert.Greater(t, len(reg.Order()), 30)
}

func TestNewRegistryRejectsNonMapping(t *testing.T) {
	_, err := NewRegistry([]byte("- a\n- b"))
	assert.Error(t, err)
}
