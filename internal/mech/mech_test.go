package mech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

func testItem(t *testing.T, name string, typ item.Type, kv map[string]int) *item.Item {
	t.Helper()
	bag := stats.NewBag()
	for _, key := range []string{"weight", "health", "eneCap", "heaCap", "phyRes"} {
		if v, ok := kv[key]; ok {
			bag.Set(key, stats.Scalar(v))
		}
	}
	tr, err := item.NewTransformRange(item.Legendary, item.Mythical)
	require.NoError(t, err)
	return &item.Item{Name: name, Type: typ, Transform: tr, Stats: bag}
}

func testMech(t *testing.T) *Mech {
	m := New()
	require.NoError(t, m.Equip(testItem(t, "Torso", item.Torso, map[string]int{"weight": 320, "health": 900, "eneCap": 200, "heaCap": 250}), 0))
	require.NoError(t, m.Equip(testItem(t, "Legs", item.Legs, map[string]int{"weight": 180, "health": 300}), 0))
	require.NoError(t, m.Equip(testItem(t, "Cannon", item.SideWeapon, map[string]int{"weight": 60}), 0))
	return m
}

func TestEquip(t *testing.T) {
	m := testMech(t)
	assert.NotNil(t, m.Torso)
	assert.NotNil(t, m.Legs)
	assert.NotNil(t, m.SideWeapon[0])
	assert.Len(t, m.Items(), 3)

	t.Run("Slot Out Of Range", func(t *testing.T) {
		err := m.Equip(testItem(t, "Cannon", item.SideWeapon, map[string]int{"weight": 60}), SideWeapons)
		assert.Error(t, err)
		err = m.Equip(testItem(t, "Plate", item.Module, map[string]int{"weight": 30}), Modules)
		assert.Error(t, err)
	})

	t.Run("Replacing A Torso", func(t *testing.T) {
		err := m.Equip(testItem(t, "Torso2", item.Torso, map[string]int{"weight": 300, "health": 800}), 0)
		require.NoError(t, err)
		assert.Equal(t, "Torso2", m.Torso.Name)
	})
}

func TestStats(t *testing.T) {
	m := testMech(t)
	bag := m.Stats()

	v, ok := bag.Get("weight")
	require.True(t, ok)
	assert.Equal(t, 560, v.Lo)

	v, ok = bag.Get("health")
	require.True(t, ok)
	assert.Equal(t, 1200, v.Lo)

	v, ok = bag.Get("eneCap")
	require.True(t, ok)
	assert.Equal(t, 200, v.Lo)

	_, ok = bag.Get("phyRes")
	assert.False(t, ok, "absent stats stay absent")
}

func TestStatsOverweightPenalty(t *testing.T) {
	m := testMech(t)
	// Push total weight to 1005, 5 kg over the limit.
	require.NoError(t, m.Equip(testItem(t, "Plate", item.Module, map[string]int{"weight": 445, "health": 60}), 0))

	bag := m.Stats()
	v, _ := bag.Get("weight")
	assert.Equal(t, 1005, v.Lo)

	v, _ = bag.Get("health")
	assert.Equal(t, 1260-5*15, v.Lo)
}

func TestBuffedStats(t *testing.T) {
	m := testMech(t)

	a, err := buffs.ArenaBuffsAt(map[string]int{"health": 11, "eneCap": 10})
	require.NoError(t, err)

	bag, err := m.BuffedStats(a)
	require.NoError(t, err)

	// The workshop summary buffs health, unlike item cards.
	v, _ := bag.Get("health")
	assert.Equal(t, 1550, v.Lo)

	v, _ = bag.Get("eneCap")
	assert.Equal(t, 240, v.Lo)

	v, _ = bag.Get("weight")
	assert.Equal(t, 560, v.Lo)
}

func TestIsValid(t *testing.T) {
	t.Run("Complete Mech", func(t *testing.T) {
		assert.True(t, testMech(t).IsValid())
	})

	t.Run("Missing Torso", func(t *testing.T) {
		m := testMech(t)
		m.Torso = nil
		assert.False(t, m.IsValid())
	})

	t.Run("Unarmed", func(t *testing.T) {
		m := testMech(t)
		m.SideWeapon[0] = nil
		assert.False(t, m.IsValid())
	})

	t.Run("Beyond The Hard Cap", func(t *testing.T) {
		m := testMech(t)
		require.NoError(t, m.Equip(testItem(t, "Anvil", item.Module, map[string]int{"weight": 460}), 0))
		assert.False(t, m.IsValid())
	})

	t.Run("Tolerated Overweight", func(t *testing.T) {
		m := testMech(t)
		require.NoError(t, m.Equip(testItem(t, "Plate", item.Module, map[string]int{"weight": 450}), 0))
		assert.True(t, m.IsValid())
	})
}

func TestWeightUsage(t *testing.T) {
	m := testMech(t)
	assert.Equal(t, "⚙️", m.WeightUsage())

	require.NoError(t, m.Equip(testItem(t, "Plate", item.Module, map[string]int{"weight": 440}), 0))
	assert.Equal(t, "👌", m.WeightUsage())

	require.NoError(t, m.Equip(testItem(t, "Pad", item.Module, map[string]int{"weight": 5}), 1))
	assert.Equal(t, "❕", m.WeightUsage())

	require.NoError(t, m.Equip(testItem(t, "Slab", item.Module, map[string]int{"weight": 100}), 2))
	assert.Equal(t, "⛔", m.WeightUsage())
}

func TestSprint(t *testing.T) {
	reg, err := stats.LoadRegistry(nil)
	require.NoError(t, err)

	m := testMech(t)
	out, err := m.Sprint(reg, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "Weight")
	assert.Contains(t, out, "560")
	assert.Contains(t, out, "1200")
}
