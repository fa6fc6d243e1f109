package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviationsOf(t *testing.T) {
	t.Run("Spaced Name", func(t *testing.T) {
		keys := abbreviationsOf("Hybrid Heat Cannon")
		assert.Equal(t, []string{"hhc", "hybridheatcannon"}, keys)
	})

	t.Run("All Uppercase Yields Nothing", func(t *testing.T) {
		assert.Empty(t, abbreviationsOf("EMP"))
	})

	t.Run("Single Title Case Word Yields Nothing", func(t *testing.T) {
		assert.Empty(t, abbreviationsOf("Avenger"))
	})

	t.Run("Camel Case Compound", func(t *testing.T) {
		keys := abbreviationsOf("OverloadedEMP")
		assert.Equal(t, []string{"oemp", "overloaded", "e", "m", "p"}, keys)
	})
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex([]string{
		"Hybrid Heat Cannon",
		"Heronmark Heat Cannon",
		"Energy Free Armor",
		"EMP",
		"Avenger",
	})

	t.Run("Ambiguous Keys Accumulate In Order", func(t *testing.T) {
		assert.Equal(t, []string{"Hybrid Heat Cannon", "Heronmark Heat Cannon"}, idx["hhc"])
	})

	t.Run("Spaceless Alias", func(t *testing.T) {
		assert.Equal(t, []string{"Energy Free Armor"}, idx["energyfreearmor"])
	})

	t.Run("Primary Abbreviation", func(t *testing.T) {
		assert.Equal(t, []string{"Energy Free Armor"}, idx["efa"])
	})

	t.Run("Skipped Names Are Absent", func(t *testing.T) {
		_, ok := idx["emp"]
		assert.False(t, ok)
		_, ok = idx["avenger"]
		assert.False(t, ok)
	})
}

func TestIndexAddDeduplicates(t *testing.T) {
	idx := make(Index)
	idx.add("hhc", "Hybrid Heat Cannon")
	idx.add("hhc", "Hybrid Heat Cannon")
	idx.add("hhc", "Heronmark Heat Cannon")

	assert.Equal(t, []string{"Hybrid Heat Cannon", "Heronmark Heat Cannon"}, idx["hhc"])
}

func TestSplitCamel(t *testing.T) {
	assert.Equal(t, []string{"heron", "mark"}, splitCamel("HeronMark"))
	assert.Equal(t, []string{"plasma"}, splitCamel("plasma"))
}
