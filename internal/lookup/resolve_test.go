package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(names ...string) (*Corpus[string], Index) {
	c := NewCorpus[string]()
	for _, name := range names {
		c.Add(name, name)
	}
	return c, NewIndex(c.Names())
}

func TestResolveAbbreviation(t *testing.T) {
	c, idx := testCorpus(
		"Hybrid Heat Cannon",
		"Heronmark Heat Cannon",
		"Energy Free Armor",
	)

	t.Run("Unambiguous Hit", func(t *testing.T) {
		got, err := Resolve(c, "EFA", idx, DefaultLimit)
		require.NoError(t, err)
		assert.Equal(t, []string{"Energy Free Armor"}, got)
	})

	t.Run("Ambiguous Hits Keep Index Order", func(t *testing.T) {
		got, err := Resolve(c, "hhc", idx, DefaultLimit)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hybrid Heat Cannon", "Heronmark Heat Cannon"}, got)
	})

	t.Run("Collision Above Limit Errors", func(t *testing.T) {
		_, err := Resolve(c, "hhc", idx, 1)
		assert.ErrorIs(t, err, ErrTooManyMatches)
	})
}

func TestResolveFuzzy(t *testing.T) {
	c, idx := testCorpus(
		"Zarkares",
		"Windigo",
		"Grim Cobra",
		"Naga",
	)

	t.Run("Exact Name", func(t *testing.T) {
		got, err := Resolve(c, "Zarkares", idx, DefaultLimit)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Zarkares", got[0])
	})

	t.Run("Typo Still Resolves", func(t *testing.T) {
		got, err := Resolve(c, "zakares", idx, DefaultLimit)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Zarkares", got[0])
	})

	t.Run("Unrelated Query Matches Nothing", func(t *testing.T) {
		got, err := Resolve(c, "xxxxxxxxxx", idx, DefaultLimit)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Limit Caps The Result", func(t *testing.T) {
		got, err := Resolve(c, "Naga", idx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestResolveTieBreaksByCorpusOrder(t *testing.T) {
	// Both names are one edit from the query; insertion order decides.
	c, idx := testCorpus("Malice Beam", "Malica Beam")

	got, err := Resolve(c, "malicx beam", idx, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Malice Beam", got[0])
	assert.Equal(t, "Malica Beam", got[1])
}

func TestSimilarity(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		r, ok := similarity("naga", "Naga")
		require.True(t, ok)
		assert.Equal(t, 1.0, r)
	})

	t.Run("Spaces Ignored", func(t *testing.T) {
		r, ok := similarity("grimcobra", "Grim Cobra")
		require.True(t, ok)
		assert.Equal(t, 1.0, r)
	})

	t.Run("Below Cutoff", func(t *testing.T) {
		_, ok := similarity("naga", "Windigo")
		assert.False(t, ok)
	})

	t.Run("Length Difference Prefilter", func(t *testing.T) {
		_, ok := similarity("ab", "Half Burnt Scope")
		assert.False(t, ok)
	})

	t.Run("Empty Query", func(t *testing.T) {
		_, ok := similarity("", "Naga")
		assert.False(t, ok)
	})
}

func TestCorpus(t *testing.T) {
	c := NewCorpus[int]()
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 3) // replace keeps position

	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = c.Get("c")
	assert.False(t, ok)
}
