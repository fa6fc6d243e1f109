package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagSet mirrors the tag containers entities expose.
type tagSet []string

func (t tagSet) Has(tag string) bool {
	for _, have := range t {
		if have == tag {
			return true
		}
	}
	return false
}

func proxyEntity() fakeEntity {
	return fakeEntity{
		"name": "Sorrow",
		"tags": tagSet{"melee", "sword"},
	}
}

func TestProxyMethodCall(t *testing.T) {
	e := proxyEntity()

	t.Run("Declared Method", func(t *testing.T) {
		got, err := Field("tags").Proxy().Method("Has").Bind("melee").Eval(e)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = Field("tags").Proxy().Method("Has").Bind("legacy").Eval(e)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("String Fallback Methods", func(t *testing.T) {
		got, err := Field("name").Proxy().Method("HasPrefix").Bind("Sor").Eval(e)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = Field("name").Proxy().Method("Contains").Bind("row").Eval(e)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = Field("name").Proxy().Method("EqualFold").Bind("SORROW").Eval(e)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Composes With Expressions", func(t *testing.T) {
		pred := Field("tags").Proxy().Method("Has").Bind("sword").And(Field("name").Eq("Sorrow"))
		got, err := pred.Eval(e)
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestProxyMisuse(t *testing.T) {
	e := proxyEntity()

	t.Run("Method Chosen Twice", func(t *testing.T) {
		_, err := Field("name").Proxy().Method("Contains").Method("HasPrefix").Bind("S").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("Bound Before Method", func(t *testing.T) {
		_, err := Field("name").Proxy().Bind("S").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("Bound Twice", func(t *testing.T) {
		_, err := Field("name").Proxy().Method("Contains").Bind("S").Bind("o").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("Evaluated Unbound", func(t *testing.T) {
		_, err := Field("name").Proxy().Method("Contains").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)

		_, err = Field("name").Proxy().Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("No Such Method", func(t *testing.T) {
		_, err := Field("name").Proxy().Method("Explode").Bind("x").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("Wrong Argument Count", func(t *testing.T) {
		_, err := Field("tags").Proxy().Method("Has").Bind("a", "b").Eval(e)
		assert.ErrorIs(t, err, ErrProxyState)
	})

	t.Run("Unknown Attribute", func(t *testing.T) {
		_, err := Field("missing").Proxy().Method("Has").Bind("a").Eval(e)
		assert.ErrorIs(t, err, ErrUnknownAttribute)
	})
}

func TestProxyString(t *testing.T) {
	p := Field("name").Proxy().Method("HasPrefix").Bind("Sor")
	assert.True(t, strings.Contains(p.String(), "name.HasPrefix"))
}
