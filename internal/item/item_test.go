package item

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

// samplePack is a minimal pack document in the upstream JSON layout, which
// the YAML decoder accepts verbatim.
const samplePack = `{
  "config": {
    "key": "test",
    "name": "Test Pack",
    "base_url": "https://example.com/assets",
    "description": "fixtures"
  },
  "items": [
    {
      "id": 1,
      "name": "Hybrid Heat Cannon",
      "image": "%url%/hhc.png",
      "type": "TOP_WEAPON",
      "element": "EXPLOSIVE",
      "transform_range": "L-M",
      "stats": {"weight": 55, "expDmg": [75, 125], "heaDmg": 40, "backfire": 30},
      "tags": ["requires_jump"]
    },
    {
      "id": 2,
      "name": "Zarkares",
      "image": "%url%/zarkares.png",
      "type": "TORSO",
      "element": "HEAT",
      "transform_range": "E-M",
      "stats": {"weight": 352, "health": 900, "eneCap": 231, "heaCap": 270}
    },
    {
      "id": 3,
      "name": "EMP",
      "type": "TOP_WEAPON",
      "element": "ELECTRIC",
      "transform_range": "L-M",
      "stats": {"weight": 70, "eneDmg": 300}
    }
  ]
}`

func decodeSamplePack(t *testing.T) *Pack {
	t.Helper()
	pack, err := DecodePack(strings.NewReader(samplePack))
	require.NoError(t, err)
	return pack
}

func TestDecodePack(t *testing.T) {
	pack := decodeSamplePack(t)

	assert.Equal(t, "Test Pack", pack.Config.Name)
	require.Len(t, pack.Items, 3)

	hhc := pack.Items[0]
	assert.Equal(t, TopWeapon, hhc.Type)
	assert.Equal(t, Explosive, hhc.Element)
	assert.Equal(t, "https://example.com/assets/hhc.png", hhc.ImageURL)
	assert.Equal(t, "test", hhc.Pack)
	assert.True(t, hhc.Tags.Has("requires_jump"))
	assert.Equal(t, 55, hhc.Weight())

	v, ok := hhc.Stats.Get("expDmg")
	require.True(t, ok)
	assert.Equal(t, stats.Range(75, 125), v)

	// "HEAT" is the pack alias for the explosive element.
	assert.Equal(t, Explosive, pack.Items[1].Element)
}

func TestDecodePackRejectsBadItems(t *testing.T) {
	_, err := DecodePack(strings.NewReader(`{"items": [{"id": 1, "name": "X", "type": "HAT", "transform_range": "C-M"}]}`))
	assert.Error(t, err)

	_, err = DecodePack(strings.NewReader(`{"items": [{"id": 1, "type": "TORSO", "transform_range": "C-M", "stats": {"weight": 1}}]}`))
	assert.Error(t, err)

	_, err = DecodePack(strings.NewReader(`{"items": [{"id": 1, "name": "X", "type": "TORSO", "transform_range": "C-M"}]}`))
	assert.Error(t, err, "item without stats")
}

func TestPackResolve(t *testing.T) {
	pack := decodeSamplePack(t)

	t.Run("Abbreviation", func(t *testing.T) {
		got, err := pack.Resolve("hhc", 25)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Hybrid Heat Cannon", got[0].Name)
	})

	t.Run("Fuzzy", func(t *testing.T) {
		got, err := pack.Resolve("zakares", 25)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Zarkares", got[0].Name)
	})

	t.Run("All Caps Name Needs Full Match", func(t *testing.T) {
		got, err := pack.Resolve("emp", 25)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "EMP", got[0].Name)
	})

	t.Run("Exact Get", func(t *testing.T) {
		it, ok := pack.Get("Zarkares")
		require.True(t, ok)
		assert.Equal(t, 2, it.ID)
	})
}

func TestItemAttr(t *testing.T) {
	pack := decodeSamplePack(t)
	hhc := pack.Items[0]

	cases := []struct {
		attr string
		want any
	}{
		{"id", 1},
		{"name", "Hybrid Heat Cannon"},
		{"type", "TOP_WEAPON"},
		{"element", "EXPLOSIVE"},
		{"rarity", "MYTHICAL"},
		{"weight", 55},
		{"heaDmg", 40},
		{"expDmg", stats.Range(75, 125)},
	}
	for _, tc := range cases {
		got, ok := hhc.Attr(tc.attr)
		require.True(t, ok, tc.attr)
		assert.Equal(t, tc.want, got, tc.attr)
	}

	_, ok := hhc.Attr("phyDmg")
	assert.False(t, ok)
}

func TestStatsAt(t *testing.T) {
	divine := stats.NewBag()
	divine.Set("health", stats.Scalar(1100))

	base := stats.NewBag()
	base.Set("health", stats.Scalar(1000))

	it := &Item{Name: "X", Stats: base, Divine: divine}
	assert.Equal(t, divine, it.StatsAt(Divine))
	assert.Equal(t, base, it.StatsAt(Mythical))

	plain := &Item{Name: "Y", Stats: base}
	assert.Equal(t, base, plain.StatsAt(Divine))
}

func TestJSFormat(t *testing.T) {
	got := jsFormat("%url%/img/%name%.png", map[string]string{"url": "https://x"})
	assert.Equal(t, "https://x/img/%name%.png", got)
}
