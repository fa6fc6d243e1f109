package item

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/Enegg/SuperMechs-bot/internal/lookup"
	"github.com/Enegg/SuperMechs-bot/internal/stats"
)

// PackConfig identifies an item pack and where its assets live.
type PackConfig struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	BaseURL     string `yaml:"base_url"`
	Description string `yaml:"description"`
}

// itemDef is the raw wire form of an item inside a pack.
type itemDef struct {
	ID             int        `yaml:"id"`
	Name           string     `yaml:"name"`
	Image          string     `yaml:"image"`
	Type           string     `yaml:"type"`
	Element        string     `yaml:"element"`
	TransformRange string     `yaml:"transform_range"`
	Stats          *stats.Bag `yaml:"stats"`
	Divine         *stats.Bag `yaml:"divine"`
	Tags           []string   `yaml:"tags"`
}

// packDef is the wire form of a whole pack. The upstream pack ships as JSON,
// which decodes fine as YAML.
type packDef struct {
	Config PackConfig `yaml:"config"`
	Items  []itemDef  `yaml:"items"`
}

// Pack is a fully decoded item pack, with lookup structures built once.
type Pack struct {
	Config PackConfig
	Items  []*Item

	corpus *lookup.Corpus[*Item]
	index  lookup.Index
}

// DecodePack reads a pack document from r and builds every item in it.
func DecodePack(r io.Reader) (*Pack, error) {
	var def packDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode item pack: %w", err)
	}
	return buildPack(def)
}

// LoadPack reads a pack document from a file.
func LoadPack(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open item pack %s: %w", path, err)
	}
	defer f.Close()
	return DecodePack(f)
}

func buildPack(def packDef) (*Pack, error) {
	pack := &Pack{
		Config: def.Config,
		corpus: lookup.NewCorpus[*Item](),
	}

	for _, raw := range def.Items {
		it, err := buildItem(raw, def.Config)
		if err != nil {
			return nil, err
		}
		pack.Items = append(pack.Items, it)
		pack.corpus.Add(it.Name, it)
	}

	pack.index = lookup.NewIndex(pack.corpus.Names())
	return pack, nil
}

func buildItem(raw itemDef, cfg PackConfig) (*Item, error) {
	typ, err := ParseType(raw.Type)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", raw.Name, err)
	}

	element := Omni
	if raw.Element != "" {
		element, err = ParseElement(raw.Element)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", raw.Name, err)
		}
	}

	transform, err := ParseTransformRange(raw.TransformRange)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", raw.Name, err)
	}

	if raw.Stats == nil {
		raw.Stats = stats.NewBag()
	}

	it := &Item{
		ID:        raw.ID,
		Name:      raw.Name,
		Type:      typ,
		Element:   element,
		Transform: transform,
		Stats:     raw.Stats,
		Divine:    raw.Divine,
		Tags:      Tags(raw.Tags),
		ImageURL:  jsFormat(raw.Image, map[string]string{"url": cfg.BaseURL}),
		Pack:      cfg.Key,
	}
	if err := it.validate(); err != nil {
		return nil, err
	}
	return it, nil
}

// Corpus returns the insertion-ordered name->item collection for resolving.
func (p *Pack) Corpus() *lookup.Corpus[*Item] { return p.corpus }

// Index returns the abbreviation index over the pack's item names.
func (p *Pack) Index() lookup.Index { return p.index }

// Resolve finds up to limit items matching a user query, abbreviation hits
// first.
func (p *Pack) Resolve(query string, limit int) ([]*Item, error) {
	return lookup.Resolve(p.corpus, query, p.index, limit)
}

// Get returns the item registered under the exact display name.
func (p *Pack) Get(name string) (*Item, bool) {
	return p.corpus.Get(name)
}

var jsKeyPattern = regexp.MustCompile(`%(\w+)%`)

// jsFormat substitutes JavaScript-style %key% placeholders, the format item
// packs use for image URL templates.
func jsFormat(s string, vars map[string]string) string {
	return jsKeyPattern.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
