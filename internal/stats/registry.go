package stats

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Def describes one stat: how lookup commands should present it and whether
// the arena shop can buff it.
type Def struct {
	Name       string `yaml:"name"`
	Emoji      string `yaml:"emoji"`
	Beneficial bool   `yaml:"beneficial"`
	Buff       bool   `yaml:"buff"`
}

// Registry holds the stat definitions keyed by stat code, in the order stats
// appear in the workshop. Built once at startup and read-only afterwards.
type Registry struct {
	order []string
	defs  map[string]Def
}

//go:embed stats.yaml
var defaultStats []byte

// NewRegistry parses a stat-definition document. Key order in the document
// defines the canonical workshop stat order.
func NewRegistry(raw []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stat definitions: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("stat definitions: expected a top-level mapping")
	}

	root := doc.Content[0]
	r := &Registry{defs: make(map[string]Def, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		var code string
		if err := root.Content[i].Decode(&code); err != nil {
			return nil, fmt.Errorf("stat definitions: %w", err)
		}
		var def Def
		if err := root.Content[i+1].Decode(&def); err != nil {
			return nil, fmt.Errorf("stat definitions: %s: %w", code, err)
		}
		r.order = append(r.order, code)
		r.defs[code] = def
	}
	return r, nil
}

// LoadRegistry reads stat definitions from the first data directory carrying
// a stats.yaml, falling back to the embedded defaults. Mirrors how campaign
// data directories override bundled data elsewhere in the project.
func LoadRegistry(dataDirs []string) (*Registry, error) {
	for _, dir := range dataDirs {
		raw, err := os.ReadFile(filepath.Join(dir, "stats.yaml"))
		if err == nil {
			return NewRegistry(raw)
		}
	}
	return NewRegistry(defaultStats)
}

// Lookup returns the definition for a stat code.
func (r *Registry) Lookup(code string) (Def, bool) {
	d, ok := r.defs[code]
	return d, ok
}

// Order returns every stat code in workshop order.
func (r *Registry) Order() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Position returns a stat's index in the workshop order, or len(order) for
// unknown stats so they sort last.
func (r *Registry) Position(code string) int {
	for i, c := range r.order {
		if c == code {
			return i
		}
	}
	return len(r.order)
}
