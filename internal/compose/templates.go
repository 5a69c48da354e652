package compose

import (
	_ "embed"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplatesYAML []byte

// Templates holds every pool the composer selects from. The three historical
// pipeline versions differed only in pool contents and sizes, so pools are
// data, not code: the embedded default set can be replaced wholesale via a
// YAML file.
type Templates struct {
	Subjects  []string      `yaml:"subjects"`
	Greetings RegisterPools `yaml:"greetings"`
	HookLines RegisterPools `yaml:"hook_lines"`
	Pitches   PitchPools    `yaml:"pitches"`
	Values    RegisterPools `yaml:"values"`
	CTAs      RegisterPools `yaml:"ctas"`
	Closings  []string      `yaml:"closings"`
}

// RegisterPools splits a pool by address register.
type RegisterPools struct {
	Informal []string `yaml:"informal"`
	Formal   []string `yaml:"formal"`
}

// PitchPools splits pitches by register and sender voice.
type PitchPools struct {
	Informal VoicePools `yaml:"informal"`
	Formal   VoicePools `yaml:"formal"`
}

// VoicePools splits a pool by sender voice (ich vs. wir).
type VoicePools struct {
	Singular []string `yaml:"singular"`
	Plural   []string `yaml:"plural"`
}

// Default returns the embedded template set.
func Default() (*Templates, error) {
	return parse(defaultTemplatesYAML)
}

// LoadFile reads a template set from a YAML file, e.g. a per-campaign
// override of the embedded defaults.
func LoadFile(path string) (*Templates, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "compose: read templates file")
	}
	return parse(raw)
}

func parse(raw []byte) (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, eris.Wrap(err, "compose: unmarshal templates")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// validate rejects template sets with empty pools or CTAs that lack the demo
// URL placeholder. Variant selection indexes modulo pool length, so an empty
// pool would panic at compose time; catching it at load keeps composing
// infallible.
func (t *Templates) validate() error {
	pools := map[string][]string{
		"subjects":                  t.Subjects,
		"greetings.informal":        t.Greetings.Informal,
		"greetings.formal":          t.Greetings.Formal,
		"hook_lines.informal":       t.HookLines.Informal,
		"hook_lines.formal":         t.HookLines.Formal,
		"pitches.informal.singular": t.Pitches.Informal.Singular,
		"pitches.informal.plural":   t.Pitches.Informal.Plural,
		"pitches.formal.singular":   t.Pitches.Formal.Singular,
		"pitches.formal.plural":     t.Pitches.Formal.Plural,
		"values.informal":           t.Values.Informal,
		"values.formal":             t.Values.Formal,
		"ctas.informal":             t.CTAs.Informal,
		"ctas.formal":               t.CTAs.Formal,
		"closings":                  t.Closings,
	}
	for name, pool := range pools {
		if len(pool) == 0 {
			return eris.Errorf("compose: template pool %s is empty", name)
		}
	}
	for _, cta := range append(append([]string{}, t.CTAs.Informal...), t.CTAs.Formal...) {
		if !strings.Contains(cta, "%s") {
			return eris.Errorf("compose: cta %q lacks demo URL placeholder", cta)
		}
	}
	for _, g := range append(append([]string{}, t.Greetings.Informal...), t.Greetings.Formal...) {
		if !strings.Contains(g, "%s") {
			return eris.Errorf("compose: greeting %q lacks name placeholder", g)
		}
	}
	return nil
}
