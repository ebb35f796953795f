package golden

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/TimelessP/graphisomorphism/internal/fixture"
)

// SuiteConfig declares which fixture cases a capture or verify run covers.
// Case fields left unset fall back to the fixture's own defaults.
type SuiteConfig struct {
	Name  string       `hcl:"name,optional"`
	Cases []CaseConfig `hcl:"case,block"`
}

// CaseConfig is one declared case. Text and Seed are pointers so an explicit
// zero seed can be told apart from an absent one.
type CaseConfig struct {
	Fixture string  `hcl:"fixture,label"`
	Text    *string `hcl:"text,optional"`
	Seed    *int    `hcl:"seed,optional"`
}

// Case is a resolved, runnable suite case.
type Case struct {
	Fixture fixture.Fixture
	Text    string
	Seed    int32
}

// DefaultSuite covers every registered fixture on its default inputs.
func DefaultSuite() *SuiteConfig {
	cfg := &SuiteConfig{Name: "default"}
	for _, name := range fixture.Names() {
		cfg.Cases = append(cfg.Cases, CaseConfig{Fixture: name})
	}
	return cfg
}

// LoadSuite loads a suite configuration from an HCL file. A missing file
// yields the default suite.
func LoadSuite(filename string) (*SuiteConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSuite(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg SuiteConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Name == "" {
		cfg.Name = "default"
	}
	if len(cfg.Cases) == 0 {
		cfg.Cases = DefaultSuite().Cases
	}
	return &cfg, nil
}

// Resolve looks up every declared fixture and fills unset inputs from its
// defaults. Unknown fixture names are the only way a suite can fail.
func (c *SuiteConfig) Resolve() ([]Case, error) {
	cases := make([]Case, 0, len(c.Cases))
	for _, cc := range c.Cases {
		f, ok := fixture.ByName(cc.Fixture)
		if !ok {
			return nil, fmt.Errorf("unknown fixture %q", cc.Fixture)
		}

		resolved := Case{
			Fixture: f,
			Text:    f.DefaultText,
			Seed:    f.DefaultSeed,
		}
		if cc.Text != nil {
			resolved.Text = *cc.Text
		}
		if cc.Seed != nil {
			resolved.Seed = int32(*cc.Seed)
		}
		cases = append(cases, resolved)
	}
	return cases, nil
}
