package golden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite(t *testing.T) {
	cfg, err := LoadSuite("testdata/suite.hcl")
	require.NoError(t, err)
	assert.Equal(t, "regression", cfg.Name)
	require.Len(t, cfg.Cases, 3)

	cases, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, cases, 3)

	// Unset fields fall back to the fixture's defaults.
	assert.Equal(t, "b", cases[0].Fixture.Name)
	assert.Equal(t, "beta-demo", cases[0].Text)
	assert.Equal(t, int32(123), cases[0].Seed)

	assert.Equal(t, "b", cases[1].Fixture.Name)
	assert.Equal(t, "x", cases[1].Text)
	assert.Equal(t, int32(500), cases[1].Seed)

	// An explicit zero seed survives resolution.
	assert.Equal(t, "multi-a", cases[2].Fixture.Name)
	assert.Equal(t, int32(0), cases[2].Seed)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	cfg, err := LoadSuite("testdata/nope.hcl")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Name)

	cases, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, cases, 3)

	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Fixture.Name
	}
	assert.Equal(t, []string{"b", "multi-a", "multi-b"}, names)
}

func TestResolveUnknownFixture(t *testing.T) {
	cfg := &SuiteConfig{Cases: []CaseConfig{{Fixture: "nosuch"}}}
	_, err := cfg.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown fixture "nosuch"`)
}
