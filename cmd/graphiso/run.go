package main

import (
	"fmt"

	"github.com/TimelessP/graphisomorphism/internal/fixture"
)

type RunCmd struct {
	Fixture string  `arg:"" help:"Fixture name (see 'graphiso list')"`
	Text    *string `help:"Text input (defaults to the fixture's own)"`
	Seed    *string `help:"Seed input; malformed values coerce to 0"`
}

func (c *RunCmd) Run() error {
	f, ok := fixture.ByName(c.Fixture)
	if !ok {
		return fmt.Errorf("unknown fixture %q (known: %v)", c.Fixture, fixture.Names())
	}

	text := f.DefaultText
	if c.Text != nil {
		text = *c.Text
	}
	seed := f.DefaultSeed
	if c.Seed != nil {
		seed = fixture.ParseSeed(*c.Seed)
	}

	res := f.Run(text, seed)
	fmt.Printf("%s (status %d)\n", res.Message, res.Status)
	return nil
}
