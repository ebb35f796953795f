package main

import (
	"context"
	"fmt"

	"github.com/TimelessP/graphisomorphism/internal/golden"
)

type CaptureCmd struct {
	Config   string `short:"c" default:"suite.hcl" help:"Path to HCL suite configuration"`
	Output   string `short:"o" default:"baseline.json" help:"Baseline file to write"`
	LogLevel string `short:"l" default:"info" help:"Log level (debug, info, warn, error)"`
}

func (c *CaptureCmd) Run() error {
	logger := setupLogger(c.LogLevel)

	cfg, err := golden.LoadSuite(c.Config)
	if err != nil {
		return err
	}
	cases, err := cfg.Resolve()
	if err != nil {
		return err
	}

	logger.Info("capturing baseline", "suite", cfg.Name, "cases", len(cases))

	runner := golden.NewRunner(logger, nil)
	baseline, err := runner.Capture(context.Background(), cfg.Name, cases)
	if err != nil {
		return err
	}
	if err := baseline.Write(c.Output); err != nil {
		return err
	}

	fmt.Printf("captured %d records to %s\n", len(baseline.Records), c.Output)
	return nil
}
