package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/TimelessP/graphisomorphism/internal/golden"
)

var (
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type VerifyCmd struct {
	Baseline string `arg:"" help:"Baseline file to verify against"`
	Config   string `short:"c" default:"suite.hcl" help:"Path to HCL suite configuration"`
	LogLevel string `short:"l" default:"info" help:"Log level (debug, info, warn, error)"`
}

func (c *VerifyCmd) Run() error {
	logger := setupLogger(c.LogLevel)

	baseline, err := golden.Load(c.Baseline)
	if err != nil {
		return err
	}
	cfg, err := golden.LoadSuite(c.Config)
	if err != nil {
		return err
	}
	cases, err := cfg.Resolve()
	if err != nil {
		return err
	}

	runner := golden.NewRunner(logger, nil)
	current, err := runner.Capture(context.Background(), cfg.Name, cases)
	if err != nil {
		return err
	}

	diffs := golden.Verify(baseline, current)
	if len(diffs) == 0 {
		fmt.Println(passStyle.Render(fmt.Sprintf("ok: %d records match the baseline", len(current.Records))))
		return nil
	}

	for _, d := range diffs {
		fmt.Println(failStyle.Render(d.String()))
	}
	return fmt.Errorf("%d of %d records drifted from the baseline", len(diffs), len(baseline.Records))
}
