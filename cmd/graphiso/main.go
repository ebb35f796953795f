package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Run     RunCmd     `cmd:"" help:"Run one fixture and print its output"`
	List    ListCmd    `cmd:"" help:"List the registered fixture configurations"`
	Capture CaptureCmd `cmd:"" help:"Capture a golden baseline for a fixture suite"`
	Verify  VerifyCmd  `cmd:"" help:"Verify current fixture output against a baseline"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("graphiso"),
		kong.Description("Golden-output fixture programs for binary similarity analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
