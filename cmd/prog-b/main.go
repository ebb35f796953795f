// prog-b is the fixture binary for the "b" configuration. It is a thin
// harness: defaults, one output line, and the combiner's status as the
// process exit code. All interesting behavior lives in internal/fixture.
package main

import (
	"fmt"
	"os"

	"github.com/TimelessP/graphisomorphism/internal/fixture"
)

// run resolves argv against the fixture's defaults and executes it.
func run(args []string) fixture.Result {
	f, _ := fixture.ByName("b")

	text := f.DefaultText
	seed := f.DefaultSeed
	if len(args) > 0 {
		text = args[0]
	}
	if len(args) > 1 {
		seed = fixture.ParseSeed(args[1])
	}

	return f.Run(text, seed)
}

func main() {
	res := run(os.Args[1:])
	fmt.Println(res.Message)
	os.Exit(res.Status)
}
