// prog-multi-b is the fixture binary for the "multi-b" configuration.
package main

import (
	"fmt"
	"os"

	"github.com/TimelessP/graphisomorphism/internal/fixture"
)

// run resolves argv against the fixture's defaults and executes it.
func run(args []string) fixture.Result {
	f, _ := fixture.ByName("multi-b")

	seed := f.DefaultSeed
	if len(args) > 0 {
		seed = fixture.ParseSeed(args[0])
	}

	return f.Run("", seed)
}

func main() {
	res := run(os.Args[1:])
	fmt.Println(res.Message)
	os.Exit(res.Status)
}
