// Package fixture wires the mixers into per-program combiner configurations
// and owns the output contract every fixture binary exposes: exactly one
// stdout line and an 8-bit exit status.
package fixture

// Result is the observable output of one fixture run.
type Result struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Fixture describes one program configuration: which mixers run, how their
// outputs thread together, and the default inputs the binary falls back to.
type Fixture struct {
	Name        string
	TakesText   bool
	DefaultText string
	DefaultSeed int32

	run func(text string, seed int32) Result
}

// Run executes the fixture's combiner over the given inputs. Fixtures that
// take no text ignore the text argument.
func (f Fixture) Run(text string, seed int32) Result {
	return f.run(text, seed)
}

// RunDefaults executes the fixture on its built-in defaults, the inputs the
// golden baselines are captured against.
func (f Fixture) RunDefaults() Result {
	return f.run(f.DefaultText, f.DefaultSeed)
}

// statusOf XOR-reduces mixer results and truncates to the low byte. Negative
// results contribute their two's-complement bit pattern, so the status is
// sign-independent and always lands in [0,255].
func statusOf(results ...int32) int {
	var x int32
	for _, r := range results {
		x ^= r
	}
	return int(uint32(x) & 0xFF)
}
