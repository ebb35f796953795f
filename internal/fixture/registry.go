package fixture

import (
	"fmt"
	"sort"

	"github.com/TimelessP/graphisomorphism/internal/mixer"
)

// The registered configurations mirror the original fixture programs. The
// shared mixers are reached through the same instances from every fixture;
// that cross-program identity is deliberate and must not be "deduplicated"
// away by changing how a configuration invokes them.
var registry = map[string]Fixture{
	"b": {
		Name:        "b",
		TakesText:   true,
		DefaultText: "beta-demo",
		DefaultSeed: 123,
		run: func(text string, seed int32) Result {
			r1 := mixer.Score(seed)
			r2 := mixer.Text(text)
			r3 := mixer.Beta.Mix(seed + r2)

			var msg string
			if r1 > r3 {
				msg = fmt.Sprintf("prog_b high %d", r1-r3)
			} else {
				msg = fmt.Sprintf("prog_b low %d", r3-r1)
			}
			return Result{Message: msg, Status: statusOf(r1, r2, r3)}
		},
	},
	"multi-a": {
		Name:        "multi-a",
		DefaultSeed: 77,
		run: func(_ string, seed int32) Result {
			a := mixer.Shared.Mix(seed)
			b := mixer.Left.Mix(seed + a)
			c := mixer.Shared.Mix(seed + b)
			return Result{
				Message: fmt.Sprintf("A:%d", a+b+c),
				Status:  statusOf(a, b, c),
			}
		},
	},
	"multi-b": {
		Name:        "multi-b",
		DefaultSeed: 77,
		run: func(_ string, seed int32) Result {
			a := mixer.Shared.Mix(seed)
			b := mixer.Right.Mix(seed + a)
			c := mixer.Shared.Mix(seed + b)
			return Result{
				Message: fmt.Sprintf("B:%d", a+b+c),
				Status:  statusOf(a, b, c),
			}
		},
	},
}

// ByName looks up a fixture configuration.
func ByName(name string) (Fixture, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered fixture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered fixture in name order.
func All() []Fixture {
	fixtures := make([]Fixture, 0, len(registry))
	for _, name := range Names() {
		fixtures = append(fixtures, registry[name])
	}
	return fixtures
}
