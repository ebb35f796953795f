package mixer

// StepRule applies one round of a variant transform. It receives the signed
// accumulator, its unsigned 32-bit reinterpretation, and the 0-based round
// index, and returns the next accumulator.
type StepRule func(acc int32, u uint32, i int32) int32

// VariantConfig parameterizes one instance of the round machine shared by
// all variant mixers. The per-program variants differ only in their round
// count, step rule, and optional post-step adjustment; the loop itself is
// identical across instances. A zero AdjustMask disables the adjustment.
type VariantConfig struct {
	Name   string
	Rounds int32
	Rule   StepRule

	// Post-step adjustment: subtract AdjustDelta whenever the masked
	// accumulator bit is set and the round index exceeds AdjustAfter.
	AdjustMask  int32
	AdjustAfter int32
	AdjustDelta int32
}

// Mix runs the configured rounds over x and returns the final accumulator.
// No round is ever skipped or reordered.
func (c VariantConfig) Mix(x int32) int32 {
	out := x
	for i := int32(0); i < c.Rounds; i++ {
		out = c.Rule(out, uint32(out), i)
		if c.AdjustMask != 0 && out&c.AdjustMask != 0 && i > c.AdjustAfter {
			out -= c.AdjustDelta
		}
	}
	return out
}

// Beta is the variant unique to the prog_b fixture. Its thresholds compare
// the unsigned view of the accumulator, so negative values take the high
// branch.
var Beta = VariantConfig{
	Name:   "beta",
	Rounds: 30,
	Rule: func(acc int32, u uint32, i int32) int32 {
		switch {
		case u > 20000:
			return acc - (i + 5)
		case u < 150:
			return acc + i*4
		default:
			return acc ^ i<<1
		}
	},
	AdjustMask:  8,
	AdjustAfter: 10,
	AdjustDelta: 9,
}

// Left is the variant unique to the multi-a fixture. It is purely
// index-banded: the accumulator value never influences branch selection.
var Left = VariantConfig{
	Name:   "left",
	Rounds: 28,
	Rule: func(acc int32, _ uint32, i int32) int32 {
		switch {
		case i < 8:
			return acc + i
		case i > 20:
			return acc ^ i<<2
		default:
			return acc - i*5
		}
	},
}

// Right is the variant unique to the multi-b fixture.
var Right = VariantConfig{
	Name:   "right",
	Rounds: 28,
	Rule: func(acc int32, u uint32, i int32) int32 {
		switch {
		case u > 5000:
			return acc - (i + 7)
		case i%4 == 0:
			return acc + i*6
		default:
			return acc ^ i<<1
		}
	},
	AdjustMask:  16,
	AdjustAfter: 12,
	AdjustDelta: 3,
}

// Shared is the 24-round mixer every multi fixture invokes twice. Both call
// sites go through this single instance so they stay instruction-identical
// across programs.
var Shared = VariantConfig{
	Name:   "shared",
	Rounds: 24,
	Rule: func(acc int32, _ uint32, i int32) int32 {
		if acc&1 == 0 {
			acc += i * 3
		} else {
			acc -= i * 2
		}
		if acc > 600 {
			acc -= 111
		}
		if acc < -600 {
			acc += 222
		}
		return acc
	},
}
