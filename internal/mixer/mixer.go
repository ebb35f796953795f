// Package mixer implements the deterministic integer transforms at the core
// of the fixture programs. Every mixer is a pure function over fixed-width
// values: all accumulator arithmetic is int32 with two's-complement
// wraparound and sign-preserving right shifts, so identical inputs produce
// identical outputs on every platform. The shared mixers are invoked from
// multiple fixture binaries on purpose; their cross-program identity is the
// similarity signal the fixtures exist to exhibit.
package mixer

// scoreRounds is part of the fixture contract and never varies at runtime.
const scoreRounds = 40

// Score runs the 40-round arithmetic transform over seed. Even accumulators
// are halved and nudged up, odd ones are tripled and nudged down, and values
// drifting past ±2000 are biased back toward zero. The bias is not a clamp:
// the accumulator may still overflow, and wraps silently when it does.
func Score(seed int32) int32 {
	acc := seed
	for i := 0; i < scoreRounds; i++ {
		acc = scoreRound(acc)
	}
	return acc
}

func scoreRound(acc int32) int32 {
	if acc&1 == 0 {
		acc = acc>>1 + 7
	} else {
		acc = acc*3 - 5
	}
	if acc > 2000 {
		acc -= 333
	}
	if acc < -2000 {
		acc += 777
	}
	return acc
}

// Text folds a byte sequence into a signed total: even byte values add, odd
// ones subtract, and any total past 5000 is halved with truncating division.
// Empty input yields 0.
func Text(text string) int32 {
	var total int32
	for i := 0; i < len(text); i++ {
		v := int32(text[i])
		if v%2 == 0 {
			total += v
		} else {
			total -= v
		}
		if total > 5000 {
			total /= 2
		}
	}
	return total
}
