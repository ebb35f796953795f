package fixture

import "strconv"

// ParseSeed converts a command-line seed argument to an int32. Malformed
// input coerces to 0 rather than raising an error: fixture binaries must
// keep producing deterministic output whatever they are handed, so the
// numeric-parse convention never rejects.
func ParseSeed(s string) int32 {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
