package domain

import (
	"cmp"
	"slices"
	"strings"
)

// CompareNumeric orders canonical descriptor lines so that numeric tokens sort
// by value as long as they carry no leading zeros: at the first differing
// byte the token that ends sooner wins, otherwise the differing bytes decide.
// A proper prefix sorts first.
func CompareNumeric(x, y string) int {
	i := 0

	for {
		if i == len(x) || i == len(y) {
			return cmp.Compare(len(x), len(y))
		}

		if x[i] != y[i] {
			break
		}

		i++
	}

	xEnd := tokenEnd(x, i)
	yEnd := tokenEnd(y, i)

	if xEnd != yEnd {
		return cmp.Compare(xEnd, yEnd)
	}

	return cmp.Compare(int(x[i]), int(y[i]))
}

// NumericLess reports whether x sorts before y.
func NumericLess(x, y string) bool {
	return CompareNumeric(x, y) < 0
}

// SortDescriptors sorts lines in place with CompareNumeric.
func SortDescriptors(lines []string) {
	slices.SortStableFunc(lines, CompareNumeric)
}

func tokenEnd(s string, from int) int {
	if idx := strings.IndexByte(s[from:], ' '); idx >= 0 {
		return from + idx
	}

	return len(s)
}

