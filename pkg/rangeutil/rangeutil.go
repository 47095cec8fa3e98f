package rangeutil

import (
	"strconv"
	"strings"
)

// Parse converts an index specification into an ordered list of non-negative
// integers. Three forms are accepted, checked in this order:
//
//	"1,3,5" -> [1 3 5]   (invalid tokens are dropped)
//	"0-5"   -> [0 1 2 3 4 5]
//	"7"     -> [7]
//
// Malformed input never errors: the result is simply empty and callers
// substitute their own default.
func Parse(input string) []uint32 {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if strings.Contains(input, ",") {
		indexes := make([]uint32, 0)
		for _, token := range strings.Split(input, ",") {
			if v, ok := parseIndex(token); ok {
				indexes = append(indexes, v)
			}
		}
		return indexes
	}

	if strings.Contains(input, "-") {
		parts := strings.Split(input, "-")
		if len(parts) == 2 {
			start, okStart := parseIndex(parts[0])
			end, okEnd := parseIndex(parts[1])
			if okStart && okEnd {
				indexes := make([]uint32, 0)
				// The counter is wider than the indexes so the loop
				// terminates even when end is the maximum uint32.
				for i := uint64(start); i <= uint64(end); i++ {
					indexes = append(indexes, uint32(i))
				}
				return indexes
			}
		}
		return nil
	}

	if v, ok := parseIndex(input); ok {
		return []uint32{v}
	}

	return nil
}

// ParseWithDefault behaves like Parse but falls back to the given default
// list when the parsed result is empty.
func ParseWithDefault(input string, defaultIndexes []uint32) []uint32 {
	if indexes := Parse(input); len(indexes) > 0 {
		return indexes
	}
	return defaultIndexes
}

func parseIndex(token string) (uint32, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
