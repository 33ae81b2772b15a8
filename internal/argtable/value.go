package argtable

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseBool interprets a raw flag value. An empty value is a bare flag.
func ParseBool(v string) bool {
	if v == "" {
		return true
	}
	return ParseInt(v) != 0
}

// ParseInt parses the leading integer of s, ignoring leading whitespace and
// anything after the digits. Values without digits parse to 0 and
// out-of-range values clamp to the int64 limits.
func ParseInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}
