package cmd

import (
	"strconv"
	"strings"
)

// parseOffset converts s like atoll(3): leading white space and a sign are
// accepted, parsing stops at the first non-digit, no digits yields 0 and
// out-of-range values saturate.
func parseOffset(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}
