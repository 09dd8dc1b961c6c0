package service

import (
	"math"
	"strconv"
	"strings"
)

// Normalize turns free text such as "$1,234.50" into a number. Every
// character other than a digit or '.' is dropped and the longest numeric
// prefix of what remains is parsed. Anything unparseable yields 0.
func Normalize(text string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)

	value, err := strconv.ParseFloat(numericPrefix(cleaned), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// numericPrefix keeps digits up to the second decimal point, so "1.2.3"
// parses as 1.2.
func numericPrefix(s string) string {
	if first := strings.IndexByte(s, '.'); first >= 0 {
		if second := strings.IndexByte(s[first+1:], '.'); second >= 0 {
			return s[:first+1+second]
		}
	}
	return s
}
