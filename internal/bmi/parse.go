// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// ParseDecimal parses the longest decimal prefix of text and ignores the rest.
//
// Leading whitespace is skipped. The accepted prefix is an optional sign
// followed by either the literal "Infinity" or digits with an optional
// decimal point and an optional exponent. "." is the only decimal separator.
// When no prefix matches the result is NaN.
//
//	ParseDecimal("170cm")  // 170
//	ParseDecimal(" .5")    // 0.5
//	ParseDecimal("1e2kg")  // 100
//	ParseDecimal("abc")    // NaN
func ParseDecimal(text string) float64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	prefix := decimalPrefix(s)
	if prefix == "" {
		return math.NaN()
	}

	unsigned := strings.TrimLeft(prefix, "+-")
	if unsigned == infinityLiteral {
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Out-of-range prefixes come back as ±Inf or 0 together with ErrRange,
	// which is the value we want.
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// decimalPrefix returns the longest prefix of s that forms a number, or "".
func decimalPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], infinityLiteral) {
		return s[:i+len(infinityLiteral)]
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
