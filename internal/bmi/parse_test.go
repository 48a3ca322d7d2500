// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"math"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"170", 170},
		{"170cm", 170},
		{"  65.5 kg", 65.5},
		{"\t42", 42},
		{".5", 0.5},
		{"5.", 5},
		{"+12", 12},
		{"-3.25", -3.25},
		{"1e2", 100},
		{"1E+2x", 100},
		{"2.5e-1", 0.25},
		{"7e", 7},
		{"7e+", 7},
		{"0x10", 0},
		{"1,5", 1},
		{"12.34.56", 12.34},
		{"1e400", math.Inf(1)},
		{"Infinity", math.Inf(1)},
		{"-Infinityabc", math.Inf(-1)},
	}

	for _, tt := range tests {
		got := ParseDecimal(tt.input)
		if got != tt.want {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDecimalNaN(t *testing.T) {
	inputs := []string{"", "   ", "abc", ".", "-", "+.", "e5", "infinity", "NaN", "cm170"}
	for _, input := range inputs {
		if got := ParseDecimal(input); !math.IsNaN(got) {
			t.Errorf("ParseDecimal(%q) = %v, want NaN", input, got)
		}
	}
}
