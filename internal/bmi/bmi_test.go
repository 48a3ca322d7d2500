// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// EVALUATE
// =============================================================================

func TestEvaluateKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		height   string
		weight   string
		wantBMI  float64
		want     Status
		severity Severity
	}{
		{"normal", "170", "65", 22.49, Normal, SeverityNormal},
		{"underweight", "180", "50", 15.43, Underweight, SeverityLow},
		{"obese", "160", "90", 35.16, Obese, SeverityHigh},
		{"overweight", "175", "85", 27.76, Overweight, SeverityElevated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Evaluate(tt.height, tt.weight)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBMI, out.BMI, 0.01)
			assert.Equal(t, tt.want, out.Status)
			assert.Equal(t, tt.severity, out.Severity)
			assert.Equal(t, tt.want.Advice(), out.Advice)
			assert.Equal(t, tt.want.Label(), out.Label)
		})
	}
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		height string
		weight string
	}{
		{"zero height", "0", "60"},
		{"negative height", "-170", "60"},
		{"non-numeric height", "abc", "60"},
		{"empty weight", "170", ""},
		{"zero weight", "170", "0"},
		{"negative weight", "170", "-1"},
		{"both empty", "", ""},
		{"infinite height", "Infinity", "60"},
		{"lone dot", ".", "60"},
		{"lone sign", "-", "60"},
		{"absurd exponent", "1e-200", "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Evaluate(tt.height, tt.weight)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMeasurement), "error should wrap ErrInvalidMeasurement: %v", err)
			assert.Equal(t, Outcome{}, out, "no partial result on failure")
		})
	}
}

func TestEvaluatePermissiveParsing(t *testing.T) {
	out, err := Evaluate("170cm", " 65kg")
	require.NoError(t, err)
	assert.InDelta(t, 22.49, out.BMI, 0.01)

	out, err = Evaluate("1.7e2", "65.0")
	require.NoError(t, err)
	assert.InDelta(t, 22.49, out.BMI, 0.01)
}

func TestEvaluateDeterministic(t *testing.T) {
	first, err1 := Evaluate("172.5", "70.2")
	second, err2 := Evaluate("172.5", "70.2")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, err1 = Evaluate("abc", "70")
	_, err2 = Evaluate("abc", "70")
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestCompute(t *testing.T) {
	v, err := Compute(200, 80)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	_, err = Compute(math.NaN(), 80)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	_, err = Compute(170, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  Status
	}{
		{0.1, Underweight},
		{18.49999, Underweight},
		{18.5, Normal},
		{24.9, Normal},
		{24.95, Normal},
		{25.0, Overweight},
		{29.9, Overweight},
		{29.900001, Obese},
		{30.0, Obese},
		{80, Obese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.value), "Classify(%v)", tt.value)
		assert.Equal(t, tt.want, NewOutcome(tt.value).Status, "NewOutcome(%v)", tt.value)
	}
}

func TestClassifyTotality(t *testing.T) {
	for i := 1; i <= 10000; i++ {
		value := float64(i) / 100

		matches := 0
		for _, b := range Bands() {
			min, minInclusive := b.Min()
			aboveMin := value > min || (minInclusive && value == min)
			if aboveMin && b.Contains(value) {
				matches++
			}
		}

		require.Equal(t, 1, matches, "value %v must fall in exactly one band", value)
		require.True(t, Classify(value).Valid())
	}
}

func TestBandsAreOrderedAndContiguous(t *testing.T) {
	bs := Bands()
	require.Len(t, bs, 4)

	for i := 1; i < len(bs); i++ {
		lo, _ := bs[i].Min()
		assert.Equal(t, bs[i-1].Max, lo)
		assert.Greater(t, bs[i].Max, bs[i-1].Max)
	}
	assert.True(t, math.IsInf(bs[len(bs)-1].Max, 1))

	// Bands returns a copy.
	bs[0].Max = 99
	assert.Equal(t, 18.5, Bands()[0].Max)
}

func TestBandsTable(t *testing.T) {
	want := []Band{
		{Status: Underweight, Max: 18.5},
		{Status: Normal, Max: 25.0},
		{Status: Overweight, Max: 29.9, MaxInclusive: true},
		{Status: Obese, Max: math.Inf(1)},
	}
	if diff := cmp.Diff(want, Bands()); diff != "" {
		t.Errorf("Bands() mismatch (-want +got):\n%s", diff)
	}

	lo, inclusive := Bands()[3].Min()
	assert.Equal(t, 29.9, lo)
	assert.False(t, inclusive, "29.9 itself is Overweight")

	lo, inclusive = Bands()[1].Min()
	assert.Equal(t, 18.5, lo)
	assert.True(t, inclusive)
}

// =============================================================================
// STATUS
// =============================================================================

func TestStatusTableIsComplete(t *testing.T) {
	seenSeverity := map[Severity]bool{}
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.String())
		assert.NotEmpty(t, s.Label())
		assert.NotEmpty(t, s.Advice())
		assert.NotEmpty(t, s.Severity())
		assert.False(t, seenSeverity[s.Severity()], "severity %s reused", s.Severity())
		seenSeverity[s.Severity()] = true
	}
	assert.False(t, Status(42).Valid())
	assert.Equal(t, "", Status(42).Label())
}

func TestStatusZeroValueIsUnknown(t *testing.T) {
	var s Status
	assert.Equal(t, StatusUnknown, s)
	assert.False(t, s.Valid())
	assert.Equal(t, "unknown", s.String())
	assert.Empty(t, s.Label())
	assert.Empty(t, s.Advice())
	assert.Empty(t, s.Severity())
	assert.NotContains(t, AllStatuses(), StatusUnknown)

	_, err := s.MarshalText()
	assert.Error(t, err)

	// A rejected measurement must not read as a classification.
	for _, weight := range []string{"-0", "0", "abc"} {
		out, err := Evaluate("170", weight)
		require.ErrorIs(t, err, ErrInvalidMeasurement, weight)
		assert.Equal(t, StatusUnknown, out.Status, weight)
		assert.False(t, out.Status.Valid(), weight)
	}

	_, err = ParseStatus("unknown")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Overweight ")
	require.NoError(t, err)
	assert.Equal(t, Overweight, s)

	_, err = ParseStatus("skinny")
	assert.Error(t, err)
}

func TestOutcomeJSON(t *testing.T) {
	out, err := Evaluate("160", "90")
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"obese"`)
	assert.Contains(t, string(data), `"severity":"high"`)

	var decoded Outcome
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, out, decoded)
}

func TestOutcomeFormatted(t *testing.T) {
	out, err := Evaluate("170", "65")
	require.NoError(t, err)
	assert.Equal(t, "22.5", out.Formatted())
}
