// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

func TestSettersDoNotValidate(t *testing.T) {
	s := State{}.SetHeightText("abc").SetWeightText("")

	assert.Equal(t, "abc", s.HeightText)
	assert.Equal(t, "", s.WeightText)
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Empty(t, s.Err)
	assert.Nil(t, s.Outcome)
}

func TestSettersReturnNewState(t *testing.T) {
	before := State{HeightText: "170"}
	after := before.SetHeightText("180")

	assert.Equal(t, "170", before.HeightText)
	assert.Equal(t, "180", after.HeightText)
}

func TestSubmitSuccess(t *testing.T) {
	s := State{}.SetHeightText("170").SetWeightText("65").Submit()

	require.NotNil(t, s.Outcome)
	assert.Empty(t, s.Err)
	assert.Equal(t, PhaseResult, s.Phase())
	assert.Equal(t, bmi.Normal, s.Outcome.Status)
	assert.InDelta(t, 22.49, s.Outcome.BMI, 0.01)
}

func TestSubmitFailureClearsOutcome(t *testing.T) {
	s := State{}.SetHeightText("170").SetWeightText("65").Submit()
	require.NotNil(t, s.Outcome)

	s = s.SetWeightText("").Submit()
	assert.Nil(t, s.Outcome)
	assert.Equal(t, bmi.InvalidMeasurementMessage, s.Err)
	assert.Equal(t, PhaseError, s.Phase())
}

func TestSubmitSuccessClearsError(t *testing.T) {
	s := State{}.SetHeightText("0").SetWeightText("60").Submit()
	require.Equal(t, PhaseError, s.Phase())

	s = s.SetHeightText("160").SetWeightText("90").Submit()
	assert.Empty(t, s.Err)
	require.NotNil(t, s.Outcome)
	assert.Equal(t, bmi.Obese, s.Outcome.Status)
}

func TestSubmitReplacesOutcome(t *testing.T) {
	first := State{}.SetHeightText("180").SetWeightText("50").Submit()
	second := first.SetWeightText("65").Submit()

	require.NotNil(t, first.Outcome)
	require.NotNil(t, second.Outcome)
	assert.Equal(t, bmi.Underweight, first.Outcome.Status, "earlier state must not be mutated")
	assert.Equal(t, bmi.Normal, second.Outcome.Status)
}

func TestErrorAndOutcomeAreExclusive(t *testing.T) {
	inputs := [][2]string{
		{"170", "65"}, {"abc", "60"}, {"180", "50"}, {"-170", "60"},
		{"160", "90"}, {"170", ""}, {"0", "60"}, {"175", "85"},
	}

	s := State{}
	for _, in := range inputs {
		s = s.SetHeightText(in[0]).SetWeightText(in[1]).Submit()
		bothSet := s.Err != "" && s.Outcome != nil
		assert.False(t, bothSet, "error and outcome both present after %v", in)
		assert.NotEqual(t, PhaseEmpty, s.Phase())
	}
}

func TestReset(t *testing.T) {
	s := State{}.SetHeightText("170").SetWeightText("65").Submit().Reset()
	assert.Equal(t, State{}, s)
	assert.Equal(t, "empty", s.Phase().String())
}
