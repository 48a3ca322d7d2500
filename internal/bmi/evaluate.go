// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrInvalidMeasurement is returned when height or weight is not a positive
// finite number. It is the only error this package produces.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// InvalidMeasurementMessage is the fixed sentence shown to the user when
// evaluation fails.
const InvalidMeasurementMessage = "Vui lòng nhập chiều cao và cân nặng hợp lệ."

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is the result of a successful evaluation. Status, Advice and
// Severity depend on BMI alone.
type Outcome struct {
	BMI      float64  `json:"bmi"`
	Status   Status   `json:"status"`
	Label    string   `json:"label"`
	Advice   string   `json:"advice"`
	Severity Severity `json:"severity"`
}

// NewOutcome classifies an already computed BMI value.
func NewOutcome(value float64) Outcome {
	status := Classify(value)
	return Outcome{
		BMI:      value,
		Status:   status,
		Label:    status.Label(),
		Advice:   status.Advice(),
		Severity: status.Severity(),
	}
}

// Formatted renders the BMI with one decimal place.
func (o Outcome) Formatted() string {
	return strconv.FormatFloat(o.BMI, 'f', 1, 64)
}

// =============================================================================
// EVALUATION
// =============================================================================

// Evaluate parses raw height (cm) and weight (kg) text and classifies the
// resulting BMI. On failure the returned error wraps ErrInvalidMeasurement
// and the Outcome is the zero value, whose Status is StatusUnknown.
func Evaluate(heightText, weightText string) (Outcome, error) {
	value, err := Compute(ParseDecimal(heightText), ParseDecimal(weightText))
	if err != nil {
		return Outcome{}, err
	}
	return NewOutcome(value), nil
}

// Compute returns weightKG / (heightCM/100)^2.
func Compute(heightCM, weightKG float64) (float64, error) {
	if !positiveFinite(heightCM) {
		return 0, fmt.Errorf("%w: height %v", ErrInvalidMeasurement, heightCM)
	}
	if !positiveFinite(weightKG) {
		return 0, fmt.Errorf("%w: weight %v", ErrInvalidMeasurement, weightKG)
	}

	heightM := heightCM / 100
	value := weightKG / (heightM * heightM)

	// Only reachable with absurd exponents such as "1e-200".
	if !positiveFinite(value) {
		return 0, fmt.Errorf("%w: bmi out of range", ErrInvalidMeasurement)
	}
	return value, nil
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
