// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bmi computes a Body Mass Index from raw height/weight text and
// classifies it into one of four health bands.
//
// # Key Types
//
//   - Status: closed set of classification labels (Underweight, Normal,
//     Overweight, Obese); the zero value StatusUnknown marks no result
//   - Severity: presentation tag paired 1:1 with a Status
//   - Outcome: result of a successful evaluation
//   - Band: one row of the classification table
//
// # Usage
//
//	out, err := bmi.Evaluate("170", "65")
//	if errors.Is(err, bmi.ErrInvalidMeasurement) {
//		fmt.Println(bmi.InvalidMeasurementMessage)
//		return
//	}
//	fmt.Println(out.Formatted(), out.Status.Label(), out.Advice)
//
// Height is always centimeters and weight always kilograms. Everything in
// this package is pure: no I/O, no shared state, safe for concurrent use.
package bmi
