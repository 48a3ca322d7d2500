// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package form holds the transient height/weight form state and its
// transitions. Transitions are value methods that return the next state, so
// a State can be copied and compared freely.
package form

import (
	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// Phase is what the form currently shows below the inputs.
type Phase int

const (
	PhaseEmpty  Phase = iota // nothing submitted yet
	PhaseError               // validation message shown
	PhaseResult              // outcome shown
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseError:
		return "error"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// State is the Input Collector: two raw fields plus whichever of error or
// outcome the last submit produced. Err and Outcome are never both set.
type State struct {
	HeightText string
	WeightText string
	Err        string
	Outcome    *bmi.Outcome
}

// SetHeightText replaces the height field verbatim.
func (s State) SetHeightText(text string) State {
	s.HeightText = text
	return s
}

// SetWeightText replaces the weight field verbatim.
func (s State) SetWeightText(text string) State {
	s.WeightText = text
	return s
}

// Submit evaluates the current fields. A failure sets Err and clears any
// previous outcome; a success replaces the outcome and leaves Err empty.
func (s State) Submit() State {
	s.Err = ""

	out, err := bmi.Evaluate(s.HeightText, s.WeightText)
	if err != nil {
		s.Err = bmi.InvalidMeasurementMessage
		s.Outcome = nil
		return s
	}

	s.Outcome = &out
	return s
}

// Phase reports which of the three display states the form is in.
func (s State) Phase() Phase {
	switch {
	case s.Err != "":
		return PhaseError
	case s.Outcome != nil:
		return PhaseResult
	default:
		return PhaseEmpty
	}
}

// Reset clears every field.
func (s State) Reset() State {
	return State{}
}
