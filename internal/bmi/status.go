// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"fmt"
	"math"
	"strings"
)

// =============================================================================
// STATUS
// =============================================================================

// Status is the health classification derived from a BMI value. The zero
// value is StatusUnknown, which is what a failed evaluation carries.
type Status int

const (
	StatusUnknown Status = iota
	Underweight
	Normal
	Overweight
	Obese

	numStatuses
)

// Severity is the presentation tag attached to a Status.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityNormal   Severity = "normal"
	SeverityElevated Severity = "elevated"
	SeverityHigh     Severity = "high"
)

// statusInfo holds the fixed text and tag for one status.
type statusInfo struct {
	name     string
	label    string
	advice   string
	severity Severity
}

// statuses is the single lookup table for everything keyed by Status.
// Indexed by Status; the array length pins it to the enum.
var statuses = [numStatuses]statusInfo{
	StatusUnknown: {name: "unknown"},
	Underweight: {
		name:     "underweight",
		label:    "Gầy",
		advice:   "Bạn có thể cần bổ sung thêm dinh dưỡng để đạt cân nặng khỏe mạnh. Hãy tham khảo ý kiến chuyên gia dinh dưỡng.",
		severity: SeverityLow,
	},
	Normal: {
		name:     "normal",
		label:    "Bình thường",
		advice:   "Tuyệt vời! Bạn có một thân hình cân đối. Hãy tiếp tục duy trì lối sống lành mạnh nhé.",
		severity: SeverityNormal,
	},
	Overweight: {
		name:     "overweight",
		label:    "Thừa cân",
		advice:   "Bạn có thể cần xem xét điều chỉnh chế độ ăn uống và tăng cường vận động để cải thiện sức khỏe.",
		severity: SeverityElevated,
	},
	Obese: {
		name:     "obese",
		label:    "Béo phì",
		advice:   "Bạn nên tham khảo ý kiến bác sĩ hoặc chuyên gia để có kế hoạch giảm cân an toàn và hiệu quả.",
		severity: SeverityHigh,
	},
}

// AllStatuses returns every status in band order.
func AllStatuses() []Status {
	return []Status{Underweight, Normal, Overweight, Obese}
}

// Valid reports whether s is one of the four classification statuses.
// StatusUnknown is not valid.
func (s Status) Valid() bool {
	return s > StatusUnknown && s < numStatuses
}

// String returns the stable English identifier ("underweight", "normal", ...).
func (s Status) String() string {
	if s == StatusUnknown {
		return statuses[s].name
	}
	if !s.Valid() {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statuses[s].name
}

// Label returns the display label shown to the user.
func (s Status) Label() string {
	if !s.Valid() {
		return ""
	}
	return statuses[s].label
}

// Advice returns the fixed advisory sentence for the status.
func (s Status) Advice() string {
	if !s.Valid() {
		return ""
	}
	return statuses[s].advice
}

// Severity returns the presentation tag for the status.
func (s Status) Severity() Severity {
	if !s.Valid() {
		return ""
	}
	return statuses[s].severity
}

// MarshalText encodes the status as its identifier so JSON output stays readable.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus parses an identifier, case-insensitive.
func ParseStatus(name string) (Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range AllStatuses() {
		if statuses[s].name == name {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("invalid status: %q", name)
}

// =============================================================================
// CLASSIFICATION BANDS
// =============================================================================

// Band is one row of the classification table. A value belongs to the first
// band whose upper bound it does not exceed.
type Band struct {
	Status Status
	// Max is the upper bound of the band. +Inf for the last band.
	Max float64
	// MaxInclusive marks Max as part of the band.
	MaxInclusive bool
}

// bands are ordered, contiguous and cover (0, +Inf).
// 29.9 is an inclusive cut: exactly 29.9 is Overweight, anything above it Obese.
var bands = []Band{
	{Status: Underweight, Max: 18.5},
	{Status: Normal, Max: 25.0},
	{Status: Overweight, Max: 29.9, MaxInclusive: true},
	{Status: Obese, Max: math.Inf(1)},
}

// Bands returns a copy of the classification table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Contains reports whether value falls under this band's upper bound.
func (b Band) Contains(value float64) bool {
	if b.MaxInclusive {
		return value <= b.Max
	}
	return value < b.Max
}

// Min returns the lower bound of the band (the previous band's Max), and
// whether that bound is part of the band.
func (b Band) Min() (float64, bool) {
	for i, candidate := range bands {
		if candidate.Status != b.Status {
			continue
		}
		if i == 0 {
			return math.Inf(-1), false
		}
		prev := bands[i-1]
		return prev.Max, !prev.MaxInclusive
	}
	return math.NaN(), false
}

// Classify maps a BMI value to its status.
func Classify(value float64) Status {
	for _, b := range bands {
		if b.Contains(value) {
			return b.Status
		}
	}
	return Obese
}
