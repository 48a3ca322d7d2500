// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant answers questions typed into the chat panel.
//
// Responder is the seam between the panel and whatever produces replies.
// The bundled FAQ responder works offline from a fixed Vietnamese question
// list; it never sees the user's measurements.
package assistant

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyQuestion is returned when the question is blank.
var ErrEmptyQuestion = errors.New("empty question")

// Responder produces a Markdown reply to a question.
type Responder interface {
	Reply(ctx context.Context, question string) (string, error)
}

// ResponderFunc adapts a plain function to Responder.
type ResponderFunc func(ctx context.Context, question string) (string, error)

// Reply calls f.
func (f ResponderFunc) Reply(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

// Fold lowercases s and strips diacritics so "Béo phì", "beo phi" and
// "BÉO PHÌ" compare equal. đ has no decomposition and is mapped to d by hand.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.NewReplacer("đ", "d").Replace(folded)
	return strings.Join(strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	}), " ")
}
