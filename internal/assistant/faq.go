// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// Entry is one FAQ answer and the phrases that select it.
type Entry struct {
	ID       string
	Keywords []string
	Answer   string
}

// FAQ answers from a fixed list of entries. The entry with the most
// keyword hits wins; ties go to the earlier entry.
type FAQ struct {
	entries  []Entry
	folded   [][]string
	fallback string
}

// DefaultFallback is the reply when no entry matches.
const DefaultFallback = "Xin lỗi, tôi chưa hiểu câu hỏi. Bạn có thể hỏi về **cách tính BMI**, " +
	"**các mức phân loại**, hoặc **lời khuyên** cho từng mức."

// NewFAQ builds a responder over entries. Keywords are folded once here.
func NewFAQ(entries []Entry, fallback string) *FAQ {
	if fallback == "" {
		fallback = DefaultFallback
	}
	f := &FAQ{
		entries:  append([]Entry(nil), entries...),
		folded:   make([][]string, len(entries)),
		fallback: fallback,
	}
	for i, e := range entries {
		for _, kw := range e.Keywords {
			if k := Fold(kw); k != "" {
				f.folded[i] = append(f.folded[i], k)
			}
		}
	}
	return f
}

// DefaultFAQ returns the built-in Vietnamese FAQ.
func DefaultFAQ() *FAQ {
	return NewFAQ(DefaultEntries(), "")
}

// Reply implements Responder.
func (f *FAQ) Reply(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	if e, ok := f.Match(question); ok {
		return e.Answer, nil
	}
	return f.fallback, nil
}

// Match returns the best entry for question.
func (f *FAQ) Match(question string) (Entry, bool) {
	q := " " + Fold(question) + " "

	best, bestScore := -1, 0
	for i, keywords := range f.folded {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(q, " "+kw+" ") {
				// Longer phrases are more specific.
				score += len(strings.Fields(kw))
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Entry{}, false
	}
	return f.entries[best], true
}

// Entries returns a copy of the FAQ entries.
func (f *FAQ) Entries() []Entry {
	return append([]Entry(nil), f.entries...)
}

// DefaultEntries is the built-in question list.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:       "greeting",
			Keywords: []string{"xin chào", "chào", "hello", "hi"},
			Answer:   "Xin chào! Bạn có thể hỏi tôi về chỉ số BMI, cách tính và ý nghĩa của từng mức.",
		},
		{
			ID:       "formula",
			Keywords: []string{"cách tính", "công thức", "tính bmi", "tính như thế nào", "formula"},
			Answer: "BMI = **cân nặng (kg) / chiều cao (m)²**.\n\n" +
				"Ví dụ: cao 170 cm, nặng 65 kg → 65 / (1.7 × 1.7) ≈ **22.5**.",
		},
		{
			ID:       "bands",
			Keywords: []string{"phân loại", "các mức", "bảng", "mức nào", "ngưỡng", "who"},
			Answer:   BandsMarkdown(),
		},
		{
			ID:       "underweight",
			Keywords: []string{"gầy", "thiếu cân", "tăng cân", "underweight"},
			Answer:   statusAnswer(bmi.Underweight),
		},
		{
			ID:       "normal",
			Keywords: []string{"bình thường", "cân đối", "khỏe mạnh", "normal"},
			Answer:   statusAnswer(bmi.Normal),
		},
		{
			ID:       "overweight",
			Keywords: []string{"thừa cân", "hơi mập", "overweight"},
			Answer:   statusAnswer(bmi.Overweight),
		},
		{
			ID:       "obese",
			Keywords: []string{"béo phì", "giảm cân", "obese"},
			Answer:   statusAnswer(bmi.Obese),
		},
		{
			ID:       "limits",
			Keywords: []string{"chính xác", "hạn chế", "trẻ em", "vận động viên", "mang thai"},
			Answer: "BMI chỉ là chỉ số tham khảo. Nó không phân biệt cơ và mỡ, và không áp dụng " +
				"cho trẻ em, phụ nữ mang thai hay vận động viên. Hãy hỏi ý kiến bác sĩ để được đánh giá đầy đủ.",
		},
		{
			ID:       "privacy",
			Keywords: []string{"lưu", "dữ liệu", "riêng tư", "bảo mật"},
			Answer:   "Ứng dụng không lưu chiều cao, cân nặng hay kết quả của bạn.",
		},
	}
}

func statusAnswer(s bmi.Status) string {
	return fmt.Sprintf("**%s** (%s): %s", s.Label(), bandRange(s), s.Advice())
}

// BandsMarkdown renders the classification table as Markdown.
func BandsMarkdown() string {
	var b strings.Builder
	b.WriteString("Phân loại theo tiêu chuẩn BMI của WHO:\n\n")
	b.WriteString("| Mức | BMI |\n|---|---|\n")
	for _, band := range bmi.Bands() {
		fmt.Fprintf(&b, "| %s | %s |\n", band.Status.Label(), bandRange(band.Status))
	}
	return b.String()
}

func bandRange(s bmi.Status) string {
	for _, band := range bmi.Bands() {
		if band.Status != s {
			continue
		}
		lo, loInclusive := band.Min()
		switch {
		case math.IsInf(lo, -1):
			return fmt.Sprintf("dưới %.1f", band.Max)
		case math.IsInf(band.Max, 1) && !loInclusive:
			return fmt.Sprintf("trên %.1f", lo)
		case math.IsInf(band.Max, 1):
			return fmt.Sprintf("từ %.1f", lo)
		case band.MaxInclusive:
			return fmt.Sprintf("%.1f – %.1f", lo, band.Max)
		default:
			return fmt.Sprintf("%.1f – dưới %.1f", lo, band.Max)
		}
	}
	return ""
}
