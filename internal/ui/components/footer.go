// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// =============================================================================
// FOOTER COMPONENT - Disclaimer, credits and the assistant button
// =============================================================================

// Disclaimer is shown under the card on every screen.
const Disclaimer = "Phân loại dựa trên tiêu chuẩn BMI của WHO. Ứng dụng chỉ mang tính tham khảo."

// Credits are shown under the disclaimer unless the layout is compact.
var Credits = []string{
	"Phát triển bởi: Hà Văn Đức",
	"Đợt đào tạo thực tế Hợp tác giữa FPT Polytechnic và IMTA TECH,",
	"Cán bộ Hướng dẫn: Trần Tuấn Thành.",
}

// ChatButtonLabel is the floating button that opens the assistant.
const ChatButtonLabel = "Mở Trợ lý AI"

// Footer renders the disclaimer block.
type Footer struct {
	Width   int
	Compact bool
	theme   *styles.Theme
}

// NewFooter creates a footer.
func NewFooter(theme *styles.Theme) *Footer {
	return &Footer{Width: 50, theme: theme}
}

// View renders the footer
func (f *Footer) View() string {
	lines := []string{f.theme.Footer.Width(f.Width).Render(Disclaimer)}
	if !f.Compact {
		lines = append(lines, "")
		for _, c := range Credits {
			lines = append(lines, f.theme.FooterCredit.Width(f.Width).Render(c))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// RenderChatButton renders the assistant button with its shortcut hint.
func RenderChatButton(theme *styles.Theme, shortcut string) string {
	label := ChatButtonLabel
	if shortcut != "" {
		label += " (" + shortcut + ")"
	}
	return theme.ChatButton.Render(label)
}
