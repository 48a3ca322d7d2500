// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/bmi-tui/internal/assistant"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// =============================================================================
// CHAT PANEL COMPONENT - Assistant transcript and question input
// =============================================================================

// ChatTitle is shown in the panel header.
const ChatTitle = "Trợ lý AI"

// ChatErrorReply replaces a reply that failed.
const ChatErrorReply = "Xin lỗi, tôi không thể trả lời lúc này. Vui lòng thử lại."

// DefaultReplyTimeout bounds a single Responder call.
const DefaultReplyTimeout = 10 * time.Second

// ChatRole identifies who wrote a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one transcript entry.
type ChatMessage struct {
	ID        string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

// ChatReplyMsg carries a Responder result back to the panel.
type ChatReplyMsg struct {
	QuestionID string
	Content    string
	Err        error
}

// chatTypingMsg advances the typing indicator.
type chatTypingMsg struct {
	questionID string
}

// ChatKeyMap holds the panel's own bindings.
type ChatKeyMap struct {
	Send     key.Binding
	Close    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultChatKeyMap returns the panel bindings.
func DefaultChatKeyMap() ChatKeyMap {
	return ChatKeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gửi"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "đóng"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "cuộn lên"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "cuộn xuống"),
		),
	}
}

// ChatPanel is the assistant overlay. It knows nothing about the BMI form;
// the host only opens it, closes it and learns about closes via OnClose.
type ChatPanel struct {
	// OnClose builds the message sent to the host when the panel closes.
	OnClose func() tea.Msg

	Keys ChatKeyMap

	responder assistant.Responder
	greeting  string
	timeout   time.Duration

	messages []ChatMessage
	pending  string // ID of the question awaiting a reply
	frame    int

	open     bool
	viewport viewport.Model
	input    textinput.Model
	markdown *MarkdownRenderer
	width    int
	height   int
	theme    *styles.Theme
	now      func() time.Time
}

// NewChatPanel creates a closed panel backed by responder.
func NewChatPanel(theme *styles.Theme, responder assistant.Responder, greeting string) *ChatPanel {
	ti := textinput.New()
	ti.Placeholder = "Nhập câu hỏi của bạn..."
	ti.CharLimit = 500
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Indigo).
		Bold(true)
	ti.PlaceholderStyle = theme.Placeholder

	vp := viewport.New(40, 10)
	vp.Style = lipgloss.NewStyle()

	p := &ChatPanel{
		Keys:      DefaultChatKeyMap(),
		responder: responder,
		greeting:  greeting,
		timeout:   DefaultReplyTimeout,
		viewport:  vp,
		input:     ti,
		markdown:  NewMarkdownRenderer(theme.GlamourStyle(), 36),
		theme:     theme,
		now:       time.Now,
	}
	p.SetSize(44, 20)
	return p
}

// SetResponder swaps the reply source.
func (p *ChatPanel) SetResponder(r assistant.Responder) {
	p.responder = r
}

// SetGreeting changes the opening line used for an empty transcript.
func (p *ChatPanel) SetGreeting(greeting string) {
	p.greeting = greeting
}

// SetTimeout bounds each Responder call.
func (p *ChatPanel) SetTimeout(d time.Duration) {
	if d > 0 {
		p.timeout = d
	}
}

// SetTheme restyles the panel (config reload).
func (p *ChatPanel) SetTheme(theme *styles.Theme) {
	p.theme = theme
	p.input.PlaceholderStyle = theme.Placeholder
	p.markdown = NewMarkdownRenderer(theme.GlamourStyle(), p.contentWidth())
	p.refresh()
}

// SetSize sets the outer size of the panel.
func (p *ChatPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// border (2) + padding (2)
	p.viewport.Width = p.contentWidth()
	// border (2) + header + blank + input + hint
	vh := height - 6
	if vh < 3 {
		vh = 3
	}
	p.viewport.Height = vh
	p.input.Width = p.contentWidth() - 3
	p.markdown.SetWidth(p.contentWidth() - 2)
	p.refresh()
}

func (p *ChatPanel) contentWidth() int {
	w := p.width - 4
	if w < 16 {
		w = 16
	}
	return w
}

// Open shows the panel and focuses its input. An empty transcript starts
// with the greeting.
func (p *ChatPanel) Open() tea.Cmd {
	if p.open {
		return nil
	}
	p.open = true
	if len(p.messages) == 0 && strings.TrimSpace(p.greeting) != "" {
		p.append(RoleAssistant, p.greeting)
	}
	p.refresh()
	return p.input.Focus()
}

// Close hides the panel and reports it through OnClose. The transcript is
// kept for the next Open.
func (p *ChatPanel) Close() tea.Cmd {
	if !p.open {
		return nil
	}
	p.open = false
	p.input.Blur()
	if p.OnClose == nil {
		return nil
	}
	onClose := p.OnClose
	return func() tea.Msg { return onClose() }
}

// IsOpen reports whether the panel is visible.
func (p *ChatPanel) IsOpen() bool {
	return p.open
}

// Waiting reports whether a reply is outstanding.
func (p *ChatPanel) Waiting() bool {
	return p.pending != ""
}

// Messages returns a copy of the transcript.
func (p *ChatPanel) Messages() []ChatMessage {
	return append([]ChatMessage(nil), p.messages...)
}

// Input returns the current question text.
func (p *ChatPanel) Input() string {
	return p.input.Value()
}

// SetInput replaces the question text.
func (p *ChatPanel) SetInput(s string) {
	p.input.SetValue(s)
}

// Clear drops the transcript and any unanswered question. An open panel
// starts over with the greeting.
func (p *ChatPanel) Clear() {
	p.messages = nil
	p.pending = ""
	if p.open && strings.TrimSpace(p.greeting) != "" {
		p.append(RoleAssistant, p.greeting)
	}
	p.refresh()
}

// Update handles panel input. A closed panel only accepts replies that were
// already in flight.
func (p *ChatPanel) Update(msg tea.Msg) (*ChatPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatReplyMsg:
		p.receive(msg)
		return p, nil

	case chatTypingMsg:
		if msg.questionID != p.pending || p.pending == "" {
			return p, nil
		}
		p.frame++
		p.refresh()
		return p, p.typingTick(msg.questionID)
	}

	if !p.open {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.Keys.Close):
			return p, p.Close()
		case key.Matches(msg, p.Keys.Send):
			return p, p.send()
		case key.Matches(msg, p.Keys.PageUp):
			p.viewport.HalfViewUp()
			return p, nil
		case key.Matches(msg, p.Keys.PageDown):
			p.viewport.HalfViewDown()
			return p, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// send posts the typed question and asks the responder.
func (p *ChatPanel) send() tea.Cmd {
	question := strings.TrimSpace(p.input.Value())
	if question == "" || p.pending != "" || p.responder == nil {
		return nil
	}

	id := p.append(RoleUser, question)
	p.pending = id
	p.frame = 0
	p.input.Reset()
	p.refresh()

	return tea.Batch(p.ask(id, question), p.typingTick(id))
}

func (p *ChatPanel) ask(id, question string) tea.Cmd {
	responder := p.responder
	timeout := p.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := responder.Reply(ctx, question)
		return ChatReplyMsg{QuestionID: id, Content: reply, Err: err}
	}
}

func (p *ChatPanel) typingTick(id string) tea.Cmd {
	return tea.Tick(styles.DotsSpinner.Duration(), func(time.Time) tea.Msg {
		return chatTypingMsg{questionID: id}
	})
}

// receive appends a reply if it answers the outstanding question.
func (p *ChatPanel) receive(msg ChatReplyMsg) {
	if msg.QuestionID == "" || msg.QuestionID != p.pending {
		return
	}
	p.pending = ""

	content := msg.Content
	switch {
	case errors.Is(msg.Err, assistant.ErrEmptyQuestion):
		p.refresh()
		return
	case msg.Err != nil || strings.TrimSpace(content) == "":
		content = ChatErrorReply
	}
	p.append(RoleAssistant, content)
	p.refresh()
}

func (p *ChatPanel) append(role ChatRole, content string) string {
	id := uuid.New().String()
	p.messages = append(p.messages, ChatMessage{
		ID:        id,
		Role:      role,
		Content:   content,
		CreatedAt: p.now(),
	})
	return id
}

// refresh re-renders the transcript into the viewport and scrolls down.
func (p *ChatPanel) refresh() {
	if p.theme == nil {
		return
	}
	width := p.contentWidth()

	blocks := make([]string, 0, len(p.messages)+1)
	for _, m := range p.messages {
		blocks = append(blocks, p.renderMessage(m, width))
	}
	if p.pending != "" {
		blocks = append(blocks, p.theme.Typing.Render(styles.DotsSpinner.Frame(p.frame)))
	}

	p.viewport.SetContent(strings.Join(blocks, "\n\n"))
	p.viewport.GotoBottom()
}

func (p *ChatPanel) renderMessage(m ChatMessage, width int) string {
	bubbleWidth := width - 4
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	if m.Role == RoleUser {
		bubble := p.theme.UserBubble.MaxWidth(width).Render(
			lipgloss.NewStyle().Width(bubbleWidth - 2).Render(m.Content))
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}

	return p.theme.AssistantBubble.MaxWidth(width).Render(p.markdown.Render(m.Content))
}

// View renders the panel. A closed panel renders nothing.
func (p *ChatPanel) View() string {
	if !p.open {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		p.theme.ChatHeader.Render(ChatTitle),
		"  ",
		p.theme.ChatHint.Render("esc để đóng"),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		p.viewport.View(),
		"",
		p.input.View(),
	)

	return p.theme.ChatPanel.
		Width(p.width - 2).
		Render(body)
}
