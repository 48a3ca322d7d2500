// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the Bubble Tea model of the BMI screen: the height and
// weight form, its result card and the assistant panel toggle.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/bmi-tui/internal/assistant"
	"github.com/jeranaias/bmi-tui/internal/config"
	"github.com/jeranaias/bmi-tui/internal/form"
	"github.com/jeranaias/bmi-tui/internal/logging"
	"github.com/jeranaias/bmi-tui/internal/ui/components"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus is the form element receiving keys while the chat panel is closed.
type Focus int

const (
	FocusHeight Focus = iota
	FocusWeight
	FocusSubmit
	numFocus
)

// String returns a short name for the focus target.
func (f Focus) String() string {
	switch f {
	case FocusHeight:
		return "height"
	case FocusWeight:
		return "weight"
	case FocusSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root Bubble Tea model.
type Model struct {
	// Form state
	form  form.State
	focus Focus

	// Chat panel toggle
	chatOpen bool

	// Configuration
	cfg     *config.Config
	logger  *zap.Logger
	noColor bool

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI Components
	heightInput *components.MeasurementInput
	weightInput *components.MeasurementInput
	header      *components.Header
	footer      *components.Footer
	result      *components.ResultCard
	chat        *components.ChatPanel
	help        help.Model

	keys     KeyMap
	showHelp bool

	// notice is a one-line status (config reload problems)
	notice string

	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for evaluation and panel events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		m.logger = logging.OrNop(logger)
	}
}

// WithResponder replaces the assistant's reply source.
func WithResponder(r assistant.Responder) Option {
	return func(m *Model) {
		if r != nil {
			m.chat.SetResponder(r)
		}
	}
}

// WithNoColor keeps the theme in plain ASCII output.
func WithNoColor(noColor bool) Option {
	return func(m *Model) {
		m.noColor = noColor
	}
}

// New creates the model from cfg. A nil cfg means defaults.
func New(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme := styles.NewTheme(cfg.UI.Theme)

	m := Model{
		cfg:         cfg,
		logger:      logging.Nop(),
		theme:       theme,
		heightInput: components.NewHeightInput(theme),
		weightInput: components.NewWeightInput(theme),
		header:      components.NewHeader(theme),
		footer:      components.NewFooter(theme),
		result:      components.NewResultCard(theme),
		chat:        components.NewChatPanel(theme, assistant.DefaultFAQ(), cfg.Chat.Greeting),
		help:        help.New(),
		keys:        DefaultKeyMap(),
		showHelp:    cfg.UI.ShowHelp,
		width:       80,
		height:      24,
	}
	m.chat.OnClose = func() tea.Msg { return ChatClosedMsg{} }

	for _, opt := range opts {
		opt(&m)
	}

	m.applyConfig(cfg)
	m.heightInput.Focus()
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Form returns the current form state.
func (m Model) Form() form.State {
	return m.form
}

// FocusTarget returns the focused form element.
func (m Model) FocusTarget() Focus {
	return m.focus
}

// ChatOpen reports whether the assistant panel is showing.
func (m Model) ChatOpen() bool {
	return m.chatOpen
}

// ChatEnabled reports whether the assistant can be opened.
func (m Model) ChatEnabled() bool {
	return m.cfg.Chat.Enabled
}

// ShowHelp reports whether the help bar is visible.
func (m Model) ShowHelp() bool {
	return m.showHelp
}

// FullHelp reports whether the help bar is expanded.
func (m Model) FullHelp() bool {
	return m.help.ShowAll
}

// Config returns the active configuration.
func (m Model) Config() *config.Config {
	return m.cfg
}

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// Chat returns the assistant panel.
func (m Model) Chat() *components.ChatPanel {
	return m.chat
}

// Notice returns the current status line.
func (m Model) Notice() string {
	return m.notice
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// applyConfig pushes cfg into the theme and components.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(m.width, m.height)
	if m.noColor {
		styles.DisableColor()
	} else {
		theme.Apply()
	}
	m.theme = theme

	hv, wv := m.heightInput.Value(), m.weightInput.Value()
	hf, wf := m.heightInput.Focused(), m.weightInput.Focused()
	m.heightInput = components.NewHeightInput(theme)
	m.weightInput = components.NewWeightInput(theme)
	m.heightInput.SetValue(hv)
	m.weightInput.SetValue(wv)
	if hf {
		m.heightInput.Focus()
	}
	if wf {
		m.weightInput.Focus()
	}

	m.header = components.NewHeader(theme)
	m.footer = components.NewFooter(theme)
	m.footer.Compact = cfg.UI.CompactMode
	m.result = components.NewResultCard(theme)
	m.result.Compact = cfg.UI.CompactMode

	m.chat.SetTheme(theme)
	m.chat.SetGreeting(cfg.Chat.Greeting)
	m.showHelp = cfg.UI.ShowHelp

	m.layout()
}

// layout sizes every component for the current terminal size.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)
	cw := m.theme.CardWidth()
	inner := cw - 8 // card border (2) + padding (6)
	if inner < 20 {
		inner = 20
	}

	m.heightInput.SetWidth(inner)
	m.weightInput.SetWidth(inner)
	m.header.SetWidth(inner)
	m.footer.Width = cw
	m.result.Width = inner
	m.help.Width = m.width

	switch m.theme.GetLayoutMode() {
	case styles.LayoutWide:
		panelWidth := m.width - cw - 6
		if panelWidth > 60 {
			panelWidth = 60
		}
		m.chat.SetSize(panelWidth, m.height-2)
	default:
		m.chat.SetSize(cw, m.height-2)
	}
}
