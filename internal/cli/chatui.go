package cli

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/JeremiasMeza/IA-Rag/internal/chat"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// sendDoneMsg signals that the in-flight chat turn resolved. The outcome
// already lives in the session transcript.
type sendDoneMsg struct{}

// chatModel is the bubbletea model for the interactive chat.
type chatModel struct {
	session *chat.Session
	input   textinput.Model
	spinner spinner.Model
	theme   Theme
	sending bool
	width   int
}

// newChatModel creates the interactive chat model.
func newChatModel(session *chat.Session) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Escribe tu mensaje..."
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return chatModel{
		session: session,
		input:   ti,
		spinner: sp,
		theme:   defaultTheme,
		width:   80,
	}
}

// Init returns the initial command.
func (m chatModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// The send control is disabled while a turn is in flight.
			if m.sending {
				return m, nil
			}
			text := m.input.Value()
			if strings.TrimSpace(text) == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.sending = true
			return m, tea.Batch(m.sendTurn(text), m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case sendDoneMsg:
		m.sending = false
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript and input line.
func (m chatModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.hintStyle().Render(
		fmt.Sprintf("Sesión %q — modelo %s — Esc para salir", m.session.Scope(), m.session.Model())))
	b.WriteString("\n\n")

	for _, msg := range m.session.Transcript() {
		b.WriteString(m.renderMessage(msg))
	}

	if m.sending {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.hintStyle().Render(" Pensando..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return tea.NewView(b.String())
}

// renderMessage formats one transcript entry.
func (m chatModel) renderMessage(msg models.ChatMessage) string {
	var b strings.Builder

	switch msg.Sender {
	case models.SenderUser:
		b.WriteString(m.theme.userStyle().Render("Tú: "))
		b.WriteString(msg.Text)
	default:
		if strings.HasPrefix(msg.Text, "Error: ") {
			b.WriteString(m.theme.errorStyle().Render(msg.Text))
		} else {
			b.WriteString(m.theme.botStyle().Render(msg.Text))
		}
	}
	b.WriteString("\n")

	if msg.Meta != "" {
		b.WriteString(m.theme.metaStyle().Render("  " + msg.Meta))
		b.WriteString("\n")
	}

	return b.String()
}

// sendTurn runs the blocking send off the update loop.
func (m chatModel) sendTurn(text string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		session.Send(context.Background(), text)
		return sendDoneMsg{}
	}
}

// runChatUI runs the interactive chat until the user quits.
func runChatUI(session *chat.Session) error {
	p := tea.NewProgram(newChatModel(session))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}
