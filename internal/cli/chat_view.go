package cli

import (
	"context"
	"strings"

	"github.com/astraldesk/astral/internal/cli/formatter"
	"github.com/astraldesk/astral/internal/engine"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// replyMsg delivers the engine's answer back into the update loop.
type replyMsg struct {
	reply *engine.Reply
}

// chatModel is the interactive multi-turn chat view. Input is disabled
// while a message is in flight so only one completion call runs at a time.
type chatModel struct {
	orc   *engine.Orchestrator
	sess  *engine.Session
	input textinput.Model

	messages []string
	waiting  bool
	quitting bool
}

func newChatModel(orc *engine.Orchestrator) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		orc:   orc,
		sess:  engine.NewSession(),
		input: ti,
	}
	m.messages = append(m.messages, formatter.FormatWelcome(orc.Profile()))

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		m.waiting = false
		m.messages = append(m.messages, formatter.FormatReply(msg.reply))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		if m.waiting {
			// Single in-flight message; drop keystrokes until the reply lands.
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	if m.waiting {
		b.WriteString(formatter.Dim("✦ thinking..."))
		b.WriteString("\n")
		return b.String()
	}

	prompt := formatter.StylePurple.Render(m.orc.Profile().Name) + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "/topics":
		m.messages = append(m.messages, formatter.FormatTopics(m.orc.Profile()))
		return m, nil
	}

	m.messages = append(m.messages, formatter.UserLine(input))
	m.waiting = true

	return m, func() tea.Msg {
		reply := m.orc.HandleMessage(context.Background(), m.sess, input)
		return replyMsg{reply: reply}
	}
}
