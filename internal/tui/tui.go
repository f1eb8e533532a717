// Package tui is a small chat shell over the bot. It owns no decision
// logic: it forwards each submitted question to Answer and appends the
// transcript.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			Bold(true)

	youStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Answerer is the single entry point the shell calls.
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

type answerMsg string

type Model struct {
	bot      Answerer
	viewport viewport.Model
	input    textinput.Model
	lines    []string
	waiting  bool
	ready    bool
	width    int
	height   int
}

func New(bot Answerer) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about the weather..."
	ti.Focus()

	m := Model{
		bot:   bot,
		input: ti,
	}
	m.push(botStyle.Render("Bot: ") + "Hello! I am a weather bot. Ask me a question about the weather.")
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			m.push(youStyle.Render("You: ") + question)
			m.push(botStyle.Render("Bot: ") + "Thinking...")
			m.waiting = true
			m.refreshViewport()
			return m, ask(m.bot, question)
		}

	case answerMsg:
		// Replace the "Thinking..." placeholder.
		m.lines[len(m.lines)-1] = botStyle.Render("Bot: ") + string(msg)
		m.waiting = false
		m.refreshViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 5
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		titleStyle.Render("Nimbus — weather assistant"),
		m.viewport.View(),
		m.input.View(),
		helpStyle.Render("enter: ask • esc: quit"),
	)
}

func (m *Model) push(line string) {
	m.lines = append(m.lines, line)
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n\n"))
	m.viewport.GotoBottom()
}

// ask runs one question off the UI loop. The model allows a single question
// in flight at a time.
func ask(bot Answerer, question string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return answerMsg(bot.Answer(ctx, question))
	}
}
