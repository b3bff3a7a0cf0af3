// Package tui implements the interactive chat interface on top of the
// pipeline driving port.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ragline/ragline/internal/core/domain"
)

// Pipeline is the TUI-facing subset of the driving port.
type Pipeline interface {
	Query(ctx context.Context, question string) (domain.Answer, error)
}

var (
	questionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	sourceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// answerMsg delivers a completed query to the update loop.
type answerMsg struct {
	answer domain.Answer
}

// queryErrMsg delivers a failed query to the update loop.
type queryErrMsg struct {
	err error
}

// Model is the Bubble Tea model for the chat session.
type Model struct {
	pipeline   Pipeline
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	waiting    bool
	ready      bool
}

// New creates a chat model over the given pipeline.
func New(pipeline Pipeline) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		pipeline: pipeline,
		input:    ti,
		viewport: vp,
		status:   "Ready. Esc or Ctrl-C to quit.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and query-completion events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptStyle.GetFrameSize()
		_, ih := inputStyle.GetFrameSize()
		vh := msg.Height - th - ih - 3 // title, status, spacer
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-transcriptStyle.GetHorizontalFrameSize())
		m.viewport.Height = vh
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, questionStyle.Render("You: ")+question)
			m.refreshTranscript()
			m.input.Reset()
			m.waiting = true
			m.status = "Thinking..."
			return m, queryCmd(m.pipeline, question)
		}

	case answerMsg:
		m.waiting = false
		m.status = "Ready. Esc or Ctrl-C to quit."
		m.transcript = append(m.transcript, renderAnswer(msg.answer))
		m.refreshTranscript()
		return m, nil

	case queryErrMsg:
		m.waiting = false
		m.status = errorStyle.Render("Error: " + msg.err.Error())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript, input box and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := lipgloss.NewStyle().Bold(true).Render("ragline chat")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return title + "\n" + transcript + "\n" + input + "\n" + status
}

// queryCmd runs the query off the update loop and reports back.
func queryCmd(pipeline Pipeline, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := pipeline.Query(context.Background(), question)
		if err != nil {
			return queryErrMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

func (m *Model) refreshTranscript() {
	if len(m.transcript) == 0 {
		m.viewport.SetContent("No questions yet.")
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

// renderAnswer formats an answer with its citations for the transcript.
func renderAnswer(a domain.Answer) string {
	var b strings.Builder
	b.WriteString(a.Text)
	for _, src := range a.Sources {
		b.WriteString("\n")
		b.WriteString(sourceStyle.Render(fmt.Sprintf("  [%d] %s (page %s)", src.Rank, src.File, src.Page)))
	}
	return b.String()
}
