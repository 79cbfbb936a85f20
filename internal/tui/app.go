// Package tui is the terminal conversation surface for a training
// session: a transcript, an input line, and quiz rendering.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/store"
	"github.com/LinosCo/trainbot/internal/training"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type transcriptEntry struct {
	role string // "tutor" or "learner"
	text string
}

// ChatModel is the root Bubble Tea model: one training session, one
// scrolling transcript.
type ChatModel struct {
	svc      *training.Service
	resumeID string

	sessionID string
	entries   []transcriptEntry
	quizzes   []botconfig.QuizQuestion

	input   textinput.Model
	waiting bool
	frame   int

	done        bool
	outcome     *training.SessionOutcome
	confirmQuit bool

	width  int
	height int
	err    error
}

// New creates a chat model. If resumeID is non-empty the existing
// session's transcript is reloaded instead of starting a new one.
func New(svc *training.Service, resumeID string) ChatModel {
	return ChatModel{
		svc:      svc,
		resumeID: resumeID,
		input:    newChatInput(),
		waiting:  resumeID == "",
	}
}

func newChatInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 2000
	ti.Focus()
	return ti
}

func (m ChatModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.input.Focus(), spinnerTick()}
	if m.resumeID != "" {
		cmds = append(cmds, m.resumeCmd())
	} else {
		cmds = append(cmds, m.startCmd())
	}
	return tea.Batch(cmds...)
}

func (m ChatModel) startCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		reply, err := svc.Start(context.Background())
		return turnReplyMsg{reply: reply, err: err}
	}
}

// resumeLoadedMsg carries a reloaded session.
type resumeLoadedMsg struct {
	sessionID string
	entries   []transcriptEntry
	done      bool
	outcome   *training.SessionOutcome
	err       error
}

func (m ChatModel) resumeCmd() tea.Cmd {
	svc, id := m.svc, m.resumeID
	return func() tea.Msg {
		rec, msgs, err := svc.Resume(context.Background(), id)
		if err != nil {
			return resumeLoadedMsg{err: err}
		}
		entries := make([]transcriptEntry, 0, len(msgs))
		for _, msg := range msgs {
			entries = append(entries, transcriptEntry{role: msg.Role, text: msg.Content})
		}
		loaded := resumeLoadedMsg{sessionID: rec.SessionID, entries: entries}
		if rec.Status != store.SessionInProgress {
			loaded.done = true
			loaded.outcome = &training.SessionOutcome{
				OverallScore: rec.OverallScore,
				Passed:       rec.Passed,
				Results:      rec.State.Results,
			}
		}
		return loaded
	}
}

func (m ChatModel) submitCmd(text string) tea.Cmd {
	svc, id := m.svc, m.sessionID
	return func() tea.Msg {
		reply, err := svc.SubmitTurn(context.Background(), id, text)
		return turnReplyMsg{reply: reply, err: err}
	}
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinnerTickMsg:
		if m.waiting {
			m.frame = (m.frame + 1) % len(spinnerFrames)
		}
		return m, spinnerTick()

	case turnReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sessionID = msg.reply.SessionID
		m.entries = append(m.entries, transcriptEntry{role: "tutor", text: msg.reply.Message})
		m.quizzes = msg.reply.Quizzes
		if msg.reply.Done {
			m.done = true
			m.outcome = msg.reply.Outcome
		}
		return m, nil

	case resumeLoadedMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sessionID = msg.sessionID
		m.entries = msg.entries
		m.done = msg.done
		m.outcome = msg.outcome
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.done {
				return m, tea.Quit
			}
			m.confirmQuit = !m.confirmQuit
			return m, nil
		case "y":
			if m.confirmQuit {
				return m, tea.Quit
			}
		case "n":
			if m.confirmQuit {
				m.confirmQuit = false
				return m, nil
			}
		case "enter":
			if m.done {
				return m, tea.Quit
			}
			if m.confirmQuit || m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.entries = append(m.entries, transcriptEntry{role: "learner", text: text})
			m.quizzes = nil
			m.input = newChatInput()
			m.waiting = true
			return m, m.submitCmd(text)
		}
	}

	if m.confirmQuit {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChatModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder

	title := TitleStyle.Render("Trainbot") + "  " +
		HintStyle.Render(m.svc.Bot().Name)
	b.WriteString(title + "\n\n")

	wrap := lipgloss.NewStyle().Width(m.width - 4)

	for _, e := range m.entries {
		if e.role == "learner" {
			b.WriteString(LearnerLabelStyle.Render("You") + "\n")
			b.WriteString(LearnerStyle.Render(wrap.Render(e.text)) + "\n\n")
		} else {
			b.WriteString(TutorLabelStyle.Render("Tutor") + "\n")
			b.WriteString(TutorStyle.Render(wrap.Render(e.text)) + "\n\n")
		}
	}

	if len(m.quizzes) > 0 && !m.done {
		b.WriteString(m.renderQuizzes() + "\n")
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.outcome != nil {
		b.WriteString(m.renderOutcome() + "\n")
	}

	switch {
	case m.confirmQuit:
		b.WriteString(HintStyle.Render("Quit this session? Progress is saved. (y/n)"))
	case m.done:
		b.WriteString(HintStyle.Render("Press Enter to exit."))
	case m.waiting:
		b.WriteString(spinnerFrames[m.frame] + " " + HintStyle.Render("Thinking..."))
	default:
		b.WriteString("> " + m.input.View() + "\n")
		b.WriteString(HintStyle.Render("Enter: send · Esc: quit"))
	}

	content := b.String()
	lines := strings.Split(content, "\n")
	if len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
		content = strings.Join(lines, "\n")
	}

	v.SetContent(content)
	return v
}

func (m ChatModel) renderQuizzes() string {
	var b strings.Builder
	for i, q := range m.quizzes {
		fmt.Fprintf(&b, "Q%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "  %d) %s\n", j, opt)
		}
		if i < len(m.quizzes)-1 {
			b.WriteString("\n")
		}
	}
	return QuizStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m ChatModel) renderOutcome() string {
	var b strings.Builder
	verdict := PassStyle.Render("PASSED")
	if !m.outcome.Passed {
		verdict = FailStyle.Render("FAILED")
	}
	fmt.Fprintf(&b, "Final score: %d · %s\n", m.outcome.OverallScore, verdict)
	for _, r := range m.outcome.Results {
		line := fmt.Sprintf("  %s: %d (%s)", r.TopicID, r.Score, r.Status)
		b.WriteString(HintStyle.Render(line) + "\n")
	}
	return b.String()
}

// Run starts the conversation UI. A non-empty resumeID continues an
// existing session.
func Run(svc *training.Service, resumeID string) error {
	p := tea.NewProgram(New(svc, resumeID))
	_, err := p.Run()
	return err
}
