package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained, office-friendly.
var (
	Primary = lipgloss.Color("#2563EB") // Blue
	Success = lipgloss.Color("#16A34A") // Green
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	TutorStyle = lipgloss.NewStyle().
			Foreground(Text)

	TutorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	LearnerStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	LearnerLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Success)

	QuizStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error)

	PassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)
)
