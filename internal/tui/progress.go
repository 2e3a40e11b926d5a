package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minicodemonkey/samplegen/internal/generator"
)

const progressBarWidth = 30

// ArtifactMsg is sent when one artifact has finished.
type ArtifactMsg struct {
	Result generator.Result
}

// FinishedMsg is sent when GenerateAll has returned.
type FinishedMsg struct {
	Report *generator.Report
	Err    error
}

// Progress is the Bubble Tea model shown while samples are generated on a
// terminal. Finished lines stay in the final frame after the program exits.
type Progress struct {
	total     int
	lines     []string
	failed    int
	finished  bool
	cancelled bool
}

// NewProgress creates a progress model for total artifacts.
func NewProgress(total int) Progress {
	return Progress{total: total}
}

// Init implements tea.Model.
func (m Progress) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ArtifactMsg:
		m.lines = append(m.lines, ArtifactLine(msg.Result))
		if !msg.Result.OK() {
			m.failed++
		}
		return m, nil

	case FinishedMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Progress) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if !m.finished && !m.cancelled {
		b.WriteString(m.renderProgressBar())
		b.WriteString("\n")
	}
	return b.String()
}

// Done returns how many artifacts have finished.
func (m Progress) Done() int { return len(m.lines) }

// Failed returns how many finished artifacts failed.
func (m Progress) Failed() int { return m.failed }

// Cancelled reports whether the user interrupted the run.
func (m Progress) Cancelled() bool { return m.cancelled }

func (m Progress) renderProgressBar() string {
	fraction := 0.0
	if m.total > 0 {
		fraction = float64(m.Done()) / float64(m.total)
	}
	filled := int(float64(progressBarWidth) * fraction)

	bar := progressBarFillStyle.Render(strings.Repeat("█", filled)) +
		progressBarEmptyStyle.Render(strings.Repeat("░", progressBarWidth-filled))

	return fmt.Sprintf("%s %s %d/%d", progressLabelStyle.Render("Generating"), bar, m.Done(), m.total)
}
