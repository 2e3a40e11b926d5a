// Package tui renders samplegen's console output: one confirmation line per
// artifact, a live progress view for terminals, and the final summary.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#00D7FF") // Cyan - in-progress states
	SuccessColor = lipgloss.Color("#5AF78E") // Green - written artifacts
	ErrorColor   = lipgloss.Color("#FF5C57") // Red - failed artifacts
	MutedColor   = lipgloss.Color("#6C7086") // Gray - secondary text
	TextColor    = lipgloss.Color("#CDD6F4") // Light gray - primary text
)

// Line styles
var (
	createdStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	failedStyle  = lipgloss.NewStyle().Foreground(ErrorColor)
	nameStyle    = lipgloss.NewStyle().Foreground(TextColor)
	detailStyle  = lipgloss.NewStyle().Foreground(MutedColor)

	SummaryOKStyle   = lipgloss.NewStyle().Bold(true).Foreground(SuccessColor)
	SummaryFailStyle = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
)

// Progress bar styles
var (
	progressBarFillStyle  = lipgloss.NewStyle().Foreground(SuccessColor)
	progressBarEmptyStyle = lipgloss.NewStyle().Foreground(MutedColor)
	progressLabelStyle    = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
)

// Status icons
const (
	IconCreated = "✓"
	IconFailed  = "✗"
)
