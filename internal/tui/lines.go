package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/minicodemonkey/samplegen/internal/generator"
)

// ArtifactLine formats the confirmation line for one artifact.
func ArtifactLine(r generator.Result) string {
	if r.OK() {
		return createdStyle.Render(IconCreated+" Created:") + " " + nameStyle.Render(r.Name)
	}
	return failedStyle.Render(IconFailed+" Failed:") + " " + nameStyle.Render(r.Name) +
		detailStyle.Render(": "+causeOf(r.Err))
}

// SummaryLine formats the final line of a run.
func SummaryLine(report *generator.Report) string {
	total := len(report.Results)
	failed := len(report.Failed())
	if failed == 0 {
		return SummaryOKStyle.Render(fmt.Sprintf("All %d sample audio files have been generated successfully!", total))
	}
	return SummaryFailStyle.Render(fmt.Sprintf("Generated %d of %d sample audio files (%d failed)", total-failed, total, failed))
}

// causeOf drops the artifact name already shown on the line.
func causeOf(err error) string {
	var ae *generator.ArtifactError
	if errors.As(err, &ae) {
		return ae.Op + ": " + ae.Err.Error()
	}
	return err.Error()
}

// Printer writes plain confirmation lines as artifacts finish.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Artifact prints one artifact's confirmation line.
func (p *Printer) Artifact(r generator.Result) {
	fmt.Fprintln(p.w, ArtifactLine(r))
}

// Summary prints a blank line and the run summary.
func (p *Printer) Summary(report *generator.Report) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, SummaryLine(report))
}
