package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/minicodemonkey/samplegen/internal/generator"
	"github.com/minicodemonkey/samplegen/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates every sample into the directory named by the first
// argument, or the working directory when there is none.
func run(args []string, stdout, stderr io.Writer) int {
	outputDir := "."
	if len(args) > 0 {
		outputDir = args[0]
	}

	logger := newLogger(stderr)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := []generator.Option{
		generator.WithOutputDir(outputDir),
		generator.WithLogger(logger),
		generator.WithConcurrency(runtime.NumCPU()),
	}

	var (
		report *generator.Report
		err    error
	)
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(f.Fd()) {
		report, err = runInteractive(ctx, cancel, f, opts)
	} else {
		report, err = runPlain(ctx, stdout, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error generating samples: %v\n", err)
		return 1
	}

	tui.NewPrinter(stdout).Summary(report)
	if report.Err() != nil {
		return 1
	}
	return 0
}

func runPlain(ctx context.Context, stdout io.Writer, opts []generator.Option) (*generator.Report, error) {
	printer := tui.NewPrinter(stdout)
	gen := generator.New(append(opts, generator.WithObserver(printer.Artifact))...)
	return gen.GenerateAll(ctx)
}

type outcome struct {
	report *generator.Report
	err    error
}

func runInteractive(ctx context.Context, cancel context.CancelFunc, out *os.File, opts []generator.Option) (*generator.Report, error) {
	total, err := generator.New(opts...).Total()
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(tui.NewProgress(total), tea.WithOutput(out), tea.WithContext(ctx))

	gen := generator.New(append(opts, generator.WithObserver(func(r generator.Result) {
		p.Send(tui.ArtifactMsg{Result: r})
	}))...)

	done := make(chan outcome, 1)
	go func() {
		report, err := gen.GenerateAll(ctx)
		p.Send(tui.FinishedMsg{Report: report, Err: err})
		done <- outcome{report: report, err: err}
	}()

	final, runErr := p.Run()
	if m, ok := final.(tui.Progress); runErr != nil || (ok && m.Cancelled()) {
		cancel()
	}

	res := <-done
	return res.report, res.err
}

// newLogger writes warnings and errors to w in zap's console format.
func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.WarnLevel)
	return zap.New(core)
}
