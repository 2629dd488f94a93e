package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/gammaphi/lamden-deploy/internal/usecase"
)

// SpinnerSink shows a spinner while waiting on the network
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner

	mu           sync.Mutex
	running      bool
	stage        usecase.ExecutionStage
	stageStarted time.Time
}

// NewSpinnerSink creates a spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress starts, updates or stops the spinner
func (p *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if event.Stage != p.stage {
		p.finishStage()
		p.stage = event.Stage
		p.stageStarted = time.Now()
	}

	if event.Stage == usecase.StageCompleted || !event.Spinner {
		p.stop()
		return
	}

	p.spinner.Suffix = " " + event.Message
	if !p.running {
		p.spinner.Start()
		p.running = true
	}
}

// Info prints an info message
func (p *SpinnerSink) Info(message string) {
	p.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (p *SpinnerSink) Error(message string) {
	p.print(color.New(color.FgRed), message)
}

func (p *SpinnerSink) print(c *color.Color, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Stop spinner temporarily
	wasRunning := p.running
	if wasRunning {
		p.spinner.Stop()
	}

	c.Fprintln(p.out, message)

	if wasRunning {
		p.spinner.Start()
	}
}

func (p *SpinnerSink) stop() {
	if p.running {
		p.spinner.Stop()
		p.running = false
	}
}

// finishStage prints the duration of a stage that ran with the spinner
func (p *SpinnerSink) finishStage() {
	if p.stage == "" || p.stage == usecase.StageCompleted || !p.running {
		return
	}
	p.stop()
	elapsed := time.Since(p.stageStarted).Round(time.Millisecond)
	fmt.Fprintf(p.out, "%s %s (%s)\n", color.GreenString("✓"), p.stage, elapsed)
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
