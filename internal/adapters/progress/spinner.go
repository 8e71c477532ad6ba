package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// SpinnerSink renders generation stages on stderr with a spinner
type SpinnerSink struct {
	spinner *spinner.Spinner
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.GenerateStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerSink{spinner: s}
}

// OnProgress advances the stage display
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	stage := usecase.GenerateStage(event.Stage)

	if n := len(r.stages); n == 0 || r.stages[n-1].Stage != stage {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: time.Now()})
	}
	r.stages[len(r.stages)-1].Message = event.Message

	if stage == usecase.StageCompleted {
		r.completeCurrentStage()
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.spinner.Suffix = " " + r.display()
	if event.Spinner && !r.spinner.Active() {
		r.spinner.Start()
	} else if !event.Spinner && r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.paused(func() { color.New(color.FgCyan).Fprintln(os.Stderr, message) })
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.paused(func() { color.New(color.FgRed).Fprintln(os.Stderr, message) })
}

// Stop halts the spinner if a command returns early
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) paused(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) completeCurrentStage() {
	if n := len(r.stages); n > 0 && r.stages[n-1].EndTime.IsZero() {
		r.stages[n-1].EndTime = time.Now()
	}
}

// display renders "✓ Patching (12ms) → ● Building (3s) message"
func (r *SpinnerSink) display() string {
	var display string
	for i, stage := range r.stages {
		icon, c := "●", color.New(color.FgYellow)
		duration := fmt.Sprintf(" (%s)", time.Since(stage.StartTime).Round(time.Second))
		if !stage.EndTime.IsZero() {
			icon, c = "✓", color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, c.Sprint(stage.Stage.Title()), duration)
	}

	if n := len(r.stages); n > 0 && r.stages[n-1].Message != "" {
		display += " " + r.stages[n-1].Message
	}
	return display
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
