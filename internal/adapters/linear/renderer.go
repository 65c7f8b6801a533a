// Package linear provides a synchronous, line based renderer for check stage progress.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/wtsi-hgi/bam2cram-check/internal/ui/output"
	"github.com/wtsi-hgi/bam2cram-check/internal/ui/style"
)

// Renderer implements ports.Renderer by printing one line when a stage starts and one when it ends.
type Renderer struct {
	out *termenv.Output

	mu     sync.Mutex
	stages map[string]stageState // spanID -> stage state
}

type stageState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		out:    output.New(w, output.Basic),
		stages: make(map[string]stageState),
	}
}

// OnStageStart prints a stage start line.
func (r *Renderer) OnStageStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = stageState{name: name, startTime: startTime}

	line := r.out.String(style.Dot + " " + name).Faint().String()
	_, _ = fmt.Fprintln(r.out, line)
}

// OnStageComplete prints the outcome and duration of a stage.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}
	delete(r.stages, spanID)

	duration := endTime.Sub(stage.startTime).Round(time.Millisecond)

	mark := style.ForStage(err != nil)
	symbol := r.out.String(mark.Icon).Foreground(r.out.Color(string(mark.Color))).String()
	if err != nil {
		_, _ = fmt.Fprintf(r.out, "%s %s (%v): %v\n", symbol, stage.name, duration, err)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s (%v)\n", symbol, stage.name, duration)
}
