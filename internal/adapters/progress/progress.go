// Package progress reports progress of batched work.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/modkit/internal/core/ports"
)

var _ ports.ProgressFactory = (*Factory)(nil)

// Factory creates progress bars on a terminal and progress lines otherwise.
type Factory struct {
	interactive bool
	out         io.Writer
	logger      ports.Logger
}

// NewFactory creates a Factory. In interactive mode bars are drawn on out,
// otherwise every step is reported through logger.
func NewFactory(interactive bool, out io.Writer, logger ports.Logger) *Factory {
	return &Factory{interactive: interactive, out: out, logger: logger}
}

// New returns a tracker for total items.
func (f *Factory) New(total int, description string) ports.Progress {
	if f.interactive {
		return &barProgress{bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(f.out),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)}
	}
	return &lineProgress{logger: f.logger, total: total, description: description}
}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func (p *barProgress) Add(n int) {
	_ = p.bar.Add(n)
}

func (p *barProgress) Finish() {
	_ = p.bar.Finish()
}

type lineProgress struct {
	mu          sync.Mutex
	logger      ports.Logger
	description string
	total       int
	done        int
}

func (p *lineProgress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	p.logger.Info(fmt.Sprintf("%s: %d/%d", p.description, p.done, p.total))
}

func (p *lineProgress) Finish() {}
