package collect

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// progressSaver batches progress writes behind a quiet window: every edit
// reschedules the timer with a snapshot of the values at that moment, so
// only the state after the last edit inside the window is persisted —
// last-write-wins within a fill session. A pending save is cancelled by the
// next edit, by Cancel, or by Close.
type progressSaver struct {
	mu    sync.Mutex
	delay time.Duration
	save  func(ctx context.Context, values map[string]form.Value)
	timer *time.Timer
	done  bool
}

func newProgressSaver(delay time.Duration, save func(ctx context.Context, values map[string]form.Value)) *progressSaver {
	return &progressSaver{delay: delay, save: save}
}

// Note schedules a save of the snapshot for delay from now, replacing any
// pending one.
func (p *progressSaver) Note(ctx context.Context, values map[string]form.Value) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.delay, func() {
		p.mu.Lock()
		closed := p.done
		p.mu.Unlock()
		if closed || ctx.Err() != nil {
			return
		}
		p.save(ctx, values)
	})
}

// Cancel drops any pending save without closing the saver.
func (p *progressSaver) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Close cancels any pending save and rejects future ones. Used on teardown
// and after a successful submit.
func (p *progressSaver) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
