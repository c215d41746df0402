// Package platform holds the host-environment contracts the Hover engine
// depends on: the serialized UI execution context, the foreground signal,
// the overlay permission check, haptic feedback and host-app activation.
package platform

import (
	"sync"
	"time"

	"github.com/go-hover/hover/pkg/animation"
	"github.com/go-hover/hover/pkg/errors"
)

// Loop is the serialized "UI" execution context. Every engine callback —
// pointer input, long-press timers, animation frames, foreground polls —
// runs on one Loop so no callback ever observes torn widget state.
//
// Jobs never block the poster; Post enqueues and returns.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
	done    chan struct{}
}

// NewLoop starts a loop draining jobs on a dedicated goroutine.
func NewLoop() *Loop {
	l := &Loop{done: make(chan struct{})}
	l.cond = sync.NewCond(&l.mu)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if l.stopped && len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		job := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.invoke(job)
	}
}

func (l *Loop) invoke(job func()) {
	defer errors.Recover("platform.Loop")
	job()
}

// Post schedules a job on the loop. Returns false if the loop has stopped.
func (l *Loop) Post(job func()) bool {
	if job == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return false
	}
	l.queue = append(l.queue, job)
	l.cond.Signal()
	return true
}

// PostDelayed schedules a job to run on the loop after d. The delay is
// measured on the animation clock, so tests driving a fake clock also
// drive long-press timers, frame scheduling and foreground polls. The
// returned cancel function prevents the job from running if it has not
// fired yet.
func (l *Loop) PostDelayed(job func(), d time.Duration) (cancel func()) {
	return animation.After(d, func() {
		l.Post(job)
	})
}

// Stop drains remaining jobs and shuts the loop down. Posts after Stop are
// rejected. Stop blocks until the loop goroutine exits.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.stopped = true
	l.cond.Signal()
	l.mu.Unlock()
	<-l.done
}

// Sync posts a job and waits for it to finish. Useful at boundaries where
// the caller needs the engine's state settled, such as tests and shutdown.
func (l *Loop) Sync(job func()) bool {
	ran := make(chan struct{})
	ok := l.Post(func() {
		defer close(ran)
		job()
	})
	if !ok {
		return false
	}
	<-ran
	return true
}
