package stream

import (
	"context"
	"sync"
)

type (
	flowControl struct {
		concurrency int
	}

	Option func(fc *flowControl)
)

// Concurrency sets the number of workers for the whole stream (when passed
// to From) or for a single stage (when passed to Filter or Map).
func Concurrency(n int) Option {
	return func(fc *flowControl) {
		if n > 0 {
			fc.concurrency = n
		}
	}
}

func (fc flowControl) resolve(options []Option) int {
	local := fc
	for _, o := range options {
		o(&local)
	}
	return local.concurrency
}

// runState is shared by all stages of one pipeline run. The first fail
// wins, records its error and cancels the run's context, which unwinds
// every producer and worker.
type runState struct {
	cancel context.CancelFunc
	once   sync.Once
	err    error
}

func (rs *runState) fail(err error) {
	rs.once.Do(func() {
		rs.err = err
		rs.cancel()
	})
}

// firstErr returns the recorded error. The empty Do synchronizes with the
// winning fail, making the read safe after the output channel has closed.
func (rs *runState) firstErr() error {
	rs.once.Do(func() {})
	return rs.err
}
