// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// Job is a single-use adapter for long-running operations that emit
// progress events before their final completion. Completion flows through
// the same exactly-once machinery as Call; progress events are buffered in
// a bounded lock-free SPSC queue and consumed non-blockingly.
//
// The buffer is single-producer single-consumer: the wrapped operation must
// emit progress from one goroutine at a time, and one goroutine drains
// Progress. Progress is advisory and lossy under consumer lag.
type Job[T, P any] struct {
	call    Call[T]
	events  lfq.SPSC[P]
	dropped atomix.Uint32
	slot    P
}

// NewJob creates a job adapter whose progress buffer holds capacity events.
func NewJob[T, P any](capacity int) *Job[T, P] {
	j := &Job[T, P]{}
	j.call.serial = nextSerial()
	j.events.Init(capacity)
	return j
}

// Serial returns the invocation serial assigned to this job.
func (j *Job[T, P]) Serial() Serial {
	return j.call.Serial()
}

// Start begins the wrapped job under ctx. start receives the progress sink
// and the completion sink, and synchronously returns the job's cancellation
// handle. Starting a Job a second time panics.
func (j *Job[T, P]) Start(ctx context.Context, start func(progress func(P), done Completion[T]) Canceler) {
	j.call.Start(ctx, func(done Completion[T]) Canceler {
		return start(j.emit, done)
	})
}

// emit buffers one progress event. A full buffer drops the event and
// counts it.
func (j *Job[T, P]) emit(p P) {
	j.slot = p
	if err := j.events.Enqueue(&j.slot); err != nil {
		j.dropped.Add(1)
	}
}

// Progress dequeues the oldest buffered progress event in FIFO order.
// Non-blocking: returns iox.ErrWouldBlock when no event is buffered.
// Buffered events remain consumable after the job resolves.
func (j *Job[T, P]) Progress() (P, error) {
	return j.events.Dequeue()
}

// Dropped returns how many progress events were discarded because the
// buffer was full.
func (j *Job[T, P]) Dropped() uint32 {
	return j.dropped.Load()
}

// Poll attempts to observe the job's outcome without blocking.
// Returns iox.ErrWouldBlock while the job is still running.
func (j *Job[T, P]) Poll() (T, error) {
	return j.call.Poll()
}

// Await blocks until the job's outcome is available, backing off
// adaptively. Progress buffered in the meantime stays available.
func (j *Job[T, P]) Await() (T, error) {
	return j.call.Await()
}

// Cancel requests cancellation of the running job. The job's handle Cancel
// is invoked at most once.
func (j *Job[T, P]) Cancel() {
	j.call.Cancel()
}
