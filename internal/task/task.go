// Package task runs a single asynchronous unit of work and exposes its
// outcome as one of three states: pending, succeeded or failed.
//
// Every collaborator call made by a view goes through a Task bound to the
// request context, so that tearing the view down cancels the call.
package task

import (
	"context"
	"sync"
)

// State is the lifecycle position of a Task.
type State int

const (
	Pending State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Task. Value is only meaningful when State is
// Succeeded and Err is only set when State is Failed.
type Result[T any] struct {
	State State
	Value T
	Err   error
}

// OK reports whether the task succeeded.
func (r Result[T]) OK() bool {
	return r.State == Succeeded
}

// Task is a cancellable unit of asynchronous work. The first outcome wins:
// once cancelled, a later return from the work function is discarded.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	result Result[T]
}

// Start runs fn in its own goroutine with a context derived from ctx.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
		result: Result[T]{State: Pending},
	}

	go func() {
		value, err := fn(taskCtx)
		if err != nil {
			t.settle(Result[T]{State: Failed, Err: err})
			return
		}
		t.settle(Result[T]{State: Succeeded, Value: value})
	}()

	// The parent context ending is a teardown as well.
	go func() {
		select {
		case <-taskCtx.Done():
			t.settle(Result[T]{State: Failed, Err: context.Cause(taskCtx)})
		case <-t.done:
		}
		cancel()
	}()

	return t
}

func (t *Task[T]) settle(r Result[T]) {
	t.once.Do(func() {
		t.mu.Lock()
		t.result = r
		t.mu.Unlock()
		close(t.done)
	})
}

// State returns the current state without blocking.
func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result.State
}

// Result returns the current result without blocking.
func (t *Task[T]) Result() Result[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Done is closed once the task has settled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Cancel settles a pending task as failed with context.Canceled and cancels
// the context handed to the work function. It is safe to call more than once
// and after the task has settled.
func (t *Task[T]) Cancel() {
	t.settle(Result[T]{State: Failed, Err: context.Canceled})
	t.cancel()
}

// Wait blocks until the task settles or ctx ends, in which case the task is
// cancelled first.
func (t *Task[T]) Wait(ctx context.Context) Result[T] {
	select {
	case <-t.done:
	case <-ctx.Done():
		t.Cancel()
	}
	return t.Result()
}

// Run starts fn and waits for its result.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) Result[T] {
	t := Start(ctx, fn)
	defer t.Cancel()
	return t.Wait(ctx)
}
