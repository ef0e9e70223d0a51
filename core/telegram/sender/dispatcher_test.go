package sender

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatcherRunsJobsAndDrainsOnClose(t *testing.T) {
	d := NewDispatcher(Options{Workers: 2, QueueSize: 8})
	var runs atomic.Int32
	for i := 0; i < 5; i++ {
		if err := d.Enqueue(context.Background(), "notify.booking", "sendMessage", func() error {
			runs.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	d.Close()
	if runs.Load() != 5 || d.SentCount() != 5 {
		t.Fatalf("runs=%d sent=%d", runs.Load(), d.SentCount())
	}
	if err := d.Enqueue(context.Background(), "late", "", func() error { return nil }); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("enqueue after close = %v", err)
	}
}

func TestDispatcherQueueFull(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, QueueSize: 1})
	release := make(chan struct{})
	started := make(chan struct{})
	_ = d.Enqueue(context.Background(), "block", "", func() error {
		close(started)
		<-release
		return nil
	})
	<-started
	_ = d.Enqueue(context.Background(), "queued", "", func() error { return nil })
	err := d.Enqueue(context.Background(), "overflow", "", func() error { return nil })
	close(release)
	d.Close()
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
}

func TestDispatcherRetriesServerErrors(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	var calls atomic.Int32
	_ = d.Enqueue(context.Background(), "notify.booking", "sendMessage", func() error {
		if calls.Add(1) < 3 {
			return errors.New("telegram: Bad Gateway (502)")
		}
		return nil
	})
	d.Close()
	if calls.Load() != 3 || d.ErrorCount() != 0 {
		t.Fatalf("calls=%d errors=%d", calls.Load(), d.ErrorCount())
	}
}

func TestDispatcherCountsPermanentFailure(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 3, RetryBackoff: time.Millisecond})
	var calls atomic.Int32
	_ = d.Enqueue(context.Background(), "notify.booking", "sendMessage", func() error {
		calls.Add(1)
		return errors.New("telegram: Bad Request: chat not found (400)")
	})
	d.Close()
	if calls.Load() != 1 || d.ErrorCount() != 1 {
		t.Fatalf("calls=%d errors=%d", calls.Load(), d.ErrorCount())
	}
}

func TestDispatcherStopsAtMaxDuration(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, MaxRetries: 5, RetryBackoff: time.Hour, MaxDuration: 20 * time.Millisecond})
	var calls atomic.Int32
	_ = d.Enqueue(context.Background(), "notify.booking", "sendMessage", func() error {
		calls.Add(1)
		return errors.New("telegram: Internal Server Error (500)")
	})
	d.Close()
	if calls.Load() != 1 || d.ErrorCount() != 1 {
		t.Fatalf("calls=%d errors=%d", calls.Load(), d.ErrorCount())
	}
}
