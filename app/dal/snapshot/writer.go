package snapshot

import (
	"context"
	"sync"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

type (
	// Writer serializes saves to a SnapshotModel. Every write carries the
	// version of the state copy it was taken from. Per key, a copy older than
	// one already queued or written is dropped. Only one caller talks to the
	// store at a time, and that caller also flushes what others queued
	// meanwhile, so later callers never wait on a slow store.
	Writer struct {
		m SnapshotModel

		mu       sync.Mutex
		flushing bool
		pending  map[string]pendingWrite
		written  map[string]uint64
	}

	pendingWrite struct {
		version uint64
		value   any
	}
)

func NewWriter(m SnapshotModel) *Writer {
	return &Writer{
		m:       m,
		pending: make(map[string]pendingWrite),
		written: make(map[string]uint64),
	}
}

// Write queues values (key -> value marshalled as JSON) taken at version and
// flushes the queue unless another caller is already flushing it. Failures
// are logged only.
func (w *Writer) Write(ctx context.Context, version uint64, values map[string]any) {
	if w == nil || w.m == nil {
		return
	}

	w.mu.Lock()
	for key, v := range values {
		if version <= w.written[key] {
			continue
		}
		if p, ok := w.pending[key]; ok && p.version >= version {
			continue
		}
		w.pending[key] = pendingWrite{version: version, value: v}
	}
	if w.flushing {
		w.mu.Unlock()
		return
	}
	w.flushing = true
	for len(w.pending) > 0 {
		batch := w.pending
		w.pending = make(map[string]pendingWrite)
		w.mu.Unlock()

		for key, p := range batch {
			w.save(ctx, key, p.value)
		}

		w.mu.Lock()
		for key, p := range batch {
			if p.version > w.written[key] {
				w.written[key] = p.version
			}
		}
	}
	w.flushing = false
	w.mu.Unlock()
}

func (w *Writer) save(ctx context.Context, key string, v any) {
	raw, err := jsonx.MarshalToString(v)
	if err == nil {
		err = w.m.Save(ctx, key, raw)
	}
	if err != nil {
		logx.WithContext(ctx).Errorw("save snapshot failed", logx.Field("key", key), logx.Field("err", err))
	}
}
