package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedModel blocks the first Save until release is closed.
type gatedModel struct {
	SnapshotModel
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedModel() *gatedModel {
	return &gatedModel{
		SnapshotModel: NewMemorySnapshotModel(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
}

func (m *gatedModel) Save(ctx context.Context, key, value string) error {
	m.once.Do(func() {
		close(m.entered)
		<-m.release
	})
	return m.SnapshotModel.Save(ctx, key, value)
}

type failingModel struct{}

func (failingModel) Save(context.Context, string, string) error { return errors.New("down") }
func (failingModel) Load(context.Context, string) (string, error) {
	return "", errors.New("down")
}

func TestWriterNewestCopyWinsWhileSaveBlocks(t *testing.T) {
	ctx := context.Background()
	m := newGatedModel()
	w := NewWriter(m)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Write(ctx, 1, map[string]any{"cart": "old"})
	}()
	<-m.entered

	// queued behind the blocked save, returns without waiting
	w.Write(ctx, 2, map[string]any{"cart": "new"})
	w.Write(ctx, 1, map[string]any{"cart": "stale"})

	close(m.release)
	<-done

	v, err := m.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `"new"`, v)
}

func TestWriterDropsOlderVersions(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySnapshotModel()
	w := NewWriter(m)

	w.Write(ctx, 3, map[string]any{"cart": "v3", "orders": "v3"})
	w.Write(ctx, 2, map[string]any{"cart": "v2"})
	w.Write(ctx, 4, map[string]any{"orders": "v4"})

	v, err := m.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `"v3"`, v)
	v, err = m.Load(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `"v4"`, v)
}

func TestWriterFailuresAreNotFatal(t *testing.T) {
	w := NewWriter(failingModel{})
	assert.NotPanics(t, func() {
		w.Write(context.Background(), 1, map[string]any{"cart": []int{1}})
	})

	var nilWriter *Writer
	assert.NotPanics(t, func() {
		nilWriter.Write(context.Background(), 1, map[string]any{"cart": 1})
	})
}
