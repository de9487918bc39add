package lookgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/dal/snapshot"
	"Lookbook/app/services/lookgen/look"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type searcherFunc func(ctx context.Context, keywords []string) (string, error)

func (f searcherFunc) Search(ctx context.Context, keywords []string) (string, error) {
	return f(ctx, keywords)
}

type sourceFunc func(ctx context.Context, prompt string) (look.Signals, error)

func (f sourceFunc) Analyze(ctx context.Context, prompt string) (look.Signals, error) {
	return f(ctx, prompt)
}

type panickingCatalog struct {
	catalog.CatalogModel
}

func (panickingCatalog) Products(context.Context) []*catalog.Product {
	panic("catalog exploded")
}

func testCatalog() catalog.CatalogModel {
	return catalog.NewCatalogModel([]catalog.Product{
		{Id: "dress", Kind: catalog.KindDress, Price: 400000, Color: "black", StoreId: "s1"},
		{Id: "blazer", Kind: catalog.KindSuiting, Price: 300000, Color: "navy", StoreId: "s1"},
		{Id: "shoes", Kind: catalog.KindFootwear, Price: 200000, StoreId: "s2"},
		{Id: "swim", Kind: catalog.KindSwimwear, Price: 50000, StoreId: "s2"},
	}, nil)
}

func newTestService(opts ...Option) *Service {
	seq := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIdGenerator(func() string {
			seq++
			return fmt.Sprintf("look-%d", seq)
		}),
		WithSearcher(searcherFunc(func(context.Context, []string) (string, error) {
			return "https://img.example/cover.jpg", nil
		})),
	}
	return NewService(LookConf{MaxItems: 3}, testCatalog(), append(base, opts...)...)
}

func TestGenerate(t *testing.T) {
	s := newTestService()

	l, err := s.Generate(context.Background(), "elegant office look for a business meeting, budget 1000000")
	require.NoError(t, err)

	assert.Equal(t, "look-1", l.Id)
	assert.Equal(t, fixedNow, l.CreatedAt)
	assert.Equal(t, "https://img.example/cover.jpg", l.CoverImage)
	assert.Equal(t, int64(900000), l.TotalPrice)
	assert.Len(t, l.Items, 3)
	assert.Equal(t, []*look.Look{l}, s.Looks())
}

func TestGenerateUsesPromptBudgetOnlyWithoutExplicitOne(t *testing.T) {
	s := newTestService()

	l, err := s.Generate(context.Background(), "elegant look, budget 500000")
	require.NoError(t, err)
	assert.LessOrEqual(t, l.TotalPrice, int64(500000))

	l, err = s.Generate(context.Background(), "elegant look, budget 500000", WithBudget(250000))
	require.NoError(t, err)
	assert.LessOrEqual(t, l.TotalPrice, int64(250000))
}

func TestGenerateCountsAndMeasuresAreNotBudgets(t *testing.T) {
	s := newTestService()

	for _, prompt := range []string{"casual look, up to 3 items", "summer outfit under 25 degrees"} {
		l, err := s.Generate(context.Background(), prompt)
		require.NoError(t, err)
		assert.NotEmpty(t, l.Items, prompt)
	}
}

func TestGenerateOptions(t *testing.T) {
	s := newTestService()

	l, err := s.Generate(context.Background(), "", WithMaxItems(1))
	require.NoError(t, err)
	assert.Len(t, l.Items, 1)

	l, err = s.Generate(context.Background(), "", WithMaxItems(0))
	require.NoError(t, err)
	assert.Empty(t, l.Items)
	assert.NotEmpty(t, l.CoverImage)
}

func TestGenerateMergesSignalSource(t *testing.T) {
	s := newTestService(WithSignalSource(sourceFunc(func(context.Context, string) (look.Signals, error) {
		return look.Signals{Styles: []string{"sport"}, Occasions: []string{"date"}}, nil
	})))

	l, err := s.Generate(context.Background(), "something elegant")
	require.NoError(t, err)
	assert.Equal(t, []string{"elegant", "sport"}, l.Style)
	assert.Equal(t, []string{"date"}, l.Occasion)
}

func TestGenerateIgnoresFailingSignalSource(t *testing.T) {
	s := newTestService(WithSignalSource(sourceFunc(func(context.Context, string) (look.Signals, error) {
		return look.Signals{}, errors.New("model unavailable")
	})))

	l, err := s.Generate(context.Background(), "elegant")
	require.NoError(t, err)
	assert.Equal(t, []string{"elegant"}, l.Style)
}

func TestGenerateRecoversPanics(t *testing.T) {
	s := NewService(LookConf{MaxItems: 3}, panickingCatalog{})

	l, err := s.Generate(context.Background(), "casual")
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Empty(t, s.Looks())
}

func TestGenerateCoverFailureStillSucceeds(t *testing.T) {
	s := newTestService(WithSearcher(searcherFunc(func(context.Context, []string) (string, error) {
		return "", errors.New("boom")
	})))

	l, err := s.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, l.CoverImage)
}

func TestGenerateRevealDelayHonoursContext(t *testing.T) {
	s := NewService(LookConf{MaxItems: 3, RevealDelay: time.Hour}, testCatalog())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l, err := s.Generate(ctx, "casual")
	assert.Nil(t, l)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Looks())
}

func TestGenerateBatchIsSequentialAndAppendOnly(t *testing.T) {
	s := newTestService()

	looks, err := s.GenerateBatch(context.Background(), []string{"casual", "elegant", "sport"})
	require.NoError(t, err)
	require.Len(t, looks, 3)

	ids := []string{}
	for _, l := range s.Looks() {
		ids = append(ids, l.Id)
	}
	assert.Equal(t, []string{"look-1", "look-2", "look-3"}, ids)
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := snapshot.NewMemorySnapshotModel()
	s := newTestService(WithSnapshots(store))

	_, err := s.Generate(context.Background(), "casual")
	require.NoError(t, err)

	raw, err := store.Load(context.Background(), biz.SnapshotLooks)
	require.NoError(t, err)
	assert.Contains(t, raw, "look-1")

	restored := NewService(LookConf{}, testCatalog(), WithSnapshots(store))
	require.NoError(t, restored.Restore(context.Background()))
	require.Len(t, restored.Looks(), 1)
	assert.Equal(t, "look-1", restored.Looks()[0].Id)
}

// gatedSnapshots blocks the first Save until release is closed.
type gatedSnapshots struct {
	snapshot.SnapshotModel
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedSnapshots) Save(ctx context.Context, key, value string) error {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.SnapshotModel.Save(ctx, key, value)
}

func TestSnapshotKeepsNewestHistoryWhenSavesOverlap(t *testing.T) {
	gated := &gatedSnapshots{
		SnapshotModel: snapshot.NewMemorySnapshotModel(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	s := newTestService(WithSnapshots(gated))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(ctx, "casual")
		done <- err
	}()
	<-gated.entered

	_, err := s.Generate(ctx, "office")
	require.NoError(t, err)
	close(gated.release)
	require.NoError(t, <-done)

	restored := NewService(LookConf{}, testCatalog(), WithSnapshots(gated.SnapshotModel))
	require.NoError(t, restored.Restore(ctx))
	assert.Len(t, restored.Looks(), 2)
}

func TestMergeSignals(t *testing.T) {
	got := mergeSignals(
		look.Signals{Styles: []string{"casual"}, Colors: []string{"black"}},
		look.Signals{Styles: []string{"casual", "street"}, Colors: []string{"white"}, Budget: 5000},
	)
	assert.Equal(t, []string{"casual", "street"}, got.Styles)
	assert.Equal(t, []string{"black", "white"}, got.Colors)
	assert.Equal(t, int64(5000), got.Budget)
}
