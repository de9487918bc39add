package lookgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/snowflake"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/dal/snapshot"
	"Lookbook/app/services/lookgen/internal/analyzer"
	"Lookbook/app/services/lookgen/internal/assembler"
	"Lookbook/app/services/lookgen/internal/cover"
	"Lookbook/app/services/lookgen/internal/intent"
	"Lookbook/app/services/lookgen/look"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrGenerationFailed = errors.New("look generation failed")

type (
	// Searcher finds a cover image for a list of keywords.
	Searcher = cover.Searcher

	// SignalSource is an additional prompt analyzer whose signals are merged
	// with the keyword analysis. Errors are logged and ignored.
	SignalSource interface {
		Analyze(ctx context.Context, prompt string) (look.Signals, error)
	}

	Service struct {
		catalog     catalog.CatalogModel
		resolver    *cover.Resolver
		source      SignalSource
		snapshots   snapshot.SnapshotModel
		writer      *snapshot.Writer
		maxItems    int
		revealDelay time.Duration
		now         func() time.Time
		newId       func() string

		searcher     Searcher
		coverTimeout time.Duration
		defaultImage string

		mu      sync.Mutex
		looks   []*look.Look
		version uint64
	}

	Option func(*Service)

	GenerateOption func(*generateOptions)

	generateOptions struct {
		maxItems int
		budget   int64
		gender   catalog.Gender
	}
)

func WithSearcher(s Searcher) Option {
	return func(svc *Service) {
		svc.searcher = s
	}
}

func WithSignalSource(src SignalSource) Option {
	return func(svc *Service) {
		svc.source = src
	}
}

func WithSnapshots(m snapshot.SnapshotModel) Option {
	return func(svc *Service) {
		svc.snapshots = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(svc *Service) {
		svc.now = now
	}
}

func WithIdGenerator(newId func() string) Option {
	return func(svc *Service) {
		svc.newId = newId
	}
}

// WithMaxItems overrides the configured item count for one generation.
func WithMaxItems(n int) GenerateOption {
	return func(o *generateOptions) {
		o.maxItems = n
	}
}

// WithBudget caps the look total. Without it the budget found in the prompt,
// if any, is used.
func WithBudget(limit int64) GenerateOption {
	return func(o *generateOptions) {
		o.budget = limit
	}
}

func WithGender(g catalog.Gender) GenerateOption {
	return func(o *generateOptions) {
		o.gender = g
	}
}

// NewService wires the look generator. The image searcher and chat model are
// built from config unless supplied through options.
func NewService(c LookConf, products catalog.CatalogModel, opts ...Option) *Service {
	s := &Service{
		catalog:      products,
		maxItems:     c.MaxItems,
		revealDelay:  c.RevealDelay,
		coverTimeout: c.CoverTimeout,
		defaultImage: c.ImageSearch.DefaultImage,
		now:          time.Now,
		newId:        snowflake.NextString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snapshots != nil {
		s.writer = snapshot.NewWriter(s.snapshots)
	}

	if s.searcher == nil && c.ImageSearch.Endpoint != "" {
		s.searcher = cover.NewHttpSearcher(c.ImageSearch.Endpoint, c.ImageSearch.APIKey)
	}
	s.resolver = cover.NewResolver(s.searcher, s.coverTimeout, s.defaultImage)

	if s.source == nil && c.ChatModel.Model != "" {
		s.source = newChatSignalSource(c.ChatModel)
	}

	return s
}

func newChatSignalSource(c ModelConf) SignalSource {
	ctx := context.Background()
	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.APIKey,
		Model:   c.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		return nil
	}
	classifier, err := intent.NewClassifier(ctx, logx.WithContext(ctx), cm)
	if err != nil {
		logx.Errorw("init look intent classifier failed", logx.Field("err", err))
		return nil
	}
	logx.Infow("look intent classifier initialized", logx.Field("model", c.Model))
	return classifier
}

// Generate builds a look for the prompt and appends it to the history. The
// cover image is always set, falling back to a default. An error means no look
// was produced.
func (s *Service) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (*look.Look, error) {
	o := generateOptions{maxItems: s.maxItems}
	for _, opt := range opts {
		opt(&o)
	}

	signals := s.analyze(ctx, prompt)
	if o.budget <= 0 {
		o.budget = signals.Budget
	}

	l, err := s.assemble(ctx, prompt, signals, o)
	if err != nil {
		return nil, err
	}
	l.Id = s.newId()
	l.CreatedAt = s.now()
	l.CoverImage = s.resolver.Resolve(ctx, l)

	if s.revealDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.revealDelay):
		}
	}

	s.mu.Lock()
	s.looks = append(s.looks, l)
	history := append([]*look.Look(nil), s.looks...)
	s.version++
	version := s.version
	s.mu.Unlock()
	s.persist(ctx, version, history)

	logx.WithContext(ctx).Infow("look generated",
		logx.Field("lookId", l.Id),
		logx.Field("items", len(l.Items)),
		logx.Field("total", l.TotalPrice),
		logx.Field("confidence", l.Confidence))
	return l, nil
}

// GenerateBatch generates one look per prompt, one after another. It stops at
// the first failure and returns the looks built so far.
func (s *Service) GenerateBatch(ctx context.Context, prompts []string, opts ...GenerateOption) ([]*look.Look, error) {
	out := make([]*look.Look, 0, len(prompts))
	for _, p := range prompts {
		l, err := s.Generate(ctx, p, opts...)
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Looks returns every generated look, oldest first.
func (s *Service) Looks() []*look.Look {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*look.Look(nil), s.looks...)
}

// Restore reloads the look history from the snapshot store. A missing snapshot
// leaves the history empty.
func (s *Service) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	raw, err := s.snapshots.Load(ctx, biz.SnapshotLooks)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	var looks []*look.Look
	if err := jsonx.UnmarshalFromString(raw, &looks); err != nil {
		return fmt.Errorf("decode looks snapshot: %w", err)
	}
	s.mu.Lock()
	s.looks = looks
	s.mu.Unlock()
	return nil
}

func (s *Service) analyze(ctx context.Context, prompt string) look.Signals {
	signals := analyzer.Analyze(prompt)
	if s.source == nil {
		return signals
	}
	extra, err := s.source.Analyze(ctx, prompt)
	if err != nil {
		logx.WithContext(ctx).Infof("signal source failed, keyword analysis only: %v", err)
		return signals
	}
	return mergeSignals(signals, extra)
}

func (s *Service) assemble(ctx context.Context, prompt string, signals look.Signals, o generateOptions) (l *look.Look, err error) {
	defer func() {
		if r := recover(); r != nil {
			logx.WithContext(ctx).Errorf("assemble look panic: %v", r)
			l, err = nil, fmt.Errorf("%w: %v", ErrGenerationFailed, r)
		}
	}()

	var products []*catalog.Product
	if s.catalog != nil {
		products = s.catalog.Products(ctx)
	}
	return assembler.Build(prompt, signals, products, assembler.Options{
		MaxItems: o.maxItems,
		Budget:   o.budget,
		Gender:   o.gender,
	}), nil
}

func (s *Service) persist(ctx context.Context, version uint64, looks []*look.Look) {
	if s.writer == nil {
		return
	}
	s.writer.Write(ctx, version, map[string]any{biz.SnapshotLooks: looks})
}

func mergeSignals(a, b look.Signals) look.Signals {
	out := look.Signals{
		Styles:    union(a.Styles, b.Styles),
		Colors:    union(a.Colors, b.Colors),
		Seasons:   union(a.Seasons, b.Seasons),
		Occasions: union(a.Occasions, b.Occasions),
		Budget:    a.Budget,
	}
	if out.Budget <= 0 {
		out.Budget = b.Budget
	}
	return out
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
