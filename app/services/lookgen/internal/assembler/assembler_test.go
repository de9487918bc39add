package assembler

import (
	"testing"

	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/internal/analyzer"
	"Lookbook/app/services/lookgen/look"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/jsonx"
)

func product(id string, kind catalog.Kind, price int64) *catalog.Product {
	return &catalog.Product{Id: id, Name: id, Kind: kind, Price: price, StoreId: "s1"}
}

func TestBuildOfficeLook(t *testing.T) {
	prompt := "elegant office look for a business meeting, budget 1000000"
	products := []*catalog.Product{
		{Id: "swim", Kind: catalog.KindSwimwear, Price: 50000, Season: []catalog.Season{catalog.SeasonSummer}},
		{Id: "dress", Kind: catalog.KindDress, Price: 400000, Color: "black", Material: []string{"silk"}},
		{Id: "suit", Kind: catalog.KindSuiting, Price: 300000, Color: "navy", Material: []string{"wool"}},
		{Id: "shoes", Kind: catalog.KindFootwear, Price: 200000, Color: "black"},
	}

	signals := analyzer.Analyze(prompt)
	l := Build(prompt, signals, products, Options{MaxItems: 3, Budget: signals.Budget})

	require.Len(t, l.Items, 3)
	assert.Equal(t, int64(900000), l.TotalPrice)
	assert.Equal(t, []catalog.Kind{catalog.KindDress, catalog.KindSuiting, catalog.KindFootwear}, l.Kinds())
	for _, it := range l.Items {
		assert.NotEqual(t, "swim", it.ProductId)
		assert.GreaterOrEqual(t, it.Confidence, 0.0)
		assert.LessOrEqual(t, it.Confidence, 1.0)
	}
	assert.Equal(t, []int{1, 2, 3}, []int{l.Items[0].Position, l.Items[1].Position, l.Items[2].Position})
	assert.Contains(t, l.Occasion, "work")
	assert.Equal(t, "Business look for the office", l.Title)
	assert.Equal(t, prompt, l.Prompt)
}

func TestBuildEmptyPrompt(t *testing.T) {
	products := []*catalog.Product{
		product("shoes", catalog.KindFootwear, 100),
		product("top", catalog.KindTopwear, 100),
		product("jeans", catalog.KindBottomwear, 100),
	}

	l := Build("", look.Signals{}, products, Options{MaxItems: 4})

	assert.Equal(t, "New look", l.Title)
	assert.Equal(t, []catalog.Kind{catalog.KindTopwear, catalog.KindBottomwear, catalog.KindFootwear}, l.Kinds())
	assert.InDelta(t, 0.5, l.Confidence, 1e-9)
	assert.Empty(t, l.Style)
	assert.NotNil(t, l.Style)
	assert.NotNil(t, l.Tags)

	raw, err := jsonx.MarshalToString(l)
	require.NoError(t, err)
	assert.Contains(t, raw, `"tags":[]`)
}

func TestBuildEmptyCatalog(t *testing.T) {
	l := Build("casual summer", analyzer.Analyze("casual summer"), nil, Options{MaxItems: 4})

	require.NotNil(t, l)
	assert.NotNil(t, l.Items)
	assert.Empty(t, l.Items)
	assert.Zero(t, l.TotalPrice)
	assert.Zero(t, l.Confidence)
}

func TestBuildZeroMaxItems(t *testing.T) {
	products := []*catalog.Product{product("top", catalog.KindTopwear, 100)}

	for _, n := range []int{0, -1} {
		l := Build("casual", analyzer.Analyze("casual"), products, Options{MaxItems: n})
		assert.Empty(t, l.Items)
		assert.Zero(t, l.TotalPrice)
	}
}

func TestBuildCategoryDiversity(t *testing.T) {
	products := []*catalog.Product{
		product("top1", catalog.KindTopwear, 100),
		product("top2", catalog.KindTopwear, 100),
		product("top3", catalog.KindTopwear, 100),
		product("jeans", catalog.KindBottomwear, 100),
	}

	l := Build("casual", analyzer.Analyze("casual"), products, Options{MaxItems: 4})

	require.Len(t, l.Items, 2)
	seen := map[catalog.Kind]bool{}
	for _, it := range l.Items {
		assert.False(t, seen[it.Category], "duplicate category %s", it.Category)
		seen[it.Category] = true
	}
	assert.Equal(t, "top1", l.Items[0].ProductId)
}

func TestBuildBudget(t *testing.T) {
	products := []*catalog.Product{
		product("top", catalog.KindTopwear, 400000),
		product("jeans", catalog.KindBottomwear, 200000),
		product("shoes", catalog.KindFootwear, 100000),
		product("coat", catalog.KindOuterwear, 900000),
	}

	l := Build("", look.Signals{}, products, Options{MaxItems: 4, Budget: 500000})

	assert.LessOrEqual(t, l.TotalPrice, int64(500000))
	assert.Equal(t, []catalog.Kind{catalog.KindTopwear, catalog.KindFootwear}, l.Kinds())
}

func TestBuildGender(t *testing.T) {
	products := []*catalog.Product{
		{Id: "mens-top", Kind: catalog.KindTopwear, Gender: catalog.GenderMen},
		{Id: "womens-top", Kind: catalog.KindTopwear, Gender: catalog.GenderWomen},
		{Id: "unisex-shoes", Kind: catalog.KindFootwear, Gender: catalog.GenderUnisex},
	}

	l := Build("", look.Signals{}, products, Options{MaxItems: 4, Gender: catalog.GenderWomen})

	ids := []string{}
	for _, it := range l.Items {
		ids = append(ids, it.ProductId)
	}
	assert.Equal(t, []string{"womens-top", "unisex-shoes"}, ids)
}

func TestBuildDeterministic(t *testing.T) {
	products := []*catalog.Product{
		product("a", catalog.KindTopwear, 10),
		product("b", catalog.KindTopwear, 10),
		product("c", catalog.KindFootwear, 10),
		product("d", catalog.KindAccessories, 10),
	}
	prompt := "minimal spring look"

	first := Build(prompt, analyzer.Analyze(prompt), products, Options{MaxItems: 3})
	second := Build(prompt, analyzer.Analyze(prompt), products, Options{MaxItems: 3})

	assert.Equal(t, first, second)
}

func TestPreferredOrder(t *testing.T) {
	tests := []struct {
		name    string
		signals look.Signals
		first   catalog.Kind
	}{
		{"formal", look.Signals{Styles: []string{"elegant"}}, catalog.KindDress},
		{"sport", look.Signals{Styles: []string{"sport"}}, catalog.KindActivewear},
		{"winter season", look.Signals{Seasons: []string{"winter"}}, catalog.KindOuterwear},
		{"default", look.Signals{Styles: []string{"casual"}}, catalog.KindTopwear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.first, preferredOrder(tt.signals)[0])
		})
	}
}

func TestMerge(t *testing.T) {
	req := Merge(look.Signals{
		Styles:    []string{"business", "elegant"},
		Colors:    []string{"black", "red"},
		Seasons:   []string{"autumn"},
		Occasions: []string{"work"},
	})

	assert.Contains(t, req.Kinds, catalog.KindDress)
	assert.Contains(t, req.Kinds, catalog.KindSuiting)
	assert.Contains(t, req.Colors, "red")
	assert.Contains(t, req.Season, catalog.SeasonAutumn)
	assert.Equal(t, []string{"business", "elegant", "work"}, req.Tags)

	seen := map[string]int{}
	for _, c := range req.Colors {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "colour %s repeated", c)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Elegant look for a date", Title("x", look.Signals{Styles: []string{"elegant"}, Occasions: []string{"date"}}))
	assert.Equal(t, "Sport look", Title("x", look.Signals{Styles: []string{"sport"}}))
	assert.Equal(t, "Look for the beach", Title("x", look.Signals{Occasions: []string{"beach"}}))
	assert.Equal(t, "something new", Title("  something new ", look.Signals{}))
	long := "a very long prompt that does not mention anything we know about"
	assert.Equal(t, string([]rune(long)[:40])+"…", Title(long, look.Signals{}))
}
