package assembler

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/internal/scorer"
	"Lookbook/app/services/lookgen/look"
)

const titlePromptLimit = 40

type Options struct {
	MaxItems int
	// Budget caps the total price. Zero or negative means no limit.
	Budget int64
	// Gender, when set, drops products made for another gender. Unisex and
	// ungendered products always pass.
	Gender catalog.Gender
}

type candidate struct {
	product *catalog.Product
	score   float64
}

// Build selects a category-diverse outfit from products. It is deterministic
// for the same input and never returns nil. Id, creation time and cover image
// are left for the caller.
func Build(prompt string, signals look.Signals, products []*catalog.Product, opts Options) *look.Look {
	req := Merge(signals)

	candidates := make([]candidate, 0, len(products))
	for _, p := range products {
		if p == nil || !allowed(p, opts) {
			continue
		}
		candidates = append(candidates, candidate{product: p, score: scorer.Score(p, req)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	sel := &selection{
		max:    opts.MaxItems,
		budget: opts.Budget,
		used:   make(map[catalog.Kind]struct{}),
	}

	for _, kind := range preferredOrder(signals) {
		if sel.full() {
			break
		}
		if sel.hasKind(kind) {
			continue
		}
		for _, c := range candidates {
			if c.product.Kind == kind && sel.fits(c.product) {
				sel.take(c)
				break
			}
		}
	}

	for _, c := range candidates {
		if sel.full() {
			break
		}
		if sel.hasKind(c.product.Kind) || !sel.fits(c.product) {
			continue
		}
		sel.take(c)
	}

	items := make([]look.Item, 0, len(sel.picked))
	var sum float64
	for i, c := range sel.picked {
		sum += c.score
		items = append(items, look.Item{
			ProductId:  c.product.Id,
			Confidence: c.score,
			Reason:     scorer.Reason(c.product, req),
			Position:   i + 1,
			Category:   c.product.Kind,
			Price:      c.product.Price,
		})
	}

	var confidence float64
	if len(items) > 0 {
		confidence = sum / float64(len(items))
	}

	return &look.Look{
		Title:      Title(prompt, signals),
		Prompt:     prompt,
		Items:      items,
		TotalPrice: sel.total,
		Tags:       nonNil(dedup(append(append([]string{}, signals.Styles...), signals.Occasions...))),
		Style:      nonNil(signals.Styles),
		Occasion:   nonNil(signals.Occasions),
		Season:     nonNil(signals.Seasons),
		Confidence: confidence,
	}
}

func allowed(p *catalog.Product, opts Options) bool {
	if opts.Gender != "" && p.Gender != "" && p.Gender != opts.Gender && p.Gender != catalog.GenderUnisex {
		return false
	}
	if opts.Budget > 0 && p.Price > opts.Budget {
		return false
	}
	return true
}

type selection struct {
	max    int
	budget int64
	total  int64
	used   map[catalog.Kind]struct{}
	picked []candidate
}

func (s *selection) full() bool {
	return len(s.picked) >= s.max
}

func (s *selection) hasKind(k catalog.Kind) bool {
	_, ok := s.used[k]
	return ok
}

func (s *selection) fits(p *catalog.Product) bool {
	return s.budget <= 0 || s.total+p.Price <= s.budget
}

func (s *selection) take(c candidate) {
	s.picked = append(s.picked, c)
	s.used[c.product.Kind] = struct{}{}
	s.total += c.product.Price
}

var occasionPhrases = map[string]string{
	"work":    "the office",
	"date":    "a date",
	"party":   "a party",
	"wedding": "a wedding",
	"beach":   "the beach",
	"sport":   "training",
	"travel":  "travel",
	"walk":    "a walk",
	"evening": "an evening out",
	"home":    "home",
}

// Title names a look after its first style and occasion, falling back to the
// prompt itself when nothing was recognised.
func Title(prompt string, s look.Signals) string {
	var style, occasion string
	if len(s.Styles) > 0 {
		style = capitalize(s.Styles[0])
	}
	if len(s.Occasions) > 0 {
		occasion = s.Occasions[0]
		if phrase, ok := occasionPhrases[occasion]; ok {
			occasion = phrase
		}
	}

	switch {
	case style != "" && occasion != "":
		return fmt.Sprintf("%s look for %s", style, occasion)
	case style != "":
		return style + " look"
	case occasion != "":
		return "Look for " + occasion
	}

	p := strings.TrimSpace(prompt)
	if p == "" {
		return "New look"
	}
	if utf8.RuneCountInString(p) > titlePromptLimit {
		return string([]rune(p)[:titlePromptLimit]) + "…"
	}
	return p
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
