package cover

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/look"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultImage   = "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800"
	defaultTimeout = 3 * time.Second
)

var staticImages = map[string]string{
	"dress":    "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800",
	"business": "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800",
	"sport":    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
	"elegant":  "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=800",
	"casual":   "https://images.unsplash.com/photo-1529139574466-a303027c1d8b?w=800",
	"street":   "https://images.unsplash.com/photo-1523398002811-999ca8dec234?w=800",
	"work":     "https://images.unsplash.com/photo-1487222477894-8943e31ef7b2?w=800",
	"party":    "https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=800",
	"beach":    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
	"winter":   "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=800",
	"summer":   "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=800",
	"date":     "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=800",
}

type Resolver struct {
	searcher     Searcher
	timeout      time.Duration
	defaultImage string
}

// NewResolver builds a resolver. searcher may be nil, in which case only the
// static table is consulted.
func NewResolver(searcher Searcher, timeout time.Duration, defaultImage string) *Resolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if defaultImage == "" {
		defaultImage = DefaultImage
	}
	return &Resolver{
		searcher:     searcher,
		timeout:      timeout,
		defaultImage: defaultImage,
	}
}

// Resolve never fails: whatever goes wrong ends in the default image.
func (r *Resolver) Resolve(ctx context.Context, l *look.Look) string {
	keywords := Keywords(l)
	if len(keywords) == 0 {
		return r.defaultImage
	}

	if r.searcher != nil {
		if u, err := r.search(ctx, keywords); err == nil && u != "" {
			return u
		} else if err != nil {
			logx.WithContext(ctx).Infof("cover search failed, using static images: %v", err)
		}
	}

	for _, kw := range keywords {
		if u, ok := staticImages[kw]; ok {
			return u
		}
	}
	return r.defaultImage
}

func (r *Resolver) search(ctx context.Context, keywords []string) (u string, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		url string
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("image search panic: %v", p)}
			}
		}()
		u, err := r.searcher.Search(ctx, keywords)
		done <- result{url: u, err: err}
	}()

	select {
	case res := <-done:
		return res.url, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Keywords builds the search terms for a look: its first style, its first
// occasion and hints taken from the selected categories.
func Keywords(l *look.Look) []string {
	if l == nil {
		return nil
	}

	var keywords []string
	add := func(v string) {
		if v == "" {
			return
		}
		for _, k := range keywords {
			if k == v {
				return
			}
		}
		keywords = append(keywords, v)
	}

	if len(l.Style) > 0 {
		add(sanitize(l.Style[0]))
	}
	if len(l.Occasion) > 0 {
		add(sanitize(l.Occasion[0]))
	}
	for _, k := range l.Kinds() {
		switch k {
		case catalog.KindDress:
			add("dress")
		case catalog.KindSuiting:
			add("business")
		case catalog.KindActivewear:
			add("sport")
		}
	}
	return keywords
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
