package assembler

import (
	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/internal/knowledge"
	"Lookbook/app/services/lookgen/look"
)

// Merge folds the knowledge-base fragment of every detected style into one
// requirement set. Colours, seasons and occasions from the signals are added
// directly. Every list is deduplicated in first-seen order.
func Merge(s look.Signals) *look.Requirements {
	req := &look.Requirements{}

	for _, style := range s.Styles {
		f, ok := knowledge.Lookup(style)
		if !ok {
			continue
		}
		req.Kinds = append(req.Kinds, f.Kinds...)
		req.Season = append(req.Season, f.Season...)
		req.Colors = append(req.Colors, f.Colors...)
		req.Materials = append(req.Materials, f.Materials...)
		req.Fits = append(req.Fits, f.Fits...)
		req.Patterns = append(req.Patterns, f.Patterns...)
	}

	req.Colors = append(req.Colors, s.Colors...)
	for _, season := range s.Seasons {
		req.Season = append(req.Season, catalog.Season(season))
	}
	req.Tags = append(req.Tags, s.Styles...)
	req.Tags = append(req.Tags, s.Occasions...)

	req.Kinds = dedup(req.Kinds)
	req.Season = dedup(req.Season)
	req.Colors = dedup(req.Colors)
	req.Materials = dedup(req.Materials)
	req.Fits = dedup(req.Fits)
	req.Patterns = dedup(req.Patterns)
	req.Tags = dedup(req.Tags)

	return req
}

func dedup[T comparable](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
