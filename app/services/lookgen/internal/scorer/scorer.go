package scorer

import (
	"fmt"
	"strings"

	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/look"
)

const (
	baseScore      = 0.5
	kindWeight     = 0.30
	seasonWeight   = 0.20
	colorWeight    = 0.20
	materialWeight = 0.15
	fitWeight      = 0.10
	patternWeight  = 0.10
	tagWeight      = 0.05
	maxScore       = 1.0
)

// Score rates how well a product fits the requirements. Every product starts at
// 0.5 so a prompt without signals still ranks the whole catalog; each matching
// dimension adds its weight and the sum is clamped to 1. A dimension missing on
// either side adds nothing.
func Score(p *catalog.Product, req *look.Requirements) float64 {
	if p == nil {
		return 0
	}
	if req == nil {
		return baseScore
	}

	m := match(p, req)
	score := baseScore
	if m.kind {
		score += kindWeight
	}
	if m.season {
		score += seasonWeight
	}
	if m.color {
		score += colorWeight
	}
	if m.material {
		score += materialWeight
	}
	if m.fit {
		score += fitWeight
	}
	if m.pattern {
		score += patternWeight
	}
	score += tagWeight * float64(len(m.tags))

	if score > maxScore {
		score = maxScore
	}
	return score
}

// Reason describes which dimensions matched, for display only.
func Reason(p *catalog.Product, req *look.Requirements) string {
	if p == nil || req == nil {
		return "general match"
	}
	m := match(p, req)

	parts := make([]string, 0, 7)
	if m.kind {
		parts = append(parts, fmt.Sprintf("category %s", p.Kind))
	}
	if m.season {
		parts = append(parts, "season")
	}
	if m.color {
		parts = append(parts, fmt.Sprintf("color %s", p.Color))
	}
	if m.material {
		parts = append(parts, "material")
	}
	if m.fit {
		parts = append(parts, fmt.Sprintf("fit %s", p.Fit))
	}
	if m.pattern {
		parts = append(parts, fmt.Sprintf("pattern %s", p.Pattern))
	}
	if len(m.tags) > 0 {
		parts = append(parts, fmt.Sprintf("tags %s", strings.Join(m.tags, ", ")))
	}
	if len(parts) == 0 {
		return "general match"
	}
	return "matches " + strings.Join(parts, "; ")
}

type matches struct {
	kind     bool
	season   bool
	color    bool
	material bool
	fit      bool
	pattern  bool
	tags     []string
}

func match(p *catalog.Product, req *look.Requirements) matches {
	var m matches

	for _, k := range req.Kinds {
		if p.Kind == k {
			m.kind = true
			break
		}
	}

	for _, s := range p.Season {
		if containsSeason(req.Season, s) {
			m.season = true
			break
		}
	}

	if p.Color != "" && containsFold(req.Colors, p.Color) {
		m.color = true
	}

	for _, mat := range p.Material {
		if containsFold(req.Materials, mat) {
			m.material = true
			break
		}
	}

	if p.Fit != "" && containsFold(req.Fits, p.Fit) {
		m.fit = true
	}
	if p.Pattern != "" && containsFold(req.Patterns, p.Pattern) {
		m.pattern = true
	}

	for _, tag := range p.Tags {
		if containsFold(req.Tags, tag) && !containsFold(m.tags, tag) {
			m.tags = append(m.tags, tag)
		}
	}

	return m
}

func containsSeason(list []catalog.Season, s catalog.Season) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
