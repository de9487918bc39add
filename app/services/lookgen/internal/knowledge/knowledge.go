// Package knowledge holds the static style, occasion, season and colour-scheme
// table that prompts are resolved against. Adding a style means adding an entry
// here and nothing else.
package knowledge

import (
	"sort"

	"Lookbook/app/dal/catalog"
)

type Fragment struct {
	Kinds     []catalog.Kind
	Patterns  []string
	Materials []string
	Fits      []string
	Colors    []string
	Season    []catalog.Season
	// Confidence is how strongly the entry describes a look. Scoring does not
	// read it.
	Confidence float64
}

var table = map[string]Fragment{
	"casual": {
		Kinds:      []catalog.Kind{catalog.KindTopwear, catalog.KindBottomwear, catalog.KindFootwear, catalog.KindKnitwear},
		Materials:  []string{"cotton", "denim", "jersey"},
		Fits:       []string{"regular", "relaxed", "oversize"},
		Patterns:   []string{"solid", "stripe"},
		Confidence: 0.7,
	},
	"elegant": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindSuiting, catalog.KindFootwear, catalog.KindAccessories, catalog.KindJewelry},
		Materials:  []string{"silk", "wool", "satin"},
		Fits:       []string{"slim", "tailored"},
		Patterns:   []string{"solid"},
		Colors:     []string{"black", "white", "beige", "navy"},
		Confidence: 0.85,
	},
	"business": {
		Kinds:      []catalog.Kind{catalog.KindSuiting, catalog.KindTopwear, catalog.KindBottomwear, catalog.KindFootwear},
		Materials:  []string{"wool", "cotton"},
		Fits:       []string{"tailored", "slim", "regular"},
		Patterns:   []string{"solid", "pinstripe", "check"},
		Colors:     []string{"navy", "grey", "black", "white"},
		Confidence: 0.85,
	},
	"classic": {
		Kinds:      []catalog.Kind{catalog.KindSuiting, catalog.KindTopwear, catalog.KindOuterwear, catalog.KindFootwear},
		Materials:  []string{"wool", "cotton", "leather"},
		Fits:       []string{"regular", "tailored"},
		Patterns:   []string{"solid", "check"},
		Colors:     []string{"navy", "beige", "white", "brown"},
		Confidence: 0.75,
	},
	"sport": {
		Kinds:      []catalog.Kind{catalog.KindActivewear, catalog.KindFootwear, catalog.KindTopwear, catalog.KindAccessories},
		Materials:  []string{"polyester", "elastane", "nylon"},
		Fits:       []string{"slim", "regular"},
		Confidence: 0.8,
	},
	"street": {
		Kinds:      []catalog.Kind{catalog.KindTopwear, catalog.KindBottomwear, catalog.KindFootwear, catalog.KindOuterwear, catalog.KindAccessories},
		Materials:  []string{"cotton", "denim", "nylon"},
		Fits:       []string{"oversize", "relaxed"},
		Patterns:   []string{"print", "graphic"},
		Confidence: 0.7,
	},
	"romantic": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindTopwear, catalog.KindFootwear, catalog.KindJewelry},
		Materials:  []string{"chiffon", "lace", "silk"},
		Fits:       []string{"fitted", "flowy"},
		Patterns:   []string{"floral", "polka"},
		Colors:     []string{"pink", "white", "red", "beige"},
		Confidence: 0.75,
	},
	"minimal": {
		Kinds:      []catalog.Kind{catalog.KindTopwear, catalog.KindBottomwear, catalog.KindOuterwear, catalog.KindFootwear},
		Materials:  []string{"cotton", "wool", "linen"},
		Fits:       []string{"regular", "straight"},
		Patterns:   []string{"solid"},
		Colors:     []string{"black", "white", "grey", "beige"},
		Confidence: 0.7,
	},
	"boho": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindTopwear, catalog.KindAccessories, catalog.KindJewelry},
		Materials:  []string{"linen", "cotton", "suede"},
		Fits:       []string{"flowy", "relaxed"},
		Patterns:   []string{"floral", "paisley", "ethnic"},
		Confidence: 0.65,
	},
	"party": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindTopwear, catalog.KindFootwear, catalog.KindJewelry, catalog.KindAccessories},
		Materials:  []string{"satin", "sequin", "velvet"},
		Fits:       []string{"fitted", "slim"},
		Colors:     []string{"black", "red", "gold", "silver"},
		Confidence: 0.75,
	},
	"evening": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindSuiting, catalog.KindFootwear, catalog.KindJewelry},
		Materials:  []string{"silk", "satin", "velvet"},
		Fits:       []string{"fitted", "tailored"},
		Colors:     []string{"black", "burgundy", "navy"},
		Confidence: 0.8,
	},
	"work": {
		Kinds:      []catalog.Kind{catalog.KindSuiting, catalog.KindTopwear, catalog.KindBottomwear, catalog.KindFootwear},
		Materials:  []string{"wool", "cotton"},
		Fits:       []string{"regular", "tailored"},
		Patterns:   []string{"solid", "check"},
		Colors:     []string{"navy", "grey", "white", "black"},
		Confidence: 0.8,
	},
	"date": {
		Kinds:      []catalog.Kind{catalog.KindDress, catalog.KindTopwear, catalog.KindFootwear, catalog.KindJewelry},
		Fits:       []string{"fitted", "slim"},
		Colors:     []string{"red", "black", "pink"},
		Confidence: 0.7,
	},
	"beach": {
		Kinds:      []catalog.Kind{catalog.KindSwimwear, catalog.KindDress, catalog.KindFootwear, catalog.KindAccessories},
		Materials:  []string{"linen", "cotton"},
		Season:     []catalog.Season{catalog.SeasonSummer},
		Confidence: 0.8,
	},
	"home": {
		Kinds:      []catalog.Kind{catalog.KindLoungewear, catalog.KindKnitwear, catalog.KindFootwear},
		Materials:  []string{"cotton", "fleece", "cashmere"},
		Fits:       []string{"relaxed", "oversize"},
		Confidence: 0.7,
	},
	"summer": {
		Kinds:      []catalog.Kind{catalog.KindTopwear, catalog.KindDress, catalog.KindBottomwear, catalog.KindSwimwear},
		Materials:  []string{"linen", "cotton"},
		Season:     []catalog.Season{catalog.SeasonSummer},
		Colors:     []string{"white", "beige", "yellow"},
		Confidence: 0.7,
	},
	"winter": {
		Kinds:      []catalog.Kind{catalog.KindOuterwear, catalog.KindKnitwear, catalog.KindFootwear, catalog.KindAccessories},
		Materials:  []string{"wool", "down", "cashmere", "fleece"},
		Season:     []catalog.Season{catalog.SeasonWinter},
		Confidence: 0.75,
	},
	"spring": {
		Kinds:      []catalog.Kind{catalog.KindOuterwear, catalog.KindTopwear, catalog.KindBottomwear},
		Materials:  []string{"cotton", "denim"},
		Season:     []catalog.Season{catalog.SeasonSpring},
		Confidence: 0.65,
	},
	"autumn": {
		Kinds:      []catalog.Kind{catalog.KindOuterwear, catalog.KindKnitwear, catalog.KindBottomwear, catalog.KindFootwear},
		Materials:  []string{"wool", "suede", "leather"},
		Season:     []catalog.Season{catalog.SeasonAutumn},
		Colors:     []string{"brown", "burgundy", "olive", "mustard"},
		Confidence: 0.7,
	},
	"monochrome": {
		Patterns:   []string{"solid"},
		Colors:     []string{"black", "white", "grey"},
		Confidence: 0.6,
	},
	"pastel": {
		Colors:     []string{"pink", "lavender", "mint", "beige"},
		Confidence: 0.6,
	},
	"bright": {
		Colors:     []string{"red", "yellow", "orange", "green"},
		Confidence: 0.6,
	},
}

// Lookup returns the fragment registered for tag.
func Lookup(tag string) (Fragment, bool) {
	f, ok := table[tag]
	return f, ok
}

// Keys lists every tag in the table, sorted so analysis output is stable.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
