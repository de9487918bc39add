package assembler

import (
	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen/look"
)

var defaultOrder = []catalog.Kind{
	catalog.KindTopwear,
	catalog.KindBottomwear,
	catalog.KindFootwear,
	catalog.KindOuterwear,
	catalog.KindAccessories,
}

type orderRule struct {
	tags  []string
	order []catalog.Kind
}

// rules are checked top to bottom; the first one whose tag appears among the
// styles, occasions or seasons decides the category order.
var rules = []orderRule{
	{
		tags: []string{"business", "elegant", "evening", "classic", "work", "party", "romantic", "wedding"},
		order: []catalog.Kind{
			catalog.KindDress, catalog.KindSuiting, catalog.KindTopwear, catalog.KindBottomwear,
			catalog.KindFootwear, catalog.KindOuterwear, catalog.KindAccessories, catalog.KindJewelry,
		},
	},
	{
		tags: []string{"sport"},
		order: []catalog.Kind{
			catalog.KindActivewear, catalog.KindFootwear, catalog.KindTopwear, catalog.KindBottomwear,
			catalog.KindOuterwear, catalog.KindAccessories,
		},
	},
	{
		tags: []string{"winter"},
		order: []catalog.Kind{
			catalog.KindOuterwear, catalog.KindKnitwear, catalog.KindBottomwear, catalog.KindFootwear,
			catalog.KindAccessories,
		},
	},
	{
		tags: []string{"beach"},
		order: []catalog.Kind{
			catalog.KindSwimwear, catalog.KindDress, catalog.KindTopwear, catalog.KindFootwear,
			catalog.KindAccessories,
		},
	},
	{
		tags: []string{"home"},
		order: []catalog.Kind{
			catalog.KindLoungewear, catalog.KindKnitwear, catalog.KindFootwear,
		},
	},
}

func preferredOrder(s look.Signals) []catalog.Kind {
	present := make(map[string]struct{}, len(s.Styles)+len(s.Occasions)+len(s.Seasons))
	for _, list := range [][]string{s.Styles, s.Occasions, s.Seasons} {
		for _, v := range list {
			present[v] = struct{}{}
		}
	}

	for _, r := range rules {
		for _, tag := range r.tags {
			if _, ok := present[tag]; ok {
				return r.order
			}
		}
	}
	return defaultOrder
}
