package catalog

import "errors"

var ErrNotFound = errors.New("catalog: not found")

// Kind is the apparel category of a product.
type Kind string

const (
	KindTopwear     Kind = "topwear"
	KindBottomwear  Kind = "bottomwear"
	KindDress       Kind = "dress"
	KindOuterwear   Kind = "outerwear"
	KindKnitwear    Kind = "knitwear"
	KindSuiting     Kind = "suiting"
	KindActivewear  Kind = "activewear"
	KindLoungewear  Kind = "loungewear"
	KindUnderwear   Kind = "underwear"
	KindSwimwear    Kind = "swimwear"
	KindFootwear    Kind = "footwear"
	KindAccessories Kind = "accessories"
	KindJewelry     Kind = "jewelry"
)

type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonAutumn Season = "autumn"
)

type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)
