package analyzer

// word lists are matched as lower-case substrings, English and Russian.
type entry struct {
	word      string
	canonical string
}

var colorWords = []entry{
	{"black", "black"}, {"черн", "black"}, {"чёрн", "black"},
	{"white", "white"}, {"бел", "white"},
	{"grey", "grey"}, {"gray", "grey"}, {"сер", "grey"},
	{"beige", "beige"}, {"бежев", "beige"},
	{"navy", "navy"}, {"темно-син", "navy"},
	{"blue", "blue"}, {"син", "blue"}, {"голуб", "blue"},
	{"red", "red"}, {"красн", "red"},
	{"pink", "pink"}, {"розов", "pink"},
	{"green", "green"}, {"зелен", "green"}, {"зелён", "green"},
	{"yellow", "yellow"}, {"желт", "yellow"}, {"жёлт", "yellow"},
	{"brown", "brown"}, {"коричн", "brown"},
	{"burgundy", "burgundy"}, {"бордо", "burgundy"},
	{"olive", "olive"}, {"оливк", "olive"},
	{"lavender", "lavender"}, {"лаванд", "lavender"},
	{"gold", "gold"}, {"золот", "gold"},
	{"silver", "silver"}, {"серебр", "silver"},
}

var seasonWords = []entry{
	{"summer", "summer"}, {"лет", "summer"},
	{"winter", "winter"}, {"зим", "winter"},
	{"spring", "spring"}, {"весн", "spring"}, {"весен", "spring"},
	{"autumn", "autumn"}, {"fall", "autumn"}, {"осен", "autumn"}, {"осён", "autumn"},
}

var occasionWords = []entry{
	{"office", "work"}, {"work", "work"}, {"meeting", "work"}, {"business", "work"},
	{"офис", "work"}, {"работ", "work"}, {"встреч", "work"}, {"делов", "work"},
	{"date", "date"}, {"свидан", "date"},
	{"party", "party"}, {"вечеринк", "party"}, {"тусовк", "party"},
	{"wedding", "wedding"}, {"свадьб", "wedding"},
	{"beach", "beach"}, {"пляж", "beach"}, {"море", "beach"},
	{"gym", "sport"}, {"workout", "sport"}, {"трениров", "sport"}, {"спортзал", "sport"},
	{"travel", "travel"}, {"trip", "travel"}, {"путешеств", "travel"}, {"поездк", "travel"},
	{"walk", "walk"}, {"прогулк", "walk"},
	{"dinner", "evening"}, {"theatre", "evening"}, {"theater", "evening"}, {"ужин", "evening"}, {"театр", "evening"},
	{"home", "home"}, {"дом", "home"},
}

// styleAliases maps non-English style words onto knowledge-base keys.
var styleAliases = []entry{
	{"повседнев", "casual"}, {"кэжуал", "casual"},
	{"элегант", "elegant"},
	{"делов", "business"}, {"бизнес", "business"},
	{"классич", "classic"},
	{"спорт", "sport"},
	{"стрит", "street"}, {"уличн", "street"},
	{"романт", "romantic"},
	{"минимал", "minimal"},
	{"бохо", "boho"},
	{"вечерн", "evening"},
	{"монохром", "monochrome"},
	{"пастел", "pastel"},
	{"ярк", "bright"},
}

// CanonicalColor maps a single lower-case word onto a known colour name.
func CanonicalColor(w string) (string, bool) { return canonical(colorWords, w) }

// CanonicalSeason maps a single lower-case word onto a known season.
func CanonicalSeason(w string) (string, bool) { return canonical(seasonWords, w) }

// CanonicalOccasion maps a single lower-case word onto a known occasion.
func CanonicalOccasion(w string) (string, bool) { return canonical(occasionWords, w) }

func canonical(words []entry, w string) (string, bool) {
	for _, e := range words {
		if w == e.word || w == e.canonical {
			return e.canonical, true
		}
	}
	return "", false
}
