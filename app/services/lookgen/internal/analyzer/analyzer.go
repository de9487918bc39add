package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"Lookbook/app/services/lookgen/internal/knowledge"
	"Lookbook/app/services/lookgen/look"
)

// budgetPattern captures the keyword, an optional currency sign, the amount
// and the word right after it. A digit group is either plain or grouped by
// thousands with a space, comma or dot.
var budgetPattern = regexp.MustCompile(`(?:^|[^\p{L}])(budget|бюджет|under|below|up to|within|до)\s*[:\-]?\s*([$€₽])?\s*(\d{1,3}(?:[ ,.]\d{3})+|\d+)\b\s*([^\s,;!?]*)`)

var (
	// a number followed by one of these is a count or a measure
	unitStems = []string{"item", "piece", "pcs", "thing", "degree", "year", "шт", "вещ", "предмет", "градус", "год"}
	unitWords = []string{"°", "°c", "лет"}

	currencyStems = []string{"₽", "$", "€", "руб", "rub", "usd", "eur", "dollar", "доллар", "евро"}
	currencyWords = []string{"р", "р."}
)

// Analyze extracts styles, colours, seasons, occasions and a budget from free
// text. Matching is plain substring search on the lower-cased input, so a word
// embedded in a longer one still matches. Empty input yields empty signals.
func Analyze(prompt string) look.Signals {
	text := strings.ToLower(strings.TrimSpace(prompt))
	signals := look.Signals{
		Styles:    []string{},
		Colors:    []string{},
		Seasons:   []string{},
		Occasions: []string{},
	}
	if text == "" {
		return signals
	}

	for _, key := range knowledge.Keys() {
		if strings.Contains(text, key) {
			signals.Styles = appendUnique(signals.Styles, key)
		}
	}
	for _, alias := range styleAliases {
		if strings.Contains(text, alias.word) {
			signals.Styles = appendUnique(signals.Styles, alias.canonical)
		}
	}

	signals.Colors = matchWords(text, colorWords)
	signals.Seasons = matchWords(text, seasonWords)
	signals.Occasions = matchWords(text, occasionWords)
	signals.Budget = extractBudget(text)

	return signals
}

func matchWords(text string, words []entry) []string {
	out := []string{}
	for _, w := range words {
		if strings.Contains(text, w.word) {
			out = appendUnique(out, w.canonical)
		}
	}
	return out
}

// extractBudget returns the first amount introduced by a budget keyword, or by
// a limit word (under, up to, до) when a currency is named. Amounts followed by
// a unit word are skipped.
func extractBudget(text string) int64 {
	for _, m := range budgetPattern.FindAllStringSubmatch(text, -1) {
		keyword, sign, amount, next := m[1], m[2], m[3], m[4]
		if isWord(next, unitStems, unitWords) {
			continue
		}
		if keyword != "budget" && keyword != "бюджет" && sign == "" && !isWord(next, currencyStems, currencyWords) {
			continue
		}
		if v := parseAmount(amount); v > 0 {
			return v
		}
	}
	return 0
}

func parseAmount(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func isWord(w string, stems, words []string) bool {
	if w == "" {
		return false
	}
	for _, stem := range stems {
		if strings.HasPrefix(w, stem) {
			return true
		}
	}
	for _, word := range words {
		if w == word {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
