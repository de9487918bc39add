package look

import (
	"time"

	"Lookbook/app/dal/catalog"
)

// Signals is what prompt analysis extracts from free text.
type Signals struct {
	Styles    []string `json:"styles"`
	Colors    []string `json:"colors"`
	Seasons   []string `json:"seasons"`
	Occasions []string `json:"occasions"`
	// Budget is 0 when the prompt names no budget.
	Budget int64 `json:"budget,omitempty"`
}

func (s Signals) Empty() bool {
	return len(s.Styles) == 0 && len(s.Colors) == 0 && len(s.Seasons) == 0 && len(s.Occasions) == 0
}

// Requirements is the merged view of every knowledge-base entry a prompt hit.
// It lives for one generation call.
type Requirements struct {
	Kinds     []catalog.Kind
	Season    []catalog.Season
	Colors    []string
	Materials []string
	Fits      []string
	Patterns  []string
	Tags      []string
}

type Item struct {
	ProductId  string       `json:"productId"`
	Confidence float64      `json:"confidence"`
	Reason     string       `json:"reason"`
	Position   int          `json:"position"`
	Category   catalog.Kind `json:"category"`
	// Price is the product price at generation time.
	Price int64 `json:"price"`
}

type Look struct {
	Id         string    `json:"id"`
	Title      string    `json:"title"`
	Prompt     string    `json:"prompt"`
	Items      []Item    `json:"items"`
	TotalPrice int64     `json:"totalPrice"`
	Tags       []string  `json:"tags"`
	Style      []string  `json:"style"`
	Occasion   []string  `json:"occasion"`
	Season     []string  `json:"season"`
	Confidence float64   `json:"confidence"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Kinds returns the categories of the selected items in selection order.
func (l *Look) Kinds() []catalog.Kind {
	if l == nil {
		return nil
	}
	kinds := make([]catalog.Kind, 0, len(l.Items))
	for _, it := range l.Items {
		kinds = append(kinds, it.Category)
	}
	return kinds
}
