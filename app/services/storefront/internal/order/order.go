package order

import (
	"fmt"
	"math/rand"
	"time"

	"Lookbook/app/services/storefront/model"
)

var etaOffsets = map[model.Status]time.Duration{
	model.StatusNew:     24 * time.Hour,
	model.StatusPrep:    22 * time.Hour,
	model.StatusShipped: 18 * time.Hour,
}

// EstimateETA returns nil for statuses without a delivery estimate, which
// covers delivered, cancel and return.
func EstimateETA(status model.Status, now time.Time) *time.Time {
	d, ok := etaOffsets[status]
	if !ok {
		return nil
	}
	eta := now.Add(d)
	return &eta
}

// NewNumber formats a random six digit order number. Collisions are not
// checked.
func NewNumber() string {
	return fmt.Sprintf("A-%06d", rand.Intn(1000000))
}

var strictNext = map[model.Status][]model.Status{
	model.StatusNew:     {model.StatusPrep, model.StatusCancel, model.StatusReturn},
	model.StatusPrep:    {model.StatusShipped, model.StatusCancel, model.StatusReturn},
	model.StatusShipped: {model.StatusDelivered, model.StatusCancel, model.StatusReturn},
}

// CanTransition reports whether from may move to next. Without strict any
// known status is accepted from any other.
func CanTransition(from, next model.Status, strict bool) bool {
	if !next.Valid() {
		return false
	}
	if !strict {
		return true
	}
	for _, s := range strictNext[from] {
		if s == next {
			return true
		}
	}
	return false
}

type Draft struct {
	Id      string
	Number  string
	BuyerId string
	Address string
	Shop    model.CartShop
	Fees    model.Fees
	Note    string
}

// New creates an order in status new with a single timeline entry.
func New(d Draft, now time.Time) *model.Order {
	return &model.Order{
		Id:        d.Id,
		Number:    d.Number,
		BuyerId:   d.BuyerId,
		StoreId:   d.Shop.StoreId,
		StoreName: d.Shop.StoreName,
		Date:      now,
		Status:    model.StatusNew,
		Items:     append([]model.CartLine(nil), d.Shop.Items...),
		Address:   d.Address,
		Fees:      d.Fees,
		Timeline:  []model.TimelineEntry{{Status: model.StatusNew, At: now, Note: d.Note}},
		ETA:       EstimateETA(model.StatusNew, now),
	}
}

// Advance appends a timeline entry, sets the status and recomputes the ETA.
func Advance(o *model.Order, next model.Status, note string, now time.Time) {
	o.Timeline = append(o.Timeline, model.TimelineEntry{Status: next, At: now, Note: note})
	o.Status = next
	o.ETA = EstimateETA(next, now)
}

// Overdue reports whether an order that is still on its way has passed its ETA.
func Overdue(o *model.Order, now time.Time) bool {
	if o == nil || o.ETA == nil || o.Status.Terminal() {
		return false
	}
	return now.After(*o.ETA)
}
