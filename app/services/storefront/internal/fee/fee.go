package fee

import (
	"math"

	"Lookbook/app/services/storefront/model"
)

const (
	ModePercent = "percent"
	ModeFlat    = "flat"
	ModeMixed   = "mixed"
)

// CalcServiceFee computes the platform fee on subtotal plus delivery, rounded
// to the nearest unit and clamped by MinFee/MaxFee when those are positive.
func CalcServiceFee(subtotal, deliveryFee int64, c model.ServiceFeeConf) int64 {
	base := float64(subtotal + deliveryFee)

	var raw float64
	switch c.Mode {
	case ModeFlat:
		raw = c.Flat
	case ModeMixed:
		raw = base*c.Percent/100 + c.Flat
	default:
		raw = base * c.Percent / 100
	}

	fee := int64(math.Round(raw))
	if c.MinFee > 0 && fee < c.MinFee {
		fee = c.MinFee
	}
	if c.MaxFee > 0 && fee > c.MaxFee {
		fee = c.MaxFee
	}
	return fee
}

// Breakdown builds the fees of every shop in a checkout. With ApplyPerStore
// each shop pays its own service fee; otherwise one fee is computed over the
// whole cart and charged on the first order.
func Breakdown(shops []model.CartShop, c model.ServiceFeeConf) []model.Fees {
	out := make([]model.Fees, len(shops))
	var subtotal, delivery int64
	for i, s := range shops {
		out[i].Subtotal = s.Subtotal()
		out[i].DeliveryFee = s.DeliveryFee
		subtotal += out[i].Subtotal
		delivery += out[i].DeliveryFee
		if c.ApplyPerStore {
			out[i].ServiceFee = CalcServiceFee(out[i].Subtotal, out[i].DeliveryFee, c)
		}
	}
	if !c.ApplyPerStore && len(out) > 0 {
		out[0].ServiceFee = CalcServiceFee(subtotal, delivery, c)
	}
	for i := range out {
		out[i].Total = out[i].Subtotal + out[i].DeliveryFee + out[i].ServiceFee
	}
	return out
}
