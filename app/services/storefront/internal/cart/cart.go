// Package cart keeps the shopping cart grouped by shop. Every mutation works
// on a copy of the shop list and swaps it in whole, so a failed operation
// leaves the cart untouched. A shop with no lines is always pruned and every
// line has a quantity of at least one.
package cart

import (
	"Lookbook/app/services/storefront/model"
)

type Cart struct {
	shops []model.CartShop
}

func New(shops []model.CartShop) *Cart {
	c := &Cart{}
	c.shops = prune(clone(shops))
	return c
}

// Add applies qty to the line matching ref. A resulting quantity of zero or
// less deletes the line, so a negative qty works as a decrement. A new line is
// only created for a positive qty.
func (c *Cart) Add(shop model.CartShop, line model.CartLine, qty int64) {
	c.mutate(func(shops []model.CartShop) []model.CartShop {
		ref := model.ItemRef{ProductId: line.ProductId, Size: line.Size, Color: line.Color}
		si := indexShop(shops, shop.StoreId)
		if si < 0 {
			if qty <= 0 {
				return shops
			}
			shop.Items = nil
			shops = append(shops, shop)
			si = len(shops) - 1
		}

		items := shops[si].Items
		if li := indexLine(items, ref); li >= 0 {
			items[li].Quantity += qty
			if items[li].Quantity <= 0 {
				items = append(items[:li], items[li+1:]...)
			}
		} else if qty > 0 {
			line.Quantity = qty
			items = append(items, line)
		}
		shops[si].Items = items
		return shops
	})
}

// Increase is the strictly additive form of Add.
func (c *Cart) Increase(shop model.CartShop, line model.CartLine, qty int64) error {
	if qty <= 0 {
		return model.ErrInvalidQuantity
	}
	c.Add(shop, line, qty)
	return nil
}

// Adjust changes an existing line by delta and removes it at zero or below.
func (c *Cart) Adjust(storeId string, ref model.ItemRef, delta int64) error {
	var err error
	c.mutate(func(shops []model.CartShop) []model.CartShop {
		si := indexShop(shops, storeId)
		if si < 0 {
			err = model.ErrItemNotFound
			return shops
		}
		items := shops[si].Items
		li := indexLine(items, ref)
		if li < 0 {
			err = model.ErrItemNotFound
			return shops
		}
		items[li].Quantity += delta
		if items[li].Quantity <= 0 {
			items = append(items[:li], items[li+1:]...)
		}
		shops[si].Items = items
		return shops
	})
	return err
}

// Remove deletes every line of the product in the given shop, whatever its
// size or colour. It reports whether anything was removed.
func (c *Cart) Remove(productId, storeId string) bool {
	removed := false
	c.mutate(func(shops []model.CartShop) []model.CartShop {
		si := indexShop(shops, storeId)
		if si < 0 {
			return shops
		}
		kept := shops[si].Items[:0]
		for _, it := range shops[si].Items {
			if it.ProductId == productId {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		shops[si].Items = kept
		return shops
	})
	return removed
}

// ChangeQty moves the first line of the product by delta but never below one.
func (c *Cart) ChangeQty(productId, storeId string, delta int64) error {
	var err error
	c.mutate(func(shops []model.CartShop) []model.CartShop {
		si := indexShop(shops, storeId)
		if si < 0 {
			err = model.ErrItemNotFound
			return shops
		}
		for i := range shops[si].Items {
			it := &shops[si].Items[i]
			if it.ProductId != productId {
				continue
			}
			it.Quantity += delta
			if it.Quantity < 1 {
				it.Quantity = 1
			}
			return shops
		}
		err = model.ErrItemNotFound
		return shops
	})
	return err
}

func (c *Cart) Clear() {
	c.shops = nil
}

// Shops returns a deep copy of the shop groups.
func (c *Cart) Shops() []model.CartShop {
	return clone(c.shops)
}

func (c *Cart) Empty() bool {
	return len(c.shops) == 0
}

// Count is the sum of all line quantities.
func (c *Cart) Count() int64 {
	var n int64
	for _, s := range c.shops {
		for _, it := range s.Items {
			n += it.Quantity
		}
	}
	return n
}

func (c *Cart) View() model.Cart {
	return model.Cart{Shops: c.Shops(), Count: c.Count()}
}

func (c *Cart) mutate(fn func([]model.CartShop) []model.CartShop) {
	c.shops = prune(fn(clone(c.shops)))
}

func indexShop(shops []model.CartShop, storeId string) int {
	for i := range shops {
		if shops[i].StoreId == storeId {
			return i
		}
	}
	return -1
}

func indexLine(items []model.CartLine, ref model.ItemRef) int {
	for i := range items {
		if items[i].Matches(ref) {
			return i
		}
	}
	return -1
}

func prune(shops []model.CartShop) []model.CartShop {
	out := shops[:0]
	for _, s := range shops {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clone(shops []model.CartShop) []model.CartShop {
	if len(shops) == 0 {
		return nil
	}
	out := make([]model.CartShop, len(shops))
	for i, s := range shops {
		out[i] = s
		out[i].Items = make([]model.CartLine, len(s.Items))
		for j, it := range s.Items {
			if it.Color != nil {
				c := *it.Color
				it.Color = &c
			}
			out[i].Items[j] = it
		}
	}
	return out
}
