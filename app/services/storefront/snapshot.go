package storefront

import (
	"context"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/services/storefront/model"
)

// state is a versioned copy of the persisted parts, keyed by snapshot key.
type state struct {
	version uint64
	parts   map[string]any
}

// cartSnapshotLocked copies the cart only. s.mu must be held.
func (s *Store) cartSnapshotLocked() *state {
	if s.writer == nil {
		return nil
	}
	s.version++
	return &state{
		version: s.version,
		parts:   map[string]any{biz.SnapshotCart: s.cart.Shops()},
	}
}

// snapshotLocked copies everything that is persisted. s.mu must be held.
func (s *Store) snapshotLocked() *state {
	if s.writer == nil {
		return nil
	}
	buyerOrders := make([]*model.Order, 0, len(s.buyerOrders))
	for _, o := range s.buyerOrders {
		buyerOrders = append(buyerOrders, o.Clone())
	}
	sellerOrders := make([]*model.Order, 0, len(s.sellerOrders))
	for _, o := range s.sellerOrders {
		sellerOrders = append(sellerOrders, o.Clone())
	}

	s.version++
	return &state{
		version: s.version,
		parts: map[string]any{
			biz.SnapshotCart:          s.cart.Shops(),
			biz.SnapshotBuyerOrders:   buyerOrders,
			biz.SnapshotSellerOrders:  sellerOrders,
			biz.SnapshotNotifications: append([]model.Notification(nil), s.notifications...),
		},
	}
}

// persist hands the copy to the writer. Copies older than what was already
// saved are dropped and failures are logged only.
func (s *Store) persist(ctx context.Context, st *state) {
	if st == nil {
		return
	}
	s.writer.Write(ctx, st.version, st.parts)
}
