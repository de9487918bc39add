package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/snowflake"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/dal/snapshot"
	"Lookbook/app/services/storefront/internal/cart"
	"Lookbook/app/services/storefront/internal/fee"
	"Lookbook/app/services/storefront/internal/mq"
	"Lookbook/app/services/storefront/internal/notify"
	"Lookbook/app/services/storefront/internal/order"
	"Lookbook/app/services/storefront/model"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrProductNotFound      = model.ErrProductNotFound
	ErrShopNotFound         = model.ErrShopNotFound
	ErrItemNotFound         = model.ErrItemNotFound
	ErrOrderNotFound        = model.ErrOrderNotFound
	ErrEmptyCart            = model.ErrEmptyCart
	ErrInvalidTransition    = model.ErrInvalidTransition
	ErrInvalidQuantity      = model.ErrInvalidQuantity
	ErrNotificationNotFound = model.ErrNotificationNotFound
)

type (
	Publisher = mq.Publisher
	Scheduler = mq.Scheduler

	// Store owns the cart, both order collections and the notification feed.
	// All mutations are serialized and each one replaces the affected state as
	// a whole.
	Store struct {
		catalog   catalog.CatalogModel
		conf      StoreConf
		texts     *notify.Localizer
		publisher Publisher
		scheduler Scheduler
		snapshots snapshot.SnapshotModel
		writer    *snapshot.Writer
		now       func() time.Time
		newId     func() string
		newNumber func() string

		mu            sync.Mutex
		cart          *cart.Cart
		buyerOrders   []*model.Order
		sellerOrders  []*model.Order
		notifications []model.Notification
		version       uint64
	}

	Option func(*Store)
)

func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

func WithScheduler(sch Scheduler) Option {
	return func(s *Store) {
		s.scheduler = sch
	}
}

func WithSnapshots(m snapshot.SnapshotModel) Option {
	return func(s *Store) {
		s.snapshots = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIdGenerator(newId func() string) Option {
	return func(s *Store) {
		s.newId = newId
	}
}

func WithNumberGenerator(newNumber func() string) Option {
	return func(s *Store) {
		s.newNumber = newNumber
	}
}

func NewStore(c StoreConf, products catalog.CatalogModel, opts ...Option) *Store {
	s := &Store{
		catalog:   products,
		conf:      c,
		texts:     notify.NewLocalizer(c.Locale),
		publisher: mq.NoopPublisher{},
		scheduler: mq.NoopScheduler{},
		now:       time.Now,
		newId:     snowflake.NextString,
		newNumber: order.NewNumber,
		cart:      cart.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snapshots != nil {
		s.writer = snapshot.NewWriter(s.snapshots)
	}
	return s
}

// AddItem applies qty to the cart line of the product. A negative qty
// decrements, and a line reaching zero is removed along with an emptied shop.
func (s *Store) AddItem(ctx context.Context, ref model.ItemRef, qty int64) (model.Cart, error) {
	return s.withLine(ctx, ref, func(shop model.CartShop, line model.CartLine) error {
		s.cart.Add(shop, line, qty)
		return nil
	})
}

// Increase only ever adds; qty must be positive.
func (s *Store) Increase(ctx context.Context, ref model.ItemRef, qty int64) (model.Cart, error) {
	return s.withLine(ctx, ref, func(shop model.CartShop, line model.CartLine) error {
		return s.cart.Increase(shop, line, qty)
	})
}

// Adjust moves an existing line by delta and removes it at zero or below.
func (s *Store) Adjust(ctx context.Context, ref model.ItemRef, delta int64) (model.Cart, error) {
	return s.withLine(ctx, ref, func(shop model.CartShop, _ model.CartLine) error {
		return s.cart.Adjust(shop.StoreId, ref, delta)
	})
}

func (s *Store) RemoveItem(ctx context.Context, productId, storeId string) model.Cart {
	s.mu.Lock()
	if !s.cart.Remove(productId, storeId) {
		logx.WithContext(ctx).Infow("remove cart item: nothing matched",
			logx.Field("productId", productId), logx.Field("storeId", storeId))
	}
	view := s.cart.View()
	snap := s.cartSnapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return view
}

// ChangeQty moves the line by delta, never below one.
func (s *Store) ChangeQty(ctx context.Context, productId, storeId string, delta int64) (model.Cart, error) {
	s.mu.Lock()
	err := s.cart.ChangeQty(productId, storeId, delta)
	view := s.cart.View()
	var snap *state
	if err == nil {
		snap = s.cartSnapshotLocked()
	}
	s.mu.Unlock()

	if err != nil {
		logx.WithContext(ctx).Infof("change qty of %s in %s: %v", productId, storeId, err)
		return view, err
	}
	s.persist(ctx, snap)
	return view, nil
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart.Clear()
	snap := s.cartSnapshotLocked()
	s.mu.Unlock()
	s.persist(ctx, snap)
}

func (s *Store) Cart() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.View()
}

// Checkout turns every shop in the cart into its own order and empties the
// cart. The first order is returned for navigation. An empty buyerId falls
// back to the configured one.
func (s *Store) Checkout(ctx context.Context, buyerId, address string) (*model.CheckoutResult, error) {
	if buyerId == "" {
		buyerId = s.conf.BuyerId
	}

	s.mu.Lock()
	if s.cart.Empty() {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	now := s.now()
	shops := s.cart.Shops()
	fees := fee.Breakdown(shops, s.conf.ServiceFee)
	created := make([]*model.Order, 0, len(shops))
	for i, shop := range shops {
		o := order.New(order.Draft{
			Id:      s.newId(),
			Number:  s.newNumber(),
			BuyerId: buyerId,
			Address: address,
			Shop:    shop,
			Fees:    fees[i],
			Note:    s.texts.CreatedNote(),
		}, now)
		created = append(created, o)
		s.buyerOrders = append(s.buyerOrders, o)
		s.sellerOrders = append(s.sellerOrders, o.Clone())
		s.notify(s.texts.OrderCreated(o), now)
		s.notify(s.texts.NewOrder(o), now)
	}
	s.cart.Clear()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)

	result := &model.CheckoutResult{OrderIds: make([]string, 0, len(created))}
	for _, o := range created {
		result.OrderIds = append(result.OrderIds, o.Id)
		s.publish(ctx, biz.TopicOrderCreated, o.Id, mq.OrderCreatedEvent{
			OrderId:   o.Id,
			Number:    o.Number,
			BuyerId:   o.BuyerId,
			StoreId:   o.StoreId,
			Total:     o.Fees.Total,
			Items:     len(o.Items),
			CreatedAt: o.Date,
		})
		s.schedule(ctx, o)
	}
	result.OrderId, result.Number = created[0].Id, created[0].Number

	logx.WithContext(ctx).Infow("checkout completed",
		logx.Field("buyerId", buyerId),
		logx.Field("orders", len(created)))
	return result, nil
}

// SetStatus moves both copies of an order to next, appends a timeline entry
// and tells the buyer. Any known status is accepted unless strict transitions
// are enabled.
func (s *Store) SetStatus(ctx context.Context, orderId string, next model.Status) (*model.Order, error) {
	s.mu.Lock()
	bo := findOrder(s.buyerOrders, orderId)
	so := findOrder(s.sellerOrders, orderId)
	if bo == nil && so == nil {
		s.mu.Unlock()
		logx.WithContext(ctx).Infof("set status: order %s not found", orderId)
		return nil, ErrOrderNotFound
	}

	ref := bo
	if ref == nil {
		ref = so
	}
	prev := ref.Status
	if !order.CanTransition(prev, next, s.conf.StrictTransitions) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prev, next)
	}

	now := s.now()
	note := s.texts.StatusNote(next)
	for _, o := range []*model.Order{bo, so} {
		if o != nil {
			order.Advance(o, next, note, now)
		}
	}
	s.notify(s.texts.StatusChanged(ref), now)
	updated := ref.Clone()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	s.publish(ctx, biz.TopicOrderStatusChanged, updated.Id, mq.OrderStatusChangedEvent{
		OrderId: updated.Id,
		Number:  updated.Number,
		StoreId: updated.StoreId,
		From:    prev,
		To:      next,
		At:      now,
	})
	s.schedule(ctx, updated)
	return updated, nil
}

// CheckOverdue notifies the buyer when the order is still undelivered after
// its ETA. Unknown orders are ignored.
func (s *Store) CheckOverdue(ctx context.Context, orderId string) error {
	s.mu.Lock()
	o := findOrder(s.buyerOrders, orderId)
	now := s.now()
	if o == nil || !order.Overdue(o, now) {
		s.mu.Unlock()
		return nil
	}
	s.notify(s.texts.Overdue(o), now)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// Orders lists the buyer's orders, newest first.
func (s *Store) Orders(buyerId string) []*model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Order, 0, len(s.buyerOrders))
	for i := len(s.buyerOrders) - 1; i >= 0; i-- {
		if o := s.buyerOrders[i]; buyerId == "" || o.BuyerId == buyerId {
			out = append(out, o.Clone())
		}
	}
	return out
}

// SellerOrders lists the seller copies, newest first. An empty storeId lists
// every store.
func (s *Store) SellerOrders(storeId string) []*model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Order, 0, len(s.sellerOrders))
	for i := len(s.sellerOrders) - 1; i >= 0; i-- {
		if o := s.sellerOrders[i]; storeId == "" || o.StoreId == storeId {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (s *Store) Order(orderId string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := findOrder(s.buyerOrders, orderId); o != nil {
		return o.Clone(), nil
	}
	return nil, ErrOrderNotFound
}

// Notifications returns the feed of one audience, newest first.
func (s *Store) Notifications(audience string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0)
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if n := s.notifications[i]; n.Audience == audience {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) UnreadCount(audience string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, it := range s.notifications {
		if it.Audience == audience && !it.IsRead {
			n++
		}
	}
	return n
}

func (s *Store) MarkRead(ctx context.Context, notificationId string) error {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].Id == notificationId {
			s.notifications[i].IsRead = true
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrNotificationNotFound
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// Restore loads the last saved state. Missing keys leave that part empty.
func (s *Store) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	var st struct {
		cart          []model.CartShop
		buyerOrders   []*model.Order
		sellerOrders  []*model.Order
		notifications []model.Notification
	}
	for _, part := range []struct {
		key string
		dst any
	}{
		{biz.SnapshotCart, &st.cart},
		{biz.SnapshotBuyerOrders, &st.buyerOrders},
		{biz.SnapshotSellerOrders, &st.sellerOrders},
		{biz.SnapshotNotifications, &st.notifications},
	} {
		raw, err := s.snapshots.Load(ctx, part.key)
		if err != nil {
			return fmt.Errorf("load %s: %w", part.key, err)
		}
		if raw == "" {
			continue
		}
		if err := jsonx.UnmarshalFromString(raw, part.dst); err != nil {
			return fmt.Errorf("decode %s: %w", part.key, err)
		}
	}

	s.mu.Lock()
	s.cart = cart.New(st.cart)
	s.buyerOrders = st.buyerOrders
	s.sellerOrders = st.sellerOrders
	s.notifications = st.notifications
	s.mu.Unlock()
	return nil
}

func (s *Store) withLine(ctx context.Context, ref model.ItemRef, apply func(model.CartShop, model.CartLine) error) (model.Cart, error) {
	p, err := s.catalog.FindProduct(ctx, ref.ProductId)
	if err != nil {
		logx.WithContext(ctx).Infof("cart: product %s not found", ref.ProductId)
		return s.Cart(), ErrProductNotFound
	}
	shop, err := s.catalog.FindShop(ctx, p.StoreId)
	if err != nil {
		logx.WithContext(ctx).Infof("cart: shop %s of product %s not found", p.StoreId, p.Id)
		return s.Cart(), ErrShopNotFound
	}

	group := model.CartShop{
		StoreId:               shop.Id,
		StoreName:             shop.Name,
		DeliveryFee:           shop.DeliveryFee,
		FreeDeliveryThreshold: shop.FreeDeliveryThreshold,
	}
	line := model.CartLine{
		ProductId: p.Id,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Size:      ref.Size,
		Color:     ref.Color,
	}

	s.mu.Lock()
	err = apply(group, line)
	view := s.cart.View()
	var snap *state
	if err == nil {
		snap = s.cartSnapshotLocked()
	}
	s.mu.Unlock()

	if err != nil {
		return view, err
	}
	s.persist(ctx, snap)
	return view, nil
}

// notify must be called with s.mu held.
func (s *Store) notify(n model.Notification, at time.Time) {
	s.notifications = append(s.notifications, notify.Stamp(n, s.newId(), at))
}

func (s *Store) publish(ctx context.Context, topic, key string, event any) {
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logx.WithContext(ctx).Errorw("publish order event failed",
			logx.Field("topic", topic), logx.Field("key", key), logx.Field("err", err))
	}
}

func (s *Store) schedule(ctx context.Context, o *model.Order) {
	if o.ETA == nil {
		return
	}
	if err := s.scheduler.ScheduleEtaCheck(ctx, o.Id, *o.ETA); err != nil {
		logx.WithContext(ctx).Errorw("schedule eta check failed",
			logx.Field("orderId", o.Id), logx.Field("err", err))
	}
}

func findOrder(orders []*model.Order, id string) *model.Order {
	for _, o := range orders {
		if o.Id == id {
			return o
		}
	}
	return nil
}
