package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/dal/snapshot"
	"Lookbook/app/services/storefront/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	topic string
	key   string
	event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{topic, key, event})
	return p.err
}

type fakeScheduler struct {
	scheduled map[string]time.Time
}

func (s *fakeScheduler) ScheduleEtaCheck(_ context.Context, orderId string, eta time.Time) error {
	s.scheduled[orderId] = eta
	return nil
}

type failingSnapshots struct{}

func (failingSnapshots) Save(context.Context, string, string) error { return errors.New("down") }
func (failingSnapshots) Load(context.Context, string) (string, error) {
	return "", errors.New("down")
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func testCatalog() catalog.CatalogModel {
	return catalog.NewCatalogModel(
		[]catalog.Product{
			{Id: "dress", Name: "Dress", Price: 50000, Kind: catalog.KindDress, StoreId: "a"},
			{Id: "shoes", Name: "Shoes", Price: 20000, Kind: catalog.KindFootwear, StoreId: "a"},
			{Id: "bag", Name: "Bag", Price: 10000, Kind: catalog.KindAccessories, StoreId: "b"},
			{Id: "orphan", Name: "Orphan", Price: 1, Kind: catalog.KindJewelry, StoreId: "missing"},
		},
		[]catalog.Shop{
			{Id: "a", Name: "Shop A", DeliveryFee: 15000, FreeDeliveryThreshold: 200000},
			{Id: "b", Name: "Shop B", DeliveryFee: 0},
		},
	)
}

func newTestStore(c StoreConf, opts ...Option) (*Store, *clock) {
	clk := &clock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	seq, num := 0, 0
	base := []Option{
		WithClock(clk.Now),
		WithIdGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
		WithNumberGenerator(func() string {
			num++
			return fmt.Sprintf("A-%06d", num)
		}),
	}
	if c.BuyerId == "" {
		c.BuyerId = "guest"
	}
	if c.ServiceFee.Mode == "" {
		c.ServiceFee = model.ServiceFeeConf{Mode: "percent", Percent: 2.5, ApplyPerStore: true}
	}
	return NewStore(c, testCatalog(), append(base, opts...)...), clk
}

func ref(id string) model.ItemRef {
	return model.ItemRef{ProductId: id}
}

func TestAddItemThenRemoveToZero(t *testing.T) {
	s, _ := newTestStore(StoreConf{})
	ctx := context.Background()

	view, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	require.Len(t, view.Shops, 1)
	assert.Equal(t, "Shop B", view.Shops[0].StoreName)

	view, err = s.AddItem(ctx, ref("bag"), -1)
	require.NoError(t, err)
	assert.Empty(t, view.Shops)
	assert.Zero(t, view.Count)
}

func TestAddItemUnknownProductOrShop(t *testing.T) {
	s, _ := newTestStore(StoreConf{})
	ctx := context.Background()

	_, err := s.AddItem(ctx, ref("nope"), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	view, err := s.AddItem(ctx, ref("orphan"), 1)
	assert.ErrorIs(t, err, ErrShopNotFound)
	assert.Empty(t, view.Shops)
}

func TestCartOperations(t *testing.T) {
	s, _ := newTestStore(StoreConf{})
	ctx := context.Background()

	_, err := s.Increase(ctx, ref("dress"), 2)
	require.NoError(t, err)
	_, err = s.Increase(ctx, ref("dress"), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = s.AddItem(ctx, model.ItemRef{ProductId: "shoes", Size: "38", Color: &model.Color{Name: "black"}}, 1)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, model.ItemRef{ProductId: "shoes", Size: "38", Color: &model.Color{Name: "black"}}, 1)
	require.NoError(t, err)

	view, err := s.ChangeQty(ctx, "dress", "a", -5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.Count)

	view, err = s.Adjust(ctx, model.ItemRef{ProductId: "shoes", Size: "38", Color: &model.Color{Name: "black"}}, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Count)

	require.Len(t, view.Shops, 1)
	assert.Equal(t, int64(50000), view.Shops[0].Subtotal())
	assert.Equal(t, int64(150000), view.Shops[0].RemainingForFreeDelivery())

	view = s.RemoveItem(ctx, "dress", "a")
	assert.Empty(t, view.Shops)

	_, err = s.AddItem(ctx, ref("bag"), 3)
	require.NoError(t, err)
	s.Clear(ctx)
	assert.Zero(t, s.Cart().Count)
}

func TestCheckout(t *testing.T) {
	pub := &fakePublisher{}
	sch := &fakeScheduler{scheduled: map[string]time.Time{}}
	s, clk := newTestStore(StoreConf{}, WithPublisher(pub), WithScheduler(sch))
	ctx := context.Background()

	_, err := s.AddItem(ctx, ref("dress"), 2)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)

	res, err := s.Checkout(ctx, "", "Main st. 1")
	require.NoError(t, err)

	assert.Zero(t, s.Cart().Count)
	assert.Empty(t, s.Cart().Shops)

	orders := s.Orders("guest")
	require.Len(t, orders, 2)
	assert.Len(t, res.OrderIds, 2)
	assert.NotEqual(t, res.OrderIds[0], res.OrderIds[1])
	assert.Equal(t, res.OrderIds[0], res.OrderId)
	assert.Equal(t, "A-000001", res.Number)

	first, err := s.Order(res.OrderId)
	require.NoError(t, err)
	assert.Equal(t, "a", first.StoreId)
	assert.Equal(t, model.StatusNew, first.Status)
	assert.Equal(t, "Main st. 1", first.Address)
	assert.Equal(t, model.Fees{Subtotal: 100000, DeliveryFee: 15000, ServiceFee: 2875, Total: 117875}, first.Fees)
	require.Len(t, first.Timeline, 1)
	assert.Equal(t, "Order created", first.Timeline[0].Note)
	require.NotNil(t, first.ETA)
	assert.Equal(t, clk.now.Add(24*time.Hour), *first.ETA)

	assert.Len(t, s.SellerOrders(""), 2)
	assert.Len(t, s.SellerOrders("b"), 1)
	assert.Len(t, s.Notifications(biz.AudienceBuyer), 2)
	assert.Len(t, s.Notifications(biz.AudienceSeller), 2)

	require.Len(t, pub.events, 2)
	assert.Equal(t, biz.TopicOrderCreated, pub.events[0].topic)
	assert.Len(t, sch.scheduled, 2)

	_, err = s.Checkout(ctx, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutCopiesItems(t *testing.T) {
	s, _ := newTestStore(StoreConf{})
	ctx := context.Background()
	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	res, err := s.Checkout(ctx, "b1", "")
	require.NoError(t, err)

	o, err := s.Order(res.OrderId)
	require.NoError(t, err)
	o.Items[0].Quantity = 42

	again, err := s.Order(res.OrderId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Items[0].Quantity)
	assert.Equal(t, "b1", again.BuyerId)
}

func TestSetStatusKeepsCopiesInSync(t *testing.T) {
	pub := &fakePublisher{}
	s, clk := newTestStore(StoreConf{}, WithPublisher(pub))
	ctx := context.Background()
	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	res, err := s.Checkout(ctx, "", "")
	require.NoError(t, err)

	statuses := []model.Status{model.StatusPrep, model.StatusShipped, model.StatusNew, model.StatusDelivered}
	for i, st := range statuses {
		clk.now = clk.now.Add(time.Hour)
		o, err := s.SetStatus(ctx, res.OrderId, st)
		require.NoError(t, err)
		assert.Len(t, o.Timeline, i+2)
		assert.Equal(t, st, o.Timeline[len(o.Timeline)-1].Status)
	}

	buyer, err := s.Order(res.OrderId)
	require.NoError(t, err)
	seller := s.SellerOrders("b")[0]
	assert.Equal(t, buyer.Timeline, seller.Timeline)
	assert.Equal(t, model.StatusDelivered, seller.Status)
	assert.Nil(t, buyer.ETA)
	assert.Equal(t, model.StatusNew, buyer.Timeline[0].Status)

	assert.Len(t, s.Notifications(biz.AudienceBuyer), 1+len(statuses))
	last := pub.events[len(pub.events)-1]
	assert.Equal(t, biz.TopicOrderStatusChanged, last.topic)

	_, err = s.SetStatus(ctx, "missing", model.StatusPrep)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.SetStatus(ctx, res.OrderId, model.Status("lost"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStrictTransitions(t *testing.T) {
	s, _ := newTestStore(StoreConf{StrictTransitions: true})
	ctx := context.Background()
	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	res, err := s.Checkout(ctx, "", "")
	require.NoError(t, err)

	_, err = s.SetStatus(ctx, res.OrderId, model.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.SetStatus(ctx, res.OrderId, model.StatusPrep)
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, res.OrderId, model.StatusCancel)
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, res.OrderId, model.StatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	o, err := s.Order(res.OrderId)
	require.NoError(t, err)
	assert.Len(t, o.Timeline, 3)
}

func TestNotificationsReadState(t *testing.T) {
	s, _ := newTestStore(StoreConf{Locale: "ru"})
	ctx := context.Background()
	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	_, err = s.Checkout(ctx, "", "")
	require.NoError(t, err)

	buyer := s.Notifications(biz.AudienceBuyer)
	require.Len(t, buyer, 1)
	assert.Equal(t, "Заказ оформлен", buyer[0].Title)
	assert.Equal(t, 1, s.UnreadCount(biz.AudienceBuyer))

	require.NoError(t, s.MarkRead(ctx, buyer[0].Id))
	assert.Zero(t, s.UnreadCount(biz.AudienceBuyer))
	assert.Equal(t, 1, s.UnreadCount(biz.AudienceSeller))
	assert.ErrorIs(t, s.MarkRead(ctx, "nope"), ErrNotificationNotFound)
}

func TestCheckOverdue(t *testing.T) {
	s, clk := newTestStore(StoreConf{})
	ctx := context.Background()
	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	res, err := s.Checkout(ctx, "", "")
	require.NoError(t, err)

	require.NoError(t, s.CheckOverdue(ctx, res.OrderId))
	assert.Len(t, s.Notifications(biz.AudienceBuyer), 1)

	clk.now = clk.now.Add(25 * time.Hour)
	require.NoError(t, s.CheckOverdue(ctx, res.OrderId))
	feed := s.Notifications(biz.AudienceBuyer)
	require.Len(t, feed, 2)
	assert.Equal(t, model.NotificationOrderOverdue, feed[0].Type)

	assert.NoError(t, s.CheckOverdue(ctx, "missing"))
}

func TestSnapshotsRestore(t *testing.T) {
	store := snapshot.NewMemorySnapshotModel()
	s, _ := newTestStore(StoreConf{}, WithSnapshots(store))
	ctx := context.Background()

	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	res, err := s.Checkout(ctx, "", "")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, ref("dress"), 2)
	require.NoError(t, err)

	restored, _ := newTestStore(StoreConf{}, WithSnapshots(store))
	require.NoError(t, restored.Restore(ctx))

	assert.Equal(t, int64(2), restored.Cart().Count)
	o, err := restored.Order(res.OrderId)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, o.Status)
	assert.Len(t, restored.SellerOrders(""), 1)
	assert.Len(t, restored.Notifications(biz.AudienceSeller), 1)
}

// gatedSnapshots blocks the first Save until release is closed.
type gatedSnapshots struct {
	snapshot.SnapshotModel
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedSnapshots) Save(ctx context.Context, key, value string) error {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.SnapshotModel.Save(ctx, key, value)
}

func TestSnapshotsKeepNewestCartWhenSavesOverlap(t *testing.T) {
	gated := &gatedSnapshots{
		SnapshotModel: snapshot.NewMemorySnapshotModel(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	s, _ := newTestStore(StoreConf{}, WithSnapshots(gated))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := s.AddItem(ctx, ref("dress"), 1)
		done <- err
	}()
	<-gated.entered

	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	close(gated.release)
	require.NoError(t, <-done)

	assert.Equal(t, int64(2), s.Cart().Count)
	restored, _ := newTestStore(StoreConf{}, WithSnapshots(gated.SnapshotModel))
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, int64(2), restored.Cart().Count)
	assert.Len(t, restored.Cart().Shops, 2)
}

func TestSnapshotFailuresAreNotFatal(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	s, _ := newTestStore(StoreConf{}, WithSnapshots(failingSnapshots{}), WithPublisher(pub))
	ctx := context.Background()

	_, err := s.AddItem(ctx, ref("bag"), 1)
	require.NoError(t, err)
	_, err = s.Checkout(ctx, "", "")
	require.NoError(t, err)

	assert.Error(t, s.Restore(ctx))
}
