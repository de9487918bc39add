// Package notify renders order notifications and timeline notes in the
// configured locale.
package notify

import (
	"fmt"
	"time"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/services/storefront/model"
)

const (
	LocaleEn = "en"
	LocaleRu = "ru"
)

type texts struct {
	orderCreated    string
	orderCreatedSub string
	newOrder        string
	newOrderSub     string
	statusTitle     string
	overdueTitle    string
	overdueSub      string
	createdNote     string
	statusNote      string
	statusLabels    map[model.Status]string
	statusSubtitles map[model.Status]string
	timeLayout      string
}

var catalogs = map[string]texts{
	LocaleEn: {
		orderCreated:    "Order placed",
		orderCreatedSub: "Order %s from %s, total %d",
		newOrder:        "New order",
		newOrderSub:     "Order %s: %d item(s), total %d",
		statusTitle:     "Order %s: %s",
		overdueTitle:    "Order %s is running late",
		overdueSub:      "It was expected by %s",
		createdNote:     "Order created",
		statusNote:      "Status changed to %s",
		statusLabels: map[model.Status]string{
			model.StatusNew:       "new",
			model.StatusPrep:      "preparing",
			model.StatusShipped:   "shipped",
			model.StatusDelivered: "delivered",
			model.StatusCancel:    "cancelled",
			model.StatusReturn:    "returned",
		},
		statusSubtitles: map[model.Status]string{
			model.StatusNew:       "The order has been received",
			model.StatusPrep:      "The seller is preparing your order",
			model.StatusShipped:   "Your order is on its way",
			model.StatusDelivered: "Your order has been delivered",
			model.StatusCancel:    "Your order was cancelled",
			model.StatusReturn:    "The return has been registered",
		},
		timeLayout: "Jan 2, 15:04",
	},
	LocaleRu: {
		orderCreated:    "Заказ оформлен",
		orderCreatedSub: "Заказ %s в магазине %s, сумма %d",
		newOrder:        "Новый заказ",
		newOrderSub:     "Заказ %s: товаров %d, сумма %d",
		statusTitle:     "Заказ %s: %s",
		overdueTitle:    "Заказ %s задерживается",
		overdueSub:      "Ожидался к %s",
		createdNote:     "Заказ создан",
		statusNote:      "Статус изменён: %s",
		statusLabels: map[model.Status]string{
			model.StatusNew:       "новый",
			model.StatusPrep:      "собирается",
			model.StatusShipped:   "в пути",
			model.StatusDelivered: "доставлен",
			model.StatusCancel:    "отменён",
			model.StatusReturn:    "возврат",
		},
		statusSubtitles: map[model.Status]string{
			model.StatusNew:       "Заказ принят",
			model.StatusPrep:      "Продавец собирает ваш заказ",
			model.StatusShipped:   "Заказ передан в доставку",
			model.StatusDelivered: "Заказ доставлен",
			model.StatusCancel:    "Заказ отменён",
			model.StatusReturn:    "Возврат оформлен",
		},
		timeLayout: "02.01 15:04",
	},
}

type Localizer struct {
	t texts
}

// NewLocalizer falls back to English for unknown locales.
func NewLocalizer(locale string) *Localizer {
	t, ok := catalogs[locale]
	if !ok {
		t = catalogs[LocaleEn]
	}
	return &Localizer{t: t}
}

func (l *Localizer) Label(s model.Status) string {
	if v, ok := l.t.statusLabels[s]; ok {
		return v
	}
	return string(s)
}

func (l *Localizer) CreatedNote() string {
	return l.t.createdNote
}

func (l *Localizer) StatusNote(s model.Status) string {
	return fmt.Sprintf(l.t.statusNote, l.Label(s))
}

// OrderCreated is the buyer side notification of a new order.
func (l *Localizer) OrderCreated(o *model.Order) model.Notification {
	return model.Notification{
		Type:        model.NotificationOrderCreated,
		Title:       l.t.orderCreated,
		Subtitle:    fmt.Sprintf(l.t.orderCreatedSub, o.Number, o.StoreName, o.Fees.Total),
		Audience:    biz.AudienceBuyer,
		OrderId:     o.Id,
		OrderNumber: o.Number,
	}
}

// NewOrder is the seller side notification of a new order.
func (l *Localizer) NewOrder(o *model.Order) model.Notification {
	var count int64
	for _, it := range o.Items {
		count += it.Quantity
	}
	return model.Notification{
		Type:        model.NotificationNewOrder,
		Title:       l.t.newOrder,
		Subtitle:    fmt.Sprintf(l.t.newOrderSub, o.Number, count, o.Fees.Total),
		Audience:    biz.AudienceSeller,
		OrderId:     o.Id,
		OrderNumber: o.Number,
	}
}

func (l *Localizer) StatusChanged(o *model.Order) model.Notification {
	return model.Notification{
		Type:        model.NotificationOrderStatus,
		Title:       fmt.Sprintf(l.t.statusTitle, o.Number, l.Label(o.Status)),
		Subtitle:    l.t.statusSubtitles[o.Status],
		Audience:    biz.AudienceBuyer,
		OrderId:     o.Id,
		OrderNumber: o.Number,
	}
}

func (l *Localizer) Overdue(o *model.Order) model.Notification {
	var expected string
	if o.ETA != nil {
		expected = o.ETA.Format(l.t.timeLayout)
	}
	return model.Notification{
		Type:        model.NotificationOrderOverdue,
		Title:       fmt.Sprintf(l.t.overdueTitle, o.Number),
		Subtitle:    fmt.Sprintf(l.t.overdueSub, expected),
		Audience:    biz.AudienceBuyer,
		OrderId:     o.Id,
		OrderNumber: o.Number,
	}
}

// Stamp fills the id and creation time of a rendered notification.
func Stamp(n model.Notification, id string, at time.Time) model.Notification {
	n.Id = id
	n.CreatedAt = at
	return n
}
