package handler

import (
	"net/http"

	cart "Lookbook/app/api/storefront/internal/handler/cart"
	look "Lookbook/app/api/storefront/internal/handler/look"
	notification "Lookbook/app/api/storefront/internal/handler/notification"
	order "Lookbook/app/api/storefront/internal/handler/order"
	"Lookbook/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/looks",
					Handler: look.GenerateLookHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/looks/batch",
					Handler: look.GenerateLookBatchHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/looks",
					Handler: look.ListLooksHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/cart",
					Handler: cart.GetCartHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/items",
					Handler: cart.AddCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/cart/items",
					Handler: cart.UpdateCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/cart/items",
					Handler: cart.RemoveCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/cart",
					Handler: cart.ClearCartHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/checkout",
					Handler: order.CheckoutHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/orders",
					Handler: order.ListOrdersHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/orders/:id/status",
					Handler: order.SetOrderStatusHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/notifications",
					Handler: notification.ListNotificationsHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/notifications/:id/read",
					Handler: notification.MarkReadHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)
}
