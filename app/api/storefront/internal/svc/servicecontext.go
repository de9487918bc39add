package svc

import (
	"context"

	"Lookbook/app/api/storefront/internal/config"
	"Lookbook/app/common/middleware"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/dal/snapshot"
	"Lookbook/app/services/lookgen"
	"Lookbook/app/services/storefront"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config            config.Config
	SessionMiddleware rest.Middleware

	Catalog catalog.CatalogModel
	Looks   *lookgen.Service
	Store   *storefront.Store

	closers []func()
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	products := catalog.MustLoadCatalogModel(c.CatalogFile)

	var snapshots snapshot.SnapshotModel
	if c.RedisConf.Host != "" {
		snapshots = snapshot.MustNewRedisSnapshotModel(c.RedisConf)
	} else {
		snapshots = snapshot.NewMemorySnapshotModel()
	}

	publisher, closePublisher := storefront.NewPublisher(c.Store.Kafka)
	scheduler, closeScheduler := storefront.NewScheduler(c.Store.Asynq)

	return &ServiceContext{
		Config:            c,
		SessionMiddleware: middleware.NewSessionMiddleware(c.Store.BuyerId).Handle,
		Catalog:           products,
		Looks:             lookgen.NewService(c.Look, products, lookgen.WithSnapshots(snapshots)),
		Store: storefront.NewStore(c.Store, products,
			storefront.WithSnapshots(snapshots),
			storefront.WithPublisher(publisher),
			storefront.WithScheduler(scheduler),
		),
		closers: []func(){closePublisher, closeScheduler},
	}
}

// Restore reloads looks, cart, orders and notifications saved by a previous run.
func (sc *ServiceContext) Restore(ctx context.Context) error {
	if err := sc.Looks.Restore(ctx); err != nil {
		return err
	}
	return sc.Store.Restore(ctx)
}

func (sc *ServiceContext) Close() {
	for _, fn := range sc.closers {
		fn()
	}
}
