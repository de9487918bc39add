package storefront

import (
	"Lookbook/app/services/storefront/internal/mq"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// NewPublisher returns a kafka publisher when brokers are configured and a
// no-op one otherwise. The returned func closes the writer.
func NewPublisher(c KafkaConf) (Publisher, func()) {
	if len(c.Brokers) == 0 {
		return mq.NoopPublisher{}, func() {}
	}
	p := mq.NewKafkaPublisher(c.Brokers)
	return p, func() {
		if err := p.Close(); err != nil {
			logx.Errorw("close kafka writer failed", logx.Field("err", err))
		}
	}
}

// NewScheduler returns an asynq backed ETA scheduler when Addr is set.
func NewScheduler(c AsynqConf) (Scheduler, func()) {
	if c.Addr == "" {
		return mq.NoopScheduler{}, func() {}
	}
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: c.Addr})
	return mq.NewAsynqScheduler(client, ""), func() {
		if err := client.Close(); err != nil {
			logx.Errorw("close asynq client failed", logx.Field("err", err))
		}
	}
}

// StartEtaWorker runs the asynq server that handles order:eta_check tasks and
// returns its stop func. It does nothing without an Addr.
func StartEtaWorker(c AsynqConf, s *Store) func() {
	if c.Addr == "" {
		return func() {}
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: c.Addr}, asynq.Config{
		Concurrency: c.Concurrency,
		Queues:      c.Queues,
	})
	mux := mq.NewAsynqMux(s.CheckOverdue)
	threading.GoSafe(func() {
		if err := srv.Run(mux); err != nil {
			logx.Errorw("asynq server stopped", logx.Field("err", err))
		}
	})
	return srv.Shutdown
}
