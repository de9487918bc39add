package mq

import (
	"context"
	"encoding/json"
	"time"

	"Lookbook/app/common/consts/biz"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// Scheduler arranges a check once an order's ETA has passed.
type Scheduler interface {
	ScheduleEtaCheck(ctx context.Context, orderId string, eta time.Time) error
}

type NoopScheduler struct{}

func (NoopScheduler) ScheduleEtaCheck(context.Context, string, time.Time) error { return nil }

type AsynqScheduler struct {
	client *asynq.Client
	queue  string
}

func NewAsynqScheduler(client *asynq.Client, queue string) *AsynqScheduler {
	if queue == "" {
		queue = "default"
	}
	return &AsynqScheduler{client: client, queue: queue}
}

func (s *AsynqScheduler) ScheduleEtaCheck(ctx context.Context, orderId string, eta time.Time) error {
	payload, err := json.Marshal(EtaCheckPayload{OrderId: orderId, ETA: eta})
	if err != nil {
		return err
	}
	task := asynq.NewTask(biz.TaskOrderEtaCheck, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(eta), asynq.Queue(s.queue))
	return err
}

// NewAsynqMux routes order:eta_check tasks to check.
func NewAsynqMux(check func(ctx context.Context, orderId string) error) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(biz.TaskOrderEtaCheck, func(ctx context.Context, t *asynq.Task) error {
		var p EtaCheckPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logx.WithContext(ctx).Errorf("decode eta check payload: %v", err)
			return asynq.SkipRetry
		}
		return check(ctx, p.OrderId)
	})
	return mux
}
