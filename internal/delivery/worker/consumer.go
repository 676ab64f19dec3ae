package worker

import (
	"context"
	"log/slog"

	"hauspet/config"
	"hauspet/internal/delivery"
	"hauspet/internal/delivery/worker/handler"
	"hauspet/internal/domain/constants"
	"hauspet/internal/infra/pubsub"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type queueConsumer struct {
	logger   *slog.Logger
	consumer *pubsub.RabbitMQConsumer
	process  pubsub.EventHandler
	stopped  chan struct{}
}

// noopDelivery stands in when no pull-based queue is configured.
type noopDelivery struct{}

func (noopDelivery) Serve(context.Context) error { return nil }

// NewConsumer pulls alert events from RabbitMQ when that provider is configured.
// Other providers push over HTTP, so the consumer does nothing.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	ps := params.Cfg.PubSub
	if ps == nil || ps.Provider != constants.PubSubProviderRabbitMQ {
		return noopDelivery{}, nil
	}

	consumer, err := pubsub.NewRabbitMQConsumer(ps.RabbitMQURL, ps.QueueName, usecase.IsRetryable, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "create RabbitMQ consumer")
	}

	qc := &queueConsumer{
		logger:   params.Logger,
		consumer: consumer,
		process:  params.PushHandler.Process,
		stopped:  make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: qc.stop,
	})

	return qc, nil
}

// Serve consumes until the worker shuts down.
func (q *queueConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-q.stopped:
			cancel()
		case <-ctx.Done():
		}
	}()

	return errors.WithStack(q.consumer.Consume(ctx, q.process))
}

func (q *queueConsumer) stop(context.Context) error {
	close(q.stopped)
	q.logger.Info("Stopping RabbitMQ consumer")

	return q.consumer.Close()
}
