package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"hauspet/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const rabbitPublishTimeout = 5 * time.Second

// rabbitConn owns one connection and channel bound to a durable queue.
type rabbitConn struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func dialRabbit(url, queueName string) (*rabbitConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	// Idempotent: creates the queue on first use.
	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queueName)
	}

	return &rabbitConn{conn: conn, channel: ch, queue: q}, nil
}

func (c *rabbitConn) close() error {
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			firstErr = errors.Wrap(err, "close RabbitMQ channel")
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) && firstErr == nil {
			firstErr = errors.Wrap(err, "close RabbitMQ connection")
		}
	}

	return firstErr
}

// rabbitMQPublisher implements EventPublisher on a RabbitMQ work queue.
type rabbitMQPublisher struct {
	mu     sync.Mutex // amqp channels are not safe for concurrent publishes
	rc     *rabbitConn
	logger *slog.Logger
}

// NewRabbitMQPublisher connects and declares the alert queue
func NewRabbitMQPublisher(url, queueName string, logger *slog.Logger) (service.EventPublisher, error) {
	rc, err := dialRabbit(url, queueName)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{rc: rc, logger: logger}, nil
}

func (p *rabbitMQPublisher) PublishHealthAlert(ctx context.Context, event *service.HealthAlertEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	publishCtx, cancel := context.WithTimeout(ctx, rabbitPublishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.rc.channel.PublishWithContext(publishCtx,
		"",              // default exchange
		p.rc.queue.Name, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     strconv.FormatUint(uint64(event.AlertID), 10),
			CorrelationId: event.RequestID,
			Timestamp:     time.Now().UTC(),
			Headers:       headers,
			Body:          body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "failed to publish to RabbitMQ")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Event published",
		slog.String("queue", p.rc.queue.Name),
		slog.Uint64("alert_id", uint64(event.AlertID)),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.rc.close()
}

// EventHandler processes one decoded health alert event.
type EventHandler func(ctx context.Context, event *service.HealthAlertEvent, requestID string) error

const (
	defaultRequeueBackoff = 500 * time.Millisecond
	maxRequeueBackoff     = 30 * time.Second
)

// RabbitMQConsumer delivers queued health alert events to a handler.
type RabbitMQConsumer struct {
	rc          *rabbitConn
	logger      *slog.Logger
	shouldRetry func(error) bool

	// Requeue delay doubles with each consecutive retryable failure and resets on success.
	backoff    time.Duration
	maxBackoff time.Duration
	failures   int
}

// NewRabbitMQConsumer connects to the queue. shouldRetry decides whether a failed event is requeued.
func NewRabbitMQConsumer(url, queueName string, shouldRetry func(error) bool, logger *slog.Logger) (*RabbitMQConsumer, error) {
	rc, err := dialRabbit(url, queueName)
	if err != nil {
		return nil, err
	}
	// One unacknowledged message at a time per worker.
	if err := rc.channel.Qos(1, 0, false); err != nil {
		rc.close()

		return nil, errors.Wrap(err, "failed to set RabbitMQ prefetch")
	}

	return &RabbitMQConsumer{
		rc:          rc,
		logger:      logger,
		shouldRetry: shouldRetry,
		backoff:     defaultRequeueBackoff,
		maxBackoff:  maxRequeueBackoff,
	}, nil
}

// Consume blocks until ctx is cancelled or the channel closes.
func (c *RabbitMQConsumer) Consume(ctx context.Context, handle EventHandler) error {
	msgs, err := c.rc.channel.ConsumeWithContext(ctx,
		c.rc.queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "failed to register RabbitMQ consumer")
	}

	c.logger.Info("[RabbitMQ] Consumer started", slog.String("queue", c.rc.queue.Name))

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("RabbitMQ delivery channel closed")
			}
			c.handleDelivery(ctx, msg, handle)
		}
	}
}

func (c *RabbitMQConsumer) handleDelivery(ctx context.Context, msg amqp.Delivery, handle EventHandler) {
	var event service.HealthAlertEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		c.logger.Error("[RabbitMQ] Dropping malformed message", slog.Any("error", err))
		// Malformed payloads would fail forever; drop them.
		_ = msg.Nack(false, false)

		return
	}

	requestID := msg.CorrelationId
	if requestID == "" {
		requestID = event.RequestID
	}

	if err := handle(ctx, &event, requestID); err != nil {
		requeue := c.shouldRetry != nil && c.shouldRetry(err)
		var delay time.Duration
		if requeue {
			c.failures++
			delay = c.requeueDelay()
		}
		c.logger.Error("[RabbitMQ] Failed to process event",
			slog.Uint64("alert_id", uint64(event.AlertID)),
			slog.Bool("requeue", requeue),
			slog.Duration("requeue_delay", delay),
			slog.Any("error", err),
		)
		if requeue {
			// With prefetch 1 a requeued message comes straight back, so wait first.
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
			timer.Stop()
		}
		_ = msg.Nack(false, requeue)

		return
	}
	c.failures = 0

	if err := msg.Ack(false); err != nil {
		c.logger.Warn("[RabbitMQ] Failed to ack message", slog.Any("error", err))
	}
}

func (c *RabbitMQConsumer) requeueDelay() time.Duration {
	delay := c.backoff
	for i := 1; i < c.failures && delay < c.maxBackoff; i++ {
		delay *= 2
	}

	return min(delay, c.maxBackoff)
}

// Close releases the consumer's channel and connection.
func (c *RabbitMQConsumer) Close() error {
	return c.rc.close()
}
