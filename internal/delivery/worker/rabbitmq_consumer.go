package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"pos/config"
	"pos/internal/delivery"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/delivery/worker/handler"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

type disposition int

const (
	dispositionAck disposition = iota
	dispositionRequeue
	dispositionDeadLetter
)

// RabbitMQConsumerParams holds dependencies for the RabbitMQ consumer
type RabbitMQConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	JournalUC usecase.JournalUsecase
}

type rabbitMQConsumer struct {
	cfg       config.RabbitMQConfig
	logger    *slog.Logger
	journalUC usecase.JournalUsecase

	mu       sync.Mutex
	conn     *amqp.Connection
	stopping bool
}

// NewRabbitMQConsumer creates a delivery that journals settlement events from a RabbitMQ queue
func NewRabbitMQConsumer(params RabbitMQConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.RabbitMQ == nil || params.Cfg.RabbitMQ.URL == "" {
		return nil, errors.New("rabbitmq.url is required for the rabbitmq consumer")
	}

	c := &rabbitMQConsumer{
		cfg:       *params.Cfg.RabbitMQ,
		logger:    params.Logger,
		journalUC: params.JournalUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve declares the queue topology and consumes until the connection is closed
func (c *rabbitMQConsumer) Serve(ctx context.Context) error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}

	c.mu.Lock()
	if c.stopping {
		c.mu.Unlock()

		return errors.WithStack(conn.Close())
	}
	c.conn = conn
	c.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open rabbitmq channel")
	}

	msgs, err := c.declareAndConsume(ch)
	if err != nil {
		return err
	}

	c.logger.Info("Starting RabbitMQ settlement consumer",
		slog.String("queue", c.cfg.Queue),
		slog.Int("prefetch", c.cfg.Prefetch),
	)

	for d := range msgs {
		c.settle(d, c.process(ctx, d))
	}

	c.mu.Lock()
	stopping := c.stopping
	c.mu.Unlock()
	if stopping {
		return nil
	}

	return errors.New("rabbitmq delivery channel closed unexpectedly")
}

func (c *rabbitMQConsumer) declareAndConsume(ch *amqp.Channel) (<-chan amqp.Delivery, error) {
	if err := ch.ExchangeDeclare(c.cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, errors.Wrapf(err, "failed to declare exchange %s", c.cfg.Exchange)
	}

	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrapf(err, "failed to declare queue %s", c.cfg.Queue)
	}

	routingKey := c.cfg.RoutingKey
	if routingKey == "" {
		routingKey = "orders.settled"
	}
	if err := ch.QueueBind(c.cfg.Queue, routingKey, c.cfg.Exchange, false, nil); err != nil {
		return nil, errors.Wrapf(err, "failed to bind queue %s", c.cfg.Queue)
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "failed to set prefetch")
	}

	msgs, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume queue %s", c.cfg.Queue)
	}

	return msgs, nil
}

// process journals one delivery and decides how it is acknowledged
func (c *rabbitMQConsumer) process(ctx context.Context, d amqp.Delivery) disposition {
	var event service.SettlementEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Error("[Worker] Failed to parse settlement event",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)

		return dispositionDeadLetter
	}

	requestID := deliveryRequestID(d, &event)
	ctx, reqLogger := deliverycontext.WithScope(ctx, requestID, c.logger)

	if err := c.journalUC.RecordSettlement(ctx, &event); err != nil {
		retryable := handler.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to journal settlement",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return dispositionRequeue
		}

		return dispositionAck
	}

	return dispositionAck
}

func (c *rabbitMQConsumer) settle(d amqp.Delivery, disp disposition) {
	var err error
	switch disp {
	case dispositionAck:
		err = d.Ack(false)
	case dispositionRequeue:
		err = d.Nack(false, true)
	case dispositionDeadLetter:
		err = d.Nack(false, false)
	}
	if err != nil {
		c.logger.Warn("[Worker] Failed to acknowledge delivery",
			slog.Uint64("delivery_tag", d.DeliveryTag),
			slog.Any("error", err),
		)
	}
}

func (c *rabbitMQConsumer) stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopping = true
	c.logger.Info("Shutting down RabbitMQ settlement consumer")

	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// deliveryRequestID prefers the request_id header, then the correlation id, then the event payload
func deliveryRequestID(d amqp.Delivery, event *service.SettlementEvent) string {
	if requestID, ok := d.Headers["request_id"].(string); ok && requestID != "" {
		return requestID
	}
	if d.CorrelationId != "" {
		return d.CorrelationId
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return uuid.New().String()
}
