package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pos/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const rabbitMQPublishTimeout = 5 * time.Second

// rabbitMQPublisher implements EventPublisher on a RabbitMQ topic exchange with publisher confirms
type rabbitMQPublisher struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	acks       <-chan amqp.Confirmation
	exchange   string
	routingKey string
	logger     *slog.Logger

	// Confirms arrive in publish order, so publishes are serialized.
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the exchange
func NewRabbitMQPublisher(url, exchange, routingKey string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to enable publisher confirms")
	}

	if routingKey == "" {
		routingKey = "orders.settled"
	}

	logger.Info("RabbitMQ publisher initialized",
		slog.String("exchange", exchange),
		slog.String("routing_key", routingKey),
	)

	return &rabbitMQPublisher{
		conn:       conn,
		ch:         ch,
		acks:       ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

// PublishSettlementEvent publishes a persistent message and waits for the broker ack
func (p *rabbitMQPublisher) PublishSettlementEvent(ctx context.Context, event *service.SettlementEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range settlementAttributes(event) {
		headers[k] = v
	}

	ctx, cancel := context.WithTimeout(ctx, rabbitMQPublishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     event.DraftID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish settlement event")
	}

	select {
	case conf, ok := <-p.acks:
		if !ok {
			return errors.New("rabbitmq channel closed before confirm")
		}
		if !conf.Ack {
			return errors.New("publish NACK from broker")
		}
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	p.logger.Info("[RabbitMQ] Event published successfully",
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Errorf("failed to close rabbitmq publisher: %v", errs)
	}

	return nil
}
