package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher delivers domain events to collaborators.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
	Close() error
}

type rabbitPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *zap.Logger
}

// NewRabbitPublisher dials url and declares each queue as durable.
func NewRabbitPublisher(url string, queues []string, log *zap.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, queue := range queues {
		if _, err := channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // args
		); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", queue, err)
		}
	}

	return &rabbitPublisher{
		conn:    conn,
		channel: channel,
		log:     log.With(zap.String("broker", "rabbitmq")),
	}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		"",         // default exchange
		routingKey, // routing key = queue name
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("Failed to publish message",
			zap.Error(err),
			zap.String("routing_key", routingKey),
		)
		return fmt.Errorf("publish to %s: %w", routingKey, err)
	}

	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

type logPublisher struct {
	log *zap.Logger
}

// NewLogPublisher records events in the log instead of a broker.
func NewLogPublisher(log *zap.Logger) Publisher {
	return &logPublisher{log: log.With(zap.String("broker", "log"))}
}

func (p *logPublisher) Publish(_ context.Context, routingKey string, message any) error {
	p.log.Info("Event not forwarded, broker disabled",
		zap.String("routing_key", routingKey),
		zap.Any("message", message),
	)
	return nil
}

func (p *logPublisher) Close() error { return nil }
