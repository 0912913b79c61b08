package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"journey_poster/internal/domain"
)

const (
	ActionPublished = "published"
	ActionSkipped   = "skipped"
)

// RabbitMQ fans journey events out to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "events"),
	}, nil
}

// JourneyMessage is the wire format of one event. Post is set for
// "published" events only.
type JourneyMessage struct {
	Action    string             `json:"action"`
	Day       int                `json:"day"`
	Topic     string             `json:"topic"`
	Post      *domain.PostedItem `json:"post,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

func (r *RabbitMQ) PublishPosted(ctx context.Context, item *domain.PostedItem) error {
	return r.publish(ctx, JourneyMessage{
		Action:    ActionPublished,
		Day:       item.Day,
		Topic:     item.Topic,
		Post:      item,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) PublishSkipped(ctx context.Context, day int, topic string) error {
	return r.publish(ctx, JourneyMessage{
		Action:    ActionSkipped,
		Day:       day,
		Topic:     topic,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) publish(ctx context.Context, msg JourneyMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published event",
		"day", msg.Day,
		"action", msg.Action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
