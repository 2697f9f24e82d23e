package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
)

// AMQPQueue publishes and consumes JSON messages on durable RabbitMQ queues.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
	log  *zap.Logger

	declared map[string]bool
}

// DialAMQP connects to the broker and opens a channel.
func DialAMQP(url string, log *zap.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	return &AMQPQueue{conn: conn, ch: ch, log: log, declared: map[string]bool{}}, nil
}

func (q *AMQPQueue) declare(topic string) error {
	if q.declared[topic] {
		return nil
	}
	_, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	q.declared[topic] = true
	return nil
}

// Publish encodes payload as JSON and publishes it as a persistent message.
func (q *AMQPQueue) Publish(ctx context.Context, topic string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.declare(topic); err != nil {
		return err
	}

	err = q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// Consume delivers messages from topic to handler until ctx is cancelled or
// the broker closes the channel.
func (q *AMQPQueue) Consume(ctx context.Context, topic string, handler Handler) error {
	q.mu.Lock()
	err := q.declare(topic)
	q.mu.Unlock()
	if err != nil {
		return err
	}

	msgs, err := q.ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			herr := handler(ctx, d.Body)
			if ackErr := settle(d, herr, q.log); ackErr != nil {
				q.log.Error("failed to settle delivery", zap.String("message_id", d.MessageId), zap.Error(ackErr))
			}
		}
	}
}

// Close closes the channel and the connection.
func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	chErr := q.ch.Close()
	connErr := q.conn.Close()
	return errors.Join(chErr, connErr)
}

type outcome int

const (
	ack outcome = iota
	drop
	requeue
)

// decide picks the settlement for a delivery. A store failure gets one
// redelivery; invalid messages are never retried.
func decide(err error, redelivered bool) outcome {
	switch {
	case err == nil:
		return ack
	case errors.Is(err, appErrors.ErrInvalidMessage):
		return drop
	case redelivered:
		return drop
	default:
		return requeue
	}
}

func settle(d amqp.Delivery, err error, log *zap.Logger) error {
	switch decide(err, d.Redelivered) {
	case ack:
		return d.Ack(false)
	case requeue:
		log.Warn("requeueing message", zap.String("message_id", d.MessageId), zap.Error(err))
		return d.Nack(false, true)
	default:
		log.Error("dropping message", zap.String("message_id", d.MessageId), zap.Error(err))
		return d.Nack(false, false)
	}
}
