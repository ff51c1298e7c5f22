package helpers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// openQueue dials url and declares queue as durable. The caller owns both handles.
func openQueue(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

// RabbitPublisher publishes persistent JSON messages to one queue via the default exchange.
type RabbitPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, ch, err := openQueue(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishJSON tags each message with a fresh id so consumers can correlate redeliveries in logs.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, "", p.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
}

// ConsumeQueue opens a manual-ack consumer. prefetch bounds the unacked deliveries in flight.
func ConsumeQueue(url, queue string, prefetch int) (*amqp.Connection, *amqp.Channel, <-chan amqp.Delivery, error) {
	conn, ch, err := openQueue(url, queue)
	if err != nil {
		return nil, nil, nil, err
	}
	fail := func(err error) (*amqp.Connection, *amqp.Channel, <-chan amqp.Delivery, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, nil, err
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail(err)
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fail(err)
	}
	return conn, ch, msgs, nil
}
