package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends lifecycle events to RabbitMQ. An empty URL disables it;
// Publish then becomes a no-op so callers never need to branch.
type Publisher struct {
	url string
}

func NewPublisher(amqpURL string) *Publisher { return &Publisher{url: amqpURL} }

// Publish marshals the event and delivers it to the durable status-changed
// queue. Errors are logged and returned; the caller is expected to ignore
// them since the triggering state change has already committed.
func (p *Publisher) Publish(ctx context.Context, ev UserStatusChangedEvent) error {
	if p == nil || p.url == "" {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("events: dial broker failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("events: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so events survive broker restarts
	if _, err := ch.QueueDeclare(StatusChangedQueue, true, false, false, false, nil); err != nil {
		log.Printf("events: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", StatusChangedQueue, false, false, pub); err != nil {
		log.Printf("events: publish failed: %v", err)
		return err
	}
	return nil
}
