package notifier

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes notifications to a durable queue on a RabbitMQ
// broker. The connection is dialed per publish; the caller treats failures
// as non-fatal, so a dropped broker never takes a request down with it.
type AMQPNotifier struct {
	url   string
	queue string
}

func NewAMQPNotifier(url, queue string) *AMQPNotifier {
	return &AMQPNotifier{
		url:   url,
		queue: queue,
	}
}

func (a *AMQPNotifier) Notify(ctx context.Context, n Notification) error {
	conn, err := amqp.Dial(a.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	// Idempotent declare; durable so messages survive broker restarts.
	_, err = ch.QueueDeclare(a.queue, true, false, false, false, nil)
	if err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",      // default exchange
		a.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Headers:      amqp.Table{"email": n.Recipient},
			Body:         body,
		},
	)
}
