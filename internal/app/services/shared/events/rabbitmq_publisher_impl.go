package events

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	mu       sync.Mutex
	Channel  *amqp091.Channel
	Exchange string
}

// NewRabbitMQPublisher declares a topic exchange and publishes appointment
// events to it, routed by event type.
func NewRabbitMQPublisher(connection *amqp091.Connection, exchange string) (contracts.AppointmentEventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt.Time,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, p.Exchange, event.Type, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}
	return nil
}
