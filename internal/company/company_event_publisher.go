package company

import (
	"context"
	"encoding/json"
	"strconv"

	"go-reestr/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -destination=mock/company_event_publisher_mock.go -package=mock . EventPublisher
type EventPublisher interface {
	PublishCompanyAdded(ctx context.Context, event events.CompanyAddedEvent) error
}

// MessageWriter is satisfied by *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishCompanyAdded(context.Context, events.CompanyAddedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishCompanyAdded(
	ctx context.Context,
	event events.CompanyAddedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.CompanyAddedTopic,
		Key:   []byte(strconv.FormatInt(event.CompanyID, 10)),
		Value: payload,
	})
}
