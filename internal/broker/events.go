package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventWriter is the transport EventPublisher writes to. *Producer implements it.
type EventWriter interface {
	PublishEvent(ctx context.Context, key string, event interface{}) error
}

// EventPublisher handles publishing catalog events
type EventPublisher struct {
	writer EventWriter
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(writer EventWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// PublishInquirySubmitted publishes InquirySubmitted event
func (ep *EventPublisher) PublishInquirySubmitted(ctx context.Context, event *models.InquirySubmittedEvent) error {
	return ep.writer.PublishEvent(ctx, "inquiry-"+event.InquiryID, event)
}

// PublishInquiryStatusChanged publishes InquiryStatusChanged event
func (ep *EventPublisher) PublishInquiryStatusChanged(ctx context.Context, event *models.InquiryStatusChangedEvent) error {
	return ep.writer.PublishEvent(ctx, "inquiry-"+event.InquiryID, event)
}

// PublishProductChanged publishes a ProductCreated, ProductUpdated or ProductDeleted event
func (ep *EventPublisher) PublishProductChanged(ctx context.Context, event *models.ProductChangedEvent) error {
	return ep.writer.PublishEvent(ctx, "product-"+event.ProductID, event)
}

// NopPublisher drops every event. Used when no Kafka brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishInquirySubmitted(context.Context, *models.InquirySubmittedEvent) error {
	return nil
}

func (NopPublisher) PublishInquiryStatusChanged(context.Context, *models.InquiryStatusChangedEvent) error {
	return nil
}

func (NopPublisher) PublishProductChanged(context.Context, *models.ProductChangedEvent) error {
	return nil
}

// EventHandler handles incoming events
type EventHandler struct {
	onInquirySubmitted func(context.Context, *models.InquirySubmittedEvent) error
	logger             *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(logger *zap.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

// OnInquirySubmitted registers a handler for InquirySubmitted events
func (eh *EventHandler) OnInquirySubmitted(handler func(context.Context, *models.InquirySubmittedEvent) error) {
	eh.onInquirySubmitted = handler
}

// HandleMessage routes messages to appropriate handlers. Event types without
// a registered handler are skipped.
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	eh.logger.Debug("Handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("event_id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeInquirySubmitted:
		if eh.onInquirySubmitted != nil {
			var event models.InquirySubmittedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal InquirySubmitted event: %w", err)
			}
			return eh.onInquirySubmitted(ctx, &event)
		}
	}

	return nil
}
