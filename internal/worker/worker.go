package worker

import (
	"context"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// LeadNotifier reports new customer inquiries to the sales team
type LeadNotifier struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewLeadNotifier creates a new lead notifier
func NewLeadNotifier(consumer *broker.Consumer, logger *zap.Logger) *LeadNotifier {
	n := &LeadNotifier{
		consumer:     consumer,
		eventHandler: broker.NewEventHandler(logger),
		logger:       logger,
	}
	n.eventHandler.OnInquirySubmitted(n.HandleInquirySubmitted)
	return n
}

// Start starts the worker
func (n *LeadNotifier) Start(ctx context.Context) error {
	n.logger.Info("Starting lead notifier")
	return n.consumer.StartConsuming(ctx, n.eventHandler.HandleMessage)
}

// Stop stops the worker
func (n *LeadNotifier) Stop() error {
	n.logger.Info("Stopping lead notifier")
	return n.consumer.Close()
}

// HandleInquirySubmitted announces a new lead
func (n *LeadNotifier) HandleInquirySubmitted(_ context.Context, event *models.InquirySubmittedEvent) error {
	fields := []zap.Field{
		zap.String("inquiry_id", event.InquiryID),
		zap.String("product_id", event.ProductID),
		zap.String("product_name", event.ProductName),
		zap.String("customer", event.Name),
		zap.String("email", event.Email),
		zap.Time("submitted_at", event.Timestamp),
	}
	if event.Phone != "" {
		fields = append(fields, zap.String("phone", event.Phone))
	}

	n.logger.Info("New lead", fields...)
	util.LeadsNotifiedTotal.Inc()
	return nil
}
