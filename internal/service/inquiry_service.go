package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InquiryAcknowledgement is returned for every accepted inquiry
const InquiryAcknowledgement = "Dziękujemy za zapytanie! Skontaktujemy się w ciągu 24h."

// IdempotencyGuard reports whether a submission key is seen for the first time
type IdempotencyGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
}

// InquiryService handles customer inquiries and their admin review
type InquiryService struct {
	store     store.Store
	publisher EventPublisher
	guard     IdempotencyGuard
	logger    *zap.Logger
	now       func() time.Time
}

// NewInquiryService creates a new inquiry service. guard may be nil.
func NewInquiryService(store store.Store, publisher EventPublisher, guard IdempotencyGuard) *InquiryService {
	return &InquiryService{
		store:     store,
		publisher: publisher,
		guard:     guard,
		logger:    util.GetLogger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitInquiryRequest is the public inquiry form
type SubmitInquiryRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	ProductID      string `json:"productId"`
	Message        string `json:"message,omitempty"`
	IdempotencyKey string `json:"-"`
}

// SubmitInquiryResponse is the acknowledgement shown to the customer
type SubmitInquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitInquiry validates and records a customer inquiry.
//
// Intake is best effort: once the request is valid and the product exists the
// customer is always acknowledged, even when the inquiry cannot be stored.
// The failure is logged and counted instead.
func (s *InquiryService) SubmitInquiry(ctx context.Context, req *SubmitInquiryRequest) (*SubmitInquiryResponse, error) {
	ctx, span := util.StartSpan(ctx, "InquiryService.SubmitInquiry")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	productID := strings.TrimSpace(req.ProductID)

	if name == "" || email == "" || productID == "" {
		util.InquiriesRejectedTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: name, email and product are required", apperr.ErrValidation)
	}

	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			util.InquiriesRejectedTotal.WithLabelValues("product_not_found").Inc()
			return nil, fmt.Errorf("%w: product not found", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	ack := &SubmitInquiryResponse{Success: true, Message: InquiryAcknowledgement}

	if s.isDuplicate(ctx, req.IdempotencyKey) {
		util.InquiryDuplicatesTotal.Inc()
		s.logger.Info("Duplicate inquiry submission", zap.String("idempotency_key", req.IdempotencyKey))
		return ack, nil
	}

	inquiry := &models.Inquiry{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Name:        name,
		Email:       email,
		Phone:       optional(req.Phone),
		Message:     optional(req.Message),
		Status:      models.InquiryStatusNew,
		CreatedAt:   s.now(),
	}

	start := time.Now()
	err = s.store.CreateInquiry(ctx, inquiry)
	util.StoreOperationLatency.WithLabelValues("create_inquiry").Observe(time.Since(start).Seconds())

	util.InquiriesSubmittedTotal.Inc()
	if err != nil {
		util.InquiriesPersistFailedTotal.Inc()
		s.logger.Error("Inquiry acknowledged but not stored",
			zap.String("product_id", product.ID),
			zap.String("email", email),
			zap.Error(err))
		return ack, nil
	}

	s.logger.Info("Inquiry stored",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("product_id", product.ID))

	event := &models.InquirySubmittedEvent{
		BaseEvent:   newBaseEvent(models.EventTypeInquirySubmitted),
		InquiryID:   inquiry.ID,
		ProductID:   inquiry.ProductID,
		ProductName: inquiry.ProductName,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Phone:       strings.TrimSpace(req.Phone),
	}
	publish(ctx, s.logger, event.EventType, func(ctx context.Context) error {
		return s.publisher.PublishInquirySubmitted(ctx, event)
	})

	return ack, nil
}

// isDuplicate claims key with the guard. Guard failures let the inquiry through.
func (s *InquiryService) isDuplicate(ctx context.Context, key string) bool {
	key = strings.TrimSpace(key)
	if s.guard == nil || key == "" {
		return false
	}

	first, err := s.guard.Claim(ctx, key)
	if err != nil {
		s.logger.Warn("Idempotency check failed, accepting inquiry", zap.Error(err))
		return false
	}
	return !first
}

// ListInquiries returns inquiries newest first. Empty status or "all" lists every inquiry.
func (s *InquiryService) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	ctx, span := util.StartSpan(ctx, "InquiryService.ListInquiries")
	defer span.End()

	if status != "" && status != "all" && !models.IsValidInquiryStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperr.ErrInvalidStatus, status)
	}

	defer observeStore("list_inquiries")()
	return s.store.ListInquiries(ctx, status)
}

// SetInquiryStatus overwrites the status of an inquiry. Any status may follow any other.
func (s *InquiryService) SetInquiryStatus(ctx context.Context, id, status string) error {
	ctx, span := util.StartSpan(ctx, "InquiryService.SetInquiryStatus")
	defer span.End()

	if !models.IsValidInquiryStatus(status) {
		return fmt.Errorf("%w: %q", apperr.ErrInvalidStatus, status)
	}

	defer observeStore("set_inquiry_status")()
	if err := s.store.SetInquiryStatus(ctx, id, status); err != nil {
		return err
	}

	util.InquiryStatusChangesTotal.WithLabelValues(status).Inc()
	s.logger.Info("Inquiry status changed", zap.String("inquiry_id", id), zap.String("status", status))

	event := &models.InquiryStatusChangedEvent{
		BaseEvent: newBaseEvent(models.EventTypeInquiryStatusChanged),
		InquiryID: id,
		Status:    status,
	}
	publish(ctx, s.logger, event.EventType, func(ctx context.Context) error {
		return s.publisher.PublishInquiryStatusChanged(ctx, event)
	})
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
