package service

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publishTimeout bounds how long a request waits on the event bus
const publishTimeout = 2 * time.Second

// EventPublisher publishes catalog events. broker.EventPublisher and
// broker.NopPublisher implement it.
type EventPublisher interface {
	PublishInquirySubmitted(ctx context.Context, event *models.InquirySubmittedEvent) error
	PublishInquiryStatusChanged(ctx context.Context, event *models.InquiryStatusChangedEvent) error
	PublishProductChanged(ctx context.Context, event *models.ProductChangedEvent) error
}

// CatalogService handles product reads, admin product writes and stats
type CatalogService struct {
	store     store.Store
	publisher EventPublisher
	logger    *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store store.Store, publisher EventPublisher) *CatalogService {
	return &CatalogService{
		store:     store,
		publisher: publisher,
		logger:    util.GetLogger(),
	}
}

// CreateProductRequest is the admin payload for a new product. Specs are flat,
// matching the admin form.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Price       int64  `json:"price" binding:"gte=0"`
	Description string `json:"description"`
	Material    string `json:"material"`
	PumpType    string `json:"pumpType"`
	Chassis     string `json:"chassis"`
	Weight      int    `json:"weight" binding:"required,gt=0"`
	Category    string `json:"category" binding:"required,oneof=light medium heavy"`
	Image       string `json:"image"`
	InStock     bool   `json:"inStock"`
}

// ListProducts returns products matching filter ordered by capacity
func (s *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()
	defer observeStore("list_products")()

	return s.store.ListProducts(ctx, filter)
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProduct")
	defer span.End()
	defer observeStore("get_product")()

	return s.store.GetProduct(ctx, id)
}

// CreateProduct stores a new product and returns its ID
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (string, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.CreateProduct")
	defer span.End()
	defer observeStore("create_product")()

	image := req.Image
	if image == "" {
		image = models.DefaultProductImage
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Description: req.Description,
		Specs: models.ProductSpecs{
			Material: req.Material,
			PumpType: req.PumpType,
			Chassis:  req.Chassis,
			Weight:   req.Weight,
		},
		Category: req.Category,
		Image:    image,
		InStock:  req.InStock,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		util.ProductWritesTotal.WithLabelValues("create", "error").Inc()
		return "", err
	}

	util.ProductWritesTotal.WithLabelValues("create", "ok").Inc()
	s.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
	s.publishProductChanged(ctx, models.EventTypeProductCreated, product.ID, product.Name)

	return product.ID, nil
}

// UpdateProduct applies a partial update. An empty patch is rejected before
// reaching the store.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error {
	ctx, span := util.StartSpan(ctx, "CatalogService.UpdateProduct")
	defer span.End()

	if patch.IsEmpty() {
		return apperr.ErrNoFieldsProvided
	}

	defer observeStore("update_product")()
	if err := s.store.UpdateProduct(ctx, id, patch); err != nil {
		util.ProductWritesTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	util.ProductWritesTotal.WithLabelValues("update", "ok").Inc()
	s.logger.Info("Product updated", zap.String("product_id", id))

	name := ""
	if patch.Name != nil {
		name = *patch.Name
	}
	s.publishProductChanged(ctx, models.EventTypeProductUpdated, id, name)
	return nil
}

// DeleteProduct removes a product. Inquiries referencing it are kept.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "CatalogService.DeleteProduct")
	defer span.End()
	defer observeStore("delete_product")()

	if err := s.store.DeleteProduct(ctx, id); err != nil {
		util.ProductWritesTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	util.ProductWritesTotal.WithLabelValues("delete", "ok").Inc()
	s.logger.Info("Product deleted", zap.String("product_id", id))
	s.publishProductChanged(ctx, models.EventTypeProductDeleted, id, "")
	return nil
}

// Stats returns the admin dashboard counters
func (s *CatalogService) Stats(ctx context.Context) (*models.Stats, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Stats")
	defer span.End()
	defer observeStore("stats")()

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

func (s *CatalogService) publishProductChanged(ctx context.Context, eventType, productID, name string) {
	event := &models.ProductChangedEvent{
		BaseEvent: newBaseEvent(eventType),
		ProductID: productID,
		Name:      name,
	}

	publish(ctx, s.logger, eventType, func(ctx context.Context) error {
		return s.publisher.PublishProductChanged(ctx, event)
	})
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}

// publish runs fn with a bounded context. Failures are logged, never returned.
func publish(ctx context.Context, logger *zap.Logger, eventType string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		util.EventsPublishFailedTotal.WithLabelValues(eventType).Inc()
		logger.Error("Failed to publish event", zap.String("event_type", eventType), zap.Error(err))
	}
}

func observeStore(operation string) func() {
	start := time.Now()
	return func() {
		util.StoreOperationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
