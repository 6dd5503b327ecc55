package store

import (
	"context"
	"errors"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// Resilient serves product reads from the fallback dataset when the primary
// store fails. Everything else is passed through unchanged.
type Resilient struct {
	Store
	fallback *StaticStore
	logger   *zap.Logger
}

// NewResilient wraps primary with a read fallback
func NewResilient(primary Store, fallback *StaticStore, logger *zap.Logger) *Resilient {
	return &Resilient{
		Store:    primary,
		fallback: fallback,
		logger:   logger,
	}
}

// ListProducts lists from the primary store, falling back on error
func (r *Resilient) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := r.Store.ListProducts(ctx, filter)
	if err == nil {
		return products, nil
	}

	r.logger.Warn("Product listing failed, serving fallback dataset", zap.Error(err))
	util.CatalogFallbackReadsTotal.WithLabelValues("list").Inc()
	return r.fallback.ListProducts(ctx, filter)
}

// GetProduct reads from the primary store. A missing product is not a failure.
func (r *Resilient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := r.Store.GetProduct(ctx, id)
	if err == nil || errors.Is(err, apperr.ErrNotFound) {
		return product, err
	}

	r.logger.Warn("Product lookup failed, serving fallback dataset",
		zap.String("product_id", id),
		zap.Error(err))
	util.CatalogFallbackReadsTotal.WithLabelValues("get").Inc()
	return r.fallback.GetProduct(ctx, id)
}
