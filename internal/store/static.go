package store

import (
	"context"
	"fmt"
	"sort"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"
)

// StaticStore serves the fallback dataset when no database is available.
// Reads come from an immutable in-process list; every write fails with
// apperr.ErrBackendUnavailable.
type StaticStore struct {
	products []models.Product
}

// NewStaticStore creates a store over the fallback dataset
func NewStaticStore() *StaticStore {
	return NewStaticStoreWith(FallbackProducts())
}

// NewStaticStoreWith creates a store over the given products
func NewStaticStoreWith(products []models.Product) *StaticStore {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Capacity != sorted[j].Capacity {
			return sorted[i].Capacity < sorted[j].Capacity
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &StaticStore{products: sorted}
}

func (s *StaticStore) ListProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products := []models.Product{}
	for _, p := range s.products {
		if filter.Matches(p) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *StaticStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, apperr.ErrNotFound)
}

func (s *StaticStore) CreateProduct(context.Context, *models.Product) error {
	return fmt.Errorf("create product: %w", apperr.ErrBackendUnavailable)
}

func (s *StaticStore) UpdateProduct(_ context.Context, id string, patch models.ProductPatch) error {
	if patch.IsEmpty() {
		return apperr.ErrNoFieldsProvided
	}
	return fmt.Errorf("update product %s: %w", id, apperr.ErrBackendUnavailable)
}

func (s *StaticStore) DeleteProduct(_ context.Context, id string) error {
	return fmt.Errorf("delete product %s: %w", id, apperr.ErrBackendUnavailable)
}

func (s *StaticStore) CreateInquiry(context.Context, *models.Inquiry) error {
	return fmt.Errorf("create inquiry: %w", apperr.ErrBackendUnavailable)
}

func (s *StaticStore) ListInquiries(context.Context, string) ([]models.Inquiry, error) {
	return nil, fmt.Errorf("list inquiries: %w", apperr.ErrBackendUnavailable)
}

func (s *StaticStore) SetInquiryStatus(_ context.Context, id, _ string) error {
	return fmt.Errorf("update inquiry %s status: %w", id, apperr.ErrBackendUnavailable)
}

func (s *StaticStore) Stats(context.Context) (*models.Stats, error) {
	return nil, fmt.Errorf("stats: %w", apperr.ErrBackendUnavailable)
}

func (s *StaticStore) Close() error {
	return nil
}
