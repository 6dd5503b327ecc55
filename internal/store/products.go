package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog-service/internal/apperr"
	"catalog-service/internal/models"
)

const productColumns = `id, name, capacity, price, description,
	material AS "specs.material", pump_type AS "specs.pump_type",
	chassis AS "specs.chassis", weight AS "specs.weight",
	category, image, in_stock`

// ListProducts returns products matching filter, ascending by capacity
func (s *SQLStore) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE 1=1"
	args := []interface{}{}

	if filter.Category != "" && filter.Category != models.CategoryAll {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	if filter.InStockOnly {
		query += " AND in_stock = ?"
		args = append(args, true)
	}

	query += " ORDER BY capacity ASC, id ASC"

	products := []models.Product{}
	if err := s.db.SelectContext(ctx, &products, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *SQLStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		s.db.Rebind("SELECT "+productColumns+" FROM products WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &product, nil
}

// CreateProduct inserts a new product
func (s *SQLStore) CreateProduct(ctx context.Context, p *models.Product) error {
	now := s.now()
	query := `
		INSERT INTO products (id, name, capacity, price, description, material, pump_type,
			chassis, weight, category, image, in_stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, s.db.Rebind(query),
		p.ID, p.Name, p.Capacity, p.Price, p.Description,
		p.Specs.Material, p.Specs.PumpType, p.Specs.Chassis, p.Specs.Weight,
		p.Category, p.Image, p.InStock, now, now)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// UpdateProduct writes only the fields present in patch and stamps updated_at
func (s *SQLStore) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error {
	if patch.IsEmpty() {
		return apperr.ErrNoFieldsProvided
	}

	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Capacity != nil {
		set("capacity", *patch.Capacity)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Material != nil {
		set("material", *patch.Material)
	}
	if patch.PumpType != nil {
		set("pump_type", *patch.PumpType)
	}
	if patch.Chassis != nil {
		set("chassis", *patch.Chassis)
	}
	if patch.Weight != nil {
		set("weight", *patch.Weight)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	if patch.InStock != nil {
		set("in_stock", *patch.InStock)
	}
	set("updated_at", s.now())
	args = append(args, id)

	query := "UPDATE products SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	return nil
}

// DeleteProduct removes a product. Inquiries referencing it are kept.
func (s *SQLStore) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM products WHERE id = ?"), id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
