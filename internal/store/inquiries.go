package store

import (
	"context"
	"fmt"

	"catalog-service/internal/models"
)

const inquiryColumns = "id, product_id, product_name, name, email, phone, message, status, created_at"

// CreateInquiry inserts a new inquiry
func (s *SQLStore) CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (` + inquiryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, s.db.Rebind(query),
		inq.ID, inq.ProductID, inq.ProductName, inq.Name, inq.Email,
		inq.Phone, inq.Message, inq.Status, inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns inquiries, newest first. Empty status or "all" lists every inquiry.
func (s *SQLStore) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	query := "SELECT " + inquiryColumns + " FROM inquiries"
	args := []interface{}{}

	if status != "" && status != "all" {
		query += " WHERE status = ?"
		args = append(args, status)
	}

	query += " ORDER BY created_at DESC, id DESC"

	inquiries := []models.Inquiry{}
	if err := s.db.SelectContext(ctx, &inquiries, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}

// SetInquiryStatus overwrites the status of an inquiry
func (s *SQLStore) SetInquiryStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind("UPDATE inquiries SET status = ? WHERE id = ?"), status, id)
	if err != nil {
		return fmt.Errorf("update inquiry %s status: %w", id, err)
	}
	return nil
}
