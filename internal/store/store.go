package store

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store is the persistence boundary for products, inquiries and stats.
// Implementations are selected once at startup by Open.
type Store interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error

	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error)
	SetInquiryStatus(ctx context.Context, id, status string) error

	Stats(ctx context.Context) (*models.Stats, error)
	Close() error
}

// Backend names reported by Open
const (
	BackendSQL    = "sql"
	BackendStatic = "static"
)

// Options configures Open
type Options struct {
	Driver      string
	URL         string
	AutoMigrate bool
}

// Open picks the store implementation. Without a database URL, or when the
// database cannot be reached, the service runs in degraded mode on the
// fallback dataset.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (Store, string) {
	static := NewStaticStore()

	if opts.URL == "" {
		logger.Warn("No database configured, serving catalog from fallback dataset")
		return static, BackendStatic
	}

	sqlStore, err := NewSQLStore(opts.Driver, opts.URL)
	if err != nil {
		logger.Error("Database unavailable, serving catalog from fallback dataset",
			zap.String("driver", opts.Driver),
			zap.Error(err))
		return static, BackendStatic
	}

	if opts.AutoMigrate {
		if err := Migrate(ctx, sqlStore.GetDB().DB, opts.Driver, logger); err != nil {
			logger.Error("Migrations failed, serving catalog from fallback dataset", zap.Error(err))
			_ = sqlStore.Close()
			return static, BackendStatic
		}
	}

	return NewResilient(sqlStore, static, logger), BackendSQL
}

// SQLStore is the relational Store backed by sqlx
type SQLStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLStore connects to the database
func NewSQLStore(driver, databaseURL string) (*SQLStore, error) {
	db, err := sqlx.Connect(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewSQLStoreFromDB(db), nil
}

// NewSQLStoreFromDB wraps an existing connection
func NewSQLStoreFromDB(db *sqlx.DB) *SQLStore {
	return &SQLStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLStore) GetDB() *sqlx.DB {
	return s.db
}

// Stats counts products, inquiries and unhandled inquiries
func (s *SQLStore) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	if err := s.db.GetContext(ctx, &stats.ProductCount, "SELECT COUNT(*) FROM products"); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.InquiryCount, "SELECT COUNT(*) FROM inquiries"); err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.NewInquiryCount,
		s.db.Rebind("SELECT COUNT(*) FROM inquiries WHERE status = ?"), models.InquiryStatusNew); err != nil {
		return nil, fmt.Errorf("count new inquiries: %w", err)
	}

	return &stats, nil
}
