package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"catalog-service/internal/models"
	"catalog-service/internal/store"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:?_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.Migrate(context.Background(), db.DB, "sqlite", zap.NewNop()))
	return store.NewSQLStoreFromDB(db)
}

type recordingPublisher struct {
	mu        sync.Mutex
	submitted []*models.InquirySubmittedEvent
	statuses  []*models.InquiryStatusChangedEvent
	products  []*models.ProductChangedEvent
	err       error
}

func (p *recordingPublisher) PublishInquirySubmitted(_ context.Context, event *models.InquirySubmittedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = append(p.submitted, event)
	return p.err
}

func (p *recordingPublisher) PublishInquiryStatusChanged(_ context.Context, event *models.InquiryStatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, event)
	return p.err
}

func (p *recordingPublisher) PublishProductChanged(_ context.Context, event *models.ProductChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.products = append(p.products, event)
	return p.err
}

type fakeGuard struct {
	seen map[string]bool
	err  error
}

func (g *fakeGuard) Claim(_ context.Context, key string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.seen == nil {
		g.seen = map[string]bool{}
	}
	if g.seen[key] {
		return false, nil
	}
	g.seen[key] = true
	return true, nil
}

// lossyStore resolves products but fails to persist inquiries
type lossyStore struct {
	store.Store
}

func (lossyStore) CreateInquiry(context.Context, *models.Inquiry) error {
	return errors.New("disk full")
}
