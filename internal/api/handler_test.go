package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/config"
	"catalog-service/internal/broker"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/todo"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAdminKey = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:?_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, store.Migrate(context.Background(), db.DB, "sqlite", zap.NewNop()))
	return store.NewSQLStoreFromDB(db)
}

func newRouter(t *testing.T, st store.Store, backend, adminKey string) *gin.Engine {
	t.Helper()

	publisher := broker.NopPublisher{}
	h := NewHandler(
		service.NewCatalogService(st, publisher),
		service.NewInquiryService(st, publisher, nil),
		todo.NewStore(),
		config.AdminConfig{APIKey: adminKey, Header: "X-API-Key"},
		backend,
	)

	router := gin.New()
	h.SetupRoutes(router)
	return router
}

func do(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminHeaders() map[string]string {
	return map[string]string{"X-API-Key": testAdminKey}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthAndReady(t *testing.T) {
	router := newRouter(t, store.NewStaticStore(), store.BackendStatic, testAdminKey)

	w := do(router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "static", decode(t, w)["backend"])
}

func TestListProductsFilters(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	cases := []struct {
		query string
		count int
	}{
		{"", 6},
		{"?category=all", 6},
		{"?category=light", 2},
		{"?category=heavy&inStock=true", 1},
		{"?inStock=true", 4},
		{"?inStock=yes", 6},
		{"?category=unknown", 0},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := do(router, http.MethodGet, "/api/products"+tc.query, nil, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Products []struct {
					Capacity int `json:"capacity"`
				} `json:"products"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Products)
			assert.Len(t, body.Products, tc.count)
			for i := 1; i < len(body.Products); i++ {
				assert.LessOrEqual(t, body.Products[i-1].Capacity, body.Products[i].Capacity)
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodGet, "/api/products/aquatrans-3000", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	product := decode(t, w)["product"].(map[string]interface{})
	assert.Equal(t, "AquaTrans 3000", product["name"])
	assert.Contains(t, product, "specs")

	w = do(router, http.MethodGet, "/api/products/nonexistent", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])
}

func TestSubmitInquiry(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodPost, "/api/inquiry", map[string]string{
		"name":      "Jan Nowak",
		"email":     "jan@example.com",
		"productId": "aquatrans-5000",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, service.InquiryAcknowledgement, body["message"])

	w = do(router, http.MethodGet, "/api/admin/inquiries", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	inquiries := decode(t, w)["inquiries"].([]interface{})
	require.Len(t, inquiries, 1)
	inquiry := inquiries[0].(map[string]interface{})
	assert.Equal(t, "AquaTrans 5000", inquiry["productName"])
	assert.Equal(t, "new", inquiry["status"])
}

func TestSubmitInquiryRejected(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodPost, "/api/inquiry", map[string]string{
		"name":      "Jan Nowak",
		"productId": "aquatrans-5000",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/inquiry", map[string]string{
		"name":      "Jan Nowak",
		"email":     "jan@example.com",
		"productId": "nonexistent",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/inquiry", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/admin/inquiries", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["inquiries"])
}

func TestSubmitInquiryDegradedStillAcknowledged(t *testing.T) {
	router := newRouter(t, store.NewStaticStore(), store.BackendStatic, testAdminKey)

	w := do(router, http.MethodPost, "/api/inquiry", map[string]string{
		"name":      "Jan Nowak",
		"email":     "jan@example.com",
		"productId": "aquatrans-3000",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.InquiryAcknowledgement, decode(t, w)["message"])
}

func TestAdminRequiresKey(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/inquiries"},
		{http.MethodPatch, "/api/admin/inquiries/abc"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodPatch, "/api/admin/products/aquatrans-3000"},
		{http.MethodDelete, "/api/admin/products/aquatrans-3000"},
		{http.MethodGet, "/api/admin/stats"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := do(router, r.method, r.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Unauthorized", decode(t, w)["error"])

			w = do(router, r.method, r.path, nil, map[string]string{"X-API-Key": "wrong"})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	// the rejected delete must not have run
	w := do(router, http.MethodGet, "/api/products/aquatrans-3000", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRejectsEverythingWithoutConfiguredKey(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, "")

	w := do(router, http.MethodGet, "/api/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodGet, "/api/admin/stats", nil, map[string]string{"X-API-Key": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminInquiryStatus(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodPost, "/api/inquiry", map[string]string{
		"name":      "Jan Nowak",
		"email":     "jan@example.com",
		"productId": "aquatrans-8000",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/admin/inquiries", nil, adminHeaders())
	inquiries := decode(t, w)["inquiries"].([]interface{})
	require.Len(t, inquiries, 1)
	id := inquiries[0].(map[string]interface{})["id"].(string)

	w = do(router, http.MethodPatch, "/api/admin/inquiries/"+id, map[string]string{"status": "done"}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPatch, "/api/admin/inquiries/"+id, map[string]string{"status": "in_progress"}, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = do(router, http.MethodGet, "/api/admin/inquiries?status=in_progress", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["inquiries"], 1)

	w = do(router, http.MethodGet, "/api/admin/inquiries?status=new", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["inquiries"])

	w = do(router, http.MethodGet, "/api/admin/inquiries?status=pending", nil, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":     "AquaTrans 7000",
		"capacity": 7000,
		"price":    199000,
		"weight":   9200,
		"category": "medium",
		"inStock":  true,
	}, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)
	assert.Equal(t, true, created["success"])
	id := created["id"].(string)

	w = do(router, http.MethodGet, "/api/products/"+id, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	product := decode(t, w)["product"].(map[string]interface{})
	assert.Equal(t, "/images/tanker-placeholder.jpg", product["image"])

	w = do(router, http.MethodPatch, "/api/admin/products/"+id, map[string]interface{}{"price": 205000}, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/products/"+id, nil, nil)
	product = decode(t, w)["product"].(map[string]interface{})
	assert.EqualValues(t, 205000, product["price"])
	assert.Equal(t, "AquaTrans 7000", product["name"])

	w = do(router, http.MethodDelete, "/api/admin/products/"+id, nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminProductValidation(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":     "Broken",
		"capacity": 0,
		"weight":   100,
		"category": "medium",
	}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/admin/products", map[string]interface{}{
		"name":     "Broken",
		"capacity": 1000,
		"weight":   100,
		"category": "giant",
	}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPatch, "/api/admin/products/aquatrans-3000", map[string]interface{}{}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", decode(t, w)["error"])

	w = do(router, http.MethodPatch, "/api/admin/products/aquatrans-3000", map[string]interface{}{"capacity": -5}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStats(t *testing.T) {
	router := newRouter(t, newTestStore(t), store.BackendSQL, testAdminKey)

	w := do(router, http.MethodGet, "/api/admin/stats", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 6, stats["products"])
	assert.EqualValues(t, 0, stats["inquiries"])
	assert.EqualValues(t, 0, stats["newInquiries"])
}

func TestAdminDegraded(t *testing.T) {
	router := newRouter(t, store.NewStaticStore(), store.BackendStatic, testAdminKey)

	w := do(router, http.MethodGet, "/api/admin/stats", nil, adminHeaders())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodGet, "/api/admin/inquiries", nil, adminHeaders())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodDelete, "/api/admin/products/aquatrans-3000", nil, adminHeaders())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTodos(t *testing.T) {
	router := newRouter(t, store.NewStaticStore(), store.BackendStatic, testAdminKey)

	w := do(router, http.MethodPost, "/api/todos", map[string]string{"title": "  check pump  "}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)["todo"].(map[string]interface{})
	assert.Equal(t, "check pump", item["title"])
	assert.Equal(t, false, item["completed"])
	id := item["id"].(string)

	w = do(router, http.MethodPost, "/api/todos", map[string]string{"title": " "}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPatch, "/api/todos/"+id, map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPatch, "/api/todos/"+id, map[string]bool{"completed": true}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["todo"].(map[string]interface{})["completed"])

	w = do(router, http.MethodPatch, "/api/todos/missing", map[string]bool{"completed": true}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/api/todos", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["todos"], 1)

	w = do(router, http.MethodDelete, "/api/todos/"+id, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(router, http.MethodDelete, "/api/todos/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	router := newRouter(t, store.NewStaticStore(), store.BackendStatic, testAdminKey)

	w := do(router, http.MethodOptions, "/api/admin/stats", nil, map[string]string{
		"Origin":                         "https://tankers.example",
		"Access-Control-Request-Method":  http.MethodGet,
		"Access-Control-Request-Headers": "X-API-Key",
	})
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-api-key")

	w = do(router, http.MethodGet, "/api/products", nil, map[string]string{"Origin": "https://tankers.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
