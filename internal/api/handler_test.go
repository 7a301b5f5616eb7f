package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/service"
	"vastratrota-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store, *models.Product, *models.Customer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewStore()
	product := &models.Product{Name: "Kurti", Price: 200, DiscountPercent: 10, CostPerPiece: 50}
	s.CreateProduct(product)
	s.SetStock(product.ID, models.GlobalDealerID, 5)
	customer := &models.Customer{Name: "Asha", Mobile: "+919000000001", Location: "Pune"}
	s.CreateCustomer(customer)
	s.CreateUser(&models.User{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin})

	publisher := broker.NewEventPublisher(nil)
	notifier := service.NewNotifier()

	handler := NewHandler(
		service.NewAuthService(s, nil, time.Hour),
		service.NewCatalogService(s),
		service.NewDealerService(s, publisher, notifier, 7*24*time.Hour),
		service.NewInventoryService(s, nil, publisher, notifier, 10),
		service.NewSaleService(s, publisher, notifier),
		service.NewReportService(s),
	)

	router := gin.New()
	handler.SetupRoutes(router)
	return router, s, product, customer
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthEndpoint(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth", `{"username":"admin","password":"admin123"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	w = doJSON(router, http.MethodPost, "/api/auth", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecordSaleEndpoint(t *testing.T) {
	router, s, product, customer := newTestRouter(t)

	body := `{"salespersonId":"sales1","productId":"` + product.ID + `","customerId":"` + customer.ID +
		`","discount":10,"geolocation":{"lat":19.07,"lng":72.87}}`
	w := doJSON(router, http.MethodPost, "/api/sales", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Sale models.Sale `json:"sale"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 180.0, resp.Sale.Amount)

	entries := s.GetInventory(product.ID, models.GlobalDealerID)
	assert.Equal(t, 4, entries[0].Quantity)

	// missing fields
	w = doJSON(router, http.MethodPost, "/api/sales", `{"productId":"`+product.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown product
	w = doJSON(router, http.MethodPost, "/api/sales",
		`{"salespersonId":"sales1","productId":"missing","customerId":"`+customer.ID+`","geolocation":{"lat":0,"lng":0}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryEndpoint(t *testing.T) {
	router, _, product, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/inventory?productId="+product.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []models.InventoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)

	// remove more than held
	w = doJSON(router, http.MethodPost, "/api/inventory",
		`{"productId":"`+product.ID+`","quantity":6,"action":"remove"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// bad action
	w = doJSON(router, http.MethodPost, "/api/inventory",
		`{"productId":"`+product.ID+`","quantity":1,"action":"transfer"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown entry
	w = doJSON(router, http.MethodPost, "/api/inventory",
		`{"productId":"missing","quantity":1,"action":"add"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/inventory",
		`{"productId":"`+product.ID+`","quantity":5,"action":"remove"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/products",
		`{"name":"Saree","price":500,"discountPercent":5,"costPerPiece":200,"color":"Blue","quality":"High"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "BAR"+product.ID, product.Barcode)
	assert.Contains(t, product.QRPayload, product.ID)

	w = doJSON(router, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	w = doJSON(router, http.MethodDelete, "/api/products?id="+product.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/products", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDealerEndpoints(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/dealers",
		`{"name":"Dealer1","area":"Mumbai","stockLevels":{"p1":50}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var dealer models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dealer))
	assert.Equal(t, models.PaymentStatusPending, dealer.PaymentStatus)

	w = doJSON(router, http.MethodGet, "/api/dealers?id="+dealer.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/dealers?id=missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/dealers", `{"area":"Delhi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/dealers?id="+dealer.ID, `{"area":"Delhi"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/dealers?id="+dealer.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccountingEndpoint(t *testing.T) {
	router, _, product, customer := newTestRouter(t)

	body := `{"salespersonId":"sales1","productId":"` + product.ID + `","customerId":"` + customer.ID +
		`","discount":10,"geolocation":{"lat":0,"lng":0}}`
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/sales", body).Code)

	w := doJSON(router, http.MethodGet, "/api/accounting", "")
	require.Equal(t, http.StatusOK, w.Code)

	var report models.AccountingReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 180.0, report.TotalRevenue)
	assert.Equal(t, 50.0, report.TotalCosts)
	assert.Equal(t, 130.0, report.TotalProfits)
}
