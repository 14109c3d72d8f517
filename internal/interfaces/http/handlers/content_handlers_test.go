package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	"makershop.backend/internal/interfaces/http/middleware"
	"makershop.backend/internal/usecases"
)

type contentTestEnv struct {
	router *gin.Engine
	userID uuid.UUID
	shop   *entities.Shop
}

func newContentTestEnv(t *testing.T) *contentTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	shops := newShopRepoStub()
	userID := uuid.New()
	shop := &entities.Shop{
		ID:        uuid.New(),
		Name:      "Sweet Treats",
		Slug:      "sweet-treats",
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := shops.Create(t.Context(), shop); err != nil {
		t.Fatalf("seed shop: %v", err)
	}

	uc := usecases.NewContentUsecase(shops, newProductRepoStub(), newCategoryRepoStub(), newHoursRepoStub())
	productHandler := NewProductHandler(uc)
	categoryHandler := NewCategoryHandler(uc)
	hoursHandler := NewHoursHandler(uc)

	r := gin.New()
	withUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
	r.POST("/products", withUser, productHandler.CreateProduct)
	r.GET("/products", withUser, productHandler.ListProducts)
	r.PUT("/products/:id", withUser, productHandler.UpdateProduct)
	r.DELETE("/products/:id", withUser, productHandler.DeleteProduct)
	r.POST("/categories", withUser, categoryHandler.CreateCategory)
	r.GET("/categories", withUser, categoryHandler.ListCategories)
	r.PUT("/categories/:id", withUser, categoryHandler.UpdateCategory)
	r.DELETE("/categories/:id", withUser, categoryHandler.DeleteCategory)
	r.PUT("/hours", withUser, hoursHandler.ReplaceHours)
	r.GET("/hours", withUser, hoursHandler.ListHours)

	return &contentTestEnv{router: r, userID: userID, shop: shop}
}

func (e *contentTestEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestProductHandler_CRUD(t *testing.T) {
	env := newContentTestEnv(t)

	w := env.do(t, http.MethodPost, "/products", `{"name":"Sourdough","priceCents":850,"isAvailable":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal product: %v", err)
	}
	if created.ShopID != env.shop.ID {
		t.Fatalf("product not attached to shop: %+v", created)
	}

	w = env.do(t, http.MethodPut, "/products/"+created.ID.String(), `{"name":"Rye Sourdough","priceCents":950,"isAvailable":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Rye Sourdough")) {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = env.do(t, http.MethodDelete, "/products/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	w = env.do(t, http.MethodPut, "/products/"+created.ID.String(), `{"name":"Gone","priceCents":1,"isAvailable":true}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update deleted: expected 404, got %d", w.Code)
	}

	w = env.do(t, http.MethodPut, "/products/not-a-uuid", `{"name":"X","priceCents":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", w.Code)
	}
}

func TestCategoryHandler_CRUD(t *testing.T) {
	env := newContentTestEnv(t)

	w := env.do(t, http.MethodPost, "/categories", `{"name":"Breads","position":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.Category
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal category: %v", err)
	}

	w = env.do(t, http.MethodPut, "/categories/"+created.ID.String(), `{"name":"Baked Goods","position":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/categories", "")
	if !bytes.Contains(w.Body.Bytes(), []byte("Baked Goods")) {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = env.do(t, http.MethodDelete, "/categories/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
}

func TestHoursHandler_ReplaceAndList(t *testing.T) {
	env := newContentTestEnv(t)

	w := env.do(t, http.MethodPut, "/hours", `{"hours":[
		{"dayOfWeek":1,"opensAt":"09:00","closesAt":"17:00"},
		{"dayOfWeek":2,"isClosed":true}
	]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("replace: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/hours", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var body struct {
		Hours []entities.ShopHours `json:"hours"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal hours: %v", err)
	}
	if len(body.Hours) != 2 {
		t.Fatalf("expected 2 hour rows, got %d", len(body.Hours))
	}
}

func TestHoursHandler_RejectsDuplicateDays(t *testing.T) {
	env := newContentTestEnv(t)

	w := env.do(t, http.MethodPut, "/hours", `{"hours":[
		{"dayOfWeek":3,"opensAt":"09:00","closesAt":"12:00"},
		{"dayOfWeek":3,"opensAt":"13:00","closesAt":"17:00"}
	]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
