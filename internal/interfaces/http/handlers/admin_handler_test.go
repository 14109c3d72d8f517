package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	"makershop.backend/internal/usecases"
)

func adminRouter(t *testing.T) (*gin.Engine, *shopRepoStub, *userRepoStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	shops := newShopRepoStub()
	users := newUserRepoStub()
	h := NewAdminHandler(usecases.NewAdminUsecase(users, shops))

	r := gin.New()
	r.GET("/admin/users", h.ListUsers)
	r.GET("/admin/shops", h.ListShops)
	r.GET("/admin/stats", h.GetStats)
	r.PUT("/admin/shops/:id/visibility", h.SetShopVisibility)
	return r, shops, users
}

func TestAdminHandler_StatsAndLists(t *testing.T) {
	r, shops, users := adminRouter(t)

	if err := users.Create(t.Context(), &entities.User{ID: uuid.New(), Email: "lisa@makershop.dev", Name: "Lisa"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	for i, public := range []bool{true, false, true} {
		shop := &entities.Shop{ID: uuid.New(), Name: "Shop", Slug: "shop-" + string(rune('a'+i)), CreatedBy: uuid.New(), IsPublic: public}
		if err := shops.Create(t.Context(), shop); err != nil {
			t.Fatalf("seed shop: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}
	var stats usecases.AdminStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalShops != 3 || stats.PublicShops != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("lisa@makershop.dev")) {
		t.Fatalf("users: unexpected response %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/shops", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("shops: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/shops?page=1&limit=2", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("paged shops: expected 200, got %d", w.Code)
	}
	var paged struct {
		Shops []json.RawMessage `json:"shops"`
		Meta  struct {
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &paged); err != nil {
		t.Fatalf("unmarshal paged shops: %v", err)
	}
	if len(paged.Shops) != 2 || paged.Meta.TotalCount != 3 || paged.Meta.TotalPages != 2 {
		t.Fatalf("unexpected page: %d shops, meta %+v", len(paged.Shops), paged.Meta)
	}
}

func TestAdminHandler_SetShopVisibility(t *testing.T) {
	r, shops, _ := adminRouter(t)

	shop := &entities.Shop{ID: uuid.New(), Name: "Flagged", Slug: "flagged", CreatedBy: uuid.New(), IsPublic: true}
	if err := shops.Create(t.Context(), shop); err != nil {
		t.Fatalf("seed shop: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/admin/shops/"+shop.ID.String()+"/visibility",
		bytes.NewReader([]byte(`{"isPublic":false}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	got, err := shops.GetByID(t.Context(), shop.ID)
	if err != nil {
		t.Fatalf("get shop: %v", err)
	}
	if got.IsPublic {
		t.Fatal("expected shop hidden")
	}

	req = httptest.NewRequest(http.MethodPut, "/admin/shops/"+uuid.NewString()+"/visibility",
		bytesReader(`{"isPublic":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing shop: expected 404, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/admin/shops/not-a-uuid/visibility",
		bytesReader(`{"isPublic":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/admin/shops/"+shop.ID.String()+"/visibility",
		bytesReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing flag: expected 400, got %d", w.Code)
	}
}

func bytesReader(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}
