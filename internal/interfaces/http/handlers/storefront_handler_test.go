package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"makershop.backend/internal/domain/entities"
	"makershop.backend/internal/usecases"
)

func TestStorefrontHandler_GetPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	shops := newShopRepoStub()
	tokens := newTokenRepoStub()
	products := newProductRepoStub()

	shop := &entities.Shop{
		ID:           uuid.New(),
		Name:         "Sweet Treats",
		Slug:         "sweet-treats",
		Tagline:      null.StringFrom("Baked fresh"),
		IsPublic:     true,
		CreatedBy:    uuid.New(),
		PrimaryColor: null.StringFrom("#b45309"),
	}
	if err := shops.Create(t.Context(), shop); err != nil {
		t.Fatalf("seed shop: %v", err)
	}

	bundle := entities.TokenBundle{
		Sections: []entities.Section{
			{ID: "hero-1", SectionType: entities.SectionHero, Config: json.RawMessage(`{"showTagline":true}`), IsVisible: true},
			{ID: "feat-1", SectionType: entities.SectionFeaturedProducts, Config: json.RawMessage(`{"limit":2}`), IsVisible: true},
		},
	}
	if err := tokens.Create(t.Context(), &entities.ShopDesignTokens{
		ID:       uuid.New(),
		ShopID:   shop.ID,
		Tokens:   bundle,
		IsActive: true,
	}); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}

	if err := products.Create(t.Context(), &entities.Product{
		ID: uuid.New(), ShopID: shop.ID, Name: "Sourdough", IsFeatured: true, IsAvailable: true,
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	uc := usecases.NewStorefrontUsecase(shops, tokens, products, newCategoryRepoStub(), newHoursRepoStub(), time.Minute)
	h := NewStorefrontHandler(uc)

	r := gin.New()
	r.GET("/storefronts/:slug", h.GetPage)

	req := httptest.NewRequest(http.MethodGet, "/storefronts/sweet-treats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var page entities.StorefrontPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	if page.Shop.Name != "Sweet Treats" {
		t.Fatalf("unexpected shop name: %s", page.Shop.Name)
	}
	if page.Theme.Primary != "#b45309" {
		t.Fatalf("unexpected primary color: %s", page.Theme.Primary)
	}
	if len(page.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(page.Sections))
	}
}

func TestStorefrontHandler_HiddenAndMissingLookTheSame(t *testing.T) {
	gin.SetMode(gin.TestMode)

	shops := newShopRepoStub()
	hidden := &entities.Shop{
		ID:        uuid.New(),
		Name:      "Hidden",
		Slug:      "hidden-shop",
		IsPublic:  false,
		CreatedBy: uuid.New(),
	}
	if err := shops.Create(t.Context(), hidden); err != nil {
		t.Fatalf("seed shop: %v", err)
	}

	uc := usecases.NewStorefrontUsecase(shops, newTokenRepoStub(), newProductRepoStub(), newCategoryRepoStub(), newHoursRepoStub(), time.Minute)
	h := NewStorefrontHandler(uc)

	r := gin.New()
	r.GET("/storefronts/:slug", h.GetPage)

	for _, slug := range []string{"hidden-shop", "no-such-shop"} {
		req := httptest.NewRequest(http.MethodGet, "/storefronts/"+slug, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("slug %s: expected 404, got %d", slug, w.Code)
		}
	}
}
