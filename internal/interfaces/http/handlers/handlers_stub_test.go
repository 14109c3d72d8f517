package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the handler tests. They mirror
// the persistence semantics the handlers rely on, including the unique
// slug and single-active-token constraints.

type shopRepoStub struct {
	shops map[uuid.UUID]*entities.Shop
}

func newShopRepoStub() *shopRepoStub {
	return &shopRepoStub{shops: map[uuid.UUID]*entities.Shop{}}
}

func (s *shopRepoStub) Create(_ context.Context, shop *entities.Shop) error {
	for _, existing := range s.shops {
		if existing.Slug == shop.Slug {
			return domainerrors.ErrAlreadyExists
		}
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now()
	}
	cp := *shop
	s.shops[shop.ID] = &cp
	return nil
}

func (s *shopRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Shop, error) {
	shop, ok := s.shops[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *shop
	return &cp, nil
}

func (s *shopRepoStub) GetBySlug(_ context.Context, slug string) (*entities.Shop, error) {
	for _, shop := range s.shops {
		if shop.Slug == slug {
			cp := *shop
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *shopRepoStub) GetLatestByOwner(_ context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	var owned []*entities.Shop
	for _, shop := range s.shops {
		if shop.CreatedBy == ownerID {
			owned = append(owned, shop)
		}
	}
	if len(owned) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	cp := *owned[0]
	return &cp, nil
}

func (s *shopRepoStub) Update(_ context.Context, shop *entities.Shop) error {
	if _, ok := s.shops[shop.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *shop
	s.shops[shop.ID] = &cp
	return nil
}

func (s *shopRepoStub) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, shop := range s.shops {
		if shop.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *shopRepoStub) SetVisibility(_ context.Context, id uuid.UUID, isPublic bool) error {
	shop, ok := s.shops[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	shop.IsPublic = isPublic
	return nil
}

func (s *shopRepoStub) List(_ context.Context) ([]*entities.Shop, error) {
	out := make([]*entities.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		cp := *shop
		out = append(out, &cp)
	}
	return out, nil
}

func (s *shopRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.shops)), nil
}

type tokenRepoStub struct {
	rows map[uuid.UUID]*entities.ShopDesignTokens
}

func newTokenRepoStub() *tokenRepoStub {
	return &tokenRepoStub{rows: map[uuid.UUID]*entities.ShopDesignTokens{}}
}

func (s *tokenRepoStub) Create(_ context.Context, tokens *entities.ShopDesignTokens) error {
	if tokens.IsActive {
		for _, row := range s.rows {
			if row.ShopID == tokens.ShopID && row.IsActive {
				return domainerrors.ErrAlreadyExists
			}
		}
	}
	cp := *tokens
	s.rows[tokens.ID] = &cp
	return nil
}

func (s *tokenRepoStub) GetActiveByShop(_ context.Context, shopID uuid.UUID) (*entities.ShopDesignTokens, error) {
	for _, row := range s.rows {
		if row.ShopID == shopID && row.IsActive {
			cp := *row
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) UpdateTokens(_ context.Context, id uuid.UUID, bundle entities.TokenBundle) error {
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row.Tokens = bundle
	return nil
}

func (s *tokenRepoStub) DeactivateActive(_ context.Context, shopID uuid.UUID) error {
	for _, row := range s.rows {
		if row.ShopID == shopID && row.IsActive {
			row.IsActive = false
		}
	}
	return nil
}

func (s *tokenRepoStub) PruneInactiveBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, row := range s.rows {
		if !row.IsActive && row.CreatedAt.Before(cutoff) {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

type productRepoStub struct {
	products map[uuid.UUID]*entities.Product
}

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{products: map[uuid.UUID]*entities.Product{}}
}

func (s *productRepoStub) Create(_ context.Context, product *entities.Product) error {
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *productRepoStub) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range s.products {
		if p.ShopID == shopID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *productRepoStub) Update(_ context.Context, product *entities.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *productRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.products[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type categoryRepoStub struct {
	categories map[uuid.UUID]*entities.Category
}

func newCategoryRepoStub() *categoryRepoStub {
	return &categoryRepoStub{categories: map[uuid.UUID]*entities.Category{}}
}

func (s *categoryRepoStub) Create(_ context.Context, category *entities.Category) error {
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *categoryRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Category, error) {
	cat, ok := s.categories[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *cat
	return &cp, nil
}

func (s *categoryRepoStub) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, cat := range s.categories {
		if cat.ShopID == shopID {
			cp := *cat
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *categoryRepoStub) Update(_ context.Context, category *entities.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *categoryRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

type hoursRepoStub struct {
	byShop map[uuid.UUID][]*entities.ShopHours
}

func newHoursRepoStub() *hoursRepoStub {
	return &hoursRepoStub{byShop: map[uuid.UUID][]*entities.ShopHours{}}
}

func (s *hoursRepoStub) ReplaceForShop(_ context.Context, shopID uuid.UUID, hours []*entities.ShopHours) error {
	out := make([]*entities.ShopHours, 0, len(hours))
	for _, h := range hours {
		cp := *h
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	s.byShop[shopID] = out
	return nil
}

func (s *hoursRepoStub) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entities.ShopHours, error) {
	return s.byShop[shopID], nil
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *userRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
