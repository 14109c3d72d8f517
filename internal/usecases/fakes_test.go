package usecases_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
)

// In-memory repositories for pipeline tests where mock call scripting
// would obscure the behavior under test (slug probing, idempotency,
// active-row swaps).

type fakeShopRepo struct {
	shops map[uuid.UUID]*entities.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[uuid.UUID]*entities.Shop)}
}

func (f *fakeShopRepo) Create(_ context.Context, shop *entities.Shop) error {
	for _, s := range f.shops {
		if s.Slug == shop.Slug {
			return domainerrors.ErrAlreadyExists
		}
	}
	cp := *shop
	f.shops[shop.ID] = &cp
	return nil
}

func (f *fakeShopRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShopRepo) GetBySlug(_ context.Context, slug string) (*entities.Shop, error) {
	for _, s := range f.shops {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeShopRepo) GetLatestByOwner(_ context.Context, ownerID uuid.UUID) (*entities.Shop, error) {
	var owned []*entities.Shop
	for _, s := range f.shops {
		if s.CreatedBy == ownerID {
			owned = append(owned, s)
		}
	}
	if len(owned) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	cp := *owned[0]
	return &cp, nil
}

func (f *fakeShopRepo) Update(_ context.Context, shop *entities.Shop) error {
	if _, ok := f.shops[shop.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *shop
	f.shops[shop.ID] = &cp
	return nil
}

func (f *fakeShopRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, s := range f.shops {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeShopRepo) SetVisibility(_ context.Context, id uuid.UUID, isPublic bool) error {
	s, ok := f.shops[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	s.IsPublic = isPublic
	return nil
}

func (f *fakeShopRepo) List(_ context.Context) ([]*entities.Shop, error) {
	out := make([]*entities.Shop, 0, len(f.shops))
	for _, s := range f.shops {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeShopRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.shops)), nil
}

type fakeTokenRepo struct {
	rows map[uuid.UUID]*entities.ShopDesignTokens
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{rows: make(map[uuid.UUID]*entities.ShopDesignTokens)}
}

func (f *fakeTokenRepo) Create(_ context.Context, tokens *entities.ShopDesignTokens) error {
	if tokens.IsActive {
		for _, r := range f.rows {
			if r.ShopID == tokens.ShopID && r.IsActive {
				return domainerrors.ErrAlreadyExists
			}
		}
	}
	cp := *tokens
	f.rows[tokens.ID] = &cp
	return nil
}

func (f *fakeTokenRepo) GetActiveByShop(_ context.Context, shopID uuid.UUID) (*entities.ShopDesignTokens, error) {
	for _, r := range f.rows {
		if r.ShopID == shopID && r.IsActive {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeTokenRepo) UpdateTokens(_ context.Context, id uuid.UUID, bundle entities.TokenBundle) error {
	r, ok := f.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	r.Tokens = bundle
	r.UpdatedAt = time.Now()
	return nil
}

func (f *fakeTokenRepo) DeactivateActive(_ context.Context, shopID uuid.UUID) error {
	for _, r := range f.rows {
		if r.ShopID == shopID && r.IsActive {
			r.IsActive = false
		}
	}
	return nil
}

func (f *fakeTokenRepo) PruneInactiveBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, r := range f.rows {
		if !r.IsActive && r.UpdatedAt.Before(cutoff) {
			delete(f.rows, id)
			removed++
		}
	}
	return removed, nil
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
