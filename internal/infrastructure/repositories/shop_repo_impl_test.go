package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"makershop.backend/internal/domain/entities"
	domainerrors "makershop.backend/internal/domain/errors"
)

func newShop(ownerID uuid.UUID, slug string) *entities.Shop {
	now := time.Now()
	return &entities.Shop{
		ID:              uuid.New(),
		Slug:            slug,
		Name:            "Sweet Treats",
		Tagline:         null.StringFrom("Small batch bakes"),
		PrimaryColor:    null.StringFrom("#b45309"),
		IsPublic:        true,
		AcceptingOrders: true,
		CreatedBy:       ownerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestShopRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	s := newShop(owner, "sweet-treats")
	require.NoError(t, repo.Create(ctx, s))

	byID, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "sweet-treats", byID.Slug)
	require.Equal(t, "Small batch bakes", byID.Tagline.String)
	require.Equal(t, "#b45309", byID.PrimaryColor.String)
	require.False(t, byID.SecondaryColor.Valid)

	bySlug, err := repo.GetBySlug(ctx, "sweet-treats")
	require.NoError(t, err)
	require.Equal(t, s.ID, bySlug.ID)
}

func TestShopRepository_CreateDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, repo.Create(ctx, newShop(owner, "sweet-treats")))

	err := repo.Create(ctx, newShop(owner, "sweet-treats"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestShopRepository_GetLatestByOwner(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	first := newShop(owner, "first-shop")
	first.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second := newShop(owner, "second-shop")
	require.NoError(t, repo.Create(ctx, second))

	latest, err := repo.GetLatestByOwner(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)

	_, err = repo.GetLatestByOwner(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestShopRepository_UpdateAndVisibility(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	s := newShop(uuid.New(), "sweet-treats")
	require.NoError(t, repo.Create(ctx, s))

	s.Name = "Sweet Treats Bakery"
	s.BodyFont = null.StringFrom("Lora")
	s.Tagline = null.String{}
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "Sweet Treats Bakery", got.Name)
	require.Equal(t, "Lora", got.BodyFont.String)
	require.False(t, got.Tagline.Valid, "cleared tagline must persist as null")

	require.NoError(t, repo.SetVisibility(ctx, s.ID, false))
	got, err = repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.False(t, got.IsPublic)

	err = repo.Update(ctx, newShop(uuid.New(), "ghost"))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.SetVisibility(ctx, uuid.New(), true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestShopRepository_SlugExistsIncludesDeleted(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	s := newShop(uuid.New(), "sweet-treats")
	require.NoError(t, repo.Create(ctx, s))

	exists, err := repo.SlugExists(ctx, "sweet-treats")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.SlugExists(ctx, "sweet-treats-2")
	require.NoError(t, err)
	require.False(t, exists)

	// soft delete keeps the slug reserved
	mustExec(t, db, "UPDATE shops SET deleted_at = ? WHERE id = ?", time.Now(), s.ID.String())
	exists, err = repo.SlugExists(ctx, "sweet-treats")
	require.NoError(t, err)
	require.True(t, exists)

	_, err = repo.GetBySlug(ctx, "sweet-treats")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestShopRepository_ListAndCount(t *testing.T) {
	db := newTestDB(t)
	createShopTable(t, db)
	repo := NewShopRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newShop(uuid.New(), "alpha")))
	require.NoError(t, repo.Create(ctx, newShop(uuid.New(), "beta")))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
