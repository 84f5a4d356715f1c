package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(docstore.NewMemStore())
}

func TestSeedCategoriesIsOneTime(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.SeedCategories(ctx))
	first, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, first, 8)

	// mutate one, then seed again: nothing may be duplicated or reset
	newName := "Nos Entrées"
	_, err = s.UpdateCategory(ctx, first[0].ID, mapper.CategoryPatch{Name: &newName})
	require.NoError(t, err)

	require.NoError(t, s.SeedCategories(ctx))
	second, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, second, 8)
	require.Equal(t, newName, second[0].Name)
}

func TestCategoriesSortedByDisplayOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.SeedCategories(ctx))

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	for i := 1; i < len(cats); i++ {
		require.LessOrEqual(t, cats[i-1].Order, cats[i].Order)
	}
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "menus-enfants", Slugify("Menus Enfants"))
	require.Equal(t, "entrees", Slugify("Entrées"))
	require.Equal(t, "plats-du-jour", Slugify("Plats  du Jour!"))
}

func TestMenuItemPartialUpdatePurity(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	img := "/storage/menu/1-margherita.png"
	created, err := s.CreateMenuItem(ctx, models.MenuItem{
		Name:       "Margherita",
		Price:      "12.50",
		CategoryID: "pizzas",
		ImageURL:   &img,
		Available:  true,
	})
	require.NoError(t, err)

	available := false
	updated, err := s.UpdateMenuItem(ctx, created.ID, mapper.MenuItemPatch{Available: &available})
	require.NoError(t, err)

	require.False(t, updated.Available)
	require.Equal(t, "Margherita", updated.Name)
	require.Equal(t, "12.50", updated.Price)
	require.NotNil(t, updated.ImageURL)
	require.Equal(t, img, *updated.ImageURL)
}

func TestMenuItemUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	name := "Ghost"
	_, err := s.UpdateMenuItem(ctx, "missing", mapper.MenuItemPatch{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMenuItemDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.DeleteMenuItem(ctx, "missing"))
	require.NoError(t, s.DeleteMenuItem(ctx, "missing"))
}

func TestReservationRoundTripOrdering(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	older, err := s.CreateReservation(ctx, models.Reservation{
		Name: "Alice", Email: "alice@example.com", Phone: "0601020304",
		Date: "2026-09-01", Time: "19:30", PartySize: 2,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)

	newer, err := s.CreateReservation(ctx, models.Reservation{
		Name: "Bob", Email: "bob@example.com", Phone: "0605060708",
		Date: "2026-09-02", Time: "20:00", PartySize: 4,
	})
	require.NoError(t, err)

	all, err := s.Reservations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, newer.ID, all[0].ID)
	require.Equal(t, older.ID, all[1].ID)
	require.Equal(t, "pending", all[0].Status)
}

func TestOrderFilteredQueries(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	user := "u1"
	courier := "c1"
	_, err := s.CreateOrder(ctx, models.Order{CustomerName: "Guest", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, models.Order{CustomerName: "Alice", UserID: &user, Status: models.StatusPending})
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, models.Order{CustomerName: "Bob", LivreurID: &courier, Status: models.StatusConfirmed})
	require.NoError(t, err)

	byUser, err := s.OrdersByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	require.Equal(t, "Alice", byUser[0].CustomerName)

	byCourier, err := s.OrdersByCourier(ctx, courier)
	require.NoError(t, err)
	require.Len(t, byCourier, 1)
	require.Equal(t, "Bob", byCourier[0].CustomerName)

	pending, err := s.PendingOrders(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestUserEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.CreateUser(ctx, models.User{
		Name: "Owner", Email: "owner@bistro.local", Role: models.RoleOwner, Active: true,
	})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{
		Name: "Imposter", Email: "owner@bistro.local", Role: models.RoleClient, Active: true,
	})
	require.ErrorIs(t, err, ErrDuplicate)

	found, err := s.UserByEmail(ctx, "owner@bistro.local")
	require.NoError(t, err)
	require.Equal(t, "Owner", found.Name)
}
