// Package repository is the persistence gateway: one narrow set of
// operations per entity, executed against a docstore.Store. Queries that
// filter or order do so store-side.
package repository

import (
	"context"
	"errors"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

const (
	collCategories   = "categories"
	collMenuItems    = "menuItems"
	collReservations = "reservations"
	collOrders       = "orders"
	collUsers        = "users"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

type CategoryRepository interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Category(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, in models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch mapper.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SeedCategories(ctx context.Context) error
}

type MenuItemRepository interface {
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	MenuItemsByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error)
	MenuItem(ctx context.Context, id string) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, in models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch mapper.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type ReservationRepository interface {
	Reservations(ctx context.Context) ([]models.Reservation, error)
	Reservation(ctx context.Context, id string) (models.Reservation, error)
	CreateReservation(ctx context.Context, in models.Reservation) (models.Reservation, error)
}

type OrderRepository interface {
	Orders(ctx context.Context) ([]models.Order, error)
	Order(ctx context.Context, id string) (models.Order, error)
	CreateOrder(ctx context.Context, in models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, id string, fields docstore.Document, preconds ...docstore.Precondition) (models.Order, error)
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	OrdersByCourier(ctx context.Context, courierID string) ([]models.Order, error)
	PendingOrders(ctx context.Context) ([]models.Order, error)
}

type UserRepository interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, in models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch mapper.UserPatch) (models.User, error)
}

// Store implements every entity repository over one document store.
type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func translate(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
