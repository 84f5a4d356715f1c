package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	return s.listOrders(ctx, nil)
}

// OrdersByUser returns the orders a client placed, newest first.
func (s *Store) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.listOrders(ctx, []docstore.Filter{{Field: "userId", Value: userID}})
}

// OrdersByCourier returns the orders assigned to a courier, newest first.
func (s *Store) OrdersByCourier(ctx context.Context, courierID string) ([]models.Order, error) {
	return s.listOrders(ctx, []docstore.Filter{{Field: "livreurId", Value: courierID}})
}

// PendingOrders returns all orders still in pending status, newest first.
func (s *Store) PendingOrders(ctx context.Context) ([]models.Order, error) {
	return s.listOrders(ctx, []docstore.Filter{{Field: "status", Value: string(models.StatusPending)}})
}

func (s *Store) listOrders(ctx context.Context, filters []docstore.Filter) ([]models.Order, error) {
	docs, err := s.docs.List(ctx, collOrders, docstore.Query{
		Filters: filters,
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapper.Order(doc["id"].(string), doc))
	}
	return out, nil
}

func (s *Store) Order(ctx context.Context, id string) (models.Order, error) {
	doc, err := s.docs.Get(ctx, collOrders, id)
	if err != nil {
		return models.Order{}, translate(err)
	}
	return mapper.Order(id, doc), nil
}

func (s *Store) CreateOrder(ctx context.Context, in models.Order) (models.Order, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = now
	}
	if err := s.docs.Put(ctx, collOrders, in.ID, mapper.OrderDoc(in)); err != nil {
		return models.Order{}, err
	}
	return s.Order(ctx, in.ID)
}

// UpdateOrder merges fields under the given preconditions and returns the
// canonical post-update state. Precondition failures pass through untouched
// so callers can react to a lost conditional write.
func (s *Store) UpdateOrder(ctx context.Context, id string, fields docstore.Document, preconds ...docstore.Precondition) (models.Order, error) {
	if err := s.docs.Update(ctx, collOrders, id, fields, preconds...); err != nil {
		if err == docstore.ErrPreconditionFailed {
			return models.Order{}, err
		}
		return models.Order{}, translate(err)
	}
	return s.Order(ctx, id)
}
