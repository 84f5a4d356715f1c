// Package orders computes which orders a role may see and governs the
// status transitions an order may undergo, including courier self-
// assignment.
package orders

import (
	"context"
	"errors"
	"sort"
	"time"

	"bistro-api/docstore"
	"bistro-api/models"
	"bistro-api/repository"
)

// Actor is a session-authenticated caller, already resolved upstream. A
// guest has an empty ID and role client.
type Actor struct {
	ID   string
	Role models.UserRole
}

type Engine struct {
	repo repository.OrderRepository
}

func NewEngine(repo repository.OrderRepository) *Engine {
	return &Engine{repo: repo}
}

// VisibleOrders projects the order list for the actor's role:
// owners see everything, couriers see unclaimed pending orders plus their
// own deliveries, clients see only orders they placed.
func (e *Engine) VisibleOrders(ctx context.Context, actor Actor) ([]models.Order, error) {
	switch actor.Role {
	case models.RoleOwner:
		return e.repo.Orders(ctx)
	case models.RoleLivreur:
		return e.courierOrders(ctx, actor.ID)
	default:
		if actor.ID == "" {
			return []models.Order{}, nil
		}
		return e.repo.OrdersByUser(ctx, actor.ID)
	}
}

func (e *Engine) courierOrders(ctx context.Context, courierID string) ([]models.Order, error) {
	pending, err := e.repo.PendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := e.repo.OrdersByCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}
	// Deduplicate by id; an order claimed between the two reads shows up in
	// both sets and the assigned copy wins.
	merged := make(map[string]models.Order)
	for _, o := range pending {
		if o.LivreurID == nil {
			merged[o.ID] = o
		}
	}
	for _, o := range mine {
		merged[o.ID] = o
	}
	out := make([]models.Order, 0, len(merged))
	for _, o := range merged {
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus applies a status transition on behalf of the actor. When a
// courier confirms an unassigned order, the order is claimed for that
// courier with a conditional write: the assignment only lands while
// livreurId is still null, so a claim can never be overwritten by a racing
// courier.
func (e *Engine) UpdateStatus(ctx context.Context, actor Actor, orderID string, next models.OrderStatus) (models.Order, error) {
	if actor.Role != models.RoleLivreur && actor.Role != models.RoleOwner {
		return models.Order{}, ErrForbidden
	}
	order, err := e.repo.Order(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if err := CanTransition(order.Status, next, actor.Role); err != nil {
		return models.Order{}, err
	}

	fields := docstore.Document{
		"status":    string(next),
		"updatedAt": time.Now().UTC(),
	}
	if next == models.StatusConfirmed && actor.Role == models.RoleLivreur && order.LivreurID == nil {
		fields["livreurId"] = actor.ID
		updated, err := e.repo.UpdateOrder(ctx, orderID, fields, docstore.WhereNull("livreurId"))
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, docstore.ErrPreconditionFailed) {
			return models.Order{}, err
		}
		// Lost the claim race: apply the status change without touching the
		// winning courier's assignment.
		delete(fields, "livreurId")
	}
	return e.repo.UpdateOrder(ctx, orderID, fields)
}
