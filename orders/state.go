package orders

import "bistro-api/models"

// transition defines a valid status change and the role allowed to make it
type transition struct {
	From models.OrderStatus
	To   models.OrderStatus
	Role models.UserRole
}

// validTransitions is the authoritative state machine definition. Couriers
// confirm (claim), pick up and deliver; the owner can drive the kitchen
// stages and cancel anything not yet terminal.
var validTransitions = []transition{
	{From: models.StatusPending, To: models.StatusConfirmed, Role: models.RoleLivreur},
	{From: models.StatusPending, To: models.StatusConfirmed, Role: models.RoleOwner},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Role: models.RoleOwner},
	{From: models.StatusPreparing, To: models.StatusReady, Role: models.RoleOwner},
	{From: models.StatusReady, To: models.StatusDelivering, Role: models.RoleLivreur},
	{From: models.StatusReady, To: models.StatusDelivering, Role: models.RoleOwner},
	{From: models.StatusDelivering, To: models.StatusDelivered, Role: models.RoleLivreur},
	{From: models.StatusDelivering, To: models.StatusDelivered, Role: models.RoleOwner},
	{From: models.StatusPending, To: models.StatusCancelled, Role: models.RoleOwner},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Role: models.RoleOwner},
	{From: models.StatusPreparing, To: models.StatusCancelled, Role: models.RoleOwner},
	{From: models.StatusReady, To: models.StatusCancelled, Role: models.RoleOwner},
	{From: models.StatusDelivering, To: models.StatusCancelled, Role: models.RoleOwner},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
	Role models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Role}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state,
// any role.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a role may move an order from one status to
// another.
func CanTransition(from, to models.OrderStatus, role models.UserRole) error {
	if transitionMap[transitionKey{From: from, To: to, Role: role}] {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to, Role: role}
}
