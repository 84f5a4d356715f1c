package orders

import (
	"errors"
	"fmt"
	"strings"

	"bistro-api/models"
)

// ErrForbidden means the actor's role may not mutate order status at all.
var ErrForbidden = errors.New("role is not allowed to update orders")

type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
	Role models.UserRole
}

func (e *InvalidTransitionError) Error() string {
	nexts := ValidTransitionsFrom(e.From)
	described := "none (terminal state)"
	if len(nexts) > 0 {
		parts := make([]string, len(nexts))
		for i, s := range nexts {
			parts[i] = string(s)
		}
		described = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("invalid transition: %s -> %s is not allowed for role '%s'. Valid transitions from %s are: %s",
		e.From, e.To, e.Role, e.From, described)
}
