package orders

import (
	"strings"
	"testing"

	"bistro-api/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to models.OrderStatus
		role     models.UserRole
	}{
		{models.StatusPending, models.StatusConfirmed, models.RoleLivreur},
		{models.StatusPending, models.StatusConfirmed, models.RoleOwner},
		{models.StatusConfirmed, models.StatusPreparing, models.RoleOwner},
		{models.StatusReady, models.StatusDelivering, models.RoleLivreur},
		{models.StatusDelivering, models.StatusDelivered, models.RoleLivreur},
		{models.StatusPreparing, models.StatusCancelled, models.RoleOwner},
	}
	for _, a := range allowed {
		if err := CanTransition(a.from, a.to, a.role); err != nil {
			t.Errorf("CanTransition(%s, %s, %s) = %v, want nil", a.from, a.to, a.role, err)
		}
	}

	denied := []struct {
		from, to models.OrderStatus
		role     models.UserRole
	}{
		{models.StatusPending, models.StatusDelivered, models.RoleOwner},
		{models.StatusConfirmed, models.StatusPreparing, models.RoleLivreur},
		{models.StatusPending, models.StatusCancelled, models.RoleLivreur},
		{models.StatusDelivered, models.StatusPending, models.RoleOwner},
		{models.StatusCancelled, models.StatusConfirmed, models.RoleOwner},
		{models.StatusPending, models.StatusConfirmed, models.RoleClient},
	}
	for _, d := range denied {
		if err := CanTransition(d.from, d.to, d.role); err == nil {
			t.Errorf("CanTransition(%s, %s, %s) = nil, want error", d.from, d.to, d.role)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range []models.OrderStatus{models.StatusDelivered, models.StatusCancelled} {
		if nexts := ValidTransitionsFrom(s); len(nexts) != 0 {
			t.Errorf("ValidTransitionsFrom(%s) = %v, want none", s, nexts)
		}
	}
}

func TestInvalidTransitionErrorListsNextStates(t *testing.T) {
	err := CanTransition(models.StatusPending, models.StatusDelivered, models.RoleOwner)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "confirmed") {
		t.Errorf("error %q does not list the valid next state", msg)
	}
}
