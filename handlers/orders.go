package handlers

import (
	"errors"
	"log"
	"net/http"

	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/orders"
	"bistro-api/repository"

	"github.com/gin-gonic/gin"
)

func actorFrom(c *gin.Context) orders.Actor {
	return orders.Actor{
		ID:   middleware.GetUserID(c),
		Role: middleware.GetRole(c),
	}
}

// ListOrders returns the orders visible to the caller's role: owners see
// everything, couriers see unclaimed pending orders plus their deliveries,
// clients see their own orders.
func ListOrders(c *gin.Context) {
	visible, err := engine.VisibleOrders(c.Request.Context(), actorFrom(c))
	if err != nil {
		log.Printf("list orders failed: %v", err)
		visible = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(visible),
		"orders": visible,
	})
}

// GetOrder returns a single order if the caller may see it
func GetOrder(c *gin.Context) {
	actor := actorFrom(c)
	order, err := repo.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	allowed := false
	switch actor.Role {
	case models.RoleOwner:
		allowed = true
	case models.RoleLivreur:
		allowed = order.LivreurID == nil || *order.LivreurID == actor.ID
	default:
		allowed = order.UserID != nil && *order.UserID == actor.ID
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus applies a status transition through the engine. A
// courier confirming an unassigned order claims it.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := engine.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), req.Status)
	if err != nil {
		var invalid *orders.InvalidTransitionError
		switch {
		case errors.Is(err, orders.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not update order status"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.As(err, &invalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    invalid.From,
				"requested":         invalid.To,
				"reason":            err.Error(),
				"valid_next_states": orders.ValidTransitionsFrom(invalid.From),
			})
		default:
			log.Printf("update order status failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   updated,
	})
}
