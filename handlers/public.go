package handlers

import (
	"log"
	"net/http"

	"bistro-api/mapper"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all categories in display order (public)
func ListCategories(c *gin.Context) {
	categories, err := repo.Categories(c.Request.Context())
	if err != nil {
		// Listing views stay available when the store is unreachable.
		log.Printf("list categories failed: %v", err)
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}

// GetMenu returns menu items, optionally filtered (public)
func GetMenu(c *gin.Context) {
	ctx := c.Request.Context()
	var items []models.MenuItem
	var err error
	if categoryID := c.Query("category"); categoryID != "" {
		items, err = repo.MenuItemsByCategory(ctx, categoryID)
	} else {
		items, err = repo.MenuItems(ctx)
	}
	if err != nil {
		log.Printf("list menu items failed: %v", err)
		items = []models.MenuItem{}
	}

	filtered := items[:0]
	for _, item := range items {
		if c.Query("popular") == "true" && !item.Popular {
			continue
		}
		if c.Query("available") == "true" && !item.Available {
			continue
		}
		filtered = append(filtered, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(filtered),
		"menu":  filtered,
	})
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	item, err := repo.MenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

type CreateReservationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"partySize" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// CreateReservation books a table (public, guests included)
func CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation := models.Reservation{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Status:    "pending",
	}
	if req.SpecialRequests != "" {
		reservation.SpecialRequests = &req.SpecialRequests
	}

	created, err := repo.CreateReservation(c.Request.Context(), reservation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": created,
	})
}

type PlaceOrderRequest struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	OrderType       string `json:"orderType" binding:"required,oneof=delivery pickup"`
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
	Items           []struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order. Guests may order without an account; an
// authenticated client's id is attached to the order.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderType == string(models.OrderTypeDelivery) && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery orders require a delivery address"})
		return
	}

	ctx := c.Request.Context()

	// Snapshot each line item at today's price; later menu edits must not
	// rewrite order history.
	var orderItems []models.OrderItem
	total := "0"
	for _, reqItem := range req.Items {
		menuItem, err := repo.MenuItem(ctx, reqItem.MenuItemID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found: " + reqItem.MenuItemID})
			return
		}
		if !menuItem.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
		})
		total = mapper.AddMoney(total, mapper.MulMoney(menuItem.Price, reqItem.Quantity))
	}

	order := models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         orderItems,
		TotalAmount:   total,
		OrderType:     models.OrderType(req.OrderType),
		Status:        models.StatusPending,
	}
	if userID := middleware.GetUserID(c); userID != "" {
		order.UserID = &userID
	}
	if req.DeliveryAddress != "" {
		order.DeliveryAddress = &req.DeliveryAddress
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	created, err := repo.CreateOrder(ctx, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   created,
	})
}
