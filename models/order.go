package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// OrderItem is a denormalized snapshot of a menu item at order time. Later
// price changes to the menu item must not alter historical orders.
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          *string     `json:"userId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []OrderItem `json:"items"`
	TotalAmount     string      `json:"totalAmount"`
	OrderType       OrderType   `json:"orderType"`
	DeliveryAddress *string     `json:"deliveryAddress"`
	Notes           *string     `json:"notes"`
	Status          OrderStatus `json:"status"`
	LivreurID       *string     `json:"livreurId"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
