package models

// Category groups menu items; Order is the display sort key.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

// MenuItem is a dish on the menu. Monetary fields are decimal strings so the
// exact digits survive storage round-trips.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	DeliveryFee string  `json:"deliveryFee"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	Available   bool    `json:"available"`
	Popular     bool    `json:"popular"`
}
