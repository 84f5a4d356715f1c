package mapper

import (
	"bistro-api/docstore"
	"bistro-api/models"
)

func Category(id string, doc docstore.Document) models.Category {
	return models.Category{
		ID:          id,
		Name:        str(doc, "name"),
		Description: optStr(doc, "description"),
		Order:       intOr(doc, "order", 0),
	}
}

func CategoryDoc(c models.Category) docstore.Document {
	doc := docstore.Document{
		"name":  c.Name,
		"order": c.Order,
	}
	if c.Description != nil {
		doc["description"] = *c.Description
	}
	return doc
}

func MenuItem(id string, doc docstore.Document) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        str(doc, "name"),
		Description: str(doc, "description"),
		Price:       moneyValue(doc["price"], "0"),
		DeliveryFee: moneyValue(doc["deliveryFee"], "0"),
		CategoryID:  str(doc, "categoryId"),
		ImageURL:    optStr(doc, "imageUrl"),
		Available:   boolOr(doc, "available", true),
		Popular:     boolOr(doc, "popular", false),
	}
}

func MenuItemDoc(m models.MenuItem) docstore.Document {
	doc := docstore.Document{
		"name":        m.Name,
		"description": m.Description,
		"price":       moneyValue(m.Price, "0"),
		"deliveryFee": moneyValue(m.DeliveryFee, "0"),
		"categoryId":  m.CategoryID,
		"available":   m.Available,
		"popular":     m.Popular,
	}
	if m.ImageURL != nil {
		doc["imageUrl"] = *m.ImageURL
	}
	return doc
}

func Reservation(id string, doc docstore.Document) models.Reservation {
	status := str(doc, "status")
	if status == "" {
		status = "pending"
	}
	return models.Reservation{
		ID:              id,
		Name:            str(doc, "name"),
		Email:           str(doc, "email"),
		Phone:           str(doc, "phone"),
		Date:            str(doc, "date"),
		Time:            str(doc, "time"),
		PartySize:       intOr(doc, "partySize", 1),
		SpecialRequests: optStr(doc, "specialRequests"),
		Status:          status,
		CreatedAt:       timeValue(doc["createdAt"]),
	}
}

func ReservationDoc(r models.Reservation) docstore.Document {
	status := r.Status
	if status == "" {
		status = "pending"
	}
	doc := docstore.Document{
		"name":      r.Name,
		"email":     r.Email,
		"phone":     r.Phone,
		"date":      r.Date,
		"time":      r.Time,
		"partySize": r.PartySize,
		"status":    status,
		"createdAt": r.CreatedAt,
	}
	if r.SpecialRequests != nil {
		doc["specialRequests"] = *r.SpecialRequests
	}
	return doc
}

func Order(id string, doc docstore.Document) models.Order {
	status := str(doc, "status")
	if status == "" {
		status = string(models.StatusPending)
	}
	return models.Order{
		ID:              id,
		UserID:          optStr(doc, "userId"),
		CustomerName:    str(doc, "customerName"),
		CustomerEmail:   str(doc, "customerEmail"),
		CustomerPhone:   str(doc, "customerPhone"),
		Items:           orderItems(doc["items"]),
		TotalAmount:     moneyValue(doc["totalAmount"], "0"),
		OrderType:       models.OrderType(str(doc, "orderType")),
		DeliveryAddress: optStr(doc, "deliveryAddress"),
		Notes:           optStr(doc, "notes"),
		Status:          models.OrderStatus(status),
		LivreurID:       optStr(doc, "livreurId"),
		CreatedAt:       timeValue(doc["createdAt"]),
		UpdatedAt:       timeValue(doc["updatedAt"]),
	}
}

func OrderDoc(o models.Order) docstore.Document {
	status := o.Status
	if status == "" {
		status = models.StatusPending
	}
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"menuItemId": it.MenuItemID,
			"name":       it.Name,
			"quantity":   it.Quantity,
			"price":      moneyValue(it.Price, "0"),
		})
	}
	doc := docstore.Document{
		"customerName":  o.CustomerName,
		"customerEmail": o.CustomerEmail,
		"customerPhone": o.CustomerPhone,
		"items":         items,
		"totalAmount":   moneyValue(o.TotalAmount, "0"),
		"orderType":     string(o.OrderType),
		"status":        string(status),
		"createdAt":     o.CreatedAt,
		"updatedAt":     o.UpdatedAt,
	}
	if o.UserID != nil {
		doc["userId"] = *o.UserID
	}
	if o.DeliveryAddress != nil {
		doc["deliveryAddress"] = *o.DeliveryAddress
	}
	if o.Notes != nil {
		doc["notes"] = *o.Notes
	}
	if o.LivreurID != nil {
		doc["livreurId"] = *o.LivreurID
	}
	return doc
}

func orderItems(v any) []models.OrderItem {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]models.OrderItem, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		doc := docstore.Document(m)
		items = append(items, models.OrderItem{
			MenuItemID: str(doc, "menuItemId"),
			Name:       str(doc, "name"),
			Quantity:   intOr(doc, "quantity", 0),
			Price:      moneyValue(doc["price"], "0"),
		})
	}
	return items
}

func User(id string, doc docstore.Document) models.User {
	return models.User{
		ID:           id,
		Name:         str(doc, "name"),
		Email:        str(doc, "email"),
		PasswordHash: str(doc, "password"),
		Phone:        optStr(doc, "phone"),
		Role:         models.UserRole(str(doc, "role")),
		Active:       boolOr(doc, "active", true),
		CreatedAt:    timeValue(doc["createdAt"]),
	}
}

func UserDoc(u models.User) docstore.Document {
	doc := docstore.Document{
		"name":      u.Name,
		"email":     u.Email,
		"password":  u.PasswordHash,
		"role":      string(u.Role),
		"active":    u.Active,
		"createdAt": u.CreatedAt,
	}
	if u.Phone != nil {
		doc["phone"] = *u.Phone
	}
	return doc
}
