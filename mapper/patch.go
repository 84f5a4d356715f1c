package mapper

import "bistro-api/docstore"

// Patch types carry partial updates. Only fields the caller explicitly set
// are merged into the stored document; anything unresolved is stripped from
// the write payload so unset fields are never nulled by accident.

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func CategoryPatchDoc(p CategoryPatch) docstore.Document {
	doc := docstore.Document{}
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Description != nil {
		doc["description"] = *p.Description
	}
	if p.Order != nil {
		doc["order"] = *p.Order
	}
	return doc
}

// Price and DeliveryFee are `any` because callers may send them numeric or
// as strings; both normalize to the decimal-string representation.
type MenuItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	DeliveryFee any     `json:"deliveryFee"`
	CategoryID  *string `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
	Popular     *bool   `json:"popular"`
}

func MenuItemPatchDoc(p MenuItemPatch) docstore.Document {
	doc := docstore.Document{}
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Description != nil {
		doc["description"] = *p.Description
	}
	if p.Price != nil {
		doc["price"] = moneyValue(p.Price, "0")
	}
	if p.DeliveryFee != nil {
		doc["deliveryFee"] = moneyValue(p.DeliveryFee, "0")
	}
	if p.CategoryID != nil {
		doc["categoryId"] = *p.CategoryID
	}
	if p.ImageURL != nil {
		doc["imageUrl"] = *p.ImageURL
	}
	if p.Available != nil {
		doc["available"] = *p.Available
	}
	if p.Popular != nil {
		doc["popular"] = *p.Popular
	}
	return doc
}

type UserPatch struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"-"`
}

func UserPatchDoc(p UserPatch) docstore.Document {
	doc := docstore.Document{}
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Phone != nil {
		doc["phone"] = *p.Phone
	}
	if p.Role != nil {
		doc["role"] = *p.Role
	}
	if p.Active != nil {
		doc["active"] = *p.Active
	}
	if p.Password != nil {
		doc["password"] = *p.Password
	}
	return doc
}
