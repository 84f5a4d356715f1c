package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"bistro-api/docstore"
	"bistro-api/models"
)

func TestMoneyNormalization(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{json.Number("12"), "12"},
		{json.Number("12.50"), "12.50"},
		{"12", "12"},
		{"9.99", "9.99"},
		{float64(12), "12"},
		{float64(12.5), "12.5"},
		{12, "12"},
		{"", "0"},
		{nil, "0"},
	}
	for _, c := range cases {
		if got := moneyValue(c.in, "0"); got != c.want {
			t.Errorf("moneyValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNumericAndStringPriceStoreIdentically(t *testing.T) {
	numeric := MenuItemPatchDoc(MenuItemPatch{Price: float64(12)})
	str := MenuItemPatchDoc(MenuItemPatch{Price: "12"})
	if numeric["price"] != "12" || str["price"] != "12" {
		t.Errorf("price normalization differs: numeric=%v string=%v", numeric["price"], str["price"])
	}
}

func TestMenuItemDefaults(t *testing.T) {
	item := MenuItem("m1", docstore.Document{"name": "Tarte Tatin"})
	if !item.Available {
		t.Error("available should default true")
	}
	if item.Popular {
		t.Error("popular should default false")
	}
	if item.DeliveryFee != "0" {
		t.Errorf("deliveryFee = %q, want \"0\"", item.DeliveryFee)
	}
	if item.ImageURL != nil {
		t.Error("absent imageUrl should resolve to nil")
	}
}

func TestMenuItemExplicitFalseAvailable(t *testing.T) {
	item := MenuItem("m1", docstore.Document{"available": false})
	if item.Available {
		t.Error("explicit false must not be overridden by the default")
	}
}

func TestOrderStatusDefault(t *testing.T) {
	order := Order("o1", docstore.Document{})
	if order.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.LivreurID != nil {
		t.Error("absent livreurId should resolve to nil")
	}
}

func TestTimeValue(t *testing.T) {
	native := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if got := timeValue(native); !got.Equal(native) {
		t.Errorf("native instant changed: %v", got)
	}
	if got := timeValue("2026-08-30T12:00:00Z"); !got.Equal(native) {
		t.Errorf("RFC3339 parse = %v, want %v", got, native)
	}
	if got := timeValue("2026-08-30"); got.Year() != 2026 || got.Month() != 8 {
		t.Errorf("generic date parse = %v", got)
	}
	if got := timeValue(json.Number("1787486400")); got.IsZero() {
		t.Error("unix seconds should parse")
	}
}

func TestPatchStripsUnsetFields(t *testing.T) {
	available := false
	doc := MenuItemPatchDoc(MenuItemPatch{Available: &available})
	if len(doc) != 1 {
		t.Fatalf("patch doc has %d fields, want 1: %v", len(doc), doc)
	}
	if doc["available"] != false {
		t.Errorf("available = %v, want false", doc["available"])
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	in := models.Order{
		CustomerName: "Alice",
		TotalAmount:  "25",
		Items: []models.OrderItem{
			{MenuItemID: "m1", Name: "Margherita", Quantity: 2, Price: "12.50"},
		},
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	doc := OrderDoc(in)
	out := Order("o1", doc)
	if len(out.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(out.Items))
	}
	if out.Items[0].Price != "12.50" || out.Items[0].Quantity != 2 {
		t.Errorf("item snapshot changed: %+v", out.Items[0])
	}
}

func TestAddMulMoney(t *testing.T) {
	if got := AddMoney("0", "12.50"); got != "12.5" {
		t.Errorf("AddMoney = %q", got)
	}
	if got := MulMoney("12.50", 2); got != "25" {
		t.Errorf("MulMoney = %q", got)
	}
	if got := AddMoney("0.1", "0.2"); got != "0.3" {
		t.Errorf("AddMoney float drift: %q", got)
	}
}
