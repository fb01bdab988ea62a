package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/tablelk/woodcraft-backend/internal/cart"
	"github.com/tablelk/woodcraft-backend/internal/catalog"
)

var testProduct = catalog.Product{
	ID:         1,
	Name:       "5ft x 2ft Smart Table",
	Price:      18200,
	Dimensions: catalog.Dimensions{Width: 24, Length: 60, Height: 30},
	Colors:     []string{"White", "Teak"},
}

var testCustomer = Customer{
	Name:    "Sarath Kumara",
	Address: "12 Galle Road, Colombo",
	Phone:   "077 123 4567",
}

func testSnapshot() cart.Snapshot {
	return cart.NewSnapshot([]cart.LineItem{
		{Product: testProduct, Quantity: 2},
		{Product: catalog.Product{ID: 2, Name: "Study Desk", Price: 14600, Dimensions: catalog.Dimensions{Width: 24, Length: 36, Height: 30}}, Quantity: 1},
	})
}

func TestFormatPrice(t *testing.T) {
	f := NewFormatter()
	if got := f.FormatPrice(18200); got != "LKR 18,200" {
		t.Fatalf("expected LKR 18,200, got %q", got)
	}
	if got := f.FormatPrice(950); got != "LKR 950" {
		t.Fatalf("expected LKR 950, got %q", got)
	}
	if got := f.FormatPrice(1234567); got != "LKR 1,234,567" {
		t.Fatalf("expected LKR 1,234,567, got %q", got)
	}
}

func TestFormatCart_RequiresContactFields(t *testing.T) {
	f := NewFormatter()

	cases := []Customer{
		{Name: "", Address: "X", Phone: "Y"},
		{Name: "X", Address: "", Phone: "Y"},
		{Name: "X", Address: "Y", Phone: ""},
	}
	for _, c := range cases {
		if _, err := f.FormatCart(testSnapshot(), c, "94768919013"); !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("expected ErrMissingRequiredField for %+v, got %v", c, err)
		}
	}
}

func TestFormatCart_MessageContents(t *testing.T) {
	f := NewFormatter()
	msg, err := f.FormatCart(testSnapshot(), testCustomer, "94768919013")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"🛒 BULK ORDER REQUEST",
		"📦 5ft x 2ft Smart Table",
		"📊 Quantity: 2",
		"💵 Subtotal: LKR 36,400",
		"📦 Study Desk",
		"💵 TOTAL AMOUNT: LKR 51,000",
		`📏 Size: 24" x 60" x 30"`,
		"Name: Sarath Kumara",
		"📞 Contact: 077 123 4567",
		"💬 Remarks: None",
		"Order placed via TableLK.com",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("message missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestFormatSingleItem_MessageContents(t *testing.T) {
	f := NewFormatter()
	c := testCustomer
	c.Remarks = "Deliver after 5pm"

	msg, err := f.FormatSingleItem(testProduct, 3, "Teak", c, "94704613204")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"🛒 NEW ORDER REQUEST",
		"📦 Product: 5ft x 2ft Smart Table",
		"💰 Unit Price: LKR 18,200",
		"📊 Quantity: 3",
		"💵 Total Price: LKR 54,600",
		"🎨 Selected Color: Teak",
		"💬 Remarks: Deliver after 5pm",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("message missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	f := NewFormatter()
	a, err := f.FormatCart(testSnapshot(), testCustomer, "94768919013")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := f.FormatCart(testSnapshot(), testCustomer, "94768919013")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("identical inputs produced different output")
	}
}

func TestWhatsAppURL(t *testing.T) {
	f := NewFormatter()
	msg, err := f.FormatSingleItem(testProduct, 1, "White", testCustomer, "94704613204")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(msg.WhatsAppURL, "https://wa.me/94704613204?text=") {
		t.Fatalf("unexpected deep link %q", msg.WhatsAppURL)
	}
	if strings.Contains(msg.WhatsAppURL, "+") {
		t.Fatalf("spaces must encode as %%20, got %q", msg.WhatsAppURL)
	}
	if !strings.Contains(msg.WhatsAppURL, "%20") {
		t.Fatalf("expected percent-encoded spaces in %q", msg.WhatsAppURL)
	}
}
