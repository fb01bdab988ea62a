package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tablelk/woodcraft-backend/internal/cart"
	"github.com/tablelk/woodcraft-backend/internal/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const messageFooter = "---\nOrder placed via TableLK.com"

// Formatter renders order intents into WhatsApp messages. It is stateless
// apart from the locale printer, and both Format methods are pure: identical
// inputs produce byte-identical output.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English)}
}

// FormatPrice renders an amount in the smallest currency unit as
// "LKR 18,200" with thousands separators.
func (f *Formatter) FormatPrice(amount int) string {
	return f.printer.Sprintf("LKR %d", amount)
}

// FormatSingleItem renders a buy-now intent for one product. merchantNumber
// is the WhatsApp number the deep link targets.
func (f *Formatter) FormatSingleItem(p catalog.Product, qty int, color string, c Customer, merchantNumber string) (Message, error) {
	if err := c.validate(); err != nil {
		return Message{}, err
	}

	var b strings.Builder
	b.WriteString("🛒 NEW ORDER REQUEST\n\n")
	fmt.Fprintf(&b, "📦 Product: %s\n\n", p.Name)
	fmt.Fprintf(&b, "💰 Unit Price: %s\n\n", f.FormatPrice(p.Price))
	fmt.Fprintf(&b, "📊 Quantity: %d\n\n", qty)
	fmt.Fprintf(&b, "💵 Total Price: %s\n\n", f.FormatPrice(p.Price*qty))
	fmt.Fprintf(&b, "🎨 Selected Color: %s\n\n", color)
	fmt.Fprintf(&b, "📏 Size: %s\n\n", formatSize(p.Dimensions))
	writeCustomer(&b, c)
	b.WriteString(messageFooter)

	text := b.String()
	return Message{Text: text, WhatsAppURL: whatsAppURL(merchantNumber, text)}, nil
}

// FormatCart renders a bulk-order intent for a full cart snapshot.
func (f *Formatter) FormatCart(snap cart.Snapshot, c Customer, merchantNumber string) (Message, error) {
	if err := c.validate(); err != nil {
		return Message{}, err
	}

	lines := make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		lines = append(lines, fmt.Sprintf("📦 %s\n💰 Unit Price: %s\n📊 Quantity: %d\n💵 Subtotal: %s\n📏 Size: %s",
			it.Product.Name,
			f.FormatPrice(it.Product.Price),
			it.Quantity,
			f.FormatPrice(it.Product.Price*it.Quantity),
			formatSize(it.Product.Dimensions)))
	}

	var b strings.Builder
	b.WriteString("🛒 BULK ORDER REQUEST\n\n")
	b.WriteString("📋 ORDER ITEMS:\n")
	b.WriteString(strings.Join(lines, "\n\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "💵 TOTAL AMOUNT: %s\n\n", f.FormatPrice(snap.TotalPrice))
	writeCustomer(&b, c)
	b.WriteString(messageFooter)

	text := b.String()
	return Message{Text: text, WhatsAppURL: whatsAppURL(merchantNumber, text)}, nil
}

func writeCustomer(b *strings.Builder, c Customer) {
	remarks := c.Remarks
	if remarks == "" {
		remarks = "None"
	}
	b.WriteString("👤 CUSTOMER DETAILS:\n")
	fmt.Fprintf(b, "Name: %s\n\n", c.Name)
	fmt.Fprintf(b, "📍 Address: %s\n\n", c.Address)
	fmt.Fprintf(b, "📞 Contact: %s\n\n", c.Phone)
	fmt.Fprintf(b, "💬 Remarks: %s\n\n", remarks)
}

func formatSize(d catalog.Dimensions) string {
	return fmt.Sprintf("%g\" x %g\" x %g\"", d.Width, d.Length, d.Height)
}

// whatsAppURL builds the wa.me deep link. Spaces are encoded as %20, not +,
// to keep the pre-filled chat text intact.
func whatsAppURL(number, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
