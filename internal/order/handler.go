package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tablelk/woodcraft-backend/internal/cart"
	"github.com/tablelk/woodcraft-backend/internal/catalog"
)

// Handler turns checkout requests into WhatsApp messages. Checkout is a deep
// link, not a payment pipeline, so nothing is stored server-side.
type Handler struct {
	formatter *Formatter
	engine    *cart.Engine
	catalog   *catalog.Service

	// Merchant WhatsApp numbers, one per call-site like the storefront forms.
	checkoutNumber string
	buyNowNumber   string
}

func NewHandler(f *Formatter, engine *cart.Engine, cat *catalog.Service, checkoutNumber, buyNowNumber string) *Handler {
	return &Handler{
		formatter:      f,
		engine:         engine,
		catalog:        cat,
		checkoutNumber: checkoutNumber,
		buyNowNumber:   buyNowNumber,
	}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Post("/api/v1/buy-now", h.buyNow)
}

type checkoutRequest struct {
	Customer Customer `json:"customer"`
}

type buyNowRequest struct {
	ProductID int      `json:"productId"`
	Quantity  int      `json:"quantity"`
	Color     string   `json:"color"`
	Customer  Customer `json:"customer"`
}

// checkout formats the whole cart. The cart is cleared only after a message
// was produced, mirroring the storefront flow.
func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	snap := h.engine.Current()
	if len(snap.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}

	msg, err := h.formatter.FormatCart(snap, payload.Customer, h.checkoutNumber)
	if err != nil {
		if errors.Is(err, ErrMissingRequiredField) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Please fill in all required fields"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	h.engine.Clear()
	return c.JSON(msg)
}

func (h *Handler) buyNow(c *fiber.Ctx) error {
	payload := new(buyNowRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	p, err := h.catalog.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	color := payload.Color
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}

	msg, err := h.formatter.FormatSingleItem(p, payload.Quantity, color, payload.Customer, h.buyNowNumber)
	if err != nil {
		if errors.Is(err, ErrMissingRequiredField) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Please fill in all required fields"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(msg)
}
