package catalog

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog over HTTP. All routes are public and read-only.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/featured", h.featuredProducts)
	app.Get("/api/v1/categories", h.listCategories)
	app.Get("/api/v1/materials", h.listMaterials)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	f := Filter{
		Search:     c.Query("search"),
		Categories: splitParam(c.Query("category")),
		Materials:  splitParam(c.Query("material")),
		MinPrice:   c.QueryInt("minPrice"),
		MaxPrice:   c.QueryInt("maxPrice"),
	}
	return c.JSON(h.service.Filter(f))
}

func (h *Handler) featuredProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.Featured())
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.AllCategories())
}

func (h *Handler) listMaterials(c *fiber.Ctx) error {
	return c.JSON(h.service.AllMaterials())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

// splitParam parses repeatable comma-separated query values.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
