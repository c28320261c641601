package catalog

import (
	"errors"
	"fmt"

	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	products := app.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:id", h.HandleGetProduct)

	categories := app.Group("/categories")
	categories.Get("/", h.HandleListCategories)
	categories.Get("/:id", h.HandleGetCategory)
}

// HandleListProducts returns a filtered, paginated product listing.
// @Summary List Products
// @Description Returns one page of products. Supports title substring search and inclusive price bounds.
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Title substring (case-sensitive)"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Success 200 {object} models.ProductPage
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	params := ListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 10),
		Filter:   Filter{Search: c.Query("search")},
	}

	var err error
	if params.Filter.MinPrice, err = priceQuery(c, "min_price"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if params.Filter.MaxPrice, err = priceQuery(c, "max_price"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page, err := h.service.ListProducts(c.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(page)
}

// HandleGetProduct returns a single product by id.
// @Summary Get Product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	product, err := h.service.ProductByID(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Product lookup failed", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(product)
}

// HandleListCategories returns a paginated category listing.
// @Summary List Categories
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} models.CategoryPage
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page, err := h.service.ListCategories(c.Context(), c.QueryInt("page", 1), c.QueryInt("page_size", 10))
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Category listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(page)
}

// HandleGetCategory returns a single category by id.
// @Summary Get Category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /categories/{id} [get]
func (h *Handler) HandleGetCategory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.service.CategoryByID(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Category lookup failed", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
	}
	return c.JSON(category)
}

// priceQuery parses an optional decimal query parameter.
func priceQuery(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid number", ErrInvalidQuery, name)
	}
	return &d, nil
}
