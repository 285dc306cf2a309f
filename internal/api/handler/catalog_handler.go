package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// CatalogHandler serves the public CRUD routes over services, reviews,
// and products.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListServices handles GET /service.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  object
// @Router       /service [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	return h.list(c, h.service.ListServices)
}

// GetService handles GET /service/:id.
//
// @Summary      Get a single service
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id (hex)"
// @Success      200  {object}  object
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /service/{id} [get]
func (h *CatalogHandler) GetService(c echo.Context) error {
	doc, err := h.service.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// ListReviews handles GET /review.
//
// @Summary      List reviews
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  object
// @Router       /review [get]
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	return h.list(c, h.service.ListReviews)
}

// AddReview handles POST /review.
//
// @Summary      Add a review
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Review document"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /review [post]
func (h *CatalogHandler) AddReview(c echo.Context) error {
	return h.insert(c, h.service.AddReview)
}

// ListProducts handles GET /product.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  object
// @Router       /product [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return h.list(c, h.service.ListProducts)
}

// AddProduct handles POST /product.
//
// @Summary      Add a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Product document"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /product [post]
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	return h.insert(c, h.service.AddProduct)
}

// DeleteProduct handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id (hex)"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  errorResponse
// @Router       /product/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	deleted, err := h.service.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Acknowledged: true, DeletedCount: deleted})
}

type listFn func(ctx context.Context) ([]domain.Document, error)

func (h *CatalogHandler) list(c echo.Context, fn listFn) error {
	docs, err := fn(c.Request().Context())
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *CatalogHandler) insert(c echo.Context, fn func(context.Context, domain.Document) (domain.Document, error)) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inserted, err := fn(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Result: inserted})
}
