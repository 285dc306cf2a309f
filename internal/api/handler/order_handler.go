package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/api/metrics"
	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order intake, listing, and deletion.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Submit handles POST /order.
//
// @Summary      Submit an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      submitOrderRequest  true  "Order body; arbitrary extra fields are stored verbatim"
// @Success      200   {object}  successResponse     "accepted, or {success:false, order} when the (partsName, email) pair already exists"
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /order [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	req := submitOrderRequest{
		PartsName: stringField(doc, domain.FieldPartsName),
		Email:     stringField(doc, domain.FieldEmail),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.service.Submit(c.Request().Context(), ports.SubmitOrderInput{
		PartsName: req.PartsName,
		Email:     req.Email,
		Fields:    doc,
	})
	if err != nil {
		return err
	}

	if !res.Accepted {
		metrics.OrdersSubmittedTotal.WithLabelValues("duplicate").Inc()
		return c.JSON(http.StatusOK, duplicateOrderResponse{Success: false, Order: res.Record})
	}

	metrics.OrdersSubmittedTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true, Result: res.Record})
}

// List handles GET /order (bearer-protected).
//
// The email query parameter is a caller-input requirement, not an ownership
// check: it is not compared against the authenticated identity.
//
// @Summary      List orders for a requester
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Requester email"
// @Success      200    {array}   object
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /order [get]
func (h *OrderHandler) List(c echo.Context) error {
	if _, err := requesterEmail(c); err != nil {
		return err
	}

	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	orders, err := h.service.ListForRequester(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Document{}
	}
	return c.JSON(http.StatusOK, orders)
}

// Delete handles DELETE /order/:id. No ownership check is performed.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id (hex)"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  errorResponse
// @Router       /order/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if deleted > 0 {
		metrics.OrdersDeletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Acknowledged: true, DeletedCount: deleted})
}

func stringField(doc domain.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}
