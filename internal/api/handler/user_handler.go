package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/api/metrics"
	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// UserHandler handles profile upserts, user listing, and the admin routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Upsert handles PUT /user/:email: create-or-merge the profile document and
// issue a fresh token. This doubles as login.
//
// @Summary      Upsert a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Param        body   body      object  true  "Profile fields (merged via $set)"
// @Success      200    {object}  upsertProfileResponse
// @Failure      400    {object}  errorResponse
// @Router       /user/{email} [put]
func (h *UserHandler) Upsert(c echo.Context) error {
	var fields domain.Document
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.UpsertProfile(c.Request().Context(), c.Param("email"), fields)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, upsertProfileResponse{Result: res.Outcome, Token: res.Token})
}

// List handles GET /user (bearer-protected).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  errorResponse
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := requesterEmail(c); err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.Document{}
	}
	return c.JSON(http.StatusOK, users)
}

// AdminStatus handles GET /admin/:email. A missing identity is a 404, never
// a silent {admin:false}.
//
// @Summary      Report whether an identity holds the admin role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  adminStatusResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	admin, err := h.service.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{Admin: admin})
}

// Promote handles PUT /user/admin/:email (bearer-protected). The requester
// must have an identity in the store; see UserService.Promote for the exact
// (and deliberately reproduced) authorization semantics.
//
// @Summary      Grant the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Target user email"
// @Success      200    {object}  promoteResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /user/admin/{email} [put]
func (h *UserHandler) Promote(c echo.Context) error {
	requester, err := requesterEmail(c)
	if err != nil {
		return err
	}

	outcome, err := h.service.Promote(c.Request().Context(), requester, c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.PromotionsTotal.WithLabelValues("forbidden").Inc()
		}
		return err
	}

	metrics.PromotionsTotal.WithLabelValues("granted").Inc()
	return c.JSON(http.StatusOK, promoteResponse{Result: outcome})
}
