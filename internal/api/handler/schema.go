package handler

import (
	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// errorResponse documents the standard error envelope for swagger purposes;
// rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is the {success, result} envelope used by the insert
// endpoints (orders, reviews, products), kept for client compatibility.
type successResponse struct {
	Success bool            `json:"success"`
	Result  domain.Document `json:"result"`
}

// duplicateOrderResponse is returned when an order submission matches an
// existing (partsName, email) pair: not an error, the original record rides
// along under "order".
type duplicateOrderResponse struct {
	Success bool            `json:"success"`
	Order   domain.Document `json:"order"`
}

// deleteResponse mirrors the store's delete acknowledgement.
type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// submitOrderRequest carries the two fields of an order body that intake
// validates; everything else is stored verbatim.
type submitOrderRequest struct {
	PartsName string `json:"partsName" validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
}

// upsertProfileResponse is the {result, token} envelope of PUT /user/:email.
type upsertProfileResponse struct {
	Result ports.UpdateOutcome `json:"result"`
	Token  string              `json:"token"`
}

// adminStatusResponse answers GET /admin/:email.
type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// promoteResponse wraps the store acknowledgement of a role grant.
type promoteResponse struct {
	Result ports.UpdateOutcome `json:"result"`
}
