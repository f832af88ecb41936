// internal/handlers/customer/customer.go
package customer

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"ltv-service/internal/db"
	"ltv-service/internal/domain/customer"
	"ltv-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// LTVService is the surface the handlers need from the customer service.
type LTVService interface {
	AddCustomer(ctx context.Context, id int64, phone string, ltv int64) (int64, error)
	LTVByID(ctx context.Context, id int64) (int64, bool, error)
	LTVByPhone(ctx context.Context, phone string) (int64, bool, error)
}

type CustomerHandler struct {
	ltvService LTVService
}

func NewCustomerHandler(ltvService LTVService) *CustomerHandler {
	return &CustomerHandler{ltvService: ltvService}
}

// AddCustomer creates or overwrites the record for a customer id
func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	var req customer.AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	id, err := h.ltvService.AddCustomer(c.Request.Context(), req.CustomerID, req.PhoneNumber, req.LTV)
	if err != nil {
		h.writeServiceError(c, "failed to add customer", err)
		return
	}

	response.Success(c, http.StatusCreated, "customer added successfully", customer.AddCustomerResponse{CustomerID: id})
}

// GetLTVByID returns the lifetime value for a customer id
func (h *CustomerHandler) GetLTVByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer ID", err)
		return
	}

	ltv, found, err := h.ltvService.LTVByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, "failed to get ltv", err)
		return
	}
	if !found {
		response.NotFound(c, "customer not found")
		return
	}

	response.Success(c, http.StatusOK, "ltv retrieved", customer.LTVResponse{LTV: ltv})
}

// GetLTVByPhone returns the lifetime value for a phone number // ?phone=xxx
func (h *CustomerHandler) GetLTVByPhone(c *gin.Context) {
	phone := c.Query("phone")

	ltv, found, err := h.ltvService.LTVByPhone(c.Request.Context(), phone)
	if err != nil {
		h.writeServiceError(c, "failed to get ltv", err)
		return
	}
	if !found {
		response.NotFound(c, "customer not found")
		return
	}

	response.Success(c, http.StatusOK, "ltv retrieved", customer.LTVResponse{LTV: ltv})
}

// writeServiceError maps service errors onto HTTP statuses: domain
// validation failures are the caller's fault, a missing connection is a
// service outage, everything else is internal.
func (h *CustomerHandler) writeServiceError(c *gin.Context, message string, err error) {
	var formatErr *customer.PhoneFormatError
	var idErr *customer.InvalidIDError
	var ltvErr *customer.InvalidLTVError

	switch {
	case errors.As(err, &formatErr), errors.As(err, &idErr), errors.As(err, &ltvErr):
		response.Error(c, http.StatusBadRequest, message, err)
	case errors.Is(err, db.ErrHandlerUnavailable):
		response.Error(c, http.StatusServiceUnavailable, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
