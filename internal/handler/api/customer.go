package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary List customers
// @Description List all customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Failure 401 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	views, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Get customer
// @Description Get customer by ID
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Create customer
// @Description Register a customer record
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.customerCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Description Update customer fields
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Customer update"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.customerCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Delete customer
// @Description Delete a customer without reservations or payments
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	if err := h.customerCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errs.Is(err, commands.ErrCustomerHasRecords):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Customer still has reservations or payments",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
