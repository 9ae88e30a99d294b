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

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary List payments
// @Description List payments, optionally narrowed to one reservation
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param reservation_id query string false "Reservation ID filter"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var reservationID *uuid.UUID
	if raw, ok := c.GetQuery("reservation_id"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation ID format",
			})
			return
		}
		reservationID = &id
	}

	views, err := h.paymentQueries.List(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Get payment
// @Description Get payment by ID
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	view, err := h.paymentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Record payment
// @Description Record a payment against a reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Update payment
// @Description Update payment fields
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentRequest true "Payment update"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Delete payment
// @Description Delete a payment record
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	if err := h.paymentCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errs.Is(err, commands.ErrPaymentRefersMissing):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation or customer does not exist",
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
