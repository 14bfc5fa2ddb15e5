package controllers

import (
	"net/http"

	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CreatePaymentRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Description string `json:"description"`
}

type PaymentController struct {
	Payments *services.PaymentService
	Currency string
}

func NewPaymentController(payments *services.PaymentService, currency string) *PaymentController {
	return &PaymentController{Payments: payments, Currency: currency}
}

// CreatePayment opens a provider checkout session and redirects the
// customer to its hosted payment page.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment payload"})
		return
	}

	description := req.Description
	if description == "" {
		description = "Storefront order"
	}

	redirectURL, svcErr := pc.Payments.CreatePayment(c.Request.Context(), req.Amount, pc.Currency, description)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.Redirect(http.StatusFound, redirectURL)
}

// ExecutePayment lands the provider's success redirect: confirm the session
// and settle the payment record.
func (pc *PaymentController) ExecutePayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	if svcErr := pc.Payments.ExecutePayment(c.Request.Context(), sessionID); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment completed successfully"})
}

// CancelPayment lands the provider's cancel redirect.
func (pc *PaymentController) CancelPayment(c *gin.Context) {
	pc.Payments.CancelPayment(c.Request.Context(), c.Query("session_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Payment canceled"})
}
