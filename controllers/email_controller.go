package controllers

import (
	"net/http"

	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SendEmailRequest struct {
	RecipientEmail string `json:"recipientEmail" binding:"required,email"`
	Subject        string `json:"subject" binding:"required"`
	Message        string `json:"message" binding:"required"`
}

type EmailController struct {
	Sender services.EmailSender
	Logger *zap.Logger
}

func NewEmailController(sender services.EmailSender, logger *zap.Logger) *EmailController {
	return &EmailController{Sender: sender, Logger: logger}
}

// SendEmail delivers a message through the configured SMTP transport.
func (ec *EmailController) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email payload"})
		return
	}

	if ec.Sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Email transport not configured"})
		return
	}

	if err := ec.Sender.Send(c.Request.Context(), req.RecipientEmail, req.Subject, req.Message); err != nil {
		ec.Logger.Error("Failed to send email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Email sending failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
