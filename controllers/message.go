package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"outreachpro-backend/config"
	"outreachpro-backend/models"
	"outreachpro-backend/services"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendMessageInput defines the expected JSON structure for the
// on-demand send endpoint
type SendMessageInput struct {
	ContactID     uuid.UUID  `json:"contactId" binding:"required"`
	TemplateID    *uuid.UUID `json:"templateId"`
	CustomMessage string     `json:"customMessage"`
}

type MessageController struct {
	Sender  *services.SenderService
	Limiter *utils.UserRateLimiter
}

// SendMessage generates a wa.me link for one contact and logs it as sent
func (mc *MessageController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if mc.Limiter != nil && !mc.Limiter.Allow(userID.String()) {
		utils.RespondWithError(c, http.StatusTooManyRequests, "Too many messages, slow down")
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	link, err := mc.Sender.SendNow(c.Request.Context(), userID, services.SendInput{
		ContactID:     input.ContactID,
		TemplateID:    input.TemplateID,
		CustomMessage: input.CustomMessage,
	}, time.Now())

	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Contact or template not found")
		case errors.Is(err, services.ErrInvalidInput):
			utils.RespondWithError(c, http.StatusBadRequest, "No message content provided")
		case errors.As(err, &validationErr):
			utils.RespondWithError(c, http.StatusBadRequest, validationErr.Reason)
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"whatsappUrl": link,
		"message":     "WhatsApp link generated successfully",
	})
}

// GetMessages retrieves the user's message log, newest first
func GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := config.DB.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var logs []models.MessageLog
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": logs})
}
