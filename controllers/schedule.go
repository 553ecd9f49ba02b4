package controllers

import (
	"errors"
	"net/http"
	"time"

	"outreachpro-backend/config"
	"outreachpro-backend/models"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpsertScheduleInput defines the expected JSON structure. Each user
// has at most one schedule configuration; PUT creates or replaces it.
type UpsertScheduleInput struct {
	IsActive          bool       `json:"isActive"`
	SendDays          []string   `json:"sendDays" binding:"required"`
	SendTime          string     `json:"sendTime" binding:"required"`
	Timezone          string     `json:"timezone" binding:"required"`
	DefaultTemplateID *uuid.UUID `json:"defaultTemplateId"`
}

// GetSchedule retrieves the user's schedule configuration
func GetSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var schedule models.ScheduleConfig
	if err := config.DB.Where("user_id = ?", userID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No schedule configured")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpsertSchedule creates or replaces the user's schedule configuration
func UpsertSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpsertScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for _, day := range input.SendDays {
		if !utils.ValidateWeekday(day) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid weekday name: "+day)
			return
		}
	}
	if !utils.ValidateSendTime(input.SendTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "sendTime must be HH:MM (24h)")
		return
	}
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown timezone: "+input.Timezone)
		return
	}

	// A default template must exist and belong to the same user
	if input.DefaultTemplateID != nil {
		var template models.MessageTemplate
		if err := config.DB.Where("user_id = ? AND id = ?", userID, *input.DefaultTemplateID).
			First(&template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Default template not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	var schedule models.ScheduleConfig
	err := config.DB.Where("user_id = ?", userID).First(&schedule).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	schedule.UserID = userID
	schedule.IsActive = input.IsActive
	schedule.SendDays = models.WeekdaySet(input.SendDays)
	schedule.SendTime = input.SendTime
	schedule.Timezone = input.Timezone
	schedule.DefaultTemplateID = input.DefaultTemplateID

	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = config.DB.Create(&schedule).Error
	} else {
		err = config.DB.Save(&schedule).Error
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}
