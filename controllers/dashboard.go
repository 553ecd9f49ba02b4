package controllers

import (
	"net/http"
	"time"

	"outreachpro-backend/config"
	"outreachpro-backend/models"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalContacts   int64               `json:"totalContacts"`
	ActiveContacts  int64               `json:"activeContacts"`
	TotalTemplates  int64               `json:"totalTemplates"`
	MessagesTotal   int64               `json:"messagesTotal"`
	MessagesToday   int64               `json:"messagesToday"`
	PendingMessages int64               `json:"pendingMessages"`
	ScheduleActive  bool                `json:"scheduleActive"`
	RecentMessages  []models.MessageLog `json:"recentMessages"`
}

func GetDashboardOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var overview DashboardOverview

	config.DB.Model(&models.Contact{}).
		Where("user_id = ?", userID).Count(&overview.TotalContacts)
	config.DB.Model(&models.Contact{}).
		Where("user_id = ? AND status = ?", userID, models.ContactActive).
		Count(&overview.ActiveContacts)
	config.DB.Model(&models.MessageTemplate{}).
		Where("user_id = ?", userID).Count(&overview.TotalTemplates)
	config.DB.Model(&models.MessageLog{}).
		Where("user_id = ?", userID).Count(&overview.MessagesTotal)

	startOfDay := utils.BeginningOfDay(time.Now())
	config.DB.Model(&models.MessageLog{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay).
		Count(&overview.MessagesToday)
	config.DB.Model(&models.MessageLog{}).
		Where("user_id = ? AND status = ?", userID, models.LogPending).
		Count(&overview.PendingMessages)

	var schedule models.ScheduleConfig
	if err := config.DB.Where("user_id = ?", userID).First(&schedule).Error; err == nil {
		overview.ScheduleActive = schedule.IsActive
	}

	config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(5).Find(&overview.RecentMessages)

	c.JSON(http.StatusOK, overview)
}
