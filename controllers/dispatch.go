package controllers

import (
	"fmt"
	"net/http"
	"time"

	"outreachpro-backend/services"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// DispatchController exposes the scheduled-dispatch run to the external
// trigger. It is guarded by a shared token, not user auth; the in-process
// cron uses the same DispatchService directly.
type DispatchController struct {
	Service *services.DispatchService
	Token   string
}

// Run performs one dispatch pass. Individual schedule and contact
// failures are reported inside the summary; only a failure to load the
// schedule set makes the whole run fail.
func (dc *DispatchController) Run(c *gin.Context) {
	if dc.Token == "" || c.GetHeader("X-Dispatch-Token") != dc.Token {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid dispatch token")
		return
	}

	summary, err := dc.Service.RunOnce(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Processed %d scheduled messages", summary.Logged),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"summary":   summary,
	})
}
