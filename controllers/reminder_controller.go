package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/services"
)

// SendReminders handles POST /api/reminders/send - runs a reminder dispatch
// for the requested day-offsets (comma-separated "days" query, default "3,1")
func SendReminders(c *gin.Context) {
	offsets := services.DefaultReminderOffsets
	if raw := c.Query("days"); raw != "" {
		parsed := []int{}
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "VALIDATION_ERROR",
						"message": "days must be a comma-separated list of positive integers",
					},
				})
				return
			}
			parsed = append(parsed, n)
		}
		offsets = parsed
	}

	sent, summary := services.DispatchReminders(config.GetDB(), offsets, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"reminders_sent": sent,
		"summary":        summary,
	})
}
