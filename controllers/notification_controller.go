package controllers

import (
	"net/http"
	"strconv"

	"github.com/jaseerashabeer/smart-habit-tracker/config"
	"github.com/jaseerashabeer/smart-habit-tracker/models"

	"github.com/gin-gonic/gin"
)

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /alerts?limit=20
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
