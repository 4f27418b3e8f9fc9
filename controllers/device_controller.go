package controllers

import (
	"net/http"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{Push: push}
}

type registerDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

// POST /user/devices
func (h *DeviceController) RegisterDevice(c *gin.Context) {
	uid := c.GetUint("userID")

	if h.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	dev, err := h.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"device": dev})
}
