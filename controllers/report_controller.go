package controllers

import (
	"errors"
	"net/http"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// POST /analytics/report/email
func (h *ReportController) SendWeeklyReport(c *gin.Context) {
	uid := c.GetUint("userID")

	err := h.Svc.SendWeeklyReport(c.Request.Context(), uid)
	if errors.Is(err, services.ErrNoReportData) {
		c.JSON(http.StatusOK, gin.H{"message": "not enough data for a weekly report"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weekly report sent"})
}
