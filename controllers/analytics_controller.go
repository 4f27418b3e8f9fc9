package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /analytics/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
// Defaults to the trailing 7 days.
func (h *AnalyticsController) GetSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	from, to, err := parseRange(c, now.AddDate(0, 0, -6), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.Summary(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		c.JSON(http.StatusOK, gin.H{"message": "not enough data in the selected range"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /analytics/alerts/evaluate
// Recomputes the trailing-7-day thresholds and fans out any alerts.
func (h *AnalyticsController) EvaluateAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	msgs, err := h.Svc.EvaluateAlerts(c.Request.Context(), uid, now.AddDate(0, 0, -6), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": msgs})
}

// --- helpers ---

func parseRange(c *gin.Context, defFrom, defTo time.Time) (time.Time, time.Time, error) {
	loc := defFrom.Location()
	from, to := defFrom, defTo

	if v := c.Query("from"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			return from, to, errors.New("invalid from date")
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			return from, to, errors.New("invalid to date")
		}
		to = parsed
	}
	if to.Before(from) {
		return from, to, errors.New("`to` must be on/after `from`")
	}
	return from, to, nil
}
