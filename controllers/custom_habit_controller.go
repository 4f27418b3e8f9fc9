package controllers

import (
	"net/http"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type CustomHabitController struct {
	Svc *services.CustomHabitService
}

func NewCustomHabitController(svc *services.CustomHabitService) *CustomHabitController {
	return &CustomHabitController{Svc: svc}
}

type customHabitBody struct {
	Name string  `json:"name" binding:"required"`
	Cap  float64 `json:"cap" binding:"required,gt=0"`
}

// POST /habits/custom
func (h *CustomHabitController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")

	var body customHabitBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.Svc.Upsert(c.Request.Context(), uid, body.Name, body.Cap)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, habit)
}

// GET /habits/custom
func (h *CustomHabitController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	habits, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}
