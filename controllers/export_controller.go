package controllers

import (
	"net/http"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Svc *services.ExportService
}

func NewExportController(svc *services.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

// GET /entries/export
func (h *ExportController) ExportCSV(c *gin.Context) {
	uid := c.GetUint("userID")

	data, err := h.Svc.ExportCSV(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="habit_data.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// POST /entries/import (multipart form, field "file")
func (h *ExportController) ImportCSV(c *gin.Context) {
	uid := c.GetUint("userID")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	n, err := h.Svc.ImportCSV(c.Request.Context(), uid, f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "imported": n})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}

// POST /entries/backup
func (h *ExportController) BackupToS3(c *gin.Context) {
	uid := c.GetUint("userID")

	url, err := h.Svc.BackupToS3(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
