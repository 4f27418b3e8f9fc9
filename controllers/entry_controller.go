package controllers

import (
	"net/http"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Svc *services.EntryService
}

func NewEntryController(svc *services.EntryService) *EntryController {
	return &EntryController{Svc: svc}
}

type entryBody struct {
	Date        string             `json:"date" binding:"required"`
	Sleep       float64            `json:"sleep"`
	HealthyFood float64            `json:"healthy_food"`
	JunkFood    float64            `json:"junk_food"`
	Exercise    float64            `json:"exercise"`
	Water       float64            `json:"water"`
	Reading     float64            `json:"reading"`
	Custom      map[string]float64 `json:"custom"`
}

func (b entryBody) toInput(loc *time.Location) (services.EntryInput, error) {
	date, err := time.ParseInLocation("2006-01-02", b.Date, loc)
	if err != nil {
		return services.EntryInput{}, err
	}
	return services.EntryInput{
		Date:        date,
		Sleep:       b.Sleep,
		HealthyFood: b.HealthyFood,
		JunkFood:    b.JunkFood,
		Exercise:    b.Exercise,
		Water:       b.Water,
		Reading:     b.Reading,
		Custom:      b.Custom,
	}, nil
}

// POST /entries
func (h *EntryController) AddEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var body entryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := body.toInput(time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	entry, err := h.Svc.Add(c.Request.Context(), uid, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /entries/bulk
func (h *EntryController) BulkImport(c *gin.Context) {
	uid := c.GetUint("userID")

	var bodies []entryBody
	if err := c.ShouldBindJSON(&bodies); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ins := make([]services.EntryInput, 0, len(bodies))
	for _, b := range bodies {
		in, err := b.toInput(time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		ins = append(ins, in)
	}

	n, err := h.Svc.BulkImport(c.Request.Context(), uid, ins)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "imported": n})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": n})
}

// GET /entries?from=YYYY-MM-DD&to=YYYY-MM-DD (defaults to the trailing 30 days)
func (h *EntryController) ListEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	from, to, err := parseRange(c, now.AddDate(0, 0, -29), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.Svc.ListRange(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// DELETE /entries
func (h *EntryController) ClearEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := h.Svc.ClearAll(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
