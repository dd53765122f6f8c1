package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/housecall"
	"backend/internal/scheduling"
)

// GetAvailability returns the customer's free hourly slots for one day,
// bounded by the configured working hours. Dates are interpreted in UTC, the
// same zone upstream schedules are expressed in.
func GetAvailability(hc *housecall.Client, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers/:id/availability"
		defer handlePanic(c, route)

		day, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "date must be YYYY-MM-DD")
			return
		}

		jobs, err := hc.JobsByCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}

		dayStart := day.Add(time.Duration(cfg.WorkDayStartHour) * time.Hour)
		dayEnd := day.Add(time.Duration(cfg.WorkDayEndHour) * time.Hour)

		slots := scheduling.FreeSlots(scheduling.HourlySlots(dayStart, dayEnd), jobs)

		c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": slots})
	}
}
