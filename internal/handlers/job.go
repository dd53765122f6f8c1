package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/housecall"
	"backend/internal/models"
	"backend/internal/scheduling"
)

type createJobRequest struct {
	ScheduledStart time.Time `json:"scheduled_start" binding:"required"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Description    string    `json:"description"`
	JobType        *string   `json:"job_type"`
	BusinessUnit   *string   `json:"business_unit"`
}

func (r createJobRequest) toPayload(customerID string) models.CreateJobPayload {
	payload := models.CreateJobPayload{
		CustomerID: customerID,
		Schedule: models.Schedule{
			ScheduledStart: r.ScheduledStart,
			ScheduledEnd:   r.ScheduledEnd,
		},
		Description: r.Description,
	}

	if r.JobType != nil || r.BusinessUnit != nil {
		payload.JobFields = &models.JobFields{
			JobType:      r.JobType,
			BusinessUnit: r.BusinessUnit,
		}
	}

	return payload
}

// GetJobsForCustomer lists the customer's jobs straight from upstream.
func GetJobsForCustomer(hc *housecall.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers/:id/jobs"
		defer handlePanic(c, route)

		jobs, err := hc.JobsByCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

// GetAllJobs lists jobs across every customer.
func GetAllJobs(hc *housecall.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/jobs"
		defer handlePanic(c, route)

		jobs, err := hc.AllJobs(c.Request.Context())
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

// CreateJobForCustomer books a job after the scheduler's overlap check. A
// conflicting window comes back as 409 naming the job already booked there.
func CreateJobForCustomer(scheduler *scheduling.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/customers/:id/jobs"
		defer handlePanic(c, route)

		var req createJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if !req.ScheduledEnd.IsZero() && !req.ScheduledStart.Before(req.ScheduledEnd) {
			respondWithError(c, http.StatusBadRequest, route, "scheduled_start must be before scheduled_end")
			return
		}

		job, err := scheduler.CreateJobChecked(c.Request.Context(), req.toPayload(c.Param("id")))
		if err != nil {
			var conflict *scheduling.ConflictError
			if errors.As(err, &conflict) {
				c.JSON(http.StatusConflict, gin.H{
					"error":              "requested time overlaps an existing job",
					"conflicting_job_id": conflict.JobID,
				})
				return
			}
			respondUpstreamError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"job": job})
	}
}
