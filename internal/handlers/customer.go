package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/housecall"
	"backend/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type searchCustomerRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *models.Address `json:"address"`
}

func (r searchCustomerRequest) fields() models.SearchFields {
	return models.SearchFields{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type createCustomerRequest struct {
	FirstName            string           `json:"first_name" binding:"required"`
	LastName             string           `json:"last_name" binding:"required"`
	Email                string           `json:"email" binding:"required,email"`
	MobileNumber         string           `json:"mobile_number" binding:"required"`
	HomeNumber           *string          `json:"home_number"`
	WorkNumber           *string          `json:"work_number"`
	Company              *string          `json:"company"`
	NotificationsEnabled *bool            `json:"notifications_enabled"`
	LeadSource           *string          `json:"lead_source"`
	Notes                *string          `json:"notes"`
	Tags                 []string         `json:"tags"`
	Addresses            []models.Address `json:"addresses"`
}

// toInput applies the documented defaults: notifications are off unless the
// caller explicitly enables them, tags and addresses become empty lists when
// absent.
func (r createCustomerRequest) toInput() models.CreateCustomerInput {
	input := models.CreateCustomerInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		HomeNumber:   r.HomeNumber,
		WorkNumber:   r.WorkNumber,
		Company:      r.Company,
		LeadSource:   r.LeadSource,
		Notes:        r.Notes,
		Tags:         r.Tags,
		Addresses:    r.Addresses,
	}

	if r.NotificationsEnabled != nil {
		input.NotificationsEnabled = *r.NotificationsEnabled
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}
	if input.Addresses == nil {
		input.Addresses = []models.Address{}
	}

	return input
}

/* =========================
   HANDLERS
========================= */

// CheckCustomerExists resolves partial identifying fields to existing
// customers. An entirely empty field set is a valid "does not exist" answer,
// not an error.
func CheckCustomerExists(hc *housecall.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/customers/exist"
		defer handlePanic(c, route)

		var req searchCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		customers, err := hc.FindCustomers(c.Request.Context(), req.fields())
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}

		if len(customers) == 0 {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"exists": true, "customers": customers})
	}
}

func GetCustomer(hc *housecall.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers/:id"
		defer handlePanic(c, route)

		customer, err := hc.GetCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}
		if customer == nil {
			respondWithError(c, http.StatusNotFound, route, "customer not found")
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}

func CreateCustomer(hc *housecall.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/customers"
		defer handlePanic(c, route)

		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		customer, err := hc.CreateCustomer(c.Request.Context(), req.toInput())
		if err != nil {
			respondUpstreamError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"customer": customer})
	}
}
