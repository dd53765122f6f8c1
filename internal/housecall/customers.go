package housecall

import (
	"context"
	"net/http"
	"strconv"

	"backend/internal/models"
)

type customersResponse struct {
	Customers []models.Customer `json:"customers"`
}

// SearchCustomers runs a single full-text search. The upstream q parameter
// matches across names, contact fields and addresses on its side.
func (c *Client) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	var out customersResponse

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        query,
			"per_page": strconv.Itoa(c.searchPageSize),
		}).
		SetResult(&out).
		Get("/customers")
	if err != nil || resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return out.Customers, nil
}

// GetCustomer fetches a customer by id. A missing record is not an error:
// the upstream 404 comes back as (nil, nil).
func (c *Client) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var out models.Customer

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/customers/" + id)
	if err != nil {
		return nil, upstreamError(resp, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return &out, nil
}

// CreateCustomer submits a new customer record and returns it as upstream
// stored it.
func (c *Client) CreateCustomer(ctx context.Context, input models.CreateCustomerInput) (*models.Customer, error) {
	var out models.Customer

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&out).
		Post("/customers")
	if err != nil || resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return &out, nil
}
