package housecall

import (
	"context"
	"strconv"

	"backend/internal/models"
)

type jobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// JobsByCustomer lists a customer's jobs. Only the first page is fetched;
// the configured page size is assumed to cover a single customer's calendar.
func (c *Client) JobsByCustomer(ctx context.Context, customerID string) ([]models.Job, error) {
	var out jobsResponse

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"customer_id": customerID,
			"page":        "1",
			"page_size":   strconv.Itoa(c.jobsPageSize),
		}).
		SetResult(&out).
		Get("/jobs")
	if err != nil || resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return out.Jobs, nil
}

// AllJobs lists jobs across every customer, first page only. Used when the
// booking target is one shared calendar rather than a per-customer one.
func (c *Client) AllJobs(ctx context.Context) ([]models.Job, error) {
	var out jobsResponse

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":      "1",
			"page_size": strconv.Itoa(c.jobsPageSize),
		}).
		SetResult(&out).
		Get("/jobs")
	if err != nil || resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return out.Jobs, nil
}

// CreateJob submits a job to the upstream create endpoint as-is. Overlap
// checking happens before this call, in the scheduling package.
func (c *Client) CreateJob(ctx context.Context, payload models.CreateJobPayload) (*models.Job, error) {
	var out models.Job

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/jobs")
	if err != nil || resp.IsError() {
		return nil, upstreamError(resp, err)
	}

	return &out, nil
}
