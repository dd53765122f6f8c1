package housecall

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"backend/internal/config"
)

// Client talks to the Housecall Pro REST API. Credentials and timeouts come
// from the Config passed at construction; there is no package-level client.
type Client struct {
	rest           *resty.Client
	searchPageSize int
	jobsPageSize   int
}

func NewClient(cfg config.Config) *Client {
	rest := resty.New().
		SetBaseURL(cfg.HousecallBaseURL).
		SetAuthToken(cfg.HousecallAPIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.UpstreamTimeout)

	return &Client{
		rest:           rest,
		searchPageSize: cfg.SearchPageSize,
		jobsPageSize:   cfg.JobsPageSize,
	}
}

// UpstreamError is any transport failure or non-2xx answer from the
// Housecall Pro API on a call that cannot be swallowed.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("housecall: %s", e.Message)
	}
	return fmt.Sprintf("housecall: upstream returned %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

// upstreamError builds an *UpstreamError from a failed resty exchange,
// preferring the message in the upstream's {"error": ...} body.
func upstreamError(resp *resty.Response, err error) error {
	if err != nil {
		return &UpstreamError{Message: err.Error()}
	}

	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)

	message := body.Error
	if message == "" {
		message = resp.Status()
	}

	return &UpstreamError{StatusCode: resp.StatusCode(), Message: message}
}
