package models

import "time"

// Schedule is a job's scheduled span. The API treats it as a half-open
// window: the end instant itself is free for the next booking.
type Schedule struct {
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	ArrivalWindow  int       `json:"arrival_window,omitempty"`
}

// JobFields carries the passthrough categorization the upstream API accepts.
type JobFields struct {
	JobType      *string `json:"job_type,omitempty"`
	BusinessUnit *string `json:"business_unit,omitempty"`
}

// Job mirrors the subset of the upstream job record this tool reads.
type Job struct {
	ID                 string     `json:"id"`
	InvoiceNumber      string     `json:"invoice_number,omitempty"`
	Description        string     `json:"description,omitempty"`
	Customer           *Customer  `json:"customer,omitempty"`
	Address            *Address   `json:"address,omitempty"`
	WorkStatus         string     `json:"work_status,omitempty"`
	Schedule           Schedule   `json:"schedule"`
	JobFields          *JobFields `json:"job_fields,omitempty"`
	TotalAmount        float64    `json:"total_amount,omitempty"`
	OutstandingBalance float64    `json:"outstanding_balance,omitempty"`
	Tags               []string   `json:"tags"`
	LeadSource         *string    `json:"lead_source,omitempty"`
	CreatedAt          time.Time  `json:"created_at,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at,omitempty"`
}

// CreateJobPayload is the payload sent to the upstream create-job endpoint.
type CreateJobPayload struct {
	CustomerID  string     `json:"customer_id"`
	Schedule    Schedule   `json:"schedule"`
	Description string     `json:"description,omitempty"`
	JobFields   *JobFields `json:"job_fields,omitempty"`
}
