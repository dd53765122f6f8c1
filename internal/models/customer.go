package models

import (
	"strings"
	"time"
)

// Address is an upstream service address. Lines are free text; nothing here
// is validated structurally, the search endpoint treats them as query fuel.
type Address struct {
	ID          string  `json:"id,omitempty"`
	Street      string  `json:"street"`
	StreetLine2 string  `json:"street_line_2,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Zip         string  `json:"zip,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// Customer mirrors the upstream customer record. ID is the identity key;
// every other field is descriptive and may collide across records.
type Customer struct {
	ID                   string    `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	MobileNumber         string    `json:"mobile_number"`
	HomeNumber           *string   `json:"home_number,omitempty"`
	WorkNumber           *string   `json:"work_number,omitempty"`
	Company              *string   `json:"company,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	LeadSource           *string   `json:"lead_source,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
	Tags                 []string  `json:"tags"`
	Addresses            []Address `json:"addresses"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// CreateCustomerInput is the payload sent to the upstream create endpoint.
type CreateCustomerInput struct {
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	MobileNumber         string    `json:"mobile_number"`
	HomeNumber           *string   `json:"home_number,omitempty"`
	WorkNumber           *string   `json:"work_number,omitempty"`
	Company              *string   `json:"company,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	LeadSource           *string   `json:"lead_source,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
	Tags                 []string  `json:"tags"`
	Addresses            []Address `json:"addresses"`
}

// SearchFields are the partial identifiers a caller may supply when looking
// for an existing customer. Every populated field is searched independently.
type SearchFields struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address"`
}

// Queries returns one search term per populated field, in a fixed order:
// name, email, phone, then address street and street_line_2 as separate
// terms. Blank or whitespace-only fields produce no term.
func (f SearchFields) Queries() []string {
	queries := make([]string, 0, 5)

	for _, value := range []string{f.Name, f.Email, f.Phone} {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			queries = append(queries, trimmed)
		}
	}

	if f.Address != nil {
		for _, value := range []string{f.Address.Street, f.Address.StreetLine2} {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				queries = append(queries, trimmed)
			}
		}
	}

	return queries
}
