package housecall

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/config"
	"backend/internal/models"
)

func testClient(baseURL string) *Client {
	return NewClient(config.Config{
		HousecallAPIKey:  "test-key",
		HousecallBaseURL: baseURL,
		UpstreamTimeout:  2 * time.Second,
		SearchPageSize:   50,
		JobsPageSize:     100,
	})
}

func TestSearchCustomersSendsQueryAndPageSize(t *testing.T) {
	var gotQuery, gotPerPage, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPerPage = r.URL.Query().Get("per_page")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"customers": []models.Customer{{ID: "cus_1", FirstName: "Jane"}},
		})
	}))
	defer server.Close()

	customers, err := testClient(server.URL).SearchCustomers(context.Background(), "Jane")
	if err != nil {
		t.Fatalf("SearchCustomers returned error: %v", err)
	}

	if gotQuery != "Jane" {
		t.Fatalf("expected q=Jane, got %q", gotQuery)
	}
	if gotPerPage != "50" {
		t.Fatalf("expected per_page=50, got %q", gotPerPage)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth header, got %q", gotAuth)
	}
	if len(customers) != 1 || customers[0].ID != "cus_1" {
		t.Fatalf("unexpected customers: %+v", customers)
	}
}

func TestGetCustomerNotFoundIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	customer, err := testClient(server.URL).GetCustomer(context.Background(), "cus_missing")
	if err != nil {
		t.Fatalf("expected nil error for 404, got %v", err)
	}
	if customer != nil {
		t.Fatalf("expected nil customer for 404, got %+v", customer)
	}
}

func TestGetCustomerServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"upstream exploded"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetCustomer(context.Background(), "cus_1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upstream.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", upstream.StatusCode)
	}
	if upstream.Message != "upstream exploded" {
		t.Fatalf("expected upstream message, got %q", upstream.Message)
	}
}

func TestJobsByCustomerSendsPagination(t *testing.T) {
	var gotCustomerID, gotPage, gotPageSize string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCustomerID = r.URL.Query().Get("customer_id")
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("page_size")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"jobs": []models.Job{{ID: "job_1"}}})
	}))
	defer server.Close()

	jobs, err := testClient(server.URL).JobsByCustomer(context.Background(), "cus_1")
	if err != nil {
		t.Fatalf("JobsByCustomer returned error: %v", err)
	}

	if gotCustomerID != "cus_1" || gotPage != "1" || gotPageSize != "100" {
		t.Fatalf("unexpected params: customer_id=%q page=%q page_size=%q", gotCustomerID, gotPage, gotPageSize)
	}
	if len(jobs) != 1 || jobs[0].ID != "job_1" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestCreateJobPostsPayload(t *testing.T) {
	var gotPayload models.CreateJobPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/jobs" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Job{ID: "job_new", Schedule: gotPayload.Schedule})
	}))
	defer server.Close()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	payload := models.CreateJobPayload{
		CustomerID: "cus_1",
		Schedule: models.Schedule{
			ScheduledStart: start,
			ScheduledEnd:   start.Add(2 * time.Hour),
		},
		Description: "Water heater install",
	}

	job, err := testClient(server.URL).CreateJob(context.Background(), payload)
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}

	if gotPayload.CustomerID != "cus_1" {
		t.Fatalf("expected customer_id cus_1, got %q", gotPayload.CustomerID)
	}
	if !gotPayload.Schedule.ScheduledStart.Equal(start) {
		t.Fatalf("unexpected scheduled_start %v", gotPayload.Schedule.ScheduledStart)
	}
	if job.ID != "job_new" {
		t.Fatalf("unexpected created job: %+v", job)
	}
}

func TestCreateCustomerUpstreamErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"email is invalid"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateCustomer(context.Background(), models.CreateCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upstream.Message != "email is invalid" {
		t.Fatalf("expected upstream validation message, got %q", upstream.Message)
	}
}
