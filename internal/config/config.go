package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the server needs. It is built once in main
// and handed to the pieces that use it; nothing reads the environment later.
type Config struct {
	Port          string
	AllowedOrigin string

	HousecallAPIKey  string
	HousecallBaseURL string
	UpstreamTimeout  time.Duration

	// SearchPageSize is the per_page value sent with each customer search.
	SearchPageSize int
	// JobsPageSize is the page_size value sent when listing jobs.
	JobsPageSize int

	// DefaultJobDuration is used when a create-job request carries a start
	// time but no end time.
	DefaultJobDuration time.Duration

	// Working-day bounds for the availability endpoint, as hours of the day.
	WorkDayStartHour int
	WorkDayEndHour   int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	return Config{
		Port:               getEnv("PORT", "5000"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		HousecallAPIKey:    getEnv("HOUSECALL_API_KEY", ""),
		HousecallBaseURL:   getEnv("HOUSECALL_API_BASE", "https://api.housecallpro.com"),
		UpstreamTimeout:    getDurationEnv("UPSTREAM_TIMEOUT_SECONDS", 15, time.Second),
		SearchPageSize:     getIntEnv("SEARCH_PAGE_SIZE", 50),
		JobsPageSize:       getIntEnv("JOBS_PAGE_SIZE", 100),
		DefaultJobDuration: getDurationEnv("DEFAULT_JOB_DURATION_HOURS", 2, time.Hour),
		WorkDayStartHour:   getIntEnv("WORKDAY_START_HOUR", 8),
		WorkDayEndHour:     getIntEnv("WORKDAY_END_HOUR", 18),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	if fallback == "" {
		log.Fatalf("ENV %s is required", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("ENV %s is not a positive integer, using %d", key, fallback)
	}
	return fallback
}

func getDurationEnv(key string, fallback int, unit time.Duration) time.Duration {
	return time.Duration(getIntEnv(key, fallback)) * unit
}
