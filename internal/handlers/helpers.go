package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/housecall"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondUpstreamError maps a failed upstream call to a 502 with the
// upstream's own message when one is available.
func respondUpstreamError(c *gin.Context, route string, err error) {
	var upstream *housecall.UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		respondWithError(c, http.StatusBadGateway, route, upstream.Message)
		return
	}
	respondWithError(c, http.StatusBadGateway, route, "upstream request failed")
}
