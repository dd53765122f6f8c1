package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/handlers"
	"backend/internal/housecall"
	"backend/internal/middleware"
	"backend/internal/scheduling"
)

func main() {
	cfg := config.Load()

	hc := housecall.NewClient(cfg)
	scheduler := scheduling.NewScheduler(hc, cfg.DefaultJobDuration)

	log.Println("Housecall client ready for:", cfg.HousecallBaseURL)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	r.GET("/", handlers.Home())

	api := r.Group("/api")
	{
		api.POST("/customers/exist", handlers.CheckCustomerExists(hc))
		api.GET("/customers/:id", handlers.GetCustomer(hc))
		api.POST("/customers", handlers.CreateCustomer(hc))

		api.GET("/customers/:id/jobs", handlers.GetJobsForCustomer(hc))
		api.POST("/customers/:id/jobs", handlers.CreateJobForCustomer(scheduler))
		api.GET("/customers/:id/availability", handlers.GetAvailability(hc, cfg))

		api.GET("/jobs", handlers.GetAllJobs(hc))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
