package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	intconfig "turisflow/internal/config"
	h "turisflow/internal/http/handlers"
	"turisflow/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(),
		gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		api.GET("/ws/boarding", h.BoardingFeed)

		protected := api.Group("")
		protected.Use(middleware.Auth(env.JWTSecret))
		protected.GET("/me", h.Me)

		trips := protected.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.GET("/:id/seats", h.GetTripSeats)
		trips.GET("/:id/route", h.GetTripRoute)
		trips.GET("/:id/manifest", h.GetTripManifestPDF)
		trips.POST("/:id/passengers", h.BookPassenger)
		trips.PUT("/:id/passengers/:paxId/status", h.UpdateBoardingStatus)
		trips.PUT("/:id/passengers/:paxId/reassign", h.ReassignPassenger)
		trips.DELETE("/:id/passengers/:paxId", h.DeletePassenger)

		partners := protected.Group("/partners")
		partners.GET("", h.GetPartners)
		partners.GET("/:id", h.GetPartnerByID)
		partners.POST("", h.CreatePartner)
		partners.PUT("/:id", h.UpdatePartner)
		partners.DELETE("/:id", h.DeletePartner)
		partners.POST("/:id/draft-email", h.DraftPartnerEmail)

		company := protected.Group("/company")
		company.GET("", h.GetCompanyProfile)
		company.PUT("", h.SaveCompanyProfile)

		reports := protected.Group("/reports")
		reports.GET("/summary", h.GetSummaryReport)
		reports.GET("/summary/pdf", h.GetSummaryReportPDF)

		protected.GET("/geocode", h.GeocodeSearch)
	}

	return r
}
