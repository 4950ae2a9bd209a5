package routes

import (
	"os"
	"strings"

	"massagepro-backend/config"
	"massagepro-backend/controllers"
	"massagepro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func allowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return origins
}

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger())
	r.Use(config.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "API-Version"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Unversioned surface used by the site and the admin SPA.
	// Reads are open; mutations (except the public booking create)
	// require the admin token.
	api := r.Group("/api")
	adminOnly := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{utils.AuthMiddleware(), utils.AdminRequired(), handler}
	}
	{
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.POST("", adminOnly(controllers.CreateService)...)
			services.PUT("/:id", adminOnly(controllers.UpdateService)...)
			services.DELETE("/:id", adminOnly(controllers.DeleteService)...)
			services.PATCH("", adminOnly(controllers.BatchServices)...)
		}

		therapists := api.Group("/therapists")
		{
			therapists.GET("", controllers.GetTherapists)
			therapists.GET("/:id", controllers.GetTherapist)
			therapists.POST("", adminOnly(controllers.CreateTherapist)...)
			therapists.PUT("/:id", adminOnly(controllers.UpdateTherapist)...)
			therapists.DELETE("/:id", adminOnly(controllers.DeleteTherapist)...)
			therapists.PATCH("", adminOnly(controllers.BatchTherapists)...)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", adminOnly(controllers.GetBookings)...)
			bookings.GET("/:id", adminOnly(controllers.GetBooking)...)
			bookings.POST("", controllers.CreateBooking) // public create
			bookings.PUT("/:id", adminOnly(controllers.UpdateBooking)...)
			bookings.DELETE("/:id", adminOnly(controllers.DeleteBooking)...)
			bookings.PATCH("", adminOnly(controllers.BatchBookings)...)
		}
	}

	// Versioned tiers.
	v1 := r.Group("/api/v1", utils.APIVersionMiddleware())
	{
		public := v1.Group("/public")
		{
			public.GET("/services", controllers.GetServices)
			public.GET("/services/:id", controllers.GetService)
			public.GET("/therapists", controllers.GetTherapists)
			public.GET("/therapists/:id", controllers.GetTherapist)
			public.POST("/bookings", controllers.CreateBooking)
			public.POST("/messages", controllers.CreateMessage)
			public.GET("/contact-methods", controllers.GetActiveContactMethods)
		}

		client := v1.Group("/client", utils.ClientAuthMiddleware())
		{
			client.GET("/bookings", controllers.GetClientBookings)
			client.GET("/bookings/:id", controllers.GetBooking)
		}

		adminGroup := v1.Group("/admin", utils.AuthMiddleware(), utils.AdminRequired())
		{
			adminGroup.GET("/dashboard", controllers.GetDashboardOverview)

			adminGroup.GET("/services", controllers.GetServices)
			adminGroup.GET("/services/:id", controllers.GetService)
			adminGroup.POST("/services", controllers.AdminCreateService)
			adminGroup.PUT("/services/:id", controllers.UpdateService)
			adminGroup.DELETE("/services/:id", controllers.DeleteService)
			adminGroup.PATCH("/services", controllers.BatchServices)

			adminGroup.GET("/therapists", controllers.GetTherapists)
			adminGroup.GET("/therapists/:id", controllers.GetTherapist)
			adminGroup.POST("/therapists", controllers.AdminCreateTherapist)
			adminGroup.PUT("/therapists/:id", controllers.UpdateTherapist)
			adminGroup.DELETE("/therapists/:id", controllers.DeleteTherapist)
			adminGroup.PATCH("/therapists", controllers.BatchTherapists)

			adminGroup.GET("/bookings", controllers.GetBookings)
			adminGroup.GET("/bookings/:id", controllers.GetBooking)
			adminGroup.PUT("/bookings/:id", controllers.UpdateBooking)
			adminGroup.DELETE("/bookings/:id", controllers.DeleteBooking)
			adminGroup.PATCH("/bookings", controllers.BatchBookings)

			adminGroup.GET("/messages", controllers.GetMessages)
			adminGroup.GET("/messages/:id", controllers.GetMessage)
			adminGroup.PUT("/messages/:id", controllers.UpdateMessage)
			adminGroup.DELETE("/messages/:id", controllers.DeleteMessage)
			adminGroup.PATCH("/messages", controllers.BatchMessages)

			adminGroup.GET("/contact-methods", controllers.GetContactMethods)
			adminGroup.POST("/contact-methods", controllers.CreateContactMethod)
			adminGroup.PUT("/contact-methods/:id", controllers.UpdateContactMethod)
			adminGroup.DELETE("/contact-methods/:id", controllers.DeleteContactMethod)

			adminGroup.GET("/settings", controllers.GetSettings)
			adminGroup.PUT("/settings", controllers.UpdateSettings)
		}
	}

	return r
}
