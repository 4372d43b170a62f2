package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Srinidhi1009/travelease-project/config"
	"github.com/Srinidhi1009/travelease-project/controllers"
	"github.com/Srinidhi1009/travelease-project/middlewares"
	"github.com/Srinidhi1009/travelease-project/repository"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	repo := repository.NewBookings(config.DB)

	// Public API Routes

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/signup", controllers.SignupHandler(config.DB))
		api.POST("/login", controllers.LoginHandler(config.DB))
		api.POST("/forgot-password", controllers.ForgotPasswordHandler(config.DB))
		api.POST("/reset-password", controllers.ResetPasswordHandler(config.DB))
		api.POST("/refresh", controllers.RefreshTokenHandler(config.DB))
		api.POST("/logout", controllers.LogoutHandler(config.DB))

		// Pricing is public: the builder quotes before login
		api.POST("/quote", controllers.Quote())
		api.GET("/cabs/options", controllers.CabOptions())

		// City guide content for the explore pages
		api.GET("/places/:city", controllers.GetCityGuide())
		api.GET("/assistant/greeting", controllers.AssistantGreeting())

		// Mock gateway callback, hit by the redirect page
		api.POST("/payments/mock/confirm/:id", controllers.MockConfirmPayment(config.DB))
	}

	// Protected User Routes (Require Login)

	user := r.Group("/api/user").Use(middlewares.AuthMiddleware())
	{
		user.POST("/checkout", controllers.Checkout(config.DB, repo))
		user.POST("/planner", controllers.Planner(config.DB, repo))
		user.GET("/bookings", controllers.GetUserBookings(repo))
		user.GET("/bookings/:id", controllers.GetBookingDetails(repo))
		user.PUT("/bookings/:id/cancel", controllers.CancelBooking(repo))
		user.GET("/bookings/:id/rebook", controllers.RebookTemplate(repo))

		user.POST("/payments/initiate", controllers.InitiatePayment(config.DB))
		user.GET("/payments", controllers.GetUserPayments(config.DB))

		user.GET("/seatmap", controllers.SeatMap(repo))
		user.GET("/dashboard", controllers.Dashboard(repo))
		user.POST("/assistant/chat", controllers.AssistantChat(repo))

		user.POST("/trips", controllers.SaveTrip(config.DB))
		user.GET("/trips", controllers.GetSavedTrips(config.DB))
		user.DELETE("/trips/:id", controllers.DeleteSavedTrip(config.DB))
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
