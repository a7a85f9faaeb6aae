package routes

import (
	"visitacare-backend/config"
	"visitacare-backend/controllers"
	"visitacare-backend/services"
	"visitacare-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(messageService *services.MessageService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Visitor routes
		visitors := api.Group("/visitors")
		{
			visitors.POST("", controllers.CreateVisitor)
			visitors.GET("", controllers.GetVisitors)
			visitors.GET("/:id", controllers.GetVisitor)
			visitors.PUT("/:id", controllers.UpdateVisitor)
			visitors.DELETE("/:id", controllers.DeleteVisitor)
		}

		// Visit routes
		visits := api.Group("/visits")
		{
			visits.POST("", controllers.CreateVisit)
			visits.GET("", controllers.GetVisits)
			visits.GET("/calendar", controllers.GetVisitCalendar)
			visits.PUT("/:id", controllers.UpdateVisit)
			visits.DELETE("/:id", controllers.DeleteVisit)
		}

		// Message template routes
		templates := api.Group("/templates")
		{
			templates.POST("", controllers.CreateTemplate)
			templates.GET("", controllers.GetTemplates)
			templates.GET("/:id", controllers.GetTemplate)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		// Message routes
		messageController := controllers.MessageController{Service: messageService}
		messages := api.Group("/messages")
		{
			messages.POST("", messageController.SendMessage)
			messages.GET("", messageController.GetMessages)
		}

		// Stats and report routes
		reportController := controllers.ReportController{}
		api.GET("/stats", reportController.GetStats)
		api.GET("/reports/visitors", reportController.GetVisitorReport)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Church settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetChurchProfile)
			profile.PUT("", controllers.UpdateChurchProfile)
		}
	}

	return r
}
