package main

import (
	"fmt"
	"log"
	"os"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/routes"
	"visitacare-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Church{},
		&models.User{},
		&models.Visitor{},
		&models.Visit{},
		&models.MessageTemplate{},
		&models.Message{},
	)

	if err := config.EnsureSchedulingConstraints(); err != nil {
		log.Fatalf("Failed to create scheduling constraints: %v", err)
	}
}

func main() {
	messageService := services.NewMessageService(config.DB)
	messageService.StartFollowUpScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(messageService)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
