package main

import (
	"fmt"
	"log"
	"os"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/routes"
	"showroom-backend/services"

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
		&models.User{},
		&models.AttendanceRecord{},
		&models.Car{},
		&models.Lead{},
		&models.FollowUp{},
		&models.FollowUpLog{},
		&models.Service{},
		&models.Job{},
	)
}

func main() {
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		services.NewFollowUpReminderService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
