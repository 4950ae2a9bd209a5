package main

import (
	"fmt"
	"os"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/routes"
	"massagepro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.ServiceTranslation{},
		&models.Therapist{},
		&models.TherapistTranslation{},
		&models.Booking{},
		&models.Message{},
		&models.ContactMethod{},
		&models.Setting{},
		&models.NotificationLog{},
	)

	config.RegisterMetrics()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

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
