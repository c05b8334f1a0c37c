package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/poolhub/consultant-pool-backend/config"
	"github.com/poolhub/consultant-pool-backend/routes"
	"github.com/poolhub/consultant-pool-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	config.InitDB()

	if err := os.MkdirAll(config.UploadDir(), 0o755); err != nil {
		log.Fatal("cannot create upload dir: ", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://pool-consultant-management.vercel.app", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB)

	// purge expired password-reset tokens in the background
	utils.StartCleanupJob()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}
