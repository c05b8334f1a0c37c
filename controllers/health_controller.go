package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poolhub/consultant-pool-backend/config"
	"github.com/poolhub/consultant-pool-backend/middleware"
	"github.com/poolhub/consultant-pool-backend/ws"
)

func HealthCheck(c *gin.Context) {
	db := config.DB

	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
		"websocket": gin.H{
			"enabled": true,
			"stats":   ws.H.GetStats(),
		},
	}

	sqlDB, err := db.DB()
	if err != nil {
		response["db"] = "error: cannot get DB instance"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

func Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Snapshot())
}
