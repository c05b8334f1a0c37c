package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/models"
)

func getDB(c *gin.Context) *gorm.DB {
	return c.MustGet("db").(*gorm.DB)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// requireSelfOrAdmin enforces the ownership rule on consultant-facing
// routes: admins may act on any user, everyone else only on their own
// records. Writes the 403 itself and reports whether to continue.
func requireSelfOrAdmin(c *gin.Context, targetID uint) bool {
	if c.GetString("role") == string(models.RoleAdmin) {
		return true
	}
	if c.GetUint("user_id") == targetID {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "you can only access your own records"})
	return false
}

func logEmailFailure(err error) {
	log.Printf("email send failed: %v", err)
}
