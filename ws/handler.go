package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/poolhub/consultant-pool-backend/models"
	"github.com/poolhub/consultant-pool-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("WebSocket write error:", err)
	}
}

// HandleAdminFeed upgrades an admin connection to the roster-change feed.
// Browsers cannot set headers on WebSocket upgrades, so the token comes in
// as a query parameter.
func HandleAdminFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	if claims.Role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	H.Register(conn)
	defer H.Unregister(conn)

	sendJSON(conn, gin.H{"type": "connected"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
