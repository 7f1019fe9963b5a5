package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware writes one entry per request.
func LoggingMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})
		if actor := utils.ActorFromContext(c); actor != "" {
			entry = entry.WithField("actor", actor)
		}
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request")
	}
}

// CORSMiddleware allows the configured origins. Websocket upgrades skip
// CORS handling; the upgrader checks their origin.
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

// OriginAllowed reports whether origin is in ALLOWED_ORIGINS. A "*" entry
// allows any origin, and "http://localhost" allows every localhost port.
func OriginAllowed(origin string) bool {
	for _, allowed := range config.AllowedOrigins {
		switch {
		case allowed == "*":
			return true
		case allowed == origin:
			return true
		case allowed == "http://localhost" && strings.HasPrefix(origin, "http://localhost:"):
			return true
		}
	}
	return false
}
