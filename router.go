package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	_ "smartinsights/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// registerRoutes installs the middleware and routes on r
func registerRoutes(r *gin.Engine, allowHeaders []string) {
	r.Use(requestID())
	r.Use(permissiveHeaders(allowHeaders))
	// cors answers browser preflights (with an Origin); permissiveHeaders and preflight cover clients that send none
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              allowHeaders,
		ExposeHeaders:             []string{requestIDHeader},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}))

	r.OPTIONS("/api/smart-insights", preflight)
	r.POST("/api/smart-insights", smartInsights)
	r.GET("/health", health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// permissiveHeaders sets the CORS headers on every response, including
// requests from non-browser clients that send no Origin.
func permissiveHeaders(allowHeaders []string) gin.HandlerFunc {
	joined := strings.Join(allowHeaders, ", ")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", joined)
		c.Next()
	}
}

// requestID tags the request with an id, reusing a valid inbound X-Request-ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// preflight answers OPTIONS requests that carry no Origin header; the cors
// middleware aborts the others before they get here.
func preflight(c *gin.Context) {
	c.JSON(http.StatusOK, "ok")
}

// @Summary Health check
// @Description Report whether the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func health(c *gin.Context) {
	if dbPool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not connected"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := dbPool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
