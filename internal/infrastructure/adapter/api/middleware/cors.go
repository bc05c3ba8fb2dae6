package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig lists what cross-origin callers may do
type CORSConfig struct {
	AllowedOrigins []string // "*" or empty allows any origin
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int // Seconds
}

// DefaultCORSConfig returns a permissive config for the wallet API
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         86400,
	}
}

// CORS middleware sets the CORS response headers and answers preflight requests.
// Requests from origins outside the allow list are refused with 403.
func CORS(config CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  config.AllowedMethods,
		AllowHeaders:  config.AllowedHeaders,
		ExposeHeaders: config.ExposedHeaders,
		MaxAge:        time.Duration(config.MaxAge) * time.Second,
	}

	if len(config.AllowedOrigins) == 0 || slices.Contains(config.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = config.AllowedOrigins
	}

	return cors.New(corsConfig)
}
