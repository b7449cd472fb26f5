package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// The API serves a kiosk UI on the same machine; only loopback origins are
// allowed.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8712",
	"http://127.0.0.1:8712",
}

// CORS returns middleware that applies the kiosk's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
