// README: HTTP router registration.
package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripgen/internal/http/handlers"
	"tripgen/internal/http/middleware"
)

// RouterDeps carries what the router needs; everything is built once at startup.
type RouterDeps struct {
	Logger      zerolog.Logger
	Itinerary   handlers.ItineraryGenerator
	StaticDir   string
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Logger),
		middleware.Recovery(),
		middleware.CORS(deps.CORSOrigins),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		deps.Logger.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary)
	r.POST("/api/generate", itineraryHandler.Generate)
	r.GET("/health", handlers.Health)

	static := staticHandler(deps.StaticDir)
	r.NoRoute(func(c *gin.Context) {
		if static != nil && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			static.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	})

	return r
}

// staticHandler serves the front-end when dir exists, nil otherwise.
func staticHandler(dir string) http.Handler {
	if dir == "" {
		return nil
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil
	}
	return http.FileServer(http.Dir(dir))
}
