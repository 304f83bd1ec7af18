package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/config"
	apperrors "github.com/romch007/youtube/internal/errors"
)

// NewEngine builds the gin engine with recovery, CORS and the health
// endpoint, then attaches all provided feature registrars.
func NewEngine(appCtx *app.AppContext, registrars ...Registrar) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	engine.GET("/health", func(c *gin.Context) {
		// a real database round-trip, not just process liveness
		sqlDB, err := appCtx.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			WriteError(c, err)
			return
		}
		c.String(http.StatusOK, "I'm alive!")
	})

	for _, r := range registrars {
		r.Register(engine)
	}

	return engine
}

// Start serves the engine on the configured address, blocking until
// the listener fails.
func Start(cfg *config.Config, engine *gin.Engine) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	return engine.Run(addr)
}

// WriteError translates any error into its plain-text HTTP response.
func WriteError(c *gin.Context, err error) {
	c.String(apperrors.Status(err), apperrors.Message(err))
}
