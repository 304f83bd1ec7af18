package videos

import (
	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/auth"
	"github.com/romch007/youtube/internal/repository"
)

// Registrar wires the video routes onto the engine.
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(e *gin.Engine) {
	svc := NewService(r.appCtx)
	authed := auth.Middleware(r.appCtx.Tokens, repository.NewUserRepository(r.appCtx.DB))

	e.GET("/videos", svc.handleList)
	e.GET("/videos/:id", svc.handleGet)
	e.POST("/videos/upload", authed, svc.handleUpload)
}
