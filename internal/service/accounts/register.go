package accounts

import (
	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/auth"
)

// Registrar ties the accounts endpoints into the HTTP server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the accounts service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the accounts routes to the gin engine
func (r *Registrar) Register(e *gin.Engine) {
	svc := NewService(r.appCtx)
	authed := auth.Middleware(r.appCtx.Tokens, svc.users)

	e.POST("/register", svc.handleRegister)
	e.POST("/login", svc.handleLogin)
	e.GET("/me", authed, svc.handleMe)
}
