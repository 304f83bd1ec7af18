package server

import "github.com/gin-gonic/gin"

// Registrar is a common interface for all HTTP feature registrars
type Registrar interface {
	Register(e *gin.Engine)
}
