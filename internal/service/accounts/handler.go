package accounts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/auth"
	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/server"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Service) handleRegister(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		server.WriteError(c, apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err))
		return
	}

	user, err := s.Register(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		server.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Service) handleLogin(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		server.WriteError(c, apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err))
		return
	}

	token, err := s.Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		server.WriteError(c, err)
		return
	}

	// the token is the whole response body
	c.String(http.StatusOK, token)
}

func (s *Service) handleMe(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		server.WriteError(c, apperrors.New(apperrors.KindUnauthorized, "You are not logged in"))
		return
	}

	profile, err := s.Me(c.Request.Context(), user)
	if err != nil {
		server.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
