package likes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/auth"
	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/server"
)

type reactionBody struct {
	// Likes is tri-state: true likes, false dislikes, absent/null
	// clears the reaction.
	Likes *bool `json:"likes"`
}

func (s *Service) handleReact(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		server.WriteError(c, apperrors.New(apperrors.KindUnauthorized, "You are not logged in"))
		return
	}

	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "invalid video id"))
		return
	}

	var body reactionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "invalid request body"))
		return
	}

	if err := s.SetReaction(c.Request.Context(), user.ID, videoID, body.Likes); err != nil {
		server.WriteError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Service) handleCount(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "invalid video id"))
		return
	}

	count, err := s.Count(c.Request.Context(), videoID)
	if err != nil {
		server.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
