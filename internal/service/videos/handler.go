package videos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/romch007/youtube/internal/auth"
	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/server"
)

func (s *Service) handleList(c *gin.Context) {
	videos, err := s.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		server.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (s *Service) handleGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "invalid video id"))
		return
	}

	video, err := s.Get(c.Request.Context(), id)
	if err != nil {
		server.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (s *Service) handleUpload(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		server.WriteError(c, apperrors.New(apperrors.KindUnauthorized, "You are not logged in"))
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "title must not be empty"))
		return
	}

	header, err := c.FormFile("video")
	if err != nil {
		server.WriteError(c, apperrors.New(apperrors.KindInvalid, "missing video file"))
		return
	}

	file, err := header.Open()
	if err != nil {
		server.WriteError(c, apperrors.Wrap(apperrors.KindInternal, "cannot open upload", err))
		return
	}
	defer file.Close()

	video, err := s.Upload(
		c.Request.Context(),
		user,
		title,
		description,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		server.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}
