package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/db"
)

const userContextKey = "auth.user"

// UserFinder loads a user row by id. Satisfied by repository.UserRepository.
type UserFinder interface {
	FindByID(ctx context.Context, id uint64) (*db.User, error)
}

// Middleware authenticates requests carrying "Authorization: Bearer <token>".
// The token must validate and the referenced user must still exist; the
// loaded user row is injected into the request context for handlers.
func Middleware(tm *TokenManager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.String(http.StatusUnauthorized, "You are not logged in")
			c.Abort()
			return
		}

		userID, err := tm.Validate(token)
		if err != nil {
			c.String(http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		} else if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user injected by Middleware.
func CurrentUser(c *gin.Context) (*db.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*db.User)
	return user, ok
}
