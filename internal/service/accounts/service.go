package accounts

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/auth"
	"github.com/romch007/youtube/internal/db"
	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/repository"
)

// Service implements registration, login and the authenticated
// profile view.
type Service struct {
	appCtx *app.AppContext
	users  *repository.UserRepository
	videos *repository.VideoRepository
}

// NewService creates the accounts service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		users:  repository.NewUserRepository(appCtx.DB),
		videos: repository.NewVideoRepository(appCtx.DB, appCtx.Search),
	}
}

// Register creates a new user with an argon2id-hashed password. The
// plaintext is never stored or logged. A taken username fails with
// Conflict; the unique index makes this race-safe.
func (s *Service) Register(ctx context.Context, username, password string) (*db.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.KindInvalid, "username and password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &db.User{Username: username, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.KindConflict, "username already taken")
		}
		return nil, err
	}

	s.appCtx.Logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown
// usernames and wrong passwords return the identical error so callers
// cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.New(apperrors.KindForbidden, "Forbidden")
	} else if err != nil {
		return "", err
	}

	ok, err := auth.VerifyPassword(password, user.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.New(apperrors.KindForbidden, "Forbidden")
	}

	return s.appCtx.Tokens.Issue(user.ID)
}

// Me returns the authenticated user with their uploaded videos.
func (s *Service) Me(ctx context.Context, user *db.User) (*db.UserWithVideos, error) {
	videos, err := s.videos.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &db.UserWithVideos{User: *user, Videos: videos}, nil
}
