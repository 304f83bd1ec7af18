package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/romch007/youtube/internal/errors"
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the token payload: {user_id, exp}.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates stateless HS256 bearer tokens.
// There is no revocation list.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue signs a token for the given user expiring in TokenTTL.
func (tm *TokenManager) Issue(userID uint64) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "cannot sign token", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the embedded user id.
// Expired, malformed or badly-signed tokens all fail with Unauthorized.
func (tm *TokenManager) Validate(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindUnauthorized, "Invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperrors.New(apperrors.KindUnauthorized, "Invalid token")
	}
	return claims.UserID, nil
}
