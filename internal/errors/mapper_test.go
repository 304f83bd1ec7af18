package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/romch007/youtube/internal/errors"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind   apperrors.Kind
		status int
	}{
		{apperrors.KindInvalid, http.StatusBadRequest},
		{apperrors.KindInvalidMedia, http.StatusBadRequest},
		{apperrors.KindUnauthorized, http.StatusUnauthorized},
		{apperrors.KindForbidden, http.StatusForbidden},
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindConflict, http.StatusConflict},
		{apperrors.KindStorageUnavailable, http.StatusServiceUnavailable},
		{apperrors.KindInternal, http.StatusInternalServerError},
	}

	for _, c := range cases {
		err := apperrors.New(c.kind, "boom")
		assert.Equal(t, c.status, apperrors.Status(err))
	}
}

func TestGormSentinelTranslation(t *testing.T) {
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(gorm.ErrRecordNotFound))
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(gorm.ErrDuplicatedKey))

	// wrapped sentinels still translate
	wrapped := fmt.Errorf("query failed: %w", gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.Status(wrapped))
}

func TestMessagePrefersCallerFacingText(t *testing.T) {
	err := apperrors.Wrap(apperrors.KindStorageUnavailable, "cannot reach object storage", stderrors.New("dial tcp: timeout"))
	assert.Equal(t, "cannot reach object storage", apperrors.Message(err))

	// raw errors keep their own text
	raw := stderrors.New("something odd")
	assert.Equal(t, "something odd", apperrors.Message(raw))

	// untyped not-found gets the canonical body
	assert.Equal(t, "Not Found", apperrors.Message(gorm.ErrRecordNotFound))
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("io failure")
	err := apperrors.Wrap(apperrors.KindInternal, "upload failed", inner)
	assert.True(t, stderrors.Is(err, inner))
}
