package media_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/media"
	"github.com/romch007/youtube/internal/media/mediatest"
)

func TestProbeDuration(t *testing.T) {
	// timescale 1000 units/s, duration 12500 units -> 12s (truncated)
	payload := mediatest.MinimalMP4(1000, 12500)

	secs, err := media.ProbeDuration(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(12), secs)
}

func TestProbeDurationIsDeterministic(t *testing.T) {
	payload := mediatest.MinimalMP4(600, 3600)

	first, err := media.ProbeDuration(bytes.NewReader(payload))
	require.NoError(t, err)
	second, err := media.ProbeDuration(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(6), first)
}

func TestProbeDurationRejectsNonMedia(t *testing.T) {
	_, err := media.ProbeDuration(bytes.NewReader([]byte("this is definitely not a video file")))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidMedia, apperrors.KindOf(err))
}

func TestProbeDurationRejectsEmptyInput(t *testing.T) {
	_, err := media.ProbeDuration(bytes.NewReader(nil))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidMedia, apperrors.KindOf(err))
}
