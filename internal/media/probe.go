package media

import (
	"io"

	mp4 "github.com/abema/go-mp4"

	apperrors "github.com/romch007/youtube/internal/errors"
)

// ProbeDuration demuxes an ISO BMFF (MP4) container and returns the
// presentation duration in whole seconds, read from the movie header's
// timescale and duration fields. Anything that does not parse as a
// media container fails with InvalidMedia.
func ProbeDuration(r io.ReadSeeker) (int64, error) {
	info, err := mp4.Probe(r)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidMedia, "uploaded file is not a valid media container", err)
	}
	if info.Timescale == 0 {
		return 0, apperrors.New(apperrors.KindInvalidMedia, "uploaded file is not a valid media container")
	}

	return int64(info.Duration / uint64(info.Timescale)), nil
}
