package facade

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/kkdai/youtube/v2"

	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// classify maps a provider error onto the canonical taxonomy: not-found
// conditions become VIDEO_NOT_FOUND, unresolvable media EXTRACTION_FAILED,
// upstream throttling RATE_LIMITED, transport failures SERVICE_UNAVAILABLE,
// and anything unrecognized INTERNAL_ERROR. Provider detail stays in the
// logs, never in the response.
func classify(err error, videoID string) *utils.AppError {
	if err == nil {
		return nil
	}

	// Validation errors produced locally pass through untouched.
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, ytmusic.ErrNotFound) {
		return utils.NewVideoNotFoundError(videoID)
	}

	if errors.Is(err, extractor.ErrNoAudioFormat) {
		return utils.NewExtractionError("No playable audio stream for this video")
	}

	var playErr youtube.ErrPlayabiltyStatus
	if errors.As(err, &playErr) {
		// Private, region-blocked or removed videos: the provider
		// answered, the media just cannot be resolved.
		return utils.NewExtractionError("Could not extract a stream for this video")
	}

	if errors.Is(err, youtube.ErrVideoIDMinLength) ||
		errors.Is(err, youtube.ErrInvalidCharactersInVideoID) {
		return utils.NewExtractionError("Invalid video identifier")
	}

	var statusErr *innertube.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusNotFound:
			return utils.NewVideoNotFoundError(videoID)
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return utils.NewRateLimitError()
		case statusErr.StatusCode >= 500:
			return utils.NewServiceUnavailableError()
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return utils.NewServiceUnavailableError()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return utils.NewServiceUnavailableError()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return utils.NewServiceUnavailableError()
	}

	return utils.NewInternalError()
}
