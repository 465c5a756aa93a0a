package utils

import (
	"net/http"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		name    string
		seconds int
		want    string
	}{
		{
			name:    "Minutes and seconds",
			seconds: 187,
			want:    "03:07",
		},
		{
			name:    "Exact minute",
			seconds: 240,
			want:    "04:00",
		},
		{
			name:    "Over an hour",
			seconds: 3725,
			want:    "01:02:05",
		},
		{
			name:    "Under ten seconds",
			seconds: 9,
			want:    "00:09",
		},
		{
			name:    "Zero is unknown",
			seconds: 0,
			want:    "",
		},
		{
			name:    "Negative is unknown",
			seconds: -5,
			want:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDuration(tc.seconds); got != tc.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
			}
		})
	}
}

func TestParseClockDuration(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"3:07", 187},
		{"03:07", 187},
		{"1:02:05", 3725},
		{"0:30", 30},
		{"", 0},
		{"garbage", 0},
	}

	for _, tc := range testCases {
		if got := ParseClockDuration(tc.in); got != tc.want {
			t.Errorf("ParseClockDuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seconds := range []int{1, 59, 60, 187, 3599, 3600, 7325} {
		if got := ParseClockDuration(FormatDuration(seconds)); got != seconds {
			t.Errorf("round trip for %d seconds produced %d", seconds, got)
		}
	}
}

func TestErrorStatusCodes(t *testing.T) {
	testCases := []struct {
		name string
		err  *AppError
		code ErrorCode
		http int
	}{
		{"invalid query", NewInvalidQueryError(), ErrorCodeInvalidQuery, http.StatusBadRequest},
		{"invalid country", NewInvalidCountryError("ZZ"), ErrorCodeInvalidCountry, http.StatusBadRequest},
		{"video not found", NewVideoNotFoundError("abc123def45"), ErrorCodeVideoNotFound, http.StatusNotFound},
		{"extraction failed", NewExtractionError(""), ErrorCodeExtractionFailed, http.StatusNotFound},
		{"unavailable", NewServiceUnavailableError(), ErrorCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"rate limited", NewRateLimitError(), ErrorCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"internal", NewInternalError(), ErrorCodeInternalError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("code = %s, want %s", tc.err.Code, tc.code)
			}
			if tc.err.StatusCode != tc.http {
				t.Errorf("status = %d, want %d", tc.err.StatusCode, tc.http)
			}
			if tc.err.Error() == "" {
				t.Error("expected non-empty error string")
			}
		})
	}
}

func TestGenerateIDs(t *testing.T) {
	correlationID := GenerateCorrelationID()
	if correlationID == "" {
		t.Error("Expected non-empty correlation ID")
	}

	requestID := GenerateRequestID()
	if requestID == "" {
		t.Error("Expected non-empty request ID")
	}

	if correlationID == requestID {
		t.Error("Correlation ID and request ID should be different")
	}
}
