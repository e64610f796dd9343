package providers

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"cityweather.app/errors"
)

// classifyTransportError reclassifies a raw outbound-call failure into the
// typed taxonomy: timeouts become TIMEOUT, everything else UNKNOWN_ERROR with
// the original failure kept as cause.
func classifyTransportError(source string, err error) *errors.AppError {
	if isTimeout(err) {
		return errors.NewTimeoutError(fmt.Sprintf("%s request timed out", source), err).WithSource(source)
	}
	return errors.NewUpstreamError(fmt.Sprintf("failed to call %s service", source), err).WithSource(source)
}

// classifyStatusError reclassifies a non-200 upstream response
func classifyStatusError(source, status string, statusCode int) *errors.AppError {
	if statusCode == http.StatusTooManyRequests {
		return errors.NewRateLimitError(fmt.Sprintf("%s service rate limit exceeded", source)).WithSource(source)
	}
	return errors.NewUpstreamError(
		fmt.Sprintf("%s service returned status %s", source, status), nil).WithSource(source)
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
