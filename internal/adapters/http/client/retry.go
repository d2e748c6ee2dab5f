package client

import "net/http"

// RetryPolicy decides whether a failed answer triggers a token refresh and
// one resubmission. attempt counts the refreshes already done for the
// request, starting at zero.
type RetryPolicy func(status, attempt int) bool

// DefaultRetryPolicy retries a 401 exactly once.
func DefaultRetryPolicy(status, attempt int) bool {
	return status == http.StatusUnauthorized && attempt == 0
}

// NoRetry never refreshes.
func NoRetry(int, int) bool { return false }
