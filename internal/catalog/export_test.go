package catalog

import "time"

// SetRetryDelayForTesting shortens the rate-limit backoff so tests don't sleep.
func SetRetryDelayForTesting(c *Client, d time.Duration) {
	c.retryDelay = d
}
