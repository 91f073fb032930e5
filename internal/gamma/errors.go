package gamma

import "fmt"

// NotFoundError is returned when the upstream answers 404 for a single event.
type NotFoundError struct {
	MarketID string
}

func (e *NotFoundError) Error() string {
	return "market not found: " + e.MarketID
}

// UpstreamError wraps transport failures and unexpected status codes from
// the Gamma API. There is no retry layer; these surface directly.
type UpstreamError struct {
	Op         string
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("polymarket %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("polymarket %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
