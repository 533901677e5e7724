package contacts

import (
	"context"
	"errors"
)

// errNoCause stands in for a nil cause passed to TransportFailed.
var errNoCause = errors.New("transport failed")

// Outcome is the result of one transport attempt: either a transmitted body with its HTTP status,
// or a transport-level failure carried in Err.
type Outcome struct {
	Body       []byte
	StatusCode int
	Err        error
}

// Transmitted reports that the server answered with the given body and status.
func Transmitted(body []byte, statusCode int) Outcome {
	return Outcome{Body: body, StatusCode: statusCode}
}

// TransportFailed reports that the request could not be completed.
func TransportFailed(cause error) Outcome {
	if cause == nil {
		cause = errNoCause
	}

	return Outcome{Err: cause}
}

// Failed reports whether the outcome is a transport-level failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Transport is the single capability the loader consumes to reach the network.
// Implementations perform one GET per call and invoke complete exactly once, at any later time,
// on any goroutine. A non-200 status is not a failure at this level; it is reported through
// Transmitted so the mapper can classify it. The context ends when the owning loader is closed
// or collected; implementations may use it to abandon work early.
type Transport interface {
	Get(ctx context.Context, url string, complete func(Outcome))
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, url string, complete func(Outcome))

// Get method calls f with the same arguments.
func (f TransportFunc) Get(ctx context.Context, url string, complete func(Outcome)) {
	f(ctx, url, complete)
}
