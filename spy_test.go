package contacts

import (
	"context"
	"sync"
	"testing"
)

// spyRequest captures one Get call made against the transportSpy.
type spyRequest struct {
	ctx      context.Context
	url      string
	complete func(Outcome)
}

// transportSpy is a Transport that records requests and lets the test decide when, and how often,
// each of them completes.
type transportSpy struct {
	mu       sync.Mutex
	requests []spyRequest
}

func (s *transportSpy) Get(ctx context.Context, url string, complete func(Outcome)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, spyRequest{ctx: ctx, url: url, complete: complete})
}

func (s *transportSpy) urls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.requests))
	for _, r := range s.requests {
		urls = append(urls, r.url)
	}

	return urls
}

func (s *transportSpy) request(t *testing.T, index int) spyRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if index >= len(s.requests) {
		t.Fatalf("expected at least %d requests, got %d", index+1, len(s.requests))
	}

	return s.requests[index]
}

func (s *transportSpy) completeWith(t *testing.T, index int, outcome Outcome) {
	t.Helper()

	s.request(t, index).complete(outcome)
}

// resultRecorder collects every result delivered to the continuation it hands out.
type resultRecorder struct {
	mu      sync.Mutex
	results []Result
}

func (r *resultRecorder) continuation(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)
}

func (r *resultRecorder) all() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Result(nil), r.results...)
}
