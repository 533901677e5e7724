package contacts

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContactsLoader struct loads the employee list from a single resource locator through a Transport.
// It encapsulates the locator, the transport, the mapper and a lifetime token that pending
// completions consult before delivering. All fields are configured during construction and are not
// modified afterward; concurrent Load calls share nothing but that read-only configuration.
type ContactsLoader struct {
	url       string
	transport Transport
	mapper    *Mapper
	logger    zerolog.Logger
	life      *lifetime
	cleanup   runtime.Cleanup
}

// NewContactsLoader function constructs a fully configured ContactsLoader instance.
// It applies all provided functional options, validates required dependencies,
// and initializes default values for any optional configuration not explicitly set.
// Construction never touches the transport: no request is issued until Load is called.
func NewContactsLoader(opts ...Option) (*ContactsLoader, error) {
	loader := &ContactsLoader{logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(loader)
	}

	if loader.transport == nil {
		return nil, ErrEmptyTransport
	}

	if loader.url == "" {
		return nil, ErrEmptyURL
	}

	if loader.mapper == nil {
		loader.mapper = defaultMapper
	}

	loader.life = newLifetime()
	// When the owner drops the loader without closing it, collection ends the lifetime so that
	// completions still in flight are suppressed.
	loader.cleanup = runtime.AddCleanup(loader, func(life *lifetime) { life.end() }, loader.life)

	return loader, nil
}

// URL returns the resource locator the loader requests.
func (l *ContactsLoader) URL() string {
	return l.url
}

// Close ends the loader's lifetime. Completions that arrive afterwards are suppressed and the context
// handed to the transport is cancelled. Close is idempotent and always returns nil.
func (l *ContactsLoader) Close() error {
	l.cleanup.Stop()
	l.life.end()

	return nil
}

// Load method issues exactly one transport request and delivers its classified result to continuation.
// The pending completion captures the lifetime token and never the loader itself, so discarding the
// loader before the transport answers suppresses delivery instead of reaching a dead owner.
func (l *ContactsLoader) Load(continuation func(Result)) {
	id := uuid.NewString()

	pending := &pendingLoad{
		life:         l.life,
		mapper:       l.mapper,
		continuation: continuation,
		logger:       l.logger.With().Str("request_id", id).Str("url", l.url).Logger(),
	}

	pending.state.Store(int32(stateRequested))
	pending.logger.Debug().Msg("load.requested")

	l.transport.Get(l.life.ctx, l.url, pending.complete)
}

// pendingLoad is the state owned by one Load call between the request and its completion.
type pendingLoad struct {
	life         *lifetime
	mapper       *Mapper
	continuation func(Result)
	logger       zerolog.Logger

	completed atomic.Bool
	state     atomic.Int32
}

// complete is handed to the transport as its completion. Only the first invocation counts.
func (p *pendingLoad) complete(outcome Outcome) {
	if !p.completed.CompareAndSwap(false, true) {
		p.logger.Warn().Stringer("state", loadState(p.state.Load())).Msg("load.duplicate_completion")
		return
	}

	result := p.resolve(outcome)

	if !p.life.isAlive() {
		p.state.Store(int32(stateSuppressed))
		p.logger.Debug().Stringer("state", stateSuppressed).Msg("load.suppressed")
		return
	}

	p.state.Store(int32(stateDelivered))
	p.logger.Debug().
		Stringer("state", stateDelivered).
		Bool("success", result.Succeeded()).
		Int("employees", len(result.Employees)).
		Msg("load.delivered")

	if p.continuation != nil {
		p.continuation(result)
	}
}

func (p *pendingLoad) resolve(outcome Outcome) Result {
	if outcome.Failed() {
		return Failure(connectivityError(outcome.Err))
	}

	employees, err := p.mapper.Map(outcome.StatusCode, outcome.Body)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return Failure(le)
		}

		return Failure(invalidDataError(err))
	}

	return Success(employees)
}
