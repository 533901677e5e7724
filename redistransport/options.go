package redistransport

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/giopellizzoni/contacts"
)

// Option type defines the functional options pattern used to configure a Transport instance.
type Option func(t *Transport)

// WithClient option assigns the redis client used by the Transport to read and write snapshots.
// Providing a valid redis client is required for the transport to function correctly.
func WithClient(rdb redis.UniversalClient) Option {
	return func(t *Transport) {
		t.rdb = rdb
	}
}

// WithScript option specifies the Lua script used to read a snapshot.
// The script receives the snapshot key as KEYS[1] and must reply with {status, body} or nil.
// If no script is provided through this option, the Transport falls back to its default script.
func WithScript(src *redis.Script) Option {
	return func(t *Transport) {
		t.readCommand = src
	}
}

// WithPrefix option configures the key prefix prepended to every URL.
func WithPrefix(prefix string) Option {
	return func(t *Transport) {
		t.prefix = prefix
	}
}

// WithTranscoder option configures the transcoder StoreEnvelope uses to encode employees.
func WithTranscoder(tc contacts.Transcoder[contacts.EmployeesEnvelope]) Option {
	return func(t *Transport) {
		t.transcoder = tc
	}
}

// WithLogger option attaches a zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}
