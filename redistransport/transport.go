// Package redistransport implements the contacts Transport on top of response snapshots stored in Redis.
// A snapshot is a hash holding the HTTP status and body the server returned for a URL; serving it through
// the Transport contract lets a loader run against a mirrored employee list when the origin is unreachable.
package redistransport

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/giopellizzoni/contacts"
)

// The script defaultReadCommand is a Lua script that reads a response snapshot stored as a Redis hash.
// It fetches the status and body fields in a single round trip so that a concurrent Store can never
// be observed half-written. A missing hash, or a hash without a status, yields a nil reply.
var defaultReadCommand = redis.NewScript(`
local key = KEYS[1]
local values = redis.call('HMGET', key, 'status', 'body')

if not values[1] then
	return nil
end

if not values[2] then
	values[2] = ''
end

return values
`)

// defaultPrefix namespaces snapshot keys so they do not collide with other data in the same database.
const defaultPrefix = "contacts::snapshot::"

const (
	fieldStatus = "status"
	fieldBody   = "body"
)

// Transport struct serves stored response snapshots through the contacts Transport contract.
// It encapsulates the redis client, the Lua script used for reads, the key prefix, and the transcoder
// used by StoreEnvelope. All fields are configured during construction and are not modified afterward.
type Transport struct {
	rdb         redis.UniversalClient
	readCommand *redis.Script
	prefix      string
	transcoder  contacts.Transcoder[contacts.EmployeesEnvelope]
	logger      zerolog.Logger
}

var _ contacts.Transport = (*Transport)(nil)

// New function constructs a fully configured Transport instance.
// It applies all provided functional options, validates required dependencies,
// and initializes default values for any optional configuration not explicitly set.
// The function returns an error only when mandatory configuration is missing.
func New(opts ...Option) (*Transport, error) {
	t := &Transport{logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(t)
	}

	if t.rdb == nil {
		return nil, ErrEmptyRedisClient
	}

	if t.readCommand == nil {
		t.readCommand = defaultReadCommand
	}

	if t.prefix == "" {
		t.prefix = defaultPrefix
	}

	if t.transcoder == nil {
		t.transcoder = contacts.NewJSONTranscoder[contacts.EmployeesEnvelope]()
	}

	return t, nil
}

// Key returns the Redis key holding the snapshot for url.
func (t *Transport) Key(url string) string {
	return t.prefix + url
}

// Get method reads the snapshot stored for url on its own goroutine and completes exactly once.
// A missing snapshot, a Redis failure or a corrupted status field is reported as a transport failure;
// a stored non-200 status is transmitted as is, leaving its classification to the mapper.
func (t *Transport) Get(ctx context.Context, url string, complete func(contacts.Outcome)) {
	go func() {
		complete(t.read(ctx, url))
	}()
}

func (t *Transport) read(ctx context.Context, url string) contacts.Outcome {
	key := t.Key(url)

	// Run the Lua script using the provided context and the snapshot key.
	result, err := t.readCommand.Run(ctx, t.rdb, []string{key}).Result()
	if errors.Is(err, redis.Nil) {
		t.logger.Debug().Str("key", key).Msg("redis.get")
		return contacts.TransportFailed(fmt.Errorf("%w: %s", ErrSnapshotNotFound, url))
	}

	if err != nil {
		t.logger.Debug().Err(err).Str("key", key).Msg("redis.get")
		return contacts.TransportFailed(err)
	}

	status, body, err := parseSnapshot(result)
	if err != nil {
		t.logger.Debug().Err(err).Str("key", key).Msg("redis.get")
		return contacts.TransportFailed(err)
	}

	t.logger.Debug().Str("key", key).Int("status", status).Int("bytes", len(body)).Msg("redis.get")

	return contacts.Transmitted(body, status)
}

// parseSnapshot checks that the script reply is the two-element list {status, body}.
func parseSnapshot(result any) (int, []byte, error) {
	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return 0, nil, fmt.Errorf("%w: unexpected reply %T", ErrCorruptSnapshot, result)
	}

	rawStatus, ok := values[0].(string)
	if !ok {
		return 0, nil, fmt.Errorf("%w: status is %T", ErrCorruptSnapshot, values[0])
	}

	status, err := strconv.Atoi(rawStatus)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: status %q", ErrCorruptSnapshot, rawStatus)
	}

	body, ok := values[1].(string)
	if !ok {
		return 0, nil, fmt.Errorf("%w: body is %T", ErrCorruptSnapshot, values[1])
	}

	return status, []byte(body), nil
}

// Store method writes the snapshot for url, replacing any previous one.
func (t *Transport) Store(ctx context.Context, url string, status int, body []byte) error {
	key := t.Key(url)

	if err := t.rdb.HSet(ctx, key, fieldStatus, status, fieldBody, body).Err(); err != nil {
		return fmt.Errorf("store snapshot %s: %w", key, err)
	}

	return nil
}

// StoreEnvelope encodes employees through the configured transcoder and stores them as a 200 snapshot.
func (t *Transport) StoreEnvelope(ctx context.Context, url string, employees []contacts.Employee) error {
	body, err := t.transcoder.Encode(contacts.NewEnvelope(employees))
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	return t.Store(ctx, url, 200, body)
}

// Delete removes the snapshot for url. Deleting a missing snapshot is not an error.
func (t *Transport) Delete(ctx context.Context, url string) error {
	return t.rdb.Del(ctx, t.Key(url)).Err()
}
