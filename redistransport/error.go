package redistransport

import "errors"

// ErrEmptyRedisClient is returned when attempting to create a transport without providing a Redis client.
// The Redis client is mandatory for all transport operations; construction fails if it is missing.
var ErrEmptyRedisClient = errors.New("redis client is empty")

// ErrSnapshotNotFound is the transport failure reported when no snapshot is stored for a URL.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrCorruptSnapshot is the transport failure reported when a stored snapshot cannot be read back.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
