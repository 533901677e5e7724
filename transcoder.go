package contacts

import (
	"github.com/goccy/go-json"
)

// Transcoder defines the contract for bidirectional conversion between a value of type T
// and its wire representation. Users may implement custom transcoders (e.g. a stricter decoder
// or a different wire format) to control exactly how response bodies are interpreted.
// The interface is byte-based because transports hand over raw response bodies.
type Transcoder[T any] interface {
	// Encode converts a value of type T into bytes suitable for a response body or a stored snapshot.
	Encode(T) ([]byte, error)

	// Decode reconstructs a value of type T from bytes previously produced by Encode
	// or received from the server.
	Decode([]byte) (T, error)
}

// jsonTranscoder is the built-in transcoder used when the caller does not provide a custom one.
// It performs plain JSON serialization through go-json.
type jsonTranscoder[T any] struct{}

// NewJSONTranscoder returns the default JSON transcoder for T.
func NewJSONTranscoder[T any]() Transcoder[T] {
	return jsonTranscoder[T]{}
}

// Encode method serializes the provided value into its JSON byte representation.
// Any error produced during serialization is returned to the caller for handling.
func (jsonTranscoder[T]) Encode(src T) ([]byte, error) {
	return json.Marshal(src)
}

// Decode method reconstructs a value of type T from JSON bytes.
// On failure the zero value of T is returned together with the decoding error,
// so callers never observe a partially populated value.
func (jsonTranscoder[T]) Decode(src []byte) (T, error) {
	var entry T

	if err := json.Unmarshal(src, &entry); err != nil {
		var zero T
		return zero, err
	}

	return entry, nil
}
