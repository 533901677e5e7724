package contacts

import "github.com/rs/zerolog"

// Option type defines the functional options pattern used to configure a ContactsLoader instance.
type Option func(l *ContactsLoader)

// WithURL option assigns the resource locator every load requests.
// The locator is mandatory; it is stored once and never reassigned afterwards.
func WithURL(url string) Option {
	return func(l *ContactsLoader) {
		l.url = url
	}
}

// WithTransport option assigns the transport used by the loader to reach the server.
// The transport is owned by the composition root; the loader only calls its Get method.
// Providing a transport is required for the loader to function.
func WithTransport(t Transport) Option {
	return func(l *ContactsLoader) {
		l.transport = t
	}
}

// WithMapper option configures the mapper that classifies and decodes transmitted responses.
// If no mapper is provided, the loader falls back to a mapper using the JSON transcoder.
func WithMapper(m *Mapper) Option {
	return func(l *ContactsLoader) {
		l.mapper = m
	}
}

// WithLogger option attaches a zerolog logger. Without it the loader logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *ContactsLoader) {
		l.logger = logger
	}
}
