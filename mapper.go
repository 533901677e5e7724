package contacts

import (
	"fmt"
	"net/http"
)

// Mapper turns a transmitted response into employees.
// It holds no mutable state and is safe for concurrent use.
type Mapper struct {
	transcoder Transcoder[EmployeesEnvelope]
}

// MapperOption configures a Mapper.
type MapperOption func(m *Mapper)

// WithEnvelopeTranscoder replaces the JSON transcoder used to decode response bodies.
func WithEnvelopeTranscoder(t Transcoder[EmployeesEnvelope]) MapperOption {
	return func(m *Mapper) {
		m.transcoder = t
	}
}

// NewMapper builds a Mapper, falling back to the JSON transcoder when none is configured.
func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{}

	for _, opt := range opts {
		opt(m)
	}

	if m.transcoder == nil {
		m.transcoder = NewJSONTranscoder[EmployeesEnvelope]()
	}

	return m
}

var defaultMapper = NewMapper()

// Map runs the default mapper.
func Map(statusCode int, body []byte) ([]Employee, error) {
	return defaultMapper.Map(statusCode, body)
}

// Map method classifies a response and decodes its body.
// Any status other than 200 fails with KindInvalidData without looking at the body.
// A body that does not decode, or that decodes into an envelope missing a required member,
// fails with KindInvalidData as a whole; no record is ever skipped.
// An envelope with zero records yields an empty, non-nil slice in server order.
func (m *Mapper) Map(statusCode int, body []byte) ([]Employee, error) {
	if statusCode != http.StatusOK {
		return nil, invalidDataError(fmt.Errorf("unexpected status code %d", statusCode))
	}

	envelope, err := m.transcoder.Decode(body)
	if err != nil {
		return nil, invalidDataError(fmt.Errorf("decode envelope: %w", err))
	}

	if err = envelope.Validate(); err != nil {
		return nil, invalidDataError(err)
	}

	records := envelope.Records()
	employees := make([]Employee, 0, len(records))

	for _, record := range records {
		employees = append(employees, record.Employee())
	}

	return employees, nil
}
