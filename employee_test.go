package contacts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployee(t *testing.T) {
	t.Parallel()

	t.Run("Accessors", func(t *testing.T) {
		assert.Equal(t, "Ann", ann.FirstName())
		assert.Equal(t, "Lee", ann.LastName())
		assert.Equal(t, "Ann Lee", ann.FullName())
		assert.Equal(t, "a@x.com", ann.ContactDetails().Email())
		assert.Equal(t, "123", ann.ContactDetails().Phone())
		assert.Equal(t, "Eng", ann.Position())
		assert.Equal(t, "X", ann.Projects())
		assert.Equal(t, "Ann Lee <a@x.com> (Eng)", ann.String())
	})

	// Equality compares every field, including the nested contact details.
	t.Run("Equality", func(t *testing.T) {
		same := NewEmployee("Ann", "Lee", NewContactDetails("a@x.com", "123"), "Eng", "X")
		otherPhone := NewEmployee("Ann", "Lee", NewContactDetails("a@x.com", "456"), "Eng", "X")
		otherLastName := NewEmployee("Ann", "Ray", NewContactDetails("a@x.com", "123"), "Eng", "X")

		assert.True(t, ann == same)
		assert.False(t, ann == otherPhone, "Nested contact details take part in equality")
		assert.False(t, ann == otherLastName)
	})

	// Copies are independent values, so the decoded list cannot be changed through them.
	t.Run("ValueSemantics", func(t *testing.T) {
		employees, err := Map(200, []byte(twoRecordsBody))
		assert.NoError(t, err)

		employees[0] = bob

		again, err := Map(200, []byte(twoRecordsBody))
		assert.NoError(t, err)
		assert.Equal(t, ann, again[0])
	})
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: i/o timeout")
	connectivity := connectivityError(cause)
	invalid := invalidDataError(nil)

	assert.ErrorIs(t, connectivity, ErrConnectivity)
	assert.NotErrorIs(t, connectivity, ErrInvalidData)
	assert.ErrorIs(t, connectivity, cause)
	assert.Equal(t, "load failed: connectivity: dial tcp: i/o timeout", connectivity.Error())

	assert.ErrorIs(t, invalid, ErrInvalidData)
	assert.NotErrorIs(t, invalid, ErrConnectivity)
	assert.Equal(t, "load failed: invalid_data", invalid.Error())

	wrapped := fmt.Errorf("refresh contacts: %w", connectivity)
	assert.True(t, IsKind(wrapped, KindConnectivity), "Kind must survive wrapping")
	assert.False(t, IsKind(wrapped, KindInvalidData))
	assert.False(t, IsKind(cause, KindConnectivity), "Plain errors have no kind")

	var nilErr *LoadError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.False(t, Transmitted([]byte("{}"), 500).Failed(), "A transmitted response is never a transport failure")
	assert.True(t, TransportFailed(errors.New("reset")).Failed())
	assert.True(t, TransportFailed(nil).Failed(), "A nil cause still reports a failure")
	assert.Equal(t, []Employee{}, Success(nil).Employees)
}
