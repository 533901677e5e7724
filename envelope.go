package contacts

import (
	"fmt"

	"github.com/goccy/go-json"
)

// EmployeesEnvelope is the wire-level object wrapping the ordered list of employee records.
// Required members are pointers so that an absent member can be told apart from an empty one.
type EmployeesEnvelope struct {
	Employees *[]EmployeeRecord `json:"employees"`
}

// EmployeeRecord is a single employee as the server encodes it.
type EmployeeRecord struct {
	Name           *string               `json:"name"`
	LastName       *string               `json:"lname"`
	ContactDetails *ContactDetailsRecord `json:"contact_details"`
	Position       *string               `json:"position"`
	Projects       *string               `json:"projects,omitempty"`
}

// ContactDetailsRecord is the wire form of ContactDetails.
type ContactDetailsRecord struct {
	Email *string `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// NewEnvelope builds the wire form for a list of employees, preserving their order.
// Optional members that are empty are omitted from the encoded output.
func NewEnvelope(employees []Employee) EmployeesEnvelope {
	records := make([]EmployeeRecord, 0, len(employees))

	for _, e := range employees {
		records = append(records, EmployeeRecord{
			Name:     stringPtr(e.firstName),
			LastName: stringPtr(e.lastName),
			ContactDetails: &ContactDetailsRecord{
				Email: stringPtr(e.contactDetails.email),
				Phone: optionalPtr(e.contactDetails.phone),
			},
			Position: stringPtr(e.position),
			Projects: optionalPtr(e.projects),
		})
	}

	return EmployeesEnvelope{Employees: &records}
}

// UnmarshalJSON method decodes the envelope with exact, case-sensitive member names.
// A member spelled in any other case is treated as absent and left for Validate to report.
func (e *EmployeesEnvelope) UnmarshalJSON(data []byte) error {
	members, err := decodeMembers(data)
	if err != nil {
		return err
	}

	*e = EmployeesEnvelope{}

	return decodeMember(members, "employees", &e.Employees)
}

// UnmarshalJSON method decodes a record with exact, case-sensitive member names.
func (r *EmployeeRecord) UnmarshalJSON(data []byte) error {
	members, err := decodeMembers(data)
	if err != nil {
		return err
	}

	*r = EmployeeRecord{}

	for key, dst := range map[string]any{
		"name":            &r.Name,
		"lname":           &r.LastName,
		"contact_details": &r.ContactDetails,
		"position":        &r.Position,
		"projects":        &r.Projects,
	} {
		if err := decodeMember(members, key, dst); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalJSON method decodes contact details with exact, case-sensitive member names.
func (c *ContactDetailsRecord) UnmarshalJSON(data []byte) error {
	members, err := decodeMembers(data)
	if err != nil {
		return err
	}

	*c = ContactDetailsRecord{}

	if err := decodeMember(members, "email", &c.Email); err != nil {
		return err
	}

	return decodeMember(members, "phone", &c.Phone)
}

// Validate method checks every required member of the envelope and of each record it wraps.
// The first violation is reported as ErrMissingField wrapped with the JSON path of the offending member,
// so a single broken record invalidates the whole envelope.
func (e EmployeesEnvelope) Validate() error {
	if e.Employees == nil {
		return fmt.Errorf("employees: %w", ErrMissingField)
	}

	for i, record := range *e.Employees {
		if err := record.validate(); err != nil {
			return fmt.Errorf("employees[%d].%w", i, err)
		}
	}

	return nil
}

// Records returns the wrapped records, or nil when the envelope has none.
func (e EmployeesEnvelope) Records() []EmployeeRecord {
	if e.Employees == nil {
		return nil
	}

	return *e.Employees
}

func (r EmployeeRecord) validate() error {
	switch {
	case r.Name == nil:
		return fmt.Errorf("name: %w", ErrMissingField)
	case r.LastName == nil:
		return fmt.Errorf("lname: %w", ErrMissingField)
	case r.ContactDetails == nil:
		return fmt.Errorf("contact_details: %w", ErrMissingField)
	case r.ContactDetails.Email == nil || *r.ContactDetails.Email == "":
		return fmt.Errorf("contact_details.email: %w", ErrMissingField)
	case r.Position == nil:
		return fmt.Errorf("position: %w", ErrMissingField)
	}

	return nil
}

// Employee converts a validated record into its domain value.
// Calling it on a record that failed validation yields zero values for the missing members.
func (r EmployeeRecord) Employee() Employee {
	var details ContactDetails
	if r.ContactDetails != nil {
		details = NewContactDetails(deref(r.ContactDetails.Email), deref(r.ContactDetails.Phone))
	}

	return NewEmployee(deref(r.Name), deref(r.LastName), details, deref(r.Position), deref(r.Projects))
}

// decodeMembers splits a JSON object into its raw members, keyed by their exact names.
// When a name repeats, the last occurrence wins.
func decodeMembers(data []byte) (map[string]json.RawMessage, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func decodeMember(members map[string]json.RawMessage, key string, dst any) error {
	raw, ok := members[key]
	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func stringPtr(s string) *string { return &s }

func optionalPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
