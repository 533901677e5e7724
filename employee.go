package contacts

import "fmt"

// ContactDetails holds the ways an employee can be reached.
// The email is always present on a decoded value; an empty phone means the server omitted it.
type ContactDetails struct {
	email string
	phone string
}

// NewContactDetails builds a ContactDetails value.
func NewContactDetails(email, phone string) ContactDetails {
	return ContactDetails{email: email, phone: phone}
}

// Email method returns the employee email address.
func (c ContactDetails) Email() string { return c.email }

// Phone method returns the phone number, or an empty string when none was given.
func (c ContactDetails) Phone() string { return c.phone }

// Employee is an immutable employee record as exposed to the UI layer.
// Values are comparable with ==, which compares every field.
type Employee struct {
	firstName      string
	lastName       string
	contactDetails ContactDetails
	position       string
	projects       string
}

// NewEmployee builds an Employee value. An empty projects string means the employee has none listed.
func NewEmployee(firstName, lastName string, contactDetails ContactDetails, position, projects string) Employee {
	return Employee{
		firstName:      firstName,
		lastName:       lastName,
		contactDetails: contactDetails,
		position:       position,
		projects:       projects,
	}
}

// FirstName method returns the given name.
func (e Employee) FirstName() string { return e.firstName }

// LastName method returns the family name.
func (e Employee) LastName() string { return e.lastName }

// ContactDetails method returns how the employee can be reached.
func (e Employee) ContactDetails() ContactDetails { return e.contactDetails }

// Position method returns the job title.
func (e Employee) Position() string { return e.position }

// Projects method returns the listed projects, or an empty string when there are none.
func (e Employee) Projects() string { return e.projects }

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.firstName + " " + e.lastName
}

// String method formats the employee as "First Last <email> (position)".
func (e Employee) String() string {
	return fmt.Sprintf("%s <%s> (%s)", e.FullName(), e.contactDetails.email, e.position)
}
