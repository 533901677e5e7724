package contacts

const testURL = "https://tallinn-jobapp.aw.ee/employee_list"

const annRecord = `{
	"name": "Ann",
	"lname": "Lee",
	"contact_details": {"email": "a@x.com", "phone": "123"},
	"position": "Eng",
	"projects": "X"
}`

const bobRecord = `{
	"name": "Bob",
	"lname": "Ray",
	"contact_details": {"email": "b@x.com"},
	"position": "PM"
}`

const twoRecordsBody = `{"employees": [` + annRecord + `,` + bobRecord + `]}`

const emptyBody = `{"employees": []}`

var (
	ann = NewEmployee("Ann", "Lee", NewContactDetails("a@x.com", "123"), "Eng", "X")
	bob = NewEmployee("Bob", "Ray", NewContactDetails("b@x.com", ""), "PM", "")
)
