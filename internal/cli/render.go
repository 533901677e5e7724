package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/giopellizzoni/contacts"
)

func render(w io.Writer, output string, employees []contacts.Employee) error {
	if output == OutputJSON {
		return renderJSON(w, employees)
	}

	return renderTable(w, employees)
}

// renderJSON prints the employees in the same wire format the server uses.
func renderJSON(w io.Writer, employees []contacts.Employee) error {
	b, err := json.MarshalIndent(contacts.NewEnvelope(employees), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func renderTable(w io.Writer, employees []contacts.Employee) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tPOSITION\tEMAIL\tPHONE\tPROJECTS")
	for _, e := range employees {
		cd := e.ContactDetails()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.FullName(), e.Position(), cd.Email(), dash(cd.Phone()), dash(e.Projects()))
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
