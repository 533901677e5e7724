package main

import "github.com/giopellizzoni/contacts/internal/cli"

func main() {
	cli.Execute()
}
