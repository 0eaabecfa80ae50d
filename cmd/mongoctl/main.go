package main

import (
	"github.com/mongobject/mongobject/cmd/mongoctl/cmd"
)

func main() {
	cmd.Execute()
}
