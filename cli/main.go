package main

import (
	"log"

	"github.com/himself65/create-addon/cli/cmd"
	"github.com/himself65/create-addon/cli/util"
	"github.com/himself65/create-addon/cli/version"
)

func main() {
	defer func() {
		// Report panics with the version and the call stack instead of
		// a bare goroutine dump.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.Execute()
}
