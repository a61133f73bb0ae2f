package main

import (
	"fmt"
	"runtime"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "wsdindex %s %s %s/%s %s\n", BuildTag, BuildCommit, runtime.GOOS, runtime.GOARCH, runtime.Version())
	return err
}
