// Command xmlkit is a small CLI front end over the xml package: format,
// convert, query, and validate XML documents from the shell. It plays the
// same role the teacher's main.go command router does, rebuilt on
// github.com/spf13/cobra instead of a hand-rolled os.Args switch.
package main

import (
	"os"

	"github.com/halden/xmlkit/internal/xlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		xlog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
