// Package cmd implements the CLI application to run the register.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cajaferia/caja"
	"github.com/cajaferia/caja/store"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand.
// A main package ranges over Commands to register them on its commander.
var Commands = []subcommands.Command{
	&productAddCmd{},
	&productUpdateCmd{},
	&productRmCmd{},
	&productsCmd{},
	&sellCmd{},
	&salesCmd{},
	&voidCmd{},
	&dailyCmd{},
	&closeCmd{},
	&importCmd{},
	&exportCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "caja.json", "Path to the store file (JSON)")
var currency = flag.String("currency", "EUR", "ISO 4217 currency code used to display prices")

// openRegister loads the register from the app store file. A missing file
// opens as an empty register.
func openRegister() (*caja.Register, error) {
	if _, err := os.Stat(*storeFile); os.IsNotExist(err) {
		log.Printf("warning, store file %q does not exist, starting with an empty register", *storeFile)
	}
	s, err := store.OpenFile(*storeFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", *storeFile, err)
	}
	return caja.Open(s, *currency)
}

// errorf reports a command error on stderr and returns the failure status.
func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the renderer is not available.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
