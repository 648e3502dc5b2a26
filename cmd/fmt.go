package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the store file in canonical form" }
func (*fmtCmd) Usage() string {
	return `caja fmt

  Loads the store file and writes it back: sorted keys, stable
  indentation. Useful after editing the file by hand.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	if err := r.Save(); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Formatted %s\n", *storeFile)
	return subcommands.ExitSuccess
}
