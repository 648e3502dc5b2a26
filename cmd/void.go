package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

// voidCmd holds the flags for the 'void' subcommand.
type voidCmd struct{}

func (*voidCmd) Name() string     { return "void" }
func (*voidCmd) Synopsis() string { return "void a sale from the ledger" }
func (*voidCmd) Usage() string {
	return `caja void <n>

  Deletes sale number <n> from the ledger, as numbered by 'caja sales'.
  The stock sold by that sale is not restored: a void corrects the
  ledger, it does not process a refund.
`
}

func (c *voidCmd) SetFlags(f *flag.FlagSet) {}

func (c *voidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return errorf("exactly one sale number is required")
	}
	n, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return errorf("invalid sale number %q: %v", f.Arg(0), err)
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	if err := r.VoidSale(n); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Voided sale %d\n", n)
	return subcommands.ExitSuccess
}
