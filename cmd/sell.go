package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/cajaferia/caja"
	"github.com/cajaferia/caja/renderer"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	pay string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "ring up and commit a sale" }
func (*sellCmd) Usage() string {
	return `caja sell [-pay cash|transfer] <product>[:qty] ...

  Builds a cart from the arguments and commits it: stock is decremented
  and the sale is recorded in the ledger. Repeating a product merges
  into one line.

	caja sell -pay cash "Bread:3" "Milk:1"
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pay, "pay", "cash", "Pay method: cash or transfer")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return errorf("nothing to sell: give at least one <product>[:qty] argument")
	}
	pay, err := caja.ParsePayMethod(c.pay)
	if err != nil {
		return errorf("invalid -pay: %v", err)
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}

	cart := caja.NewCart()
	for _, arg := range f.Args() {
		name, qty, err := parseLineArg(arg)
		if err != nil {
			return errorf("%v", err)
		}
		p, ok := r.Catalog().ByName(name)
		if !ok {
			return errorf("no product named %q", name)
		}
		if err := cart.AddLine(r.Catalog(), p.ID(), qty); err != nil {
			return errorf("%v", err)
		}
	}

	sale, err := r.Commit(cart, pay)
	if err != nil {
		return errorf("%v", err)
	}
	printMarkdown(renderer.ReceiptMarkdown(sale))
	return subcommands.ExitSuccess
}

// parseLineArg splits a "<product>[:qty]" argument. The quantity defaults
// to 1. The split is on the last colon, so product names may contain one.
func parseLineArg(arg string) (name string, qty int, err error) {
	name, qty = arg, 1
	if i := strings.LastIndex(arg, ":"); i >= 0 {
		n, convErr := strconv.Atoi(arg[i+1:])
		if convErr != nil {
			return "", 0, fmt.Errorf("invalid quantity in %q: %w", arg, convErr)
		}
		name, qty = arg[:i], n
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, fmt.Errorf("missing product name in %q", arg)
	}
	return name, qty, nil
}
