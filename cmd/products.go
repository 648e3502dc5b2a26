package cmd

import (
	"context"
	"flag"

	"github.com/cajaferia/caja/renderer"
	"github.com/google/subcommands"
)

// productsCmd holds the flags for the 'products' subcommand.
type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "display the product catalog" }
func (*productsCmd) Usage() string {
	return `caja products

  Displays the catalog with prices, costs and stock levels.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	printMarkdown(renderer.CatalogMarkdown(r.Catalog()))
	return subcommands.ExitSuccess
}
