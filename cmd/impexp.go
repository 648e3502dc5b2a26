package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cajaferia/caja"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input   string
	mapping caja.ImportMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import products from a price list" }
func (*importCmd) Usage() string {
	return `caja import [-i <file>] [-rows <path>] [-name <path>] [-cost <path>] [-price <path>] [-stock <path>]

  Reads a product list (stdin by default) and appends the products to
  the catalog with fresh identifiers. The defaults read the 'caja
  export' format back; the jsonpath flags adapt to a supplier's shape:

	caja import -i pricelist.json -rows '$.items' -name '$.label' -cost '$.buy' -price '$.sell' -stock '$.units'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	m := caja.DefaultImportMapping()
	f.StringVar(&c.input, "i", "", "File to read (defaults to stdin)")
	f.StringVar(&c.mapping.Rows, "rows", m.Rows, "jsonpath selecting the product rows")
	f.StringVar(&c.mapping.Name, "name", m.Name, "jsonpath to the name, relative to a row")
	f.StringVar(&c.mapping.Cost, "cost", m.Cost, "jsonpath to the unit cost, relative to a row")
	f.StringVar(&c.mapping.Price, "price", m.Price, "jsonpath to the unit price, relative to a row")
	f.StringVar(&c.mapping.Stock, "stock", m.Stock, "jsonpath to the stock level, relative to a row")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if c.input != "" {
		f, err := os.Open(c.input)
		if err != nil {
			return errorf("cannot open %q: %v", c.input, err)
		}
		defer f.Close()
		in = f
	}

	products, err := caja.ImportProducts(in, c.mapping)
	if err != nil {
		return errorf("%v", err)
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	for _, p := range products {
		if _, err := r.AddProduct(p); err != nil {
			return errorf("cannot add product %q: %v", p.Name(), err)
		}
	}
	fmt.Printf("Imported %d products\n", len(products))
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog as JSONL" }
func (*exportCmd) Usage() string {
	return `caja export [-o <file>]

  Writes the catalog (stdout by default) as JSONL, one product per
  line. Identifiers are not exported; the importing register assigns
  its own.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return errorf("cannot create %q: %v", c.output, err)
		}
		defer f.Close()
		out = f
	}

	if err := caja.ExportCatalog(out, r.Catalog()); err != nil {
		return errorf("%v", err)
	}
	return subcommands.ExitSuccess
}
