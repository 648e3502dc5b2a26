package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cajaferia/caja"
	"github.com/google/subcommands"
)

// findProduct resolves a command-line product reference: an ID when one is
// given, the product name otherwise.
func findProduct(r *caja.Register, id, name string) (caja.Product, error) {
	if id != "" {
		p, ok := r.Catalog().Get(id)
		if !ok {
			return caja.Product{}, fmt.Errorf("no product with id %q", id)
		}
		return p, nil
	}
	if name == "" {
		return caja.Product{}, fmt.Errorf("a product name or -id is required")
	}
	p, ok := r.Catalog().ByName(name)
	if !ok {
		return caja.Product{}, fmt.Errorf("no product named %q", name)
	}
	return p, nil
}

// productAddCmd holds the flags for the 'product-add' subcommand.
type productAddCmd struct {
	name  string
	cost  string
	price string
	stock int
}

func (*productAddCmd) Name() string     { return "product-add" }
func (*productAddCmd) Synopsis() string { return "add a product to the catalog" }
func (*productAddCmd) Usage() string {
	return `caja product-add -name <name> -cost <amount> -price <amount> [-stock n]

  Adds a product to the catalog and prints its generated id.
`
}

func (c *productAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.cost, "cost", "0", "Unit cost")
	f.StringVar(&c.price, "price", "0", "Unit sale price")
	f.IntVar(&c.stock, "stock", 0, "Initial stock level")
}

func (c *productAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cost, err := caja.ParseMoney(c.cost, "")
	if err != nil {
		return errorf("invalid -cost: %v", err)
	}
	price, err := caja.ParseMoney(c.price, "")
	if err != nil {
		return errorf("invalid -price: %v", err)
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	stored, err := r.AddProduct(caja.NewProduct(c.name, cost, price, c.stock))
	if err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Added product %q (id %s)\n", stored.Name(), stored.ID())
	return subcommands.ExitSuccess
}

// productUpdateCmd holds the flags for the 'product-update' subcommand.
type productUpdateCmd struct {
	id    string
	name  string
	cost  string
	price string
	stock int
}

func (*productUpdateCmd) Name() string     { return "product-update" }
func (*productUpdateCmd) Synopsis() string { return "update a catalog product" }
func (*productUpdateCmd) Usage() string {
	return `caja product-update [-id <id>] [<name>] [-name <new name>] [-cost <amount>] [-price <amount>] [-stock n]

  Updates the selected product. Only the given flags change; the rest of
  the product is kept as is.
`
}

func (c *productUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id (defaults to looking the name argument up)")
	f.StringVar(&c.name, "name", "", "New product name")
	f.StringVar(&c.cost, "cost", "", "New unit cost")
	f.StringVar(&c.price, "price", "", "New unit sale price")
	f.IntVar(&c.stock, "stock", -1, "New stock level")
}

func (c *productUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	p, err := findProduct(r, c.id, f.Arg(0))
	if err != nil {
		return errorf("%v", err)
	}

	name, cost, price, stock := p.Name(), p.Cost(), p.Price(), p.Stock()
	if c.name != "" {
		name = c.name
	}
	if c.cost != "" {
		if cost, err = caja.ParseMoney(c.cost, ""); err != nil {
			return errorf("invalid -cost: %v", err)
		}
	}
	if c.price != "" {
		if price, err = caja.ParseMoney(c.price, ""); err != nil {
			return errorf("invalid -price: %v", err)
		}
	}
	if c.stock >= 0 {
		stock = c.stock
	}

	if err := r.UpdateProduct(p.ID(), caja.NewProduct(name, cost, price, stock)); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Updated product %q\n", name)
	return subcommands.ExitSuccess
}

// productRmCmd holds the flags for the 'product-rm' subcommand.
type productRmCmd struct {
	id string
}

func (*productRmCmd) Name() string     { return "product-rm" }
func (*productRmCmd) Synopsis() string { return "remove a product from the catalog" }
func (*productRmCmd) Usage() string {
	return `caja product-rm [-id <id>] [<name>]

  Removes the selected product from the catalog.
`
}

func (c *productRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id (defaults to looking the name argument up)")
}

func (c *productRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	p, err := findProduct(r, c.id, f.Arg(0))
	if err != nil {
		return errorf("%v", err)
	}
	if err := r.RemoveProduct(p.ID()); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Removed product %q\n", p.Name())
	return subcommands.ExitSuccess
}
