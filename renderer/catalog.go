package renderer

import (
	"github.com/cajaferia/caja"
)

// productView is the template-friendly projection of a caja.Product.
type productView struct {
	Num   int
	Name  string
	Price string
	Cost  string
	Stock int
}

// CatalogMarkdown renders the product list.
func CatalogMarkdown(c *caja.Catalog) string {
	rows := make([]productView, 0, c.Len())
	for i, p := range c.Products() {
		rows = append(rows, productView{
			Num:   i + 1,
			Name:  p.Name(),
			Price: p.Price().String(),
			Cost:  p.Cost().String(),
			Stock: p.Stock(),
		})
	}
	return renderTemplate("products", "products.md", nil, rows)
}
