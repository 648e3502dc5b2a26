package renderer

import (
	"fmt"
	"strings"

	"github.com/cajaferia/caja"
)

// saleView is the template-friendly projection of a ledger entry.
type saleView struct {
	Num   int
	Date  string
	Items string
	Qty   int
	Total string
	Pay   string
}

func newSaleView(num int, s caja.Sale) saleView {
	items := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, fmt.Sprintf("%s ×%d", it.Product, it.Qty))
	}
	return saleView{
		Num:   num,
		Date:  s.Date.String(),
		Items: strings.Join(items, ", "),
		Qty:   s.Qty(),
		Total: s.Total.String(),
		Pay:   s.Pay.String(),
	}
}

// SaleEntry pairs a sale with its ledger position, the number the void
// command takes.
type SaleEntry struct {
	Index int
	Sale  caja.Sale
}

// SalesMarkdown renders the sales history.
func SalesMarkdown(entries []SaleEntry) string {
	rows := make([]saleView, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, newSaleView(e.Index, e.Sale))
	}
	return renderTemplate("sales", "sales.md", nil, rows)
}

// receiptView is the template-friendly projection of one committed sale.
type receiptView struct {
	Date  string
	Items []receiptItem
	Total string
	Pay   string
}

type receiptItem struct {
	Product string
	Qty     int
}

// ReceiptMarkdown renders the receipt of a freshly committed sale.
func ReceiptMarkdown(s caja.Sale) string {
	v := receiptView{
		Date:  s.Date.String(),
		Total: s.Total.String(),
		Pay:   s.Pay.String(),
	}
	for _, it := range s.Items {
		v.Items = append(v.Items, receiptItem{Product: it.Product, Qty: it.Qty})
	}
	return renderTemplate("receipt", "receipt.md", nil, v)
}
