package cli

import (
	"fmt"
	"text/tabwriter"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) printProducts(products []*entity.Product) {
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tMODEL\tPRICE\tSTOCK")
	for _, p := range products {
		price := money(p.DiscountedPrice())
		if p.HasDiscount() {
			price += fmt.Sprintf(" (-%s%%)", p.DiscountPercentage.String())
		}
		stock := fmt.Sprintf("%d", p.Quantity)
		if !p.InStock() {
			stock = "sold out"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.ModelName, price, stock)
	}
	_ = w.Flush()
}

func (a *App) printProduct(p *entity.Product, image string) {
	fmt.Fprintf(a.out, "%s\n", p.Name)
	if p.PromotionText != "" {
		fmt.Fprintf(a.out, "** %s **\n", p.PromotionText)
	}

	w := a.table()
	fmt.Fprintf(w, "Model:\t%s\n", p.ModelName)
	fmt.Fprintf(w, "Scale:\t%s\n", p.Dimension)
	if p.HasDiscount() {
		fmt.Fprintf(w, "Price:\t%s (was %s, -%s%%)\n", money(p.DiscountedPrice()), money(p.Price), p.DiscountPercentage.String())
	} else {
		fmt.Fprintf(w, "Price:\t%s\n", money(p.Price))
	}
	if p.InStock() {
		fmt.Fprintf(w, "Stock:\t%d available\n", p.Quantity)
	} else {
		fmt.Fprintf(w, "Stock:\tsold out\n")
	}
	fmt.Fprintf(w, "Image:\t%s\n", image)
	_ = w.Flush()

	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}
}

func (a *App) printCart(state entity.CartState) {
	if state.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty")

		return
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tUNIT\tTOTAL")
	for _, line := range state.Lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			line.Product.ID, line.Product.Name, line.Quantity,
			money(line.Product.DiscountedPrice()), money(line.LineTotal()))
	}
	_ = w.Flush()
	a.printCartSummary(state)
}

func (a *App) printCartSummary(state entity.CartState) {
	if state.Status == entity.CartStatusUnauthenticated {
		return
	}
	fmt.Fprintf(a.out, "Cart: %d item(s), total %s\n", state.ItemCount, money(state.Total))
}

func (a *App) printOrder(order *entity.Order) {
	fmt.Fprintf(a.out, "Order #%d  %s  %s  total %s\n",
		order.ID, order.Status.Label(), order.CreatedAt.Format("2006-01-02 15:04"), money(order.Total))

	w := a.table()
	for _, line := range order.Lines {
		fmt.Fprintf(w, "  %s\tx%d\t%s\n", line.Product.Name, line.Quantity, money(line.LineTotal()))
	}
	_ = w.Flush()
}
