package cli

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/goldpos/jrdclient/pkg/api"
)

func (c *Cli) runProducts(ctx context.Context) error {
	value, err := c.store.Fetch(ctx, c.productsKey)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}
	products, ok := value.([]pkgapi.Product)
	if !ok {
		return fmt.Errorf("unexpected products cache value %T", value)
	}
	return c.render(productListTemplate, products)
}

func (c *Cli) runInvoices(ctx context.Context) error {
	value, err := c.store.Fetch(ctx, c.invoicesKey)
	if err != nil {
		return fmt.Errorf("fetch invoices: %w", err)
	}
	invoices, ok := value.([]pkgapi.Invoice)
	if !ok {
		return fmt.Errorf("unexpected invoices cache value %T", value)
	}
	return c.render(invoiceListTemplate, invoices)
}

func (c *Cli) runCreateInvoice(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: jrdclient invoice <product-id> [product-id...]")
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", arg)
		}
		ids = append(ids, id)
	}

	invoice, err := c.apiClient.CreateInvoice(ctx, pkgapi.CreateInvoiceRequest{ProductIDs: ids})
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	// Список счетов в кэше устарел
	c.store.Invalidate(c.invoicesKey)

	c.io.Printf("✓ Invoice %s created, total %s\n", invoice.Number, invoice.Total)
	return nil
}

func (c *Cli) runSales(ctx context.Context) error {
	value, err := c.store.Fetch(ctx, c.salesKey)
	if err != nil {
		return fmt.Errorf("fetch sales: %w", err)
	}
	sales, ok := value.([]pkgapi.Sale)
	if !ok {
		return fmt.Errorf("unexpected sales cache value %T", value)
	}
	return c.render(saleListTemplate, sales)
}

func (c *Cli) runGold(ctx context.Context) error {
	value, err := c.store.Fetch(ctx, c.goldKey)
	if err != nil {
		return fmt.Errorf("fetch gold rate: %w", err)
	}
	rate, ok := value.(*pkgapi.GoldRate)
	if !ok {
		return fmt.Errorf("unexpected gold rate cache value %T", value)
	}
	return c.render(goldRateTemplate, rate)
}
