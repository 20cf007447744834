package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tryanzu/gomarket/modules/cart"
)

var errUsage = errors.New("missing arguments, see help")

// Add parses <id> <price> [title] [image] into a product and adds it to the
// cart found in ctx.
func Add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}

	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", args[1])
	}

	p := cart.Product{ID: args[0], Price: price}
	if len(args) > 2 {
		p.Title = args[2]
	}
	if len(args) > 3 {
		p.ImageURL = args[3]
	}

	c, err := cart.FromContext(ctx)
	if err != nil {
		return err
	}
	return c.AddToCart(ctx, p)
}

func Increment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	c, err := cart.FromContext(ctx)
	if err != nil {
		return err
	}
	return c.Increment(ctx, args[0])
}

func Decrement(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	c, err := cart.FromContext(ctx)
	if err != nil {
		return err
	}
	return c.Decrement(ctx, args[0])
}

// Render draws the cart as a table with its total.
func Render(items cart.Items) string {
	if len(items) == 0 {
		return "Cart is empty."
	}

	buf := new(bytes.Buffer)
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Title", "Price", "Qty", "Subtotal"})
	for _, item := range items {
		table.Append([]string{
			item.ID,
			item.Title,
			money(item.Price),
			strconv.Itoa(item.Quantity),
			money(item.Subtotal()),
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(items.Count()), money(items.Total())})
	table.Render()
	return strings.TrimRight(buf.String(), "\n")
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
