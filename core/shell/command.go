package shell

import (
	"context"

	"github.com/abiosoft/ishell"
	"github.com/tryanzu/gomarket/modules/cart"
)

// RunShell blocks on an interactive cart shell. Every cart change is
// rendered as it happens.
func RunShell(store *cart.Store) {
	shell := ishell.New()
	shell.Println("GoMarket Interactive Shell 0.1")

	sub := store.Subscribe()
	defer sub.Unsubscribe()
	go func() {
		for items := range sub.Updates() {
			shell.Println(Render(items))
		}
	}()

	ctx := cart.NewContext(context.Background(), store)
	shell.AddCmd(&ishell.Cmd{
		Name: "list",
		Help: "Show cart lines.",
		Func: func(c *ishell.Context) {
			c.Println(Render(store.Products()))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "add",
		Help: "add <id> <price> [title] [image]: add one unit of a product.",
		Func: run(ctx, Add),
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "inc",
		Help: "inc <id>: one more unit.",
		Func: run(ctx, Increment),
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "dec",
		Help: "dec <id>: one less unit, drops the line on the last one.",
		Func: run(ctx, Decrement),
	})

	shell.Run()
}

type action func(ctx context.Context, args []string) error

func run(ctx context.Context, fn action) func(*ishell.Context) {
	return func(c *ishell.Context) {
		if err := fn(ctx, c.Args); err != nil {
			c.Println("error:", err)
		}
	}
}
