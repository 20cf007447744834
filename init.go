package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookgo/inject"
	"github.com/spf13/cobra"
	"github.com/tryanzu/gomarket/core/shell"
	"github.com/tryanzu/gomarket/deps"
	"github.com/tryanzu/gomarket/modules/api"
	"github.com/tryanzu/gomarket/modules/cart"
	"github.com/tryanzu/gomarket/modules/exceptions"
)

func main() {
	var (
		container deps.Deps
		store     *cart.Store
		recoverer = &exceptions.ExceptionsModule{}
	)

	var rootCmd = &cobra.Command{
		Use:          "gomarket",
		Short:        "GoMarket cart store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			container, err = deps.Bootstrap()
			if err != nil {
				return err
			}

			recoverer.ErrorService = container.Errors()
			key := container.Config().UString("cart.storage.key", cart.DefaultKey)
			store = cart.Boot(container.Bucket(), cart.WithKey(key))
			return nil
		},
	}

	var cmdAPI = &cobra.Command{
		Use:   "api [address]",
		Short: "Starts API web server",
		Long: `Starts API web server listening
        in the specified address (:3200 by default)
        `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := ":3200"
			if len(args) == 1 {
				port = args[0]
			}

			var (
				g      inject.Graph
				module api.Module
			)
			err := g.Provide(
				&inject.Object{Value: container.Config(), Complete: true},
				&inject.Object{Value: store, Complete: true},
				&inject.Object{Value: recoverer, Complete: true},
			)
			if err != nil {
				return err
			}
			if err := module.Populate(&g); err != nil {
				return err
			}

			return module.Run(port)
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Starts interactive cart shell",
		Run: func(cmd *cobra.Command, args []string) {
			defer recoverer.Recover()
			shell.RunShell(store)
		},
	}

	var cmdCart = &cobra.Command{
		Use:   "cart",
		Short: "One-shot cart operations",
	}
	provided := func() context.Context {
		return cart.NewContext(context.Background(), store)
	}
	cmdCart.AddCommand(
		cartCmd("list", "Show cart lines", cobra.NoArgs, provided, func(ctx context.Context, args []string) error {
			<-store.Ready()
			fmt.Println(shell.Render(store.Products()))
			return nil
		}),
		cartCmd("add <id> <price> [title] [image]", "Add one unit of a product", cobra.RangeArgs(2, 4), provided, shell.Add),
		cartCmd("inc <id>", "Add one unit of a cart line", cobra.ExactArgs(1), provided, shell.Increment),
		cartCmd("dec <id>", "Remove one unit of a cart line", cobra.ExactArgs(1), provided, shell.Decrement),
	)

	rootCmd.AddCommand(cmdAPI)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(cmdCart)
	err := rootCmd.Execute()
	if store != nil {
		store.Close()
	}
	container.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cartCmd(use, short string, args cobra.PositionalArgs, ctx func() context.Context, fn func(context.Context, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fn(ctx(), args)
		},
	}
}
