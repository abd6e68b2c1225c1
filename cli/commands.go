// Package cli provides the Cobra-based CLI for storefront.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefront/domain"
	"storefront/store"
	"storefront/util"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "A retail store catalog and ordering system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject shop
			if shop != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			path := viper.GetString("catalog")
			if path == "" {
				shop = store.DefaultCatalog()
				slog.Debug("using built-in catalog")
				return nil
			}

			var err error
			shop, err = store.LoadCatalog(path)
			if err != nil {
				return err
			}
			slog.Info("catalog loaded", "path", path, "total_quantity", shop.GetTotalQuantity())
			return nil
		},
	}

	shop *store.Store
)

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (empty = built-in catalog)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all active products in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(cmd.OutOrStdout())
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// total
	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Show total quantity in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(),
				"Total of %g items in store\n", shop.GetTotalQuantity())
			return nil
		},
	}
	rootCmd.AddCommand(totalCmd)

	// order
	var items []string
	orderCmd := &cobra.Command{
		Use:   "order --item N:QTY [--item N:QTY ...]",
		Short: "Order products by their list number",
		RunE: func(cmd *cobra.Command, args []string) error {
			// reset so repeated in-process executions do not accumulate lines
			defer func() { items = nil }()
			if len(items) == 0 {
				return errors.New("at least one --item required")
			}
			active := shop.GetAllProducts()
			lines := make([]store.Line, 0, len(items))
			for _, item := range items {
				ln, err := parseItem(item, active)
				if err != nil {
					return err
				}
				lines = append(lines, ln)
			}
			processOrder(cmd, lines)
			return nil
		},
	}
	orderCmd.Flags().StringArrayVar(&items, "item", nil, "order line as LIST_NUMBER:QUANTITY")
	rootCmd.AddCommand(orderCmd)

	// menu
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive store menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
	rootCmd.AddCommand(menuCmd)
}

// parseItem turns "N:QTY" into an order line against the active product listing.
func parseItem(item string, active []domain.Product) (store.Line, error) {
	parts := strings.SplitN(item, ":", 2)
	if len(parts) != 2 {
		return store.Line{}, fmt.Errorf("invalid item %q: expected LIST_NUMBER:QUANTITY", item)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return store.Line{}, fmt.Errorf("invalid item %q: bad product number: %w", item, err)
	}
	if idx < 1 || idx > len(active) {
		return store.Line{}, fmt.Errorf("invalid item %q: product number out of range 1-%d", item, len(active))
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return store.Line{}, fmt.Errorf("invalid item %q: bad quantity: %w", item, err)
	}
	return store.Line{Product: active[idx-1], Quantity: qty}, nil
}

// processOrder runs the batch, surfaces per-line failures, and prints the total.
func processOrder(cmd *cobra.Command, lines []store.Line) {
	ref := util.NewOrderRef()
	start := time.Now()
	total, results := shop.Order(lines)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "Order error for %q: %v\n", res.Product.Name(), res.Err)
		}
	}

	slog.Info("order processed",
		"order_ref", ref,
		"lines", len(results),
		"failed", failed,
		"total", total,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Total price for your order: $%.2f\n", total)
}

func printProducts(w io.Writer) {
	fmt.Fprintln(w, "Products available in store:")
	fmt.Fprintln(w, "------")
	for i, p := range shop.GetAllProducts() {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Show())
	}
	fmt.Fprintln(w, "------")
}

// runMenu drives the interactive text menu until the user quits or stdin closes.
func runMenu(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	r := bufio.NewReader(cmd.InOrStdin())

	for {
		fmt.Fprintln(out, "\nStore Menu")
		fmt.Fprintln(out, "----------")
		fmt.Fprintln(out, "1. List all products in store")
		fmt.Fprintln(out, "2. Show total amount in store")
		fmt.Fprintln(out, "3. Make an order")
		fmt.Fprintln(out, "4. Quit")
		fmt.Fprint(out, "Enter your choice (1-4): ")

		choice, err := r.ReadString('\n')
		if err != nil {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			printProducts(out)
		case "2":
			fmt.Fprintf(out, "Total of %g items in store\n", shop.GetTotalQuantity())
		case "3":
			menuOrder(cmd, r)
		case "4":
			fmt.Fprintln(out, "Thank you for visiting! Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}

// menuOrder collects order lines interactively, then processes the batch.
// Free-text parse errors re-prompt rather than abort.
func menuOrder(cmd *cobra.Command, r *bufio.Reader) {
	out := cmd.OutOrStdout()
	active := shop.GetAllProducts()

	printProducts(out)
	fmt.Fprintln(out, "When you want to finish the order, enter empty text.")

	var lines []store.Line
	for {
		fmt.Fprint(out, "Which product # do you want? ")
		numStr, err := r.ReadString('\n')
		if err != nil {
			break
		}
		numStr = strings.TrimSpace(numStr)
		if numStr == "" {
			break
		}

		idx, err := strconv.Atoi(numStr)
		if err != nil || idx < 1 || idx > len(active) {
			fmt.Fprintln(out, "Invalid product number. Please choose a number from the list.")
			continue
		}
		p := active[idx-1]

		fmt.Fprintf(out, "How many %q would you like to order? ", p.Name())
		qtyStr, err := r.ReadString('\n')
		if err != nil {
			break
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
		if err != nil || qty <= 0 {
			fmt.Fprintln(out, "Invalid quantity. Please enter a positive number.")
			continue
		}

		lines = append(lines, store.Line{Product: p, Quantity: qty})
	}

	if len(lines) == 0 {
		fmt.Fprintln(out, "Nothing ordered.")
		return
	}
	processOrder(cmd, lines)
}

func Execute() error {
	return rootCmd.Execute()
}
