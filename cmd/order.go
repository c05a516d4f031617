package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/orders"
)

var orderCmd = &cobra.Command{
	Use:   "order [number]",
	Short: "Look up an order by number",
	Long:  `Normalizes an order reference (ORD-12345, #12345, order 12345, 12345) and prints the stored record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.orders.Lookup(args[0])
		if errors.Is(err, orders.ErrNotFound) {
			return fmt.Errorf("order %q not found; known orders: %s", args[0], strings.Join(a.orders.Keys(), ", "))
		}
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		row := func(k, v string) {
			if v != "" {
				fmt.Fprintf(tw, "%s\t%s\n", k, v)
			}
		}
		row("Order", rec.Key)
		row("Status", string(rec.Status))
		row("Product", rec.Product)
		row("Carrier", rec.Carrier)
		row("Tracking", rec.TrackingNumber)
		row("Estimated delivery", rec.EstimatedDelivery)
		row("Delivered", rec.DeliveryDate)
		row("Ship to", rec.ShippingAddress)
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
}
