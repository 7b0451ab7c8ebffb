package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/wallet"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Work out how to pay a price from a wallet",
	Long: `Checkout builds a wallet holding --total yen that can pay --price,
then shows the coins to hand over and any change due.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		price, _ := cmd.Flags().GetInt("price")
		total, _ := cmd.Flags().GetInt("total")
		if price < 0 {
			return fmt.Errorf("--price must not be negative")
		}
		if total <= 0 {
			total = price
		}

		w := wallet.BuildForPrice(total, price)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Price:  %d\n", price)
		fmt.Fprintf(out, "Wallet: %s (total %d)\n", w, wallet.Total(w))

		if hand, ok := wallet.SelectExact(price, w); ok {
			fmt.Fprintf(out, "Pay:    %s (exact, %d coins)\n", hand, hand.Count())
			return nil
		}
		paid := wallet.Total(w)
		change, ok := wallet.Change(paid, price)
		if !ok {
			fmt.Fprintf(out, "Short by %d.\n", price-paid)
			return nil
		}
		fmt.Fprintf(out, "Pay:    %s (no exact change)\n", w)
		fmt.Fprintf(out, "Change: %s\n", change)
		return nil
	},
}

func init() {
	checkoutCmd.Flags().Int("price", 0, "Price to pay (required)")
	checkoutCmd.Flags().Int("total", 0, "Wallet total (defaults to the price)")
	_ = checkoutCmd.MarkFlagRequired("price")
}
