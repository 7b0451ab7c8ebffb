package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/session"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend coins on shelf items",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog and your shelf",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProgress(cmd, false, func(p progress.RegisterProgress) (progress.RegisterProgress, error) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "● %d coins\n\n", p.Coins)
			fmt.Fprintf(w, "%-14s  %-16s  %5s  %s\n", "ID", "Name", "Price", "")
			fmt.Fprintln(w, strings.Repeat("─", 46))
			for _, item := range progress.Catalog() {
				mark := ""
				if slices.Contains(p.PurchasedItemIDs, item.ID) {
					mark = "owned"
				}
				fmt.Fprintf(w, "%-14s  %-16s  %5d  %s\n", item.ID, item.Icon+" "+item.Name, item.Price, mark)
			}

			fmt.Fprintf(w, "\nShelf (%dx%d)\n", p.ShelfRows, p.ShelfCols)
			for r := range p.ShelfRows {
				var cells []string
				for c := range p.ShelfCols {
					cell := "[  ]"
					if i := r*p.ShelfCols + c; i < len(p.ShelfSlots) {
						if item, ok := progress.LookupItem(p.ShelfSlots[i]); ok {
							cell = "[" + item.Icon + "]"
						}
					}
					cells = append(cells, cell)
				}
				fmt.Fprintln(w, strings.Join(cells, " "))
			}
			return p, nil
		})
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProgress(cmd, true, func(p progress.RegisterProgress) (progress.RegisterProgress, error) {
			next, err := progress.Purchase(p, args[0])
			if err != nil {
				return p, err
			}
			item, _ := progress.LookupItem(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Bought %s %s. ● %d coins left.\n", item.Icon, item.Name, next.Coins)
			return next, nil
		})
	},
}

var shopPlaceCmd = &cobra.Command{
	Use:   "place <slot> [item-id]",
	Short: "Put an owned item in a shelf slot, or empty the slot",
	Long: `Place puts an item into a shelf slot, numbered from 1 in row-major
order. Without an item id the slot is emptied.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid slot %q: %w", args[0], err)
		}
		return withProgress(cmd, true, func(p progress.RegisterProgress) (progress.RegisterProgress, error) {
			if len(args) == 1 {
				return progress.ClearShelfSlot(p, slot-1)
			}
			return progress.PlaceOnShelf(p, slot-1, args[1])
		})
	},
}

var shopResizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Change the shelf size",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		return withProgress(cmd, true, func(p progress.RegisterProgress) (progress.RegisterProgress, error) {
			next := progress.ResizeShelf(p, rows, cols)
			fmt.Fprintf(cmd.OutOrStdout(), "Shelf is now %dx%d.\n", next.ShelfRows, next.ShelfCols)
			return next, nil
		})
	},
}

func init() {
	shopResizeCmd.Flags().Int("rows", progress.DefaultShelfRows, "Shelf rows")
	shopResizeCmd.Flags().Int("cols", progress.DefaultShelfCols, "Shelf columns")

	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopPlaceCmd)
	shopCmd.AddCommand(shopResizeCmd)
}

// withProgress loads saved progress, runs fn and saves the result when
// save is set.
func withProgress(cmd *cobra.Command, save bool, fn func(progress.RegisterProgress) (progress.RegisterProgress, error)) error {
	st, svc, err := openService()
	if err != nil {
		return err
	}
	defer st.Close()
	return updateProgress(cmd, svc, save, fn)
}

func updateProgress(cmd *cobra.Command, svc *session.Service, save bool, fn func(progress.RegisterProgress) (progress.RegisterProgress, error)) error {
	ctx := cmd.Context()
	p, err := svc.LoadProgress(ctx)
	if err != nil {
		return err
	}
	next, err := fn(p)
	if err != nil || !save {
		return err
	}
	if err := svc.SaveProgress(ctx, next); err != nil {
		return err
	}
	logger.Info("progress updated", zap.String("command", cmd.CommandPath()), zap.Int("coins", next.Coins))
	return nil
}
