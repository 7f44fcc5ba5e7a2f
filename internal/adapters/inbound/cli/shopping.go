package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
	"github.com/menurota/menurota/internal/domain/shopping"
)

func newShoppingCmd() *cobra.Command {
	var (
		week       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "shopping <plan-id>",
		Short: "Build a shopping list from a plan",
		Long:  "Derive a shopping list from the food categories of a plan's dishes, split into bulk (monthly) and fresh (weekly) sections.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			var list shopping.List
			if cmd.Flags().Changed("week") {
				list, err = e.shopping.ForWeek(args[0], week)
			} else {
				list, err = e.shopping.ForPlan(args[0])
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, list)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderShoppingList(list))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Limit to one week (1-indexed)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
