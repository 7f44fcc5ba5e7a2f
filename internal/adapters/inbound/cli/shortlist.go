package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
)

func newShortlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shortlist",
		Aliases: []string{"sl"},
		Short:   "Manage the planning shortlist",
		Long:    "The shortlist is the set of dishes the next plan is generated from. Its order is the engine's tie-break order.",
	}
	cmd.AddCommand(newShortlistAddCmd())
	cmd.AddCommand(newShortlistRemoveCmd())
	cmd.AddCommand(newShortlistClearCmd())
	cmd.AddCommand(newShortlistShowCmd())
	return cmd
}

func newShortlistAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <dish>...",
		Short: "Shortlist dishes by ID or name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			for _, ref := range args {
				dish, err := e.resolveDish(ref)
				if err != nil {
					return err
				}
				if _, err := e.shortlist.Add(dish.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Shortlisted %s.\n", dish.Name)
			}
			return nil
		},
	}
}

func newShortlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <dish>",
		Short: "Remove a dish from the shortlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			dish, err := e.resolveDish(args[0])
			if err != nil {
				return err
			}
			if _, err := e.shortlist.Remove(dish.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from shortlist.\n", dish.Name)
			return nil
		},
	}
}

func newShortlistClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the shortlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			if err := e.shortlist.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Shortlist cleared.")
			return nil
		},
	}
}

func newShortlistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the shortlisted dishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			sl, err := e.shortlist.Show()
			if err != nil {
				return err
			}
			if sl.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Shortlist is empty.")
				return nil
			}
			dishes, err := e.catalogue.List()
			if err != nil {
				return err
			}
			kept := dishes[:0]
			for _, d := range dishes {
				if sl.Contains(d.ID) {
					kept = append(kept, d)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDishes(kept, sl))
			return nil
		},
	}
}
