package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
	"github.com/menurota/menurota/internal/domain/distribute"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect meal plans",
	}
	cmd.AddCommand(newPlanGenerateCmd())
	cmd.AddCommand(newPlanShowCmd())
	cmd.AddCommand(newPlanListCmd())
	cmd.AddCommand(newPlanDeleteCmd())
	return cmd
}

func newPlanGenerateCmd() *cobra.Command {
	var (
		name       string
		weeks      int
		perWeek    int
		eastern    int
		western    int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Pack the shortlist into weeks",
		Long:  "Run the distribution engine over the shortlist: maximize category diversity and cuisine novelty per week while keeping the Eastern/Western quota.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			params := distribute.Params{
				Weeks:          e.cfg.Plan.Weeks,
				PerWeek:        e.cfg.Plan.PerWeek,
				EasternPerWeek: e.cfg.Plan.EasternPerWeek,
				WesternPerWeek: e.cfg.Plan.WesternPerWeek,
			}
			if cmd.Flags().Changed("weeks") {
				params.Weeks = weeks
			}
			if cmd.Flags().Changed("per-week") {
				params.PerWeek = perWeek
			}
			if cmd.Flags().Changed("eastern") {
				params.EasternPerWeek = eastern
			}
			if cmd.Flags().Changed("western") {
				params.WesternPerWeek = western
			}

			plan, result, err := e.planning.Generate(name, params, e.cfg.Scoring)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, plan)
			}
			dishes, err := e.catalogue.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(plan, dishes))
			fmt.Fprint(cmd.OutOrStdout(), "\n\n")
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDistribution(result, dishes))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Meal Plan", "Plan name (e.g. \"January 2026\")")
	cmd.Flags().IntVar(&weeks, "weeks", 4, "Number of weeks")
	cmd.Flags().IntVar(&perWeek, "per-week", 4, "Dishes per week")
	cmd.Flags().IntVar(&eastern, "eastern", 2, "Eastern dishes per week")
	cmd.Flags().IntVar(&western, "western", 2, "Western dishes per week")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newPlanShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			plan, err := e.planning.Get(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, plan)
			}
			dishes, err := e.catalogue.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(plan, dishes))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPlanListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			plans, err := e.planning.List()
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, plans)
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plans yet. Try `menurota plan generate`.")
				return nil
			}
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%d weeks, %d dishes)\n",
					p.ID, p.Name, p.NumWeeks(), p.TotalDishes())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPlanDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			if err := e.planning.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
			return nil
		},
	}
}
