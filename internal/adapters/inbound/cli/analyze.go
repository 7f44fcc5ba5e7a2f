package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		suggest     bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [plan-id]",
		Short: "Score a plan's dietary variety",
		Long:  "Analyze a stored plan: cuisine, region, and category distributions, over-repeated dishes, and a 0-100 variety score.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			if showHistory {
				entries, err := e.analysis.History()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("plan-id required (or use --history)")
			}
			planID := args[0]

			if suggest {
				report, suggestions, err := e.analysis.Suggest(planID, e.cfg.Variety)
				if err != nil {
					return err
				}
				if jsonOutput {
					return renderJSON(cmd, struct {
						Report      any      `json:"report"`
						Suggestions []string `json:"suggestions"`
					}{report, suggestions})
				}
				dishes, err := e.catalogue.List()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, dishes))
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuggestions(suggestions))
				return nil
			}

			report, err := e.analysis.Assess(planID, e.cfg.Variety)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, report)
			}
			dishes, err := e.catalogue.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, dishes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "Include improvement suggestions")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the variety score history")

	return cmd
}
