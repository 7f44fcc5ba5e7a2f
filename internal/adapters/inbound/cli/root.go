package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "menurota",
		Short:         "Plan varied vegetarian meals without thinking about it",
		Long:          "Menurota keeps a dish catalogue, packs your shortlist into balanced weeks, and scores how varied the result is.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("data-dir", "", "Data directory (defaults to ~/.menurota)")
	cmd.PersistentFlags().String("user", "", "User the data is scoped to (defaults to config or \"default\")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCatalogueCmd())
	cmd.AddCommand(newShortlistCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newShoppingCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
