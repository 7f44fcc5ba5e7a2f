package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/menurota/menurota/internal/adapters/outbound/tui"
	"github.com/menurota/menurota/internal/domain"
)

func newCatalogueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"cat"},
		Short:   "Manage the dish catalogue",
	}
	cmd.AddCommand(newCatalogueSeedCmd())
	cmd.AddCommand(newCatalogueAddCmd())
	cmd.AddCommand(newCatalogueListCmd())
	cmd.AddCommand(newCatalogueRemoveCmd())
	return cmd
}

func newCatalogueSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the default starter dishes",
		Long:  "Add the curated vegetarian starter dishes to the catalogue. Dishes already present are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			added, err := e.catalogue.Seed()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d default dishes (%s).\n", added, domain.DefaultsVersion)
			return nil
		},
	}
}

func newCatalogueAddCmd() *cobra.Command {
	var (
		cuisine    string
		categories []string
		tags       []string
		recipeRef  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a dish to the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			cui, err := domain.ParseCuisine(cuisine)
			if err != nil {
				return err
			}
			cats := make([]domain.Category, 0, len(categories))
			for _, raw := range categories {
				c, err := domain.ParseCategory(raw)
				if err != nil {
					return err
				}
				cats = append(cats, c)
			}

			dish := domain.NewDish(args[0], cui, cats...)
			if len(tags) > 0 {
				dish = dish.WithTags(tags...)
			}
			if recipeRef != "" {
				dish = dish.WithRecipeRef(recipeRef)
			}

			if err := e.catalogue.Add(dish); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", dish.Name, dish.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Cuisine (required, e.g. korean, italian)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Food categories (repeatable, e.g. greens, legumes)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Free-form tags (repeatable)")
	cmd.Flags().StringVar(&recipeRef, "recipe", "", "Recipe reference or ingredient notes")
	_ = cmd.MarkFlagRequired("cuisine")

	return cmd
}

func newCatalogueListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			dishes, err := e.catalogue.List()
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, dishes)
			}
			sl, err := e.shortlist.Show()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDishes(dishes, sl))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCatalogueRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <dish>",
		Short: "Remove a dish by ID or name",
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
			if err := e.catalogue.Remove(dish.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s).\n", dish.Name, dish.ID)
			return nil
		},
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
