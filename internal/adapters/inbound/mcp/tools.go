package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/adapters/outbound/store"
	"github.com/menurota/menurota/internal/application"
	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/distribute"
)

// registerTools registers all menurota MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	// 1. menurota_list_dishes
	s.AddTool(
		mcplib.NewTool("menurota_list_dishes",
			mcplib.WithDescription("Returns the dish catalogue with categories, cuisine, and region for each dish"),
		),
		handleListDishes(cfg),
	)

	// 2. menurota_add_dish
	s.AddTool(
		mcplib.NewTool("menurota_add_dish",
			mcplib.WithDescription("Add a dish to the catalogue"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Dish name"),
			),
			mcplib.WithString("cuisine",
				mcplib.Required(),
				mcplib.Description("Cuisine (e.g. korean, italian, mediterranean)"),
			),
			mcplib.WithString("categories",
				mcplib.Description("Comma-separated food categories (e.g. greens,legumes)"),
			),
			mcplib.WithString("recipe",
				mcplib.Description("Recipe reference or ingredient notes"),
			),
		),
		handleAddDish(cfg),
	)

	// 3. menurota_shortlist_dishes
	s.AddTool(
		mcplib.NewTool("menurota_shortlist_dishes",
			mcplib.WithDescription("Replace the planning shortlist with the given dishes. The next plan is generated from the shortlist, in this order."),
			mcplib.WithString("dishes",
				mcplib.Required(),
				mcplib.Description("Comma-separated dish IDs or names"),
			),
		),
		handleShortlistDishes(cfg),
	)

	// 4. menurota_generate_plan
	s.AddTool(
		mcplib.NewTool("menurota_generate_plan",
			mcplib.WithDescription("Pack the shortlist into a multi-week meal plan, maximizing category diversity and cuisine novelty per week under an Eastern/Western quota"),
			mcplib.WithString("name", mcplib.Description("Plan name (default: Meal Plan)")),
			mcplib.WithNumber("weeks", mcplib.Description("Number of weeks")),
			mcplib.WithNumber("per_week", mcplib.Description("Dishes per week")),
			mcplib.WithNumber("eastern", mcplib.Description("Eastern dishes per week")),
			mcplib.WithNumber("western", mcplib.Description("Western dishes per week")),
		),
		handleGeneratePlan(cfg),
	)

	// 5. menurota_assess_variety
	s.AddTool(
		mcplib.NewTool("menurota_assess_variety",
			mcplib.WithDescription("Score a plan's dietary variety (0-100) with cuisine, region, and category distributions and over-repeated dishes"),
			mcplib.WithString("plan_id",
				mcplib.Required(),
				mcplib.Description("ID of the plan to assess"),
			),
		),
		handleAssessVariety(cfg),
	)

	// 6. menurota_suggest_improvements
	s.AddTool(
		mcplib.NewTool("menurota_suggest_improvements",
			mcplib.WithDescription("Returns actionable suggestions for improving a plan's variety, alongside its report"),
			mcplib.WithString("plan_id",
				mcplib.Required(),
				mcplib.Description("ID of the plan to assess"),
			),
		),
		handleSuggestImprovements(cfg),
	)

	// 7. menurota_shopping_list
	s.AddTool(
		mcplib.NewTool("menurota_shopping_list",
			mcplib.WithDescription("Derive a shopping list from a plan, split into bulk (monthly) and fresh (weekly) categories"),
			mcplib.WithString("plan_id",
				mcplib.Required(),
				mcplib.Description("ID of the plan"),
			),
			mcplib.WithNumber("week", mcplib.Description("Limit to one week (1-indexed)")),
		),
		handleShoppingList(cfg),
	)
}

// services bundles the application services the tool handlers run against.
type services struct {
	catalogue *application.CatalogueService
	shortlist *application.ShortlistService
	planning  *application.PlanningService
	analysis  *application.AnalysisService
	shopping  *application.ShoppingService
}

// newServices wires the standard service set. Logging is discarded: stdio
// carries the MCP protocol.
func newServices(cfg domain.Config) *services {
	log := zerolog.Nop()
	blobs := store.New(cfg.DataDir)
	catalogue := application.NewCatalogueService(blobs, cfg.User, log)
	shortlist := application.NewShortlistService(blobs, cfg.User, log)
	planning := application.NewPlanningService(blobs, catalogue, shortlist, cfg.User, log)
	return &services{
		catalogue: catalogue,
		shortlist: shortlist,
		planning:  planning,
		analysis:  application.NewAnalysisService(blobs, catalogue, planning, cfg.User, log),
		shopping:  application.NewShoppingService(catalogue, planning, log),
	}
}

func handleListDishes(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newServices(cfg)
		dishes, err := svc.catalogue.List()
		if err != nil {
			return errorResult(fmt.Sprintf("listing dishes failed: %v", err)), nil
		}
		return jsonResult(dishes)
	}
}

func handleAddDish(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawCuisine, err := request.RequireString("cuisine")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		cuisine, err := domain.ParseCuisine(rawCuisine)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		var cats []domain.Category
		if raw, ok := args["categories"].(string); ok && raw != "" {
			for _, part := range splitAndTrim(raw) {
				c, err := domain.ParseCategory(part)
				if err != nil {
					return errorResult(err.Error()), nil
				}
				cats = append(cats, c)
			}
		}

		dish := domain.NewDish(name, cuisine, cats...)
		if recipe, ok := args["recipe"].(string); ok && recipe != "" {
			dish = dish.WithRecipeRef(recipe)
		}

		svc := newServices(cfg)
		if err := svc.catalogue.Add(dish); err != nil {
			return errorResult(fmt.Sprintf("adding dish failed: %v", err)), nil
		}
		return jsonResult(dish)
	}
}

func handleShortlistDishes(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("dishes")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newServices(cfg)
		if err := svc.shortlist.Clear(); err != nil {
			return errorResult(fmt.Sprintf("clearing shortlist failed: %v", err)), nil
		}

		var sl domain.Shortlist
		for _, ref := range splitAndTrim(raw) {
			dish, err := resolveDish(svc.catalogue, ref)
			if err != nil {
				return errorResult(fmt.Sprintf("resolving %q: %v", ref, err)), nil
			}
			sl, err = svc.shortlist.Add(dish.ID)
			if err != nil {
				return errorResult(fmt.Sprintf("shortlisting %q: %v", ref, err)), nil
			}
		}
		return jsonResult(sl)
	}
}

func handleGeneratePlan(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		name, _ := args["name"].(string)
		if name == "" {
			name = "Meal Plan"
		}
		params := distribute.Params{
			Weeks:          intArg(args, "weeks", cfg.Plan.Weeks),
			PerWeek:        intArg(args, "per_week", cfg.Plan.PerWeek),
			EasternPerWeek: intArg(args, "eastern", cfg.Plan.EasternPerWeek),
			WesternPerWeek: intArg(args, "western", cfg.Plan.WesternPerWeek),
		}

		svc := newServices(cfg)
		plan, result, err := svc.planning.Generate(name, params, cfg.Scoring)
		if err != nil {
			return errorResult(fmt.Sprintf("generating plan failed: %v", err)), nil
		}
		return jsonResult(struct {
			Plan      domain.Plan `json:"plan"`
			Discarded []string    `json:"discarded"`
			Reused    []string    `json:"reused"`
		}{plan, result.Discarded, result.Reused})
	}
}

func handleAssessVariety(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		planID, err := request.RequireString("plan_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newServices(cfg)
		report, err := svc.analysis.Assess(planID, cfg.Variety)
		if err != nil {
			return errorResult(fmt.Sprintf("assessment failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSuggestImprovements(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		planID, err := request.RequireString("plan_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newServices(cfg)
		report, suggestions, err := svc.analysis.Suggest(planID, cfg.Variety)
		if err != nil {
			return errorResult(fmt.Sprintf("assessment failed: %v", err)), nil
		}
		return jsonResult(struct {
			Report      any      `json:"report"`
			Suggestions []string `json:"suggestions"`
		}{report, suggestions})
	}
}

func handleShoppingList(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		planID, err := request.RequireString("plan_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newServices(cfg)
		args := request.GetArguments()
		if week := intArg(args, "week", 0); week > 0 {
			list, err := svc.shopping.ForWeek(planID, week)
			if err != nil {
				return errorResult(fmt.Sprintf("shopping list failed: %v", err)), nil
			}
			return jsonResult(list)
		}

		list, err := svc.shopping.ForPlan(planID)
		if err != nil {
			return errorResult(fmt.Sprintf("shopping list failed: %v", err)), nil
		}
		return jsonResult(list)
	}
}

// resolveDish accepts either a dish ID or a dish name.
func resolveDish(catalogue *application.CatalogueService, ref string) (domain.Dish, error) {
	if d, err := catalogue.Get(ref); err == nil {
		return d, nil
	}
	return catalogue.GetByName(ref)
}

// intArg reads an optional numeric argument. JSON numbers arrive as float64.
func intArg(args map[string]any, key string, def int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return def
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
