package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/menurota/menurota/internal/domain"
)

// registerResources registers all menurota MCP resources on the given server.
func registerResources(s *server.MCPServer, cfg domain.Config) {
	// 1. menurota://catalogue - the dish catalogue
	s.AddResource(
		mcplib.NewResource(
			"menurota://catalogue",
			"Dish Catalogue",
			mcplib.WithResourceDescription("All dishes with their categories, cuisine, and tags"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogueResource(cfg),
	)

	// 2. menurota://shortlist - the planning shortlist
	s.AddResource(
		mcplib.NewResource(
			"menurota://shortlist",
			"Shortlist",
			mcplib.WithResourceDescription("The dishes the next plan will be generated from, in order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleShortlistResource(cfg),
	)

	// 3. menurota://taxonomy - the fixed food taxonomy
	s.AddResource(
		mcplib.NewResource(
			"menurota://taxonomy",
			"Taxonomy",
			mcplib.WithResourceDescription("Food categories with purchase cadence, cuisines, and cuisine-to-region mapping"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTaxonomyResource(),
	)

	// 4. menurota://plans/{id} - a stored plan (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"menurota://plans/{id}",
			"Plan",
			mcplib.WithTemplateDescription("A stored meal plan with its week-by-week dish assignments"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handlePlanResource(cfg),
	)
}

func handleCatalogueResource(cfg domain.Config) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := newServices(cfg)
		dishes, err := svc.catalogue.List()
		if err != nil {
			return nil, fmt.Errorf("listing dishes: %w", err)
		}
		return jsonResourceContents("menurota://catalogue", dishes)
	}
}

func handleShortlistResource(cfg domain.Config) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := newServices(cfg)
		sl, err := svc.shortlist.Show()
		if err != nil {
			return nil, fmt.Errorf("loading shortlist: %w", err)
		}
		return jsonResourceContents("menurota://shortlist", sl)
	}
}

func handleTaxonomyResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		taxonomy := struct {
			Categories map[domain.Category]domain.PurchaseType `json:"categories"`
			Cuisines   map[domain.Cuisine]domain.Region        `json:"cuisines"`
		}{
			Categories: domain.CategoryPurchaseType,
			Cuisines:   domain.CuisineRegion,
		}
		return jsonResourceContents("menurota://taxonomy", taxonomy)
	}
}

func handlePlanResource(cfg domain.Config) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Populated by template matching.
		planID, ok := request.Params.Arguments["id"].(string)
		if !ok || planID == "" {
			return nil, fmt.Errorf("plan id is required")
		}

		svc := newServices(cfg)
		plan, err := svc.planning.Get(planID)
		if err != nil {
			return nil, fmt.Errorf("loading plan: %w", err)
		}
		return jsonResourceContents(request.Params.URI, plan)
	}
}

func jsonResourceContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
