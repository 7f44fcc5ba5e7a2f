// Package tui renders plans, variety reports, and shopping lists for the
// terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/menurota/menurota/internal/application"
	"github.com/menurota/menurota/internal/domain"
	"github.com/menurota/menurota/internal/domain/distribute"
	"github.com/menurota/menurota/internal/domain/shopping"
	"github.com/menurota/menurota/internal/domain/variety"
)

// ── warm kitchen palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	goodStyle     = lipgloss.NewStyle().Foreground(success)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	easternStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F472B6")) // pink
	westernStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")) // blue
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 70:
		return success
	case score >= 50:
		return warning
	default:
		return danger
	}
}

func scoreLabel(score int) string {
	switch {
	case score >= 90:
		return "excellent variety"
	case score >= 70:
		return "good variety"
	case score >= 50:
		return "fair variety"
	default:
		return "low variety"
	}
}

func regionStyle(r domain.Region) lipgloss.Style {
	if r == domain.RegionEastern {
		return easternStyle
	}
	return westernStyle
}

// RenderPlan draws a plan week by week, resolving dish IDs to names and
// regions where the catalogue still knows them.
func RenderPlan(plan domain.Plan, dishes []domain.Dish) string {
	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	var b strings.Builder
	b.WriteString(headerStyle.Width(60).Render(plan.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + plan.ID))
	b.WriteString("\n\n")

	for i, week := range plan.Weeks {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Week %d", i+1)))
		b.WriteString("\n")
		if week.DishCount() == 0 {
			b.WriteString(faintStyle.Render("  (empty)"))
			b.WriteString("\n")
		}
		for _, id := range week.Dishes {
			d, ok := byID[id]
			if !ok {
				b.WriteString(faintStyle.Render("  ? " + id))
				b.WriteString("\n")
				continue
			}
			region := regionStyle(d.Region()).Render(string(d.Region()))
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				dimStyle.Render("•"),
				d.Name,
				dimStyle.Render("("+string(d.Cuisine)+", ")+region+dimStyle.Render(")")))
		}
		if i < len(plan.Weeks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderDistribution reports what the engine could not place and what it
// had to reuse.
func RenderDistribution(result distribute.Result, dishes []domain.Dish) string {
	if len(result.Discarded) == 0 && len(result.Reused) == 0 {
		return goodStyle.Render("All shortlisted dishes placed exactly once.") + "\n"
	}

	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}
	name := func(id string) string {
		if d, ok := byID[id]; ok {
			return d.Name
		}
		return id
	}

	var b strings.Builder
	if len(result.Reused) > 0 {
		b.WriteString(warnStyle.Render("Reused across weeks:"))
		b.WriteString("\n")
		for _, id := range result.Reused {
			b.WriteString("  " + name(id) + "\n")
		}
	}
	if len(result.Discarded) > 0 {
		b.WriteString(dimStyle.Render("Not placed:"))
		b.WriteString("\n")
		for _, id := range result.Discarded {
			b.WriteString("  " + name(id) + "\n")
		}
	}
	return b.String()
}

// RenderReport draws the variety report: score box, distributions, and
// repeated dishes.
func RenderReport(report variety.Report, dishes []domain.Dish) string {
	byID := make(map[string]domain.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	var b strings.Builder

	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.VarietyScore)).
		Render(fmt.Sprintf("%d / 100", report.VarietyScore))
	label := dimStyle.Render(scoreLabel(report.VarietyScore))
	b.WriteString(boxStyle.Render(headerStyle.Render("menurota") + "\n" +
		dimStyle.Render("Variety Score") + "\n\n" + scoreStyled + "\n" + label))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Dishes"))
	b.WriteString(fmt.Sprintf("\n  %d scheduled, %d unique\n", report.TotalDishCount, report.UniqueDishCount))
	b.WriteString(separatorLine)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Regions"))
	b.WriteString("\n")
	for _, r := range []domain.Region{domain.RegionEastern, domain.RegionWestern} {
		b.WriteString(fmt.Sprintf("  %s %d\n",
			regionStyle(r).Render(fmt.Sprintf("%-8s", string(r))), report.RegionDistribution[r]))
	}
	b.WriteString(separatorLine)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Cuisines"))
	b.WriteString("\n")
	for _, c := range domain.AllCuisines() {
		if n := report.CuisineDistribution[c]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-14s %d\n", string(c), n))
		}
	}
	b.WriteString(separatorLine)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n")
	for _, c := range domain.AllCategories() {
		if n := report.CategoryDistribution[c]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", string(c), faintStyle.Render(strings.Repeat("■", n))))
		}
	}

	if len(report.RepeatedDishes) > 0 {
		b.WriteString(separatorLine)
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Repeated dishes"))
		b.WriteString("\n")
		for id, n := range report.RepeatedDishes {
			name := id
			if d, ok := byID[id]; ok {
				name = d.Name
			}
			b.WriteString(fmt.Sprintf("  %s ×%d\n", name, n))
		}
	}

	return b.String()
}

// RenderSuggestions lists improvement hints, or a pat on the back.
func RenderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return goodStyle.Render("No suggestions. The plan looks well balanced.") + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Suggestions"))
	b.WriteString("\n")
	for _, s := range suggestions {
		b.WriteString("  " + warnStyle.Render("→") + " " + s + "\n")
	}
	return b.String()
}

// RenderShoppingList draws the bulk and weekly sections.
func RenderShoppingList(list shopping.List) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Bulk (monthly)"))
	b.WriteString("\n")
	if len(list.Bulk) == 0 {
		b.WriteString(faintStyle.Render("  (nothing)"))
		b.WriteString("\n")
	}
	for _, c := range list.Bulk {
		b.WriteString("  " + string(c) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Weekly (fresh)"))
	b.WriteString("\n")
	if len(list.Weekly) == 0 {
		b.WriteString(faintStyle.Render("  (nothing)"))
		b.WriteString("\n")
	}
	for _, c := range list.Weekly {
		b.WriteString("  " + string(c) + "\n")
	}
	return b.String()
}

// RenderDishes draws the catalogue as a simple table. Shortlisted dishes
// get a star.
func RenderDishes(dishes []domain.Dish, shortlist domain.Shortlist) string {
	if len(dishes) == 0 {
		return dimStyle.Render("Catalogue is empty. Try `menurota catalogue seed`.") + "\n"
	}
	var b strings.Builder
	for _, d := range dishes {
		mark := " "
		if shortlist.Contains(d.ID) {
			mark = goodStyle.Render("★")
		}
		cats := make([]string, len(d.Categories))
		for i, c := range d.Categories {
			cats[i] = string(c)
		}
		b.WriteString(fmt.Sprintf("%s %-28s %s %-14s %s\n",
			mark,
			d.Name,
			regionStyle(d.Region()).Render(fmt.Sprintf("%-8s", string(d.Region()))),
			string(d.Cuisine),
			dimStyle.Render(strings.Join(cats, ", "))))
		b.WriteString(faintStyle.Render("  " + d.ID))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHistory draws the recorded variety scores, oldest first.
func RenderHistory(entries []application.ScoreEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No score history yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Score history"))
	b.WriteString("\n")
	for _, e := range entries {
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%3d", e.Score))
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			dimStyle.Render(e.Timestamp), scoreStyled, e.PlanName))
	}
	return b.String()
}
