package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"linkdir/internal/adapters/tui/styles"
	"linkdir/internal/domain"
)

const (
	// CardHeight is the rendered height of a card, borders included
	CardHeight = 6
	// CardMinWidth is the narrowest a grid column may get
	CardMinWidth = 34

	descriptionLines = 2
	visitLabel       = "↗ Visit"
)

// RenderStars renders a rating as "⭐ 4.5"; invalid ratings show 0.0
func RenderStars(l domain.Link) string {
	return styles.Rating.Render("⭐ " + l.FormatRating())
}

// RenderCard draws one link card of the given outer width.
// A card whose entrance has not played yet is drawn as an empty frame of
// the same size so the grid does not shift when it appears.
func RenderCard(l domain.Link, width int, selected, shown bool) string {
	style := styles.Card
	switch {
	case !shown:
		style = styles.CardHidden
	case selected:
		style = styles.CardSelected
	}

	inner := max(width-style.GetHorizontalFrameSize(), 8)
	style = style.Width(inner + style.GetHorizontalPadding()).Height(CardHeight - style.GetVerticalFrameSize())

	if !shown {
		return style.Render("")
	}

	lines := []string{
		titleLine(l, inner),
	}
	lines = append(lines, clampDescription(l.Description, inner)...)
	lines = append(lines, footerLine(l, inner, selected))

	return style.Render(strings.Join(lines, "\n"))
}

func titleLine(l domain.Link, width int) string {
	stars := RenderStars(l)
	room := width - lipgloss.Width(stars) - 1
	name := styles.CardTitle.Render(ansi.Truncate(l.Name, max(room, 1), "…"))
	gap := max(width-lipgloss.Width(name)-lipgloss.Width(stars), 1)
	return name + strings.Repeat(" ", gap) + stars
}

// clampDescription wraps text to width and keeps at most two lines,
// always returning exactly two so every card has the same height
func clampDescription(text string, width int) []string {
	out := make([]string, descriptionLines)
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}

	wrapped := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i := range out {
		if i >= len(wrapped) {
			break
		}
		line := strings.TrimRight(wrapped[i], " ")
		if i == descriptionLines-1 && len(wrapped) > descriptionLines {
			line = ansi.Truncate(line+" …", width, "…")
		}
		out[i] = styles.CardDescription.Render(line)
	}
	return out
}

func footerLine(l domain.Link, width int, selected bool) string {
	visit := styles.MutedText.Render(visitLabel)
	if selected {
		visit = styles.VisitAction.Render(visitLabel)
	}

	name := l.CategoryName
	if name == "" {
		name = l.CategoryID
	}
	room := width - lipgloss.Width(visit) - 3
	badge := styles.Badge.Foreground(styles.CategoryColor(l.CategoryID)).Render(ansi.Truncate(name, max(room, 1), "…"))

	gap := max(width-lipgloss.Width(badge)-lipgloss.Width(visit), 1)
	return badge + strings.Repeat(" ", gap) + visit
}
