package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"} // Slate 900 / 50
	Accent    = lipgloss.Color("#6366F1")                                 // Indigo
	Secondary = lipgloss.Color("#10B981")                                 // Green
	Muted     = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"} // Slate 500 / 400
	Faint     = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"} // Slate 200 / 800
	Star      = lipgloss.Color("#F59E0B")                                 // Amber
	Error     = lipgloss.Color("#EF4444")                                 // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	CardSelected = Card.
			BorderForeground(Accent)

	// Placeholder for a card whose entrance has not played yet
	CardHidden = Card.
			BorderForeground(Faint)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	CardDescription = lipgloss.NewStyle().
			Foreground(Muted)

	Rating = lipgloss.NewStyle().
		Foreground(Star).
		Bold(true)

	Badge = lipgloss.NewStyle().
		Background(Faint).
		Foreground(Muted).
		Padding(0, 1)

	VisitAction = lipgloss.NewStyle().
			Foreground(Accent)

	// Category checkboxes
	Checkbox = lipgloss.NewStyle().
			Foreground(Muted)

	CheckboxChecked = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	CheckboxCursor = lipgloss.NewStyle().
			Underline(true)

	CheckboxPending = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	// Sort selector
	SortLabel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Muted).
			PaddingLeft(1)

	SortActive = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Infinite scroll sentinel
	Sentinel = lipgloss.NewStyle().
			Foreground(Muted).
			Align(lipgloss.Center)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// badgePalette gives each category a stable accent
var badgePalette = []lipgloss.Color{
	"#6366F1", // Indigo
	"#8B5CF6", // Violet
	"#EC4899", // Pink
	"#F97316", // Orange
	"#14B8A6", // Teal
	"#0EA5E9", // Sky
}

// CategoryColor returns the accent for a category ID
func CategoryColor(categoryID string) lipgloss.Color {
	if categoryID == "" {
		return Accent
	}
	var h uint32
	for i := 0; i < len(categoryID); i++ {
		h = h*31 + uint32(categoryID[i])
	}
	return badgePalette[h%uint32(len(badgePalette))]
}
