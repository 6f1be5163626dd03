package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkdir/internal/adapters/tui/styles"
	"linkdir/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDirectoryMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Link Directory Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("h j k l / arrows", "Move between cards"))
	b.WriteString(helpLine("pgup / pgdn", "Move a screen at a time"))
	b.WriteString(helpLine("mouse wheel", "Scroll"))
	b.WriteString(helpLine("m", "Load the next page now"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Filtering"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Search names and descriptions"))
	b.WriteString(helpLine("c", "Choose categories (space to toggle)"))
	b.WriteString(helpLine("s / S", "Next / previous sort order"))
	b.WriteString(helpLine("x", "Clear search and categories"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Links"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter / o", "Open in browser"))
	b.WriteString(helpLine("y", "Copy URL"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sort orders"))
	b.WriteString("\n")
	for _, k := range domain.SortKeys {
		b.WriteString(styles.MutedText.Render("  " + k.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
