package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"linkdir/internal/adapters/tui/views"
	"linkdir/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDirectory ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state     ViewState
	directory *views.DirectoryModel
	help      *views.HelpModel
}

// NewApp creates a new TUI application
func NewApp(source ports.LinkSource, opts views.DirectoryOptions) *App {
	return &App{
		state:     ViewDirectory,
		directory: views.NewDirectoryModel(source, opts),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.directory.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.directory.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.directory.Update(msg)
		return a, cmd

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDirectoryMsg:
		a.state = ViewDirectory
		return a, nil

	case tea.KeyMsg, tea.MouseMsg:
		// Input goes to the view on screen only
		var cmd tea.Cmd
		switch a.state {
		case ViewHelp:
			_, cmd = a.help.Update(msg)
		default:
			_, cmd = a.directory.Update(msg)
		}
		return a, cmd
	}

	// Timers and loads keep running while help is open
	_, cmd := a.directory.Update(msg)
	return a, cmd
}

// Close stops the directory's pending timers
func (a *App) Close() {
	a.directory.Close()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.directory.View()
	}
}
