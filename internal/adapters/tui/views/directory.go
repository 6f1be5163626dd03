package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"linkdir/internal/adapters/tui/styles"
	"linkdir/internal/application"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
	"linkdir/internal/scroll"
)

// DirectoryKeyMap defines key bindings for the directory view
type DirectoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Visit      key.Binding
	Copy       key.Binding
	Search     key.Binding
	Categories key.Binding
	Toggle     key.Binding
	Sort       key.Binding
	SortBack   key.Binding
	More       key.Binding
	Clear      key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

var DirectoryKeys = DirectoryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Visit: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "visit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Categories: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "categories"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	SortBack: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sort back"),
	),
	More: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "more"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear filters"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

type focus int

const (
	focusCards focus = iota
	focusSearch
	focusCategories
)

// DirectoryOptions configures a DirectoryModel
type DirectoryOptions struct {
	Engine    domain.Engine
	PageSize  int
	Scroll    scroll.Options
	Margin    int // lines below the viewport that still count as visible
	Reveal    RevealOptions
	Opener    ports.URLOpener
	Clipboard ports.Clipboard
	Logger    *zap.Logger
}

// DirectoryModel is the card grid with search, category and sort controls
type DirectoryModel struct {
	ViewState

	source ports.LinkSource
	opts   DirectoryOptions
	logger *zap.Logger

	dir        *application.Directory
	loadErr    error
	window     *Window
	search     textinput.Model
	categories *CategoryFilter
	spinner    spinner.Model
	spinning   bool
	reveal     *RevealTracker
	focus      focus

	// trigger exists only while the sentinel is rendered. triggerGen
	// stamps its ticks so ticks from a discarded trigger are ignored.
	trigger    *scroll.Trigger
	triggerGen uint64
}

type datasetLoadedMsg struct {
	ds domain.Dataset
}

type errMsg struct {
	err error
}

type statusMsg struct {
	message string
}

type scrollTickMsg struct {
	gen   uint64
	phase scroll.Phase
	token uint64
}

type revealMsg struct {
	id    string
	token uint64
}

// NewDirectoryModel creates the directory view over source
func NewDirectoryModel(source ports.LinkSource, opts DirectoryOptions) *DirectoryModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}
	if opts.Reveal == (RevealOptions{}) {
		opts.Reveal = DefaultRevealOptions
	}

	ti := textinput.New()
	ti.Placeholder = "Search links..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.MutedText

	return &DirectoryModel{
		source:     source,
		opts:       opts,
		logger:     opts.Logger,
		window:     NewWindow(),
		search:     ti,
		categories: NewCategoryFilter(nil),
		spinner:    sp,
		reveal:     NewRevealTracker(opts.Reveal),
	}
}

// Init loads the dataset
func (m *DirectoryModel) Init() tea.Cmd {
	return tea.Batch(m.load, m.ensureSpinner())
}

func (m *DirectoryModel) load() tea.Msg {
	ds, err := m.source.Load()
	if err != nil {
		return errMsg{err}
	}
	return datasetLoadedMsg{ds}
}

// Update handles messages for the directory
func (m *DirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, m.syncScroll()

	case datasetLoadedMsg:
		m.dir = application.NewDirectory(msg.ds, m.opts.Engine, m.opts.PageSize)
		m.loadErr = nil
		m.categories.SetCategories(msg.ds.Categories)
		m.categories.SetSelected(nil)
		m.window.Reset(len(m.dir.Visible()))
		m.relayout()
		m.logger.Info("dataset loaded",
			zap.Int("links", len(msg.ds.Links)),
			zap.Int("categories", len(msg.ds.Categories)))
		return m, tea.Batch(m.syncReveal(), m.syncScroll(), m.ensureSpinner())

	case errMsg:
		if m.dir == nil {
			m.loadErr = msg.err
		}
		m.SetMessage(msg.err.Error(), true)
		m.logger.Warn("directory error", zap.Error(msg.err))
		return m, nil

	case statusMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case CategoriesChangedMsg:
		defer m.categories.Ack()
		if m.dir == nil {
			return m, nil
		}
		changed := m.dir.SetSelectedCategories(msg.Selected)
		m.categories.SetSelected(m.dir.Filter().Categories)
		if changed {
			return m, m.filterChanged()
		}
		return m, nil

	case scrollTickMsg:
		return m, m.handleScrollTick(msg)

	case revealMsg:
		m.reveal.Reveal(msg.id, msg.token)
		return m, nil

	case spinner.TickMsg:
		if !m.needsSpinner() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.dir == nil || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.window.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.window.ScrollBy(1)
		default:
			return m, nil
		}
		return m, m.syncScroll()

	case tea.KeyMsg:
		if key.Matches(msg, DirectoryKeys.ForceQuit) {
			m.Close()
			return m, tea.Quit
		}
		if m.dir == nil {
			if key.Matches(msg, DirectoryKeys.Quit) {
				m.Close()
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.focus {
		case focusSearch:
			return m, m.updateSearch(msg)
		case focusCategories:
			return m, m.updateCategories(msg)
		default:
			return m, m.updateCards(msg)
		}
	}

	return m, nil
}

func (m *DirectoryModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		m.focusOn(focusCards)
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.dir.SetQuery(m.search.Value()) {
		return tea.Batch(cmd, m.filterChanged())
	}
	return cmd
}

func (m *DirectoryModel) updateCategories(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DirectoryKeys.Back), key.Matches(msg, DirectoryKeys.Categories),
		key.Matches(msg, DirectoryKeys.Up), key.Matches(msg, DirectoryKeys.Down):
		m.focusOn(focusCards)
	case key.Matches(msg, DirectoryKeys.Left):
		m.categories.Left()
	case key.Matches(msg, DirectoryKeys.Right):
		m.categories.Right()
	case key.Matches(msg, DirectoryKeys.Toggle):
		return m.categories.Toggle()
	case key.Matches(msg, DirectoryKeys.Quit):
		m.Close()
		return tea.Quit
	}
	return nil
}

func (m *DirectoryModel) updateCards(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	moved := false
	switch {
	case key.Matches(msg, DirectoryKeys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, DirectoryKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, DirectoryKeys.Search):
		return m.focusOn(focusSearch)

	case key.Matches(msg, DirectoryKeys.Categories):
		m.focusOn(focusCategories)
		return nil

	case key.Matches(msg, DirectoryKeys.Sort):
		return m.cycleSort(1)

	case key.Matches(msg, DirectoryKeys.SortBack):
		return m.cycleSort(-1)

	case key.Matches(msg, DirectoryKeys.Clear):
		return m.clearFilters()

	case key.Matches(msg, DirectoryKeys.More):
		return m.loadMore("key")

	case key.Matches(msg, DirectoryKeys.Visit):
		if l, ok := m.Selected(); ok {
			return m.visit(l)
		}
		return nil

	case key.Matches(msg, DirectoryKeys.Copy):
		if l, ok := m.Selected(); ok {
			return m.copyURL(l)
		}
		return nil

	case key.Matches(msg, DirectoryKeys.Up):
		moved = m.window.Up()
	case key.Matches(msg, DirectoryKeys.Down):
		moved = m.window.Down()
	case key.Matches(msg, DirectoryKeys.Left):
		moved = m.window.Left()
	case key.Matches(msg, DirectoryKeys.Right):
		moved = m.window.Right()
	case key.Matches(msg, DirectoryKeys.PageUp):
		moved = m.window.PageUp()
	case key.Matches(msg, DirectoryKeys.PageDown):
		moved = m.window.PageDown()
	}

	if moved {
		return m.syncScroll()
	}
	return nil
}

func (m *DirectoryModel) focusOn(f focus) tea.Cmd {
	m.focus = f
	m.search.Blur()
	m.categories.Blur()

	switch f {
	case focusSearch:
		return m.search.Focus()
	case focusCategories:
		m.categories.Focus()
	}
	return nil
}

func (m *DirectoryModel) cycleSort(step int) tea.Cmd {
	current := m.dir.Filter().Sort
	idx := 0
	for i, k := range domain.SortKeys {
		if k == current {
			idx = i
			break
		}
	}
	n := len(domain.SortKeys)
	next := domain.SortKeys[((idx+step)%n+n)%n]

	if m.dir.SetSortKey(next) {
		return m.filterChanged()
	}
	return nil
}

func (m *DirectoryModel) clearFilters() tea.Cmd {
	f := domain.DefaultFilter()
	f.Sort = m.dir.Filter().Sort
	m.search.SetValue("")
	if m.dir.SetFilter(f) {
		return m.filterChanged()
	}
	return nil
}

// filterChanged runs after the directory recomputed and reset to one page.
// A fire scheduled for the old result set must not load into the new one,
// so the sentinel starts over with a fresh trigger.
func (m *DirectoryModel) filterChanged() tea.Cmd {
	f := m.dir.Filter()
	m.categories.SetSelected(f.Categories)
	m.window.Reset(len(m.dir.Visible()))
	m.relayout()
	m.stopTrigger()

	m.logger.Debug("filter changed",
		zap.String("query", f.Query),
		zap.Strings("categories", f.Categories),
		zap.String("sort", string(f.Sort)),
		zap.Int("matches", len(m.dir.Filtered())))

	return tea.Batch(m.syncReveal(), m.syncScroll(), m.ensureSpinner())
}

func (m *DirectoryModel) loadMore(reason string) tea.Cmd {
	if !m.dir.LoadMore() {
		return nil
	}
	m.window.SetTotal(len(m.dir.Visible()))

	m.logger.Debug("page loaded",
		zap.String("reason", reason),
		zap.Int("page", m.dir.Page()),
		zap.Int("visible", len(m.dir.Visible())),
		zap.Int("matches", len(m.dir.Filtered())))

	return tea.Batch(m.syncReveal(), m.syncScroll())
}

// sentinelRendered mirrors the page: the sentinel exists only while some
// but not all matching links are shown
func (m *DirectoryModel) sentinelRendered() bool {
	if m.dir == nil {
		return false
	}
	n := len(m.dir.Visible())
	return n > 0 && n < len(m.dir.Filtered())
}

// syncScroll reports the sentinel's current visibility to the trigger,
// creating the trigger when the sentinel appears and stopping it when the
// sentinel goes away.
func (m *DirectoryModel) syncScroll() tea.Cmd {
	if !m.sentinelRendered() {
		m.stopTrigger()
		return nil
	}

	if m.trigger == nil {
		m.trigger = scroll.New(m.opts.Scroll)
		m.triggerGen++
	}

	visible := m.window.SentinelVisible(CardHeight, m.bodyLines(), m.opts.Margin)
	req, ok := m.trigger.Observe(visible, m.dir.HasMore())
	if !ok {
		return nil
	}
	return m.scheduleScroll(req)
}

// stopTrigger drops the trigger; ticks it already scheduled become stale
func (m *DirectoryModel) stopTrigger() {
	if m.trigger != nil {
		m.trigger.Stop()
		m.trigger = nil
	}
}

func (m *DirectoryModel) scheduleScroll(req scroll.Request) tea.Cmd {
	gen := m.triggerGen
	return tea.Tick(req.After, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen, phase: req.Phase, token: req.Token}
	})
}

func (m *DirectoryModel) handleScrollTick(msg scrollTickMsg) tea.Cmd {
	if m.trigger == nil || msg.gen != m.triggerGen {
		return nil
	}

	switch msg.phase {
	case scroll.PhaseFire:
		load, next, ok := m.trigger.Fire(msg.token, m.dir.HasMore())
		if !ok {
			return nil
		}
		cool := m.scheduleScroll(next)
		if !load {
			return cool
		}
		return tea.Batch(cool, m.loadMore("scroll"))

	case scroll.PhaseCool:
		req, ok := m.trigger.Cool(msg.token)
		if !ok {
			return nil
		}
		return m.scheduleScroll(req)
	}
	return nil
}

// syncReveal schedules the entrance of every newly mounted card
func (m *DirectoryModel) syncReveal() tea.Cmd {
	visible := m.dir.Visible()
	ids := make([]string, len(visible))
	for i, l := range visible {
		ids[i] = l.ID
	}

	reqs := m.reveal.Sync(ids, m.dir.PageSize())
	if len(reqs) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(reqs))
	for i, r := range reqs {
		cmds[i] = tea.Tick(r.After, func(time.Time) tea.Msg {
			return revealMsg{id: r.ID, token: r.Token}
		})
	}
	return tea.Batch(cmds...)
}

func (m *DirectoryModel) needsSpinner() bool {
	return m.dir == nil && m.loadErr == nil || m.sentinelRendered()
}

func (m *DirectoryModel) ensureSpinner() tea.Cmd {
	if m.spinning || !m.needsSpinner() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *DirectoryModel) visit(l domain.Link) tea.Cmd {
	opener := m.opts.Opener
	if opener == nil {
		m.SetMessage("No browser configured", true)
		return nil
	}

	logger := m.logger
	return func() tea.Msg {
		if err := application.ValidateURL("url", l.URL); err != nil {
			return errMsg{err}
		}
		if err := opener.Open(l.URL); err != nil {
			return errMsg{fmt.Errorf("opening %s: %w", l.URL, err)}
		}
		logger.Info("link visited", zap.String("id", l.ID), zap.String("url", l.URL))
		return statusMsg{"Opened " + l.Name}
	}
}

func (m *DirectoryModel) copyURL(l domain.Link) tea.Cmd {
	cb := m.opts.Clipboard
	if cb == nil {
		m.SetMessage("Clipboard unavailable", true)
		return nil
	}

	return func() tea.Msg {
		if err := cb.WriteAll(l.URL); err != nil {
			return errMsg{fmt.Errorf("copying url: %w", err)}
		}
		return statusMsg{"Copied " + l.URL}
	}
}

// Selected returns the link under the cursor
func (m *DirectoryModel) Selected() (domain.Link, bool) {
	if m.dir == nil {
		return domain.Link{}, false
	}
	visible := m.dir.Visible()
	i := m.window.Cursor()
	if i < 0 || i >= len(visible) {
		return domain.Link{}, false
	}
	return visible[i], true
}

// SetSize updates the view dimensions and the grid layout
func (m *DirectoryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.relayout()
}

// Close stops every pending timer
func (m *DirectoryModel) Close() {
	m.stopTrigger()
	m.reveal.Stop()
}

func (m *DirectoryModel) relayout() {
	width := m.InnerWidth()
	m.search.Width = max(width-8, 10)

	cols := min(max(width/CardMinWidth, 1), 3)
	m.window.SetLayout(cols, max(m.bodyLines()/CardHeight, 1))
}

func (m *DirectoryModel) cardWidth() int {
	cols := m.window.Cols()
	return (m.InnerWidth() - (cols - 1)) / cols
}

// bodyLines is the height left for the card grid
func (m *DirectoryModel) bodyLines() int {
	frame := styles.App.GetVerticalFrameSize()
	return m.Height - frame - lipgloss.Height(m.header()) - lipgloss.Height(m.footer())
}

// View renders the directory
func (m *DirectoryModel) View() string {
	if m.dir == nil {
		b := NewViewBuilder().Title("Link Directory", "")
		if m.loadErr != nil {
			b.Message("Failed to load links: "+m.loadErr.Error(), true)
		} else {
			b.Line(m.spinner.View() + " Loading links...")
		}
		return b.Help(DirectoryKeys.Quit).String()
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.body(),
		m.footer(),
	))
}

func (m *DirectoryModel) header() string {
	if m.dir == nil {
		return ""
	}
	width := m.InnerWidth()

	summary := fmt.Sprintf("Showing %d of %d links", len(m.dir.Visible()), len(m.dir.Filtered()))
	b := NewViewBuilder().Title("Link Directory", summary)

	box := styles.InputField
	if m.focus == focusSearch {
		box = styles.InputFocused
	}
	b.Line(box.Width(width - box.GetHorizontalBorderSize()).Render(m.search.View()))
	b.Line(m.categories.View(width))
	b.Line(m.sortLine())

	return strings.TrimSuffix(b.StringUnwrapped(), "\n")
}

func (m *DirectoryModel) sortLine() string {
	current := m.dir.Filter().Sort
	parts := make([]string, len(domain.SortKeys))
	for i, k := range domain.SortKeys {
		if k == current {
			parts[i] = styles.SortActive.Render(k.Label())
		} else {
			parts[i] = styles.MutedText.Render(k.Label())
		}
	}
	return styles.SortLabel.Render("Sort by  " + strings.Join(parts, styles.MutedText.Render(" · ")))
}

func (m *DirectoryModel) body() string {
	visible := m.dir.Visible()
	height := max(m.bodyLines(), 1)

	if len(visible) == 0 {
		return lipgloss.NewStyle().Height(height).Render(
			"\n" + RenderMuted("No links match your filters"))
	}

	width := m.InnerWidth()
	cardWidth := m.cardWidth()
	cols := m.window.Cols()
	cursor := m.window.Cursor()
	start, end := m.window.VisibleRange()

	var rows []string
	for r := start; r < end; r += cols {
		var cards []string
		for i := r; i < min(r+cols, end); i++ {
			if i > r {
				cards = append(cards, " ")
			}
			selected := m.focus == focusCards && i == cursor
			cards = append(cards, RenderCard(visible[i], cardWidth, selected, m.reveal.Shown(visible[i].ID)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end == len(visible) {
		rows = append(rows, m.sentinel(width))
	}

	lines := strings.Split(strings.Join(rows, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines, "\n"))
}

func (m *DirectoryModel) sentinel(width int) string {
	style := styles.Sentinel.Width(width)
	if m.sentinelRendered() {
		return style.Render(m.spinner.View() + " " + scroll.Label(true))
	}
	return style.Render(scroll.Label(false))
}

func (m *DirectoryModel) footer() string {
	b := NewViewBuilder().Message(m.Message, m.MessageErr)

	switch m.focus {
	case focusSearch:
		b.Help(key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/enter", "done")))
	case focusCategories:
		b.Help(DirectoryKeys.Left, DirectoryKeys.Right, DirectoryKeys.Toggle, DirectoryKeys.Back)
	default:
		more := DirectoryKeys.More
		more.SetEnabled(m.dir != nil && m.dir.HasMore())
		b.Help(DirectoryKeys.Search, DirectoryKeys.Categories, DirectoryKeys.Sort,
			DirectoryKeys.Visit, DirectoryKeys.Copy, more, DirectoryKeys.Help, DirectoryKeys.Quit)
	}
	return b.StringUnwrapped()
}
