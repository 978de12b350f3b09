package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/audio"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/render"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/view"
)

// Screen is the current top-level screen.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenFading
	ScreenRoster
)

// Loader runs the one-shot sheet fetch.
type Loader interface {
	Load(ctx context.Context) state.Snapshot
}

// Player controls the background track.
type Player interface {
	Play() error
	Pause() error
	Toggle() error
	AdjustVolume(delta float64) error
	ToggleMute() error
	State() audio.State
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    Loader
	Player    Player
	Config    *config.Config
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    Loader
	player    Player
	config    *config.Config
	logger    *zap.Logger
	prefsPath string
	renderer  render.Renderer

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	screen   Screen
	width    int
	height   int
	showHelp bool

	// Search input
	search    textinput.Model
	searching bool

	// Loading indicator
	spinner spinner.Model

	// Data state
	started  bool
	snapshot state.Snapshot
	view     view.State
	surface  *surface
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	search := textinput.New()
	search.Placeholder = "Search members..."
	search.Prompt = "🔍 "
	search.CharLimit = 0 // unlimited
	search.Width = SearchWidth

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:       ctx,
		loader:    opts.Loader,
		player:    opts.Player,
		config:    cfg,
		logger:    logger,
		prefsPath: prefsPath,
		renderer:  render.Renderer{Placeholder: cfg.PlaceholderImage},
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		screen:    ScreenLanding,
		search:    search,
		spinner:   spin,
		view:      view.New(cfg.ItemsPerPage),
		surface:   newSurface(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case fadeDoneMsg:
		return m.enterRoster()

	case loadedMsg:
		m.handleLoaded(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.surface.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	switch m.screen {
	case ScreenLanding, ScreenFading:
		return m.renderLanding()
	default:
		return m.renderRoster()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		return m, nil
	}

	switch m.screen {
	case ScreenLanding:
		if key.Matches(msg, m.keys.Enter) {
			m.screen = ScreenFading
			return m, fadeCmd(FadeDuration)
		}
		return m, nil
	case ScreenRoster:
		return m.handleRosterKey(msg)
	}

	// Input is ignored while fading.
	return m, nil
}

// handleRosterKey processes keyboard input on the roster screen.
func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextPage):
		m.apply(view.Advance{})

	case key.Matches(msg, m.keys.PrevPage):
		m.apply(view.Retreat{})

	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenLanding
		m.playerDo("pause", Player.Pause)

	case key.Matches(msg, m.keys.PlayPause):
		m.playerDo("toggle playback", Player.Toggle)

	case key.Matches(msg, m.keys.Mute):
		m.playerDo("toggle mute", Player.ToggleMute)
		m.savePrefs()

	case key.Matches(msg, m.keys.VolumeUp):
		m.adjustVolume(VolumeStep)

	case key.Matches(msg, m.keys.VolumeDown):
		m.adjustVolume(-VolumeStep)
	}
	return m, nil
}

// handleSearchKey feeds keys to the search input and re-filters on change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.ClearSearch):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.apply(view.SearchChanged{Text: ""})
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.apply(view.SearchChanged{Text: value})
	}
	return m, cmd
}

// enterRoster finishes the fade: the roster screen shows, music starts, and
// the first entry kicks off the fetch.
func (m Model) enterRoster() (tea.Model, tea.Cmd) {
	m.screen = ScreenRoster
	if m.player != nil {
		if err := m.player.Play(); err != nil {
			m.logPlayError(err)
		}
	}
	if m.started {
		return m, nil
	}
	m.started = true
	m.renderer.Loading(m.surface)
	return m, tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.loader))
}

// handleLoaded mounts the fetched roster or the error message.
func (m *Model) handleLoaded(snap state.Snapshot) {
	m.snapshot = snap
	if !snap.HasRoster() {
		m.renderer.Fail(m.surface)
		return
	}
	m.view = view.New(m.config.ItemsPerPage)
	if value := m.search.Value(); value != "" {
		m.view = view.Apply(m.view, snap.Roster.Members(), view.SearchChanged{Text: value})
	}
	m.renderer.Mount(m.surface, snap.Roster)
	m.renderer.Sync(m.surface, snap.Roster, m.view)
}

// apply runs one view event and re-syncs the surface. Events before the
// roster is mounted only update the search text.
func (m *Model) apply(ev view.Event) {
	if !m.snapshot.HasRoster() {
		if sc, ok := ev.(view.SearchChanged); ok {
			m.view.Search = sc.Text
			m.view.Page = 1
		}
		return
	}
	ros := m.snapshot.Roster
	m.view = view.Apply(m.view, ros.Members(), ev)
	m.renderer.Sync(m.surface, ros, m.view)
}

func (m *Model) adjustVolume(delta float64) {
	if m.player == nil {
		return
	}
	if err := m.player.AdjustVolume(delta); err != nil {
		m.logger.Warn("volume change failed", zap.Error(err))
	}
	m.savePrefs()
}

func (m *Model) playerDo(action string, fn func(Player) error) {
	if m.player == nil {
		return
	}
	if err := fn(m.player); err != nil {
		m.logger.Warn("audio "+action+" failed", zap.Error(err))
	}
}

func (m *Model) logPlayError(err error) {
	if errors.Is(err, audio.ErrNoSource) {
		m.logger.Debug("no background track configured")
		return
	}
	m.logger.Warn("autoplay was prevented", zap.Error(err))
}

// savePrefs persists theme and audio settings. Failures are logged only.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Volume: prefs.DefaultVolume}
	if m.player != nil {
		st := m.player.State()
		p.Volume = st.Volume
		p.Muted = st.Muted
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Debug("save prefs failed", zap.Error(err))
	}
}

func (m Model) columns() int {
	if m.config == nil || m.config.ColumnsPerRow <= 0 {
		return config.Default().ColumnsPerRow
	}
	return m.config.ColumnsPerRow
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// renderLanding draws the landing screen; while fading it dims.
func (m Model) renderLanding() string {
	styles := m.theme.Styles()
	logo := styles.Logo
	hint := styles.MutedText
	if m.screen == ScreenFading {
		logo = styles.FaintText
		hint = styles.FaintText
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		logo.Render("⚔️  R O S T E R  ⚔️"),
		"",
		hint.Render("press enter"),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderRoster draws the header, search input, sections, pager and footer.
func (m Model) renderRoster() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")

	searchBox := styles.Search
	if m.searching {
		searchBox = styles.SearchFocused
	}
	b.WriteString(searchBox.Render(m.search.View()))
	b.WriteString("\n")

	if m.surface.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(render.LoadingText))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSection(m.surface.section(render.GroupLeader), width))
		b.WriteString(m.renderSection(m.surface.section(render.GroupMember), width))
		if pager := m.renderPager(); pager != "" {
			b.WriteString("\n")
			b.WriteString(pager)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Width(width).Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader(width int) string {
	styles := m.theme.Styles()
	left := styles.Logo.Render("ROSTER")
	if m.snapshot.HasRoster() {
		left += styles.MutedText.Render(fmt.Sprintf("  %d leaders · %d members",
			m.snapshot.Roster.LeaderCount(), m.snapshot.Roster.MemberCount()))
	}
	right := m.renderAudio()
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderAudio draws the play toggle, level icon and volume slider.
func (m Model) renderAudio() string {
	if m.player == nil {
		return ""
	}
	styles := m.theme.Styles()
	st := m.player.State()

	icon := ternary(st.Playing, "⏸", "▶")
	level := "🔊"
	switch st.Level {
	case audio.LevelMuted:
		level = "🔇"
	case audio.LevelLow:
		level = "🔉"
	}

	filled := int(st.Volume*VolumeSliderWidth + 0.5)
	if st.Muted {
		filled = 0
	}
	slider := strings.Repeat("█", filled) + strings.Repeat("░", VolumeSliderWidth-filled)
	return styles.AccentText.Render(icon) + " " + level + " " + styles.FaintText.Render(slider)
}

// renderPager draws the page label and prev/next affordances.
func (m Model) renderPager() string {
	p := m.surface.pager
	if p.Hidden {
		return ""
	}
	styles := m.theme.Styles()
	prev := styles.FaintText.Render("‹ Prev")
	if p.PrevEnabled {
		prev = styles.AccentText.Render("‹ Prev")
	}
	next := styles.FaintText.Render("Next ›")
	if p.NextEnabled {
		next = styles.AccentText.Render("Next ›")
	}
	return prev + "  " + styles.Text.Render(p.Label()) + "  " + next
}

// Messages

type fadeDoneMsg time.Time

type loadedMsg state.Snapshot

// Commands

func fadeCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return fadeDoneMsg(t)
	})
}

func loadCmd(ctx context.Context, loader Loader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return loadedMsg(state.Snapshot{Phase: state.PhaseFailed, LastError: errors.New("no loader configured")})
		}
		return loadedMsg(loader.Load(ctx))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
