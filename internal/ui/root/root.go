// Package root orchestrates the routed views and global UI chrome.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privlock/privlock-tui/internal/controller"
	"github.com/privlock/privlock-tui/internal/keymap"
	"github.com/privlock/privlock-tui/internal/policy"
	"github.com/privlock/privlock-tui/internal/state"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/ui/view"
	"github.com/privlock/privlock-tui/internal/ui/views/about"
	"github.com/privlock/privlock-tui/internal/ui/views/menu"
	"github.com/privlock/privlock-tui/internal/ui/views/report"
)

// Options control how the root model is assembled.
type Options struct {
	Theme    theme.Theme
	KeyMap   *keymap.Global
	Table    policy.Lockdown
	Lockdown controller.Lockdown
	Identity controller.Identity
	Version  string
}

// Model routes between the menu, report, and about views.
type Model struct {
	store   *state.Store
	keymap  keymap.Global
	theme   theme.Theme
	spinner spinner.Model

	views    map[state.ViewKind]view.Model
	active   state.ViewKind
	spinning bool

	width  int
	height int
}

// New builds the root Bubble Tea model.
func New(store *state.Store, opts Options) *Model {
	km := keymap.DefaultGlobal()
	if opts.KeyMap != nil {
		km = *opts.KeyMap
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Theme.Title

	views := map[state.ViewKind]view.Model{
		state.ViewMenu:   menu.New(store, opts.Theme, km, opts.Lockdown, opts.Identity),
		state.ViewReport: report.New(store, opts.Theme),
		state.ViewAbout:  about.New(opts.Theme, opts.Table, opts.Version),
	}

	return &Model{
		store:   store,
		keymap:  km,
		theme:   opts.Theme,
		spinner: sp,
		views:   views,
		active:  state.ViewMenu,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, v := range m.views {
			v.SetSize(msg.Width, maxInt(1, msg.Height-2))
		}

	case menu.PassDoneMsg:
		m.store.FinishPass(msg.Title, msg.Outcomes)
		m.switchTo(state.ViewReport)
		m.spinning = false
		return m, nil

	case menu.IdentityDoneMsg:
		errMsg := ""
		if msg.Err != nil {
			errMsg = msg.Err.Error()
		}
		m.store.FinishIdentity(msg.Report, errMsg)
		m.switchTo(state.ViewReport)
		m.spinning = false
		return m, nil

	case menu.ShowAboutMsg:
		m.switchTo(state.ViewAbout)
		return m, nil

	case spinner.TickMsg:
		if !m.store.Snapshot().Busy {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		busy := m.store.Snapshot().Busy
		switch {
		case key.Matches(msg, m.keymap.Quit) && !busy:
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Back) && !busy && m.active != state.ViewMenu:
			m.switchTo(state.ViewMenu)
			return m, nil
		}
	}

	activeView := m.views[m.active]
	updated, cmd := activeView.Update(msg)
	if nextView, ok := updated.(view.Model); ok {
		m.views[m.active] = nextView
	}

	// A command may just have started; keep the spinner fed while the
	// store is busy.
	if !m.spinning && m.store.Snapshot().Busy {
		m.spinning = true
		cmd = tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m *Model) View() string {
	activeView := m.views[m.active]
	if activeView == nil {
		return ""
	}

	headline := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("privlock"),
		m.theme.Header.Render(activeView.Title()),
	)
	body := activeView.View()
	footer := m.theme.Footer.Render(m.footerLine())

	return lipgloss.JoinVertical(lipgloss.Left, headline, body, footer)
}

func (m *Model) footerLine() string {
	snapshot := m.store.Snapshot()
	if snapshot.Busy {
		return fmt.Sprintf("%s running %s", m.spinner.View(), snapshot.Running)
	}
	line := m.keymap.ShortHelp()
	if snapshot.LastError != "" {
		line = fmt.Sprintf("%s · %s", line, m.theme.Danger.Render(snapshot.LastError))
	}
	return line
}

func (m *Model) switchTo(kind state.ViewKind) {
	m.active = kind
	m.store.SetActiveView(kind)
}

// Active exposes the routed view for tests.
func (m *Model) Active() state.ViewKind { return m.active }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
