// Package menu renders the command menu and dispatches the selected
// command as a Bubble Tea command, so the UI keeps painting while a pass
// runs.
package menu

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privlock/privlock-tui/internal/controller"
	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/keymap"
	"github.com/privlock/privlock-tui/internal/reconcile"
	"github.com/privlock/privlock-tui/internal/state"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/ui/view"
	"github.com/privlock/privlock-tui/internal/util"
)

// PassDoneMsg reports a finished reconciliation pass.
type PassDoneMsg struct {
	Title    string
	Outcomes []reconcile.Outcome
}

// IdentityDoneMsg reports a finished egress-identity query.
type IdentityDoneMsg struct {
	Report identity.Report
	Err    error
}

// ShowAboutMsg asks the router to display the about view.
type ShowAboutMsg struct{}

type entry struct {
	digit   string
	command controller.Command
	label   string
	desc    string
}

var entries = []entry{
	{"1", controller.CommandLockdown, "Full lockdown",
		"disable services, wireless adapters, and write policy values"},
	{"2", controller.CommandStatus, "Check status",
		"probe everything, change nothing"},
	{"3", controller.CommandDisableRadios, "Disable services and adapters",
		"leave the policy values untouched"},
	{"4", controller.CommandApplyPolicies, "Apply policy values",
		"write the LocationAndSensors entries only"},
	{"5", controller.CommandRevert, "Revert lockdown",
		"restore services and adapters, remove policy values"},
	{"6", controller.CommandIdentity, "Network identity",
		"resolve public IP and coarse geolocation"},
	{"7", controller.CommandAbout, "About",
		"what this tool manages, and on which host"},
}

// Model is the command menu view.
type Model struct {
	store    *state.Store
	theme    theme.Theme
	keymap   keymap.Global
	lockdown controller.Lockdown
	identity controller.Identity
	cursor   int
	width    int
	height   int
}

// New constructs the menu view.
func New(store *state.Store, th theme.Theme, km keymap.Global, lockdown controller.Lockdown, id controller.Identity) view.Model {
	return &Model{store: store, theme: th, keymap: km, lockdown: lockdown, identity: id}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.store.Snapshot().Busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Up):
		m.cursor = util.WrapIndex(m.cursor, -1, len(entries))
	case key.Matches(keyMsg, m.keymap.Down):
		m.cursor = util.WrapIndex(m.cursor, 1, len(entries))
	case key.Matches(keyMsg, m.keymap.Select):
		return m, m.run(entries[m.cursor])
	default:
		for idx, e := range entries {
			if keyMsg.String() == e.digit {
				m.cursor = idx
				return m, m.run(e)
			}
		}
		m.store.SetError("not a command: " + keyMsg.String())
	}
	return m, nil
}

// run kicks off the selected command on a Bubble Tea command goroutine.
// Reconciliation itself stays strictly sequential inside the pass.
func (m *Model) run(e entry) tea.Cmd {
	if e.command == controller.CommandAbout {
		return func() tea.Msg { return ShowAboutMsg{} }
	}

	m.store.BeginRun(e.label)

	if e.command == controller.CommandIdentity {
		return func() tea.Msg {
			report, err := m.identity.Query(context.Background())
			return IdentityDoneMsg{Report: report, Err: err}
		}
	}

	var pass func(context.Context) []reconcile.Outcome
	switch e.command {
	case controller.CommandLockdown:
		pass = m.lockdown.Lockdown
	case controller.CommandStatus:
		pass = m.lockdown.Status
	case controller.CommandDisableRadios:
		pass = m.lockdown.DisableRadios
	case controller.CommandApplyPolicies:
		pass = m.lockdown.ApplyPolicies
	case controller.CommandRevert:
		pass = m.lockdown.Revert
	}
	label := e.label
	return func() tea.Msg {
		return PassDoneMsg{Title: label, Outcomes: pass(context.Background())}
	}
}

func (m *Model) View() string {
	rows := make([]string, 0, len(entries)+2)
	for idx, e := range entries {
		cursor := "  "
		if idx == m.cursor {
			cursor = m.theme.Cursor.Render("> ")
		}
		row := fmt.Sprintf("%s%s %s  %s",
			cursor,
			m.theme.MenuKey.Render(e.digit+")"),
			e.label,
			m.theme.Subtle.Render(e.desc),
		)
		rows = append(rows, row)
	}
	rows = append(rows, "")
	rows = append(rows, m.theme.Subtle.Render("press a digit or enter to run, q to quit"))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.theme.Body.Copy().Width(max(0, m.width)).Render(body)
}

func (m *Model) Title() string { return "Menu" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// Cursor exposes the selected row for tests.
func (m *Model) Cursor() int { return m.cursor }

// Labels lists the menu labels in display order.
func Labels() []string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.label)
	}
	return labels
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
